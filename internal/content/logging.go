package content

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mjard/sciquiz/internal/store"
)

// LoggingClient is a decorator that records every content-service request
// as an event in the local store.
type LoggingClient struct {
	inner  Client
	events store.EventRepo
}

// WithLogging wraps a Client with request-event logging.
func WithLogging(c Client, events store.EventRepo) Client {
	return &LoggingClient{inner: c, events: events}
}

var _ Client = (*LoggingClient)(nil)

func (l *LoggingClient) GenerateTheory(ctx context.Context, objective string, difficulty Difficulty) (*Theory, error) {
	start := time.Now()
	theory, err := l.inner.GenerateTheory(ctx, objective, difficulty)
	l.record(ctx, "generate_theory", objective, difficulty, start, err)
	return theory, err
}

func (l *LoggingClient) GenerateQuiz(ctx context.Context, objective string, difficulty Difficulty) (*QuizSet, error) {
	start := time.Now()
	quiz, err := l.inner.GenerateQuiz(ctx, objective, difficulty)
	l.record(ctx, "generate_quiz", objective, difficulty, start, err)
	return quiz, err
}

func (l *LoggingClient) SubmitProgress(ctx context.Context, sub ProgressSubmission) error {
	start := time.Now()
	err := l.inner.SubmitProgress(ctx, sub)
	l.record(ctx, "save_progress", sub.Topic, sub.Difficulty, start, err)
	return err
}

func (l *LoggingClient) FetchHistory(ctx context.Context) ([]HistoryItem, error) {
	start := time.Now()
	items, err := l.inner.FetchHistory(ctx)
	l.record(ctx, "learning_history", "", "", start, err)
	return items, err
}

func (l *LoggingClient) FetchStats(ctx context.Context) (*LearningStats, error) {
	start := time.Now()
	stats, err := l.inner.FetchStats(ctx)
	l.record(ctx, "learning_stats", "", "", start, err)
	return stats, err
}

func (l *LoggingClient) record(ctx context.Context, op, objective string, difficulty Difficulty, start time.Time, err error) {
	data := store.RequestEventData{
		Operation:  op,
		Objective:  objective,
		Difficulty: string(difficulty),
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if err != nil {
		data.Error = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.events.AppendRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log request event: %v\n", logErr)
	}
}
