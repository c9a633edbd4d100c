package progress

import (
	"context"
	"fmt"
	"os"

	"github.com/mjard/sciquiz/internal/content"
	"github.com/mjard/sciquiz/internal/store"
)

// Service couples the local progress store with the server's progress
// endpoints. Local state is the source of truth; the server side is
// best effort.
type Service struct {
	repo   store.ProgressRepo
	client content.Client
}

// NewService creates a progress service. client may be nil, in which case
// everything is local only.
func NewService(repo store.ProgressRepo, client content.Client) *Service {
	return &Service{repo: repo, client: client}
}

// Save appends the record locally and submits it to the server. The remote
// submission is fire-and-forget: its failure is logged and never surfaced,
// so a completed quiz is never held hostage to a persistence concern.
func (s *Service) Save(ctx context.Context, rec store.ProgressRecord) error {
	if err := s.repo.Append(ctx, &rec); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	if s.client != nil {
		sub := content.ProgressSubmission{
			Topic:      rec.Topic,
			Score:      rec.Score,
			Date:       rec.Date,
			Notes:      rec.Notes,
			Difficulty: content.Difficulty(rec.Difficulty),
			TimeSpent:  rec.TimeSpent,
			UsedNotes:  rec.UsedNotes,
		}
		if err := s.client.SubmitProgress(ctx, sub); err != nil {
			fmt.Fprintf(os.Stderr, "warning: progress submission failed: %v\n", err)
		}
	}
	return nil
}

// History returns the remote learning history, falling back to the local
// store when the server is unavailable. It never blocks a screen on a
// remote failure.
func (s *Service) History(ctx context.Context) []store.ProgressRecord {
	if s.client != nil {
		if items, err := s.client.FetchHistory(ctx); err == nil {
			return historyToRecords(items)
		}
	}

	recs, err := s.repo.All(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: reading local history failed: %v\n", err)
		return nil
	}
	return recs
}

// Stats returns the remote statistics, falling back to a local Summarize
// over stored records.
func (s *Service) Stats(ctx context.Context) Summary {
	if s.client != nil {
		if stats, err := s.client.FetchStats(ctx); err == nil {
			return Summary{
				CompletedTopics: stats.CompletedTopics,
				TotalQuizzes:    stats.TotalQuizzes,
				AverageScore:    stats.AverageScore,
				TopicsBySubject: stats.TopicsBySubject,
			}
		}
	}

	recs, err := s.repo.All(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: reading local history failed: %v\n", err)
		return Summarize(nil)
	}
	return Summarize(recs)
}

// historyToRecords adapts the wire history to local record shape.
func historyToRecords(items []content.HistoryItem) []store.ProgressRecord {
	recs := make([]store.ProgressRecord, 0, len(items))
	for _, it := range items {
		recs = append(recs, store.ProgressRecord{
			Topic:      it.Topic,
			Date:       it.Date,
			Score:      it.Score,
			Difficulty: it.Difficulty,
			TimeSpent:  it.TimeSpent,
			Subject:    Classify(it.Topic),
		})
	}
	return recs
}
