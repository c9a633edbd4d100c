package progress

import (
	"math"
	"time"

	"github.com/mjard/sciquiz/internal/grader"
	"github.com/mjard/sciquiz/internal/session"
	"github.com/mjard/sciquiz/internal/store"
)

// Summary is a pure reduction over the set of progress records. It must be
// recomputable from history alone; there are no hidden counters.
type Summary struct {
	CompletedTopics int
	TotalQuizzes    int
	AverageScore    float64
	TopicsBySubject map[string]int
}

// ToRecord converts a completed, graded attempt into a progress record.
// subject is the classification decided at save time (see Classify);
// storing it on the record keeps the summary derivable from history alone.
func ToRecord(objective string, grade grader.Result, timing session.Timing, difficulty, notesText, subject string, now time.Time) store.ProgressRecord {
	return store.ProgressRecord{
		Topic:      objective,
		Date:       now.Format("2006-01-02"),
		Score:      ScorePercent(grade),
		Difficulty: difficulty,
		TimeSpent:  session.FormatElapsed(timing.Elapsed),
		UsedNotes:  timing.UsedNotes,
		Subject:    subject,
		Notes:      notesText,
		CreatedAt:  now,
	}
}

// ScorePercent computes round(100 * correct / total). Grading is
// unreachable for zero-question quizzes, but guard anyway.
func ScorePercent(grade grader.Result) float64 {
	if grade.Total == 0 {
		return 0
	}
	return math.Round(100 * float64(grade.CorrectCount) / float64(grade.Total))
}

// Summarize reduces records to summary statistics. An empty history yields
// a zero summary, never a division by zero.
func Summarize(records []store.ProgressRecord) Summary {
	s := Summary{
		TotalQuizzes:    len(records),
		TopicsBySubject: make(map[string]int),
	}
	if len(records) == 0 {
		return s
	}

	topics := make(map[string]struct{})
	var sum float64
	for _, rec := range records {
		topics[rec.Topic] = struct{}{}
		sum += rec.Score

		subject := rec.Subject
		if subject == "" {
			subject = Classify(rec.Topic)
		}
		s.TopicsBySubject[subject]++
	}

	s.CompletedTopics = len(topics)
	// One decimal, matching the server's stats endpoint.
	s.AverageScore = math.Round(sum/float64(len(records))*10) / 10
	return s
}

// Band groups a score percentage for presentation (color, verdict line).
// Derivation lives here so screens stay free of threshold arithmetic.
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

// ScoreBand classifies a 0..100 score percentage.
func ScoreBand(percent float64) Band {
	switch {
	case percent >= 80:
		return BandHigh
	case percent >= 50:
		return BandMid
	default:
		return BandLow
	}
}
