package session

import (
	"fmt"
	"time"
)

// Timing tracks wall-clock time and the notes penalty for one attempt.
//
// StartedAt is set exactly once per attempt (quiz start or retake).
// Elapsed is only ever recomputed from now-StartedAt, never accumulated
// from tick deltas, which would drift.
type Timing struct {
	StartedAt time.Time
	Elapsed   time.Duration
	UsedNotes bool
}

// ElapsedAt returns the elapsed duration as of now.
func (t Timing) ElapsedAt(now time.Time) time.Duration {
	if t.StartedAt.IsZero() {
		return 0
	}
	return now.Sub(t.StartedAt)
}

// FormatElapsed renders a duration as zero-padded MM:SS.
// Durations of an hour or more keep counting minutes past 59.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// DisplayAt renders the attempt's running clock as of now. After grading
// the frozen Elapsed value is shown instead.
func (t Timing) DisplayAt(now time.Time, frozen bool) string {
	if frozen {
		return FormatElapsed(t.Elapsed)
	}
	return FormatElapsed(t.ElapsedAt(now))
}
