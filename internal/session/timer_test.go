package session

import (
	"testing"
	"time"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{9 * time.Second, "00:09"},
		{95 * time.Second, "01:35"},
		{10 * time.Minute, "10:00"},
		{61 * time.Minute, "61:00"}, // minutes keep counting past the hour
		{-5 * time.Second, "00:00"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestElapsedAt_RecomputedFromStart(t *testing.T) {
	start := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	timing := Timing{StartedAt: start}

	// The value depends only on now-start, not on how many ticks fired.
	if got := timing.ElapsedAt(start.Add(3 * time.Second)); got != 3*time.Second {
		t.Errorf("ElapsedAt = %v, want 3s", got)
	}
	if got := timing.ElapsedAt(start.Add(10 * time.Minute)); got != 10*time.Minute {
		t.Errorf("ElapsedAt = %v, want 10m", got)
	}

	var zero Timing
	if got := zero.ElapsedAt(start); got != 0 {
		t.Errorf("zero timing ElapsedAt = %v, want 0", got)
	}
}

func TestDisplayAt(t *testing.T) {
	start := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	timing := Timing{StartedAt: start, Elapsed: 42 * time.Second}

	if got := timing.DisplayAt(start.Add(5*time.Second), false); got != "00:05" {
		t.Errorf("running display = %q, want 00:05", got)
	}
	if got := timing.DisplayAt(start.Add(5*time.Second), true); got != "00:42" {
		t.Errorf("frozen display = %q, want 00:42", got)
	}
}
