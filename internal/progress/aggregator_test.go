package progress

import (
	"testing"
	"time"

	"github.com/mjard/sciquiz/internal/grader"
	"github.com/mjard/sciquiz/internal/session"
	"github.com/mjard/sciquiz/internal/store"
)

func TestScorePercent(t *testing.T) {
	tests := []struct {
		correct, total int
		want           float64
	}{
		{4, 5, 80},
		{5, 5, 100},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0}, // unreachable in the flow, but must not divide by zero
	}

	for _, tt := range tests {
		g := grader.Result{CorrectCount: tt.correct, Total: tt.total}
		if got := ScorePercent(g); got != tt.want {
			t.Errorf("ScorePercent(%d/%d) = %v, want %v", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestToRecord(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	timing := session.Timing{Elapsed: 135 * time.Second, UsedNotes: true}
	grade := grader.Result{CorrectCount: 4, Total: 5}

	rec := ToRecord("Describe the main steps of PCR", grade, timing, "medium", "my notes", "biology", now)

	if rec.Score != 80 {
		t.Errorf("Score = %v, want 80", rec.Score)
	}
	if rec.Date != "2026-08-30" {
		t.Errorf("Date = %q", rec.Date)
	}
	if rec.TimeSpent != "02:15" {
		t.Errorf("TimeSpent = %q, want 02:15", rec.TimeSpent)
	}
	if !rec.UsedNotes {
		t.Error("UsedNotes must carry through")
	}
	if rec.Subject != "biology" {
		t.Errorf("Subject = %q", rec.Subject)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalQuizzes != 0 || s.CompletedTopics != 0 {
		t.Errorf("empty summary = %+v", s)
	}
	if s.AverageScore != 0 {
		t.Errorf("AverageScore = %v, want 0 without division by zero", s.AverageScore)
	}
}

func TestSummarize(t *testing.T) {
	recs := []store.ProgressRecord{
		{Topic: "PCR steps", Score: 80, Subject: "biology"},
		{Topic: "PCR steps", Score: 100, Subject: "biology"},
		{Topic: "Newton's laws", Score: 45, Subject: "physics"},
		{Topic: "Something fuzzy", Score: 60}, // no stored subject: classified
	}

	s := Summarize(recs)
	if s.TotalQuizzes != 4 {
		t.Errorf("TotalQuizzes = %d", s.TotalQuizzes)
	}
	if s.CompletedTopics != 3 {
		t.Errorf("CompletedTopics = %d, want distinct topics", s.CompletedTopics)
	}
	if s.AverageScore != 71.3 {
		t.Errorf("AverageScore = %v, want 71.3", s.AverageScore)
	}
	want := map[string]int{"biology": 2, "physics": 1, "other": 1}
	for k, v := range want {
		if s.TopicsBySubject[k] != v {
			t.Errorf("TopicsBySubject[%s] = %d, want %d", k, s.TopicsBySubject[k], v)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"Describe the main steps of PCR", SubjectBiology},
		{"Balance a chemical reaction", SubjectChemistry},
		{"Newton's laws of motion", SubjectPhysics},
		{"How the heart pumps blood", SubjectMedicine},
		{"The French Revolution", SubjectOther},
		{"DNA Replication", SubjectBiology}, // case-insensitive
	}

	for _, tt := range tests {
		if got := Classify(tt.topic); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

func TestScoreBand(t *testing.T) {
	tests := []struct {
		percent float64
		want    Band
	}{
		{100, BandHigh},
		{80, BandHigh},
		{79, BandMid},
		{50, BandMid},
		{49, BandLow},
		{0, BandLow},
	}

	for _, tt := range tests {
		if got := ScoreBand(tt.percent); got != tt.want {
			t.Errorf("ScoreBand(%v) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}
