package progress

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mjard/sciquiz/internal/content"
	"github.com/mjard/sciquiz/internal/store"
)

func testRepo(t *testing.T) store.ProgressRepo {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.ProgressRepo()
}

func TestService_SaveSurvivesRemoteFailure(t *testing.T) {
	repo := testRepo(t)
	client := &content.MockClient{SubmitErrs: []error{&content.ErrServer{Status: 500}}}
	svc := NewService(repo, client)
	ctx := context.Background()

	err := svc.Save(ctx, store.ProgressRecord{
		Topic: "Explain osmosis", Date: "2026-08-30", Score: 60,
		Difficulty: "easy", Subject: "biology",
	})
	if err != nil {
		t.Fatalf("Save must not surface a remote failure: %v", err)
	}

	if len(client.Submissions) != 1 {
		t.Errorf("expected one submission attempt, got %d", len(client.Submissions))
	}
	recs, _ := repo.All(ctx)
	if len(recs) != 1 {
		t.Errorf("local record count = %d, want 1", len(recs))
	}
}

func TestService_HistoryFallsBackToLocal(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	if err := repo.Append(ctx, &store.ProgressRecord{
		Topic: "PCR", Date: "2026-08-29", Score: 80, Difficulty: "medium", Subject: "biology",
	}); err != nil {
		t.Fatal(err)
	}

	// Remote fails: empty mock queue yields network errors.
	svc := NewService(repo, &content.MockClient{})
	recs := svc.History(ctx)
	if len(recs) != 1 || recs[0].Topic != "PCR" {
		t.Errorf("fallback history = %+v", recs)
	}
}

func TestService_HistoryPrefersRemote(t *testing.T) {
	repo := testRepo(t)
	client := &content.MockClient{
		HistoryResults: []content.MockResult{{History: []content.HistoryItem{
			{Topic: "Newton's laws of motion", Date: "2026-08-28", Score: 90, Difficulty: "hard"},
		}}},
	}
	svc := NewService(repo, client)

	recs := svc.History(context.Background())
	if len(recs) != 1 || recs[0].Topic != "Newton's laws of motion" {
		t.Fatalf("remote history = %+v", recs)
	}
	if recs[0].Subject != SubjectPhysics {
		t.Errorf("remote items get classified locally, got %q", recs[0].Subject)
	}
}

func TestService_StatsFallsBackToLocalSummarize(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	repo.Append(ctx, &store.ProgressRecord{Topic: "a", Date: "2026-08-29", Score: 40, Difficulty: "easy", Subject: "other"})
	repo.Append(ctx, &store.ProgressRecord{Topic: "b", Date: "2026-08-30", Score: 60, Difficulty: "easy", Subject: "other"})

	svc := NewService(repo, &content.MockClient{})
	s := svc.Stats(ctx)
	if s.TotalQuizzes != 2 || s.AverageScore != 50 {
		t.Errorf("local stats = %+v", s)
	}
}
