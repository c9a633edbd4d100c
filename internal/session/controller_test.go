package session

import (
	"errors"
	"testing"
	"time"

	"github.com/mjard/sciquiz/internal/content"
	"github.com/mjard/sciquiz/internal/grader"
)

var t0 = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func testQuiz() *content.QuizSet {
	return &content.QuizSet{
		Objective:  "Explain osmosis",
		Difficulty: content.DifficultyMedium,
		Questions: []content.Question{
			{Text: "Q1", Options: []string{"A. yes", "B. no"}, CorrectAnswer: "A. yes"},
			{Text: "Q2", Options: []string{"A. up", "B. down"}, CorrectAnswer: "B. down"},
		},
	}
}

// activeState drives a fresh state through to an active quiz.
func activeState(t *testing.T) *State {
	t.Helper()
	s := New()
	token, ok := s.SubmitObjective("Explain osmosis")
	if !ok {
		t.Fatal("SubmitObjective failed")
	}
	s.TheoryLoaded(token, &content.Theory{Body: "Osmosis is..."}, nil)
	token, ok = s.StartQuiz(t0)
	if !ok {
		t.Fatal("StartQuiz failed")
	}
	s.QuizLoaded(token, testQuiz(), nil, t0)
	if s.Phase != PhaseQuizActive {
		t.Fatalf("Phase = %v, want quiz active", s.Phase)
	}
	return s
}

func TestSubmitObjective_EmptyFailsValidation(t *testing.T) {
	s := New()
	if _, ok := s.SubmitObjective("   "); ok {
		t.Fatal("expected guard failure on blank objective")
	}
	if s.Phase != PhaseHome {
		t.Errorf("Phase = %v, want home", s.Phase)
	}
	if s.ValidationMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestSubmitObjective_TrimsAndLoads(t *testing.T) {
	s := New()
	token, ok := s.SubmitObjective("  Explain osmosis  ")
	if !ok {
		t.Fatal("expected guard to pass")
	}
	if s.Objective != "Explain osmosis" {
		t.Errorf("Objective = %q, want trimmed", s.Objective)
	}
	if s.Phase != PhaseTheoryLoading {
		t.Errorf("Phase = %v, want theory loading", s.Phase)
	}
	if token == 0 {
		t.Error("expected a non-zero fetch token")
	}
}

func TestTheoryLoaded_FailureRollsBackToHome(t *testing.T) {
	s := New()
	s.Theory = &content.Theory{Body: "previous"}
	s.Phase = PhaseHome

	token, _ := s.SubmitObjective("Explain osmosis")
	s.TheoryLoaded(token, nil, &content.ErrNetwork{Err: errors.New("refused")})

	if s.Phase != PhaseHome {
		t.Errorf("Phase = %v, want home after failure", s.Phase)
	}
	if s.ErrMsg == "" {
		t.Error("expected error banner")
	}
	if s.Theory == nil || s.Theory.Body != "previous" {
		t.Error("previous theory must stay untouched on failure")
	}
}

func TestTheoryLoaded_StaleTokenDiscarded(t *testing.T) {
	s := New()
	stale, _ := s.SubmitObjective("Explain osmosis")

	// User backs out and submits a new objective before the first
	// response lands.
	s.Phase = PhaseHome
	fresh, _ := s.SubmitObjective("Describe the main steps of PCR")

	s.TheoryLoaded(stale, &content.Theory{Body: "osmosis text"}, nil)
	if s.Theory != nil {
		t.Error("stale theory result must be discarded")
	}

	s.TheoryLoaded(fresh, &content.Theory{Body: "pcr text"}, nil)
	if s.Theory == nil || s.Theory.Body != "pcr text" {
		t.Error("fresh result should apply")
	}
}

func TestQuizLoaded_FailureReturnsToTheory(t *testing.T) {
	s := New()
	token, _ := s.SubmitObjective("Explain osmosis")
	s.TheoryLoaded(token, &content.Theory{Body: "t"}, nil)
	token, _ = s.StartQuiz(t0)
	s.QuizLoaded(token, nil, &content.ErrServer{Status: 500}, t0)

	if s.Phase != PhaseTheoryShown {
		t.Errorf("Phase = %v, want theory after quiz failure", s.Phase)
	}
	if s.ErrMsg == "" {
		t.Error("expected error banner")
	}
	if s.Quiz != nil {
		t.Error("no quiz state should exist after failure")
	}
}

func TestQuizLoaded_EmptyResultIsNotAnError(t *testing.T) {
	s := New()
	token, _ := s.SubmitObjective("Explain osmosis")
	s.TheoryLoaded(token, &content.Theory{Body: "t"}, nil)
	token, _ = s.StartQuiz(t0)
	s.QuizLoaded(token, nil, content.ErrEmptyResult, t0)

	if s.Phase != PhaseQuizActive {
		t.Errorf("Phase = %v, want quiz active (empty-state screen)", s.Phase)
	}
	if !s.QuizEmpty() {
		t.Error("QuizEmpty should report true")
	}
	if s.ErrMsg != "" {
		t.Errorf("empty quiz must not set an error banner, got %q", s.ErrMsg)
	}
	if s.SubmitAnswers(grader.NoCorrections{}, t0) {
		t.Error("grading must be unreachable with zero questions")
	}
	if s.ShouldTick() {
		t.Error("no timer tick for an empty quiz")
	}
}

func TestSelectAnswer_OverwritesOnlyThatSlot(t *testing.T) {
	s := activeState(t)
	s.SelectAnswer(0, "A. yes")
	s.SelectAnswer(0, "B. no")
	s.SelectAnswer(1, "B. down")

	if s.Answers[0] != "B. no" {
		t.Errorf("Answers[0] = %q, want overwrite", s.Answers[0])
	}
	if s.Answers[1] != "B. down" {
		t.Errorf("Answers[1] = %q", s.Answers[1])
	}

	// Out of range is a no-op.
	s.SelectAnswer(5, "x")
	s.SelectAnswer(-1, "x")
}

func TestSubmit_UnansweredGuard(t *testing.T) {
	s := activeState(t)
	s.SelectAnswer(0, "A. yes")

	if s.SubmitAnswers(grader.NoCorrections{}, t0) {
		t.Fatal("submit must fail with an unanswered slot")
	}
	if s.Phase != PhaseQuizActive {
		t.Errorf("Phase = %v, want quiz active", s.Phase)
	}
	if s.ValidationMsg != "1 question still unanswered." {
		t.Errorf("ValidationMsg = %q", s.ValidationMsg)
	}
	if s.Answers[0] != "A. yes" || s.Answers[1] != "" {
		t.Error("failed submit must leave answers unchanged")
	}
}

func TestSubmit_GradesAndFreezes(t *testing.T) {
	s := activeState(t)
	s.SelectAnswer(0, "A. yes")
	s.SelectAnswer(1, "A. up")

	now := t0.Add(95 * time.Second)
	if !s.SubmitAnswers(grader.NoCorrections{}, now) {
		t.Fatal("submit should succeed with all slots filled")
	}

	if s.Phase != PhaseQuizGraded {
		t.Errorf("Phase = %v, want graded", s.Phase)
	}
	if s.Grade.Total != 2 || s.Grade.CorrectCount != 1 {
		t.Errorf("Grade = %+v, want 1/2", s.Grade)
	}
	if s.Modal != ModalResults {
		t.Error("results modal should open on grading")
	}
	if got := FormatElapsed(s.Timing.Elapsed); got != "01:35" {
		t.Errorf("elapsed = %s, want 01:35", got)
	}

	// A delayed select after grading is a no-op.
	s.SelectAnswer(1, "B. down")
	if s.Answers[1] != "A. up" {
		t.Error("answers are frozen after grading")
	}
}

func TestRetake_ResetsAttempt(t *testing.T) {
	s := activeState(t)
	s.SelectAnswer(0, "A. yes")
	s.SelectAnswer(1, "B. down")
	s.RequestNotes()
	s.ConfirmNotes()
	s.CloseModal()
	s.SubmitAnswers(grader.NoCorrections{}, t0.Add(time.Minute))

	later := t0.Add(2 * time.Minute)
	if !s.Retake(later) {
		t.Fatal("retake should succeed from graded")
	}

	if s.Phase != PhaseQuizActive {
		t.Errorf("Phase = %v, want quiz active", s.Phase)
	}
	for i, a := range s.Answers {
		if a != "" {
			t.Errorf("Answers[%d] = %q, want cleared", i, a)
		}
	}
	if s.Grade != nil {
		t.Error("grade must be discarded")
	}
	if s.Timing.UsedNotes {
		t.Error("usedNotes must reset on retake")
	}
	if !s.Timing.StartedAt.After(t0) {
		t.Error("new attempt must start strictly after the previous one")
	}
	if s.Modal != ModalNone {
		t.Error("modal must close on retake")
	}
}

func TestExitAndBack(t *testing.T) {
	s := activeState(t)
	if !s.ExitQuiz() {
		t.Fatal("exit should succeed")
	}
	if s.Phase != PhaseTheoryShown {
		t.Errorf("Phase = %v, want theory", s.Phase)
	}
	if s.Quiz != nil || s.Answers != nil || s.Grade != nil {
		t.Error("quiz state must be discarded on exit")
	}

	if !s.Back() {
		t.Fatal("back from theory should succeed")
	}
	if s.Phase != PhaseHome {
		t.Errorf("Phase = %v, want home", s.Phase)
	}
	if s.Theory != nil {
		t.Error("theory must be cleared when leaving the theory screen")
	}

	if s.Back() {
		t.Error("back from home is a no-op")
	}
}

func TestViewNotes_RequiresConfirmation(t *testing.T) {
	s := activeState(t)

	if !s.RequestNotes() {
		t.Fatal("notes request should open the confirmation")
	}
	if s.Timing.UsedNotes {
		t.Error("the flag must not be set before confirmation")
	}

	s.CancelNotes()
	if s.Timing.UsedNotes || s.Modal != ModalNone {
		t.Error("cancel must leave the attempt unmarked")
	}

	s.RequestNotes()
	if !s.ConfirmNotes() {
		t.Fatal("confirm should open the notes modal")
	}
	if !s.Timing.UsedNotes {
		t.Error("confirming must set usedNotes")
	}
	if s.Modal != ModalNotes {
		t.Errorf("Modal = %v, want notes", s.Modal)
	}

	// The flag survives closing the modal and further navigation within
	// the attempt.
	s.CloseModal()
	s.SelectAnswer(0, "A. yes")
	if !s.Timing.UsedNotes {
		t.Error("usedNotes is irreversible for the attempt")
	}
}

func TestViewNotes_UnavailableAfterGrading(t *testing.T) {
	s := activeState(t)
	s.SelectAnswer(0, "A. yes")
	s.SelectAnswer(1, "B. down")
	s.SubmitAnswers(grader.NoCorrections{}, t0)
	s.CloseModal()

	if s.RequestNotes() {
		t.Error("notes must not be offered on a graded attempt")
	}
}

func TestShouldTick(t *testing.T) {
	s := New()
	if s.ShouldTick() {
		t.Error("no tick at home")
	}

	s = activeState(t)
	if !s.ShouldTick() {
		t.Error("tick during active quiz")
	}

	s.SelectAnswer(0, "A. yes")
	s.SelectAnswer(1, "B. down")
	s.SubmitAnswers(grader.NoCorrections{}, t0)
	if s.ShouldTick() {
		t.Error("tick must stop once graded")
	}
}
