package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mjard/sciquiz/internal/content"
	"github.com/mjard/sciquiz/internal/grader"
)

// Transition functions. Each guards itself: calling one in the wrong phase
// is a no-op, so delayed or duplicated events cannot corrupt state.

// SubmitObjective validates and stores the objective and moves to theory
// loading. Returns the fetch token to tag the async result with, and false
// if the guard failed (empty objective or wrong phase).
func (s *State) SubmitObjective(objective string) (int, bool) {
	if s.Phase != PhaseHome {
		return 0, false
	}
	objective = strings.TrimSpace(objective)
	if objective == "" {
		s.ValidationMsg = "Enter a learning objective first."
		return 0, false
	}

	s.Objective = objective
	s.ValidationMsg = ""
	s.ErrMsg = ""
	s.Phase = PhaseTheoryLoading
	s.fetchSeq++
	return s.fetchSeq, true
}

// TheoryLoaded applies the result of a theory fetch. Stale results (token
// mismatch or phase already changed) are discarded. On failure the
// controller returns to home with the error retained and the previous
// theory untouched; there is no automatic retry.
func (s *State) TheoryLoaded(token int, theory *content.Theory, err error) {
	if s.Phase != PhaseTheoryLoading || token != s.fetchSeq {
		return
	}
	if err != nil {
		s.Phase = PhaseHome
		s.ErrMsg = fetchErrMsg("theory", err)
		return
	}
	s.Theory = theory
	s.Phase = PhaseTheoryShown
}

// StartQuiz moves from the theory screen to quiz loading and records the
// attempt start instant. Returns the fetch token.
func (s *State) StartQuiz(now time.Time) (int, bool) {
	if s.Phase != PhaseTheoryShown {
		return 0, false
	}
	s.ErrMsg = ""
	s.Phase = PhaseQuizLoading
	s.Timing = Timing{StartedAt: now}
	s.fetchSeq++
	return s.fetchSeq, true
}

// QuizLoaded applies the result of a quiz fetch. An ErrEmptyResult is not
// an error: it yields the explicit empty-quiz screen. A real failure rolls
// back to the theory screen with the error retained.
func (s *State) QuizLoaded(token int, quiz *content.QuizSet, err error, now time.Time) {
	if s.Phase != PhaseQuizLoading || token != s.fetchSeq {
		return
	}

	if errors.Is(err, content.ErrEmptyResult) {
		s.Quiz = &content.QuizSet{Objective: s.Objective, Difficulty: s.Difficulty}
		s.Answers = nil
		s.Grade = nil
		s.Key = nil
		s.Phase = PhaseQuizActive
		return
	}
	if err != nil {
		s.Phase = PhaseTheoryShown
		s.ErrMsg = fetchErrMsg("quiz", err)
		return
	}

	s.Quiz = quiz
	s.Answers = make([]string, len(quiz.Questions))
	s.Grade = nil
	s.Key = nil
	s.Timing = Timing{StartedAt: now}
	s.Phase = PhaseQuizActive
}

// SelectAnswer overwrites slot i with the chosen option. A no-op once the
// attempt is graded; this is a guard, not a UI affordance, so a late or
// duplicated event after grading cannot mutate a frozen attempt.
func (s *State) SelectAnswer(i int, choice string) {
	if s.Phase != PhaseQuizActive || s.Graded() {
		return
	}
	if i < 0 || i >= len(s.Answers) {
		return
	}
	s.Answers[i] = choice
	s.ValidationMsg = ""
}

// SubmitAnswers grades the attempt. If any slot is unanswered the guard
// fails, the unanswered count is reported inline, and nothing changes.
// On success the grade and corrected key freeze, elapsed time is fixed
// from now-startedAt, and the results modal opens. The caller is
// responsible for building and submitting the progress record.
func (s *State) SubmitAnswers(policy grader.CorrectionPolicy, now time.Time) bool {
	if s.Phase != PhaseQuizActive || s.Graded() || s.Quiz == nil || len(s.Quiz.Questions) == 0 {
		return false
	}
	if n := s.Unanswered(); n > 0 {
		plural := "s"
		if n == 1 {
			plural = ""
		}
		s.ValidationMsg = fmt.Sprintf("%d question%s still unanswered.", n, plural)
		return false
	}

	res := grader.Grade(s.Quiz, s.Answers, policy)
	s.Grade = &res
	s.Key = grader.CorrectedKey(s.Quiz, policy)
	s.Timing.Elapsed = now.Sub(s.Timing.StartedAt)
	s.ValidationMsg = ""
	s.Phase = PhaseQuizGraded
	s.Modal = ModalResults
	return true
}

// Retake restarts the current quiz: same questions, every slot cleared,
// fresh timing, notes flag reset, modal closed.
func (s *State) Retake(now time.Time) bool {
	if s.Phase != PhaseQuizGraded {
		return false
	}
	s.Answers = make([]string, len(s.Quiz.Questions))
	s.Grade = nil
	s.Key = nil
	s.Timing = Timing{StartedAt: now}
	s.Modal = ModalNone
	s.ValidationMsg = ""
	s.Phase = PhaseQuizActive
	return true
}

// ExitQuiz discards the current attempt entirely and returns to theory.
func (s *State) ExitQuiz() bool {
	if s.Phase != PhaseQuizActive && s.Phase != PhaseQuizGraded {
		return false
	}
	s.Quiz = nil
	s.Answers = nil
	s.Grade = nil
	s.Key = nil
	s.Timing = Timing{}
	s.Modal = ModalNone
	s.ValidationMsg = ""
	s.Phase = PhaseTheoryShown
	return true
}

// Back steps one screen backwards in the linear order
// home < theory < quiz. Quiz state is discarded like ExitQuiz; leaving
// the theory screen clears the theory. Returns false at home.
func (s *State) Back() bool {
	switch s.Phase {
	case PhaseQuizActive, PhaseQuizGraded:
		return s.ExitQuiz()
	case PhaseTheoryShown:
		s.Theory = nil
		s.ErrMsg = ""
		s.Phase = PhaseHome
		return true
	default:
		return false
	}
}

// RequestNotes opens the used-notes confirmation. Viewing notes is only
// offered while the quiz is active and ungraded, because it permanently
// marks the attempt.
func (s *State) RequestNotes() bool {
	if s.Phase != PhaseQuizActive || s.Graded() || s.QuizEmpty() || s.Modal != ModalNone {
		return false
	}
	s.Modal = ModalNotesConfirm
	return true
}

// ConfirmNotes acknowledges the penalty and opens the notes modal.
// UsedNotes stays true for the remainder of the attempt.
func (s *State) ConfirmNotes() bool {
	if s.Modal != ModalNotesConfirm {
		return false
	}
	s.Timing.UsedNotes = true
	s.Modal = ModalNotes
	return true
}

// CancelNotes dismisses the confirmation without marking the attempt.
func (s *State) CancelNotes() {
	if s.Modal == ModalNotesConfirm {
		s.Modal = ModalNone
	}
}

// CloseModal closes the notes or results overlay, leaving the underlying
// phase untouched.
func (s *State) CloseModal() {
	if s.Modal == ModalNotes || s.Modal == ModalResults {
		s.Modal = ModalNone
	}
}

// ShouldTick reports whether the one-second display tick should be
// scheduled: only during an active, non-empty, ungraded attempt.
func (s *State) ShouldTick() bool {
	return s.Phase == PhaseQuizActive && !s.Graded() && !s.QuizEmpty()
}

// fetchErrMsg renders a failure outcome as a banner message.
func fetchErrMsg(what string, err error) string {
	var netErr *content.ErrNetwork
	var srvErr *content.ErrServer
	var malformed *content.ErrMalformed
	switch {
	case errors.As(err, &netErr):
		return fmt.Sprintf("Could not reach the %s service. Check the server and try again.", what)
	case errors.As(err, &srvErr):
		return fmt.Sprintf("The %s service failed (status %d). Try again.", what, srvErr.Status)
	case errors.As(err, &malformed):
		return fmt.Sprintf("The %s service sent an unreadable response.", what)
	default:
		return fmt.Sprintf("Failed to load %s: %v", what, err)
	}
}
