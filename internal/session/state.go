package session

import (
	"github.com/mjard/sciquiz/internal/content"
	"github.com/mjard/sciquiz/internal/grader"
)

// Phase is the main screen position of the study flow.
type Phase int

const (
	PhaseHome Phase = iota
	PhaseTheoryLoading
	PhaseTheoryShown
	PhaseQuizLoading
	PhaseQuizActive
	PhaseQuizGraded
)

// String returns the phase name for diagnostics.
func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "home"
	case PhaseTheoryLoading:
		return "theory-loading"
	case PhaseTheoryShown:
		return "theory"
	case PhaseQuizLoading:
		return "quiz-loading"
	case PhaseQuizActive:
		return "quiz"
	case PhaseQuizGraded:
		return "graded"
	default:
		return "unknown"
	}
}

// Modal identifies the overlay shown on top of the current phase.
// Modals never discard the underlying state.
type Modal int

const (
	ModalNone Modal = iota

	// ModalNotesConfirm asks the user to confirm opening notes mid-quiz,
	// since doing so irreversibly marks the attempt as notes-assisted.
	ModalNotesConfirm

	ModalNotes
	ModalResults
)

// State is the session controller's full state: one value, one writer.
// The current attempt's quiz, answers, grade and timing are owned here
// exclusively and are discarded (not archived) on exit or retake.
type State struct {
	Phase Phase

	// Objective is the trimmed learning objective driving the session.
	Objective  string
	Difficulty content.Difficulty

	// Theory is the last successfully fetched passage. A failed fetch
	// never touches it.
	Theory *content.Theory

	// Quiz and the per-question answer slots for the current attempt.
	// Answers always has one slot per question; "" means unanswered.
	Quiz    *content.QuizSet
	Answers []string

	// Grade is nil until a successful submit; frozen afterwards.
	Grade *grader.Result

	// Key is the corrected answer key Grade was computed against.
	Key []content.Question

	Timing Timing

	Modal Modal

	// ErrMsg is a dismissable banner shown alongside the stable screen.
	ErrMsg string

	// ValidationMsg is an inline message that never changes screen.
	ValidationMsg string

	// fetchSeq is a monotonic token identifying the newest content fetch.
	// Results carrying an older token are stale and must be discarded.
	fetchSeq int
}

// New creates a controller state at the home screen.
func New() *State {
	return &State{
		Phase:      PhaseHome,
		Difficulty: content.DifficultyMedium,
	}
}

// Loading reports whether a content fetch is in flight.
func (s *State) Loading() bool {
	return s.Phase == PhaseTheoryLoading || s.Phase == PhaseQuizLoading
}

// QuizEmpty reports whether the active quiz came back with zero questions
// (terminal empty-state sub-screen; grading is unreachable).
func (s *State) QuizEmpty() bool {
	return s.Quiz != nil && len(s.Quiz.Questions) == 0
}

// Graded reports whether the current attempt has been graded.
func (s *State) Graded() bool {
	return s.Grade != nil
}

// Unanswered returns the count of empty answer slots.
func (s *State) Unanswered() int {
	n := 0
	for _, a := range s.Answers {
		if a == "" {
			n++
		}
	}
	return n
}

// DismissError clears the error banner.
func (s *State) DismissError() {
	s.ErrMsg = ""
}
