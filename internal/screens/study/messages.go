package study

import (
	"time"

	"github.com/mjard/sciquiz/internal/content"
	"github.com/mjard/sciquiz/internal/store"
)

// theoryReadyMsg is sent when a theory fetch completes.
type theoryReadyMsg struct {
	Token  int
	Theory *content.Theory
	Err    error
}

// quizReadyMsg is sent when a quiz fetch completes.
type quizReadyMsg struct {
	Token int
	Quiz  *content.QuizSet
	Err   error
}

// timerTickMsg updates the elapsed-time display once a second. Seq ties
// the tick to the chain that scheduled it so a stale chain dies silently.
type timerTickMsg struct {
	Seq int
	At  time.Time
}

// notesLoadedMsg carries the saved notes for the active topic.
type notesLoadedMsg struct {
	Notes []store.Note
	Err   error
}

// progressSavedMsg confirms the graded attempt was recorded.
type progressSavedMsg struct {
	Err error
}
