package study

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mjard/sciquiz/internal/content"
	"github.com/mjard/sciquiz/internal/grader"
	"github.com/mjard/sciquiz/internal/notes"
	"github.com/mjard/sciquiz/internal/progress"
	"github.com/mjard/sciquiz/internal/router"
	"github.com/mjard/sciquiz/internal/screen"
	sess "github.com/mjard/sciquiz/internal/session"
	"github.com/mjard/sciquiz/internal/store"
	"github.com/mjard/sciquiz/internal/suggest"
	"github.com/mjard/sciquiz/internal/ui/components"
	"github.com/mjard/sciquiz/internal/ui/layout"
)

// Focus zones on the objective entry screen.
const (
	focusInput = iota
	focusDifficulty
	focusSuggest
)

// StudyScreen drives the full objective-to-grade flow. All transition
// logic lives in the session state; this screen translates key and
// fetch events into transitions and renders whatever phase results.
type StudyScreen struct {
	state       *sess.State
	client      content.Client
	progressSvc *progress.Service
	notesSvc    *notes.Service
	corrections grader.CorrectionPolicy

	input      components.TextInput
	focus      int
	catIdx     int
	sugIdx     int
	categories []suggest.Category

	// Quiz navigation. optIdx is the option cursor for the current
	// question, rebuilt whenever qIdx moves.
	qIdx   int
	optIdx int

	// tickSeq identifies the live tick chain; ticks from an older chain
	// are dropped so a retake cannot double the tick rate.
	tickSeq int

	topicNotes []store.Note
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates the study screen with injected dependencies.
func New(client content.Client, progressSvc *progress.Service, notesSvc *notes.Service) *StudyScreen {
	return &StudyScreen{
		state:       sess.New(),
		client:      client,
		progressSvc: progressSvc,
		notesSvc:    notesSvc,
		corrections: grader.KnownServerCorrections(),
		input:       components.NewTextInput("e.g. Explain the phases of mitosis", 120),
		categories:  suggest.Categories(),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *StudyScreen) Title() string {
	switch s.state.Phase {
	case sess.PhaseTheoryLoading, sess.PhaseTheoryShown:
		return "Theory"
	case sess.PhaseQuizLoading, sess.PhaseQuizActive, sess.PhaseQuizGraded:
		return "Quiz"
	default:
		return "New Session"
	}
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch s.state.Modal {
	case sess.ModalNotesConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Open notes"},
			{Key: "N", Description: "Keep going"},
		}
	case sess.ModalNotes, sess.ModalResults:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Close"},
		}
	}

	switch s.state.Phase {
	case sess.PhaseHome:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Menu"},
		}
	case sess.PhaseTheoryShown:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Take quiz"},
			{Key: "Esc", Description: "Back"},
		}
		if s.state.Theory != nil && len(s.state.Theory.RelatedTopics) > 0 {
			hints = append(hints, layout.KeyHint{Key: "1-9", Description: "Related topic"})
		}
		return hints
	case sess.PhaseQuizActive:
		if s.state.QuizEmpty() {
			return []layout.KeyHint{{Key: "Esc", Description: "Back to theory"}}
		}
		return []layout.KeyHint{
			{Key: "←/→", Description: "Question"},
			{Key: "Enter", Description: "Pick"},
			{Key: "S", Description: "Submit"},
			{Key: "N", Description: "Notes"},
			{Key: "Esc", Description: "Exit quiz"},
		}
	case sess.PhaseQuizGraded:
		return []layout.KeyHint{
			{Key: "←/→", Description: "Question"},
			{Key: "V", Description: "Results"},
			{Key: "R", Description: "Retake"},
			{Key: "Esc", Description: "Back to theory"},
		}
	default:
		return nil
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case theoryReadyMsg:
		s.state.TheoryLoaded(msg.Token, msg.Theory, msg.Err)
		return s, nil

	case quizReadyMsg:
		s.state.QuizLoaded(msg.Token, msg.Quiz, msg.Err, time.Now())
		if s.state.Phase == sess.PhaseQuizActive && !s.state.QuizEmpty() {
			s.qIdx = 0
			s.optIdx = 0
			s.tickSeq++
			return s, s.tickCmd()
		}
		return s, nil

	case timerTickMsg:
		if msg.Seq != s.tickSeq || !s.state.ShouldTick() {
			return s, nil
		}
		return s, s.tickCmd()

	case notesLoadedMsg:
		if msg.Err == nil {
			s.topicNotes = msg.Notes
		}
		return s, nil

	case progressSavedMsg:
		// Saving is best effort; the store logs its own failures.
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state.Phase == sess.PhaseHome && s.focus == focusInput {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.state.Modal != sess.ModalNone {
		return s.handleModalKey(key)
	}

	switch s.state.Phase {
	case sess.PhaseHome:
		return s.handleHomeKey(msg, key)
	case sess.PhaseTheoryLoading, sess.PhaseQuizLoading:
		// A fetch in flight is not cancellable; ignore input.
		return s, nil
	case sess.PhaseTheoryShown:
		return s.handleTheoryKey(key)
	case sess.PhaseQuizActive:
		return s.handleQuizKey(key)
	case sess.PhaseQuizGraded:
		return s.handleGradedKey(key)
	}

	return s, nil
}

func (s *StudyScreen) handleModalKey(key string) (screen.Screen, tea.Cmd) {
	switch s.state.Modal {
	case sess.ModalNotesConfirm:
		switch key {
		case "y", "Y", "enter":
			s.state.ConfirmNotes()
			return s, s.loadNotes()
		case "n", "N", "esc":
			s.state.CancelNotes()
		}
	case sess.ModalNotes, sess.ModalResults:
		switch key {
		case "esc", "enter", "q":
			s.state.CloseModal()
		}
	}
	return s, nil
}

func (s *StudyScreen) handleHomeKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	s.state.DismissError()

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "tab":
		s.focus = (s.focus + 1) % 3
		if s.focus == focusInput {
			return s, s.input.Focus()
		}
		s.input.Blur()
		return s, nil

	case "shift+tab":
		s.focus = (s.focus + 2) % 3
		if s.focus == focusInput {
			return s, s.input.Focus()
		}
		s.input.Blur()
		return s, nil
	}

	switch s.focus {
	case focusInput:
		if key == "enter" {
			return s.submitObjective(s.input.Value())
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case focusDifficulty:
		levels := content.Difficulties()
		cur := 0
		for i, d := range levels {
			if d == s.state.Difficulty {
				cur = i
			}
		}
		switch key {
		case "left", "h":
			if cur > 0 {
				s.state.Difficulty = levels[cur-1]
			}
		case "right", "l":
			if cur < len(levels)-1 {
				s.state.Difficulty = levels[cur+1]
			}
		case "enter":
			return s.submitObjective(s.input.Value())
		}

	case focusSuggest:
		cat := s.categories[s.catIdx]
		switch key {
		case "left", "h":
			if s.catIdx > 0 {
				s.catIdx--
				s.sugIdx = 0
			}
		case "right", "l":
			if s.catIdx < len(s.categories)-1 {
				s.catIdx++
				s.sugIdx = 0
			}
		case "up", "k":
			if s.sugIdx > 0 {
				s.sugIdx--
			}
		case "down", "j":
			if s.sugIdx < len(cat.Objectives)-1 {
				s.sugIdx++
			}
		case "enter":
			s.input.SetValue(cat.Objectives[s.sugIdx])
			return s.submitObjective(cat.Objectives[s.sugIdx])
		}
	}

	return s, nil
}

func (s *StudyScreen) submitObjective(objective string) (screen.Screen, tea.Cmd) {
	token, ok := s.state.SubmitObjective(objective)
	if !ok {
		return s, nil
	}
	return s, s.fetchTheory(token)
}

func (s *StudyScreen) handleTheoryKey(key string) (screen.Screen, tea.Cmd) {
	s.state.DismissError()

	switch key {
	case "enter", "t":
		token, ok := s.state.StartQuiz(time.Now())
		if !ok {
			return s, nil
		}
		return s, s.fetchQuiz(token)
	case "esc", "b":
		s.state.Back()
		s.focus = focusInput
		return s, s.input.Focus()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if s.state.Theory == nil {
			return s, nil
		}
		i := int(key[0] - '1')
		if i >= len(s.state.Theory.RelatedTopics) {
			return s, nil
		}
		topic := s.state.Theory.RelatedTopics[i]
		s.state.Back()
		s.input.SetValue(topic)
		return s.submitObjective(topic)
	}
	return s, nil
}

func (s *StudyScreen) handleQuizKey(key string) (screen.Screen, tea.Cmd) {
	if s.state.QuizEmpty() {
		if key == "esc" || key == "b" || key == "enter" {
			s.state.Back()
		}
		return s, nil
	}

	q := s.state.Quiz.Questions[s.qIdx]

	switch key {
	case "esc":
		s.state.Back()
		return s, nil

	case "left", "p":
		if s.qIdx > 0 {
			s.qIdx--
			s.syncOptCursor()
		}
	case "right", "tab":
		if s.qIdx < len(s.state.Quiz.Questions)-1 {
			s.qIdx++
			s.syncOptCursor()
		}
	case "up", "k":
		if s.optIdx > 0 {
			s.optIdx--
		}
	case "down", "j":
		if s.optIdx < len(q.Options)-1 {
			s.optIdx++
		}
	case "enter", " ", "space":
		s.state.SelectAnswer(s.qIdx, q.Options[s.optIdx])
		// Convenience: move on to the next unanswered question.
		if next := s.nextUnanswered(); next >= 0 {
			s.qIdx = next
			s.syncOptCursor()
		}
	case "1", "2", "3", "4", "5", "6":
		i := int(key[0] - '1')
		if i < len(q.Options) {
			s.optIdx = i
			s.state.SelectAnswer(s.qIdx, q.Options[i])
			if next := s.nextUnanswered(); next >= 0 {
				s.qIdx = next
				s.syncOptCursor()
			}
		}
	case "n":
		s.state.RequestNotes()
	case "s":
		return s.submitAnswers()
	}

	return s, nil
}

func (s *StudyScreen) handleGradedKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "left", "p":
		if s.qIdx > 0 {
			s.qIdx--
		}
	case "right", "tab":
		if s.qIdx < len(s.state.Quiz.Questions)-1 {
			s.qIdx++
		}
	case "v", "enter":
		s.state.Modal = sess.ModalResults
	case "r":
		if s.state.Retake(time.Now()) {
			s.qIdx = 0
			s.optIdx = 0
			s.tickSeq++
			return s, s.tickCmd()
		}
	case "esc", "b":
		s.state.Back()
	}
	return s, nil
}

// submitAnswers grades the attempt and, when the guard passes, persists
// the progress record in the background.
func (s *StudyScreen) submitAnswers() (screen.Screen, tea.Cmd) {
	if !s.state.SubmitAnswers(s.corrections, time.Now()) {
		return s, nil
	}

	subject := suggest.SubjectFor(s.state.Objective)
	if subject == "" {
		subject = progress.Classify(s.state.Objective)
	}

	notesText := ""
	if s.state.Timing.UsedNotes {
		notesText = notes.CombinedText(s.topicNotes)
	}

	rec := progress.ToRecord(
		s.state.Objective,
		*s.state.Grade,
		s.state.Timing,
		string(s.state.Difficulty),
		notesText,
		subject,
		time.Now(),
	)

	svc := s.progressSvc
	return s, func() tea.Msg {
		if svc == nil {
			return progressSavedMsg{}
		}
		return progressSavedMsg{Err: svc.Save(context.Background(), rec)}
	}
}

// syncOptCursor points the option cursor at the saved answer for the
// current question, or the first option when the slot is empty.
func (s *StudyScreen) syncOptCursor() {
	s.optIdx = 0
	if s.qIdx >= len(s.state.Answers) {
		return
	}
	saved := s.state.Answers[s.qIdx]
	if saved == "" {
		return
	}
	for i, opt := range s.state.Quiz.Questions[s.qIdx].Options {
		if opt == saved {
			s.optIdx = i
			return
		}
	}
}

// nextUnanswered returns the index of the next empty slot after the
// current question, wrapping around, or -1 when everything is answered.
func (s *StudyScreen) nextUnanswered() int {
	n := len(s.state.Answers)
	for off := 1; off <= n; off++ {
		i := (s.qIdx + off) % n
		if s.state.Answers[i] == "" {
			return i
		}
	}
	return -1
}

func (s *StudyScreen) fetchTheory(token int) tea.Cmd {
	client := s.client
	objective := s.state.Objective
	difficulty := s.state.Difficulty
	return func() tea.Msg {
		theory, err := client.GenerateTheory(context.Background(), objective, difficulty)
		return theoryReadyMsg{Token: token, Theory: theory, Err: err}
	}
}

func (s *StudyScreen) fetchQuiz(token int) tea.Cmd {
	client := s.client
	objective := s.state.Objective
	difficulty := s.state.Difficulty
	return func() tea.Msg {
		quiz, err := client.GenerateQuiz(context.Background(), objective, difficulty)
		return quizReadyMsg{Token: token, Quiz: quiz, Err: err}
	}
}

func (s *StudyScreen) loadNotes() tea.Cmd {
	svc := s.notesSvc
	topic := s.state.Objective
	return func() tea.Msg {
		if svc == nil {
			return notesLoadedMsg{}
		}
		ns, err := svc.ForTopic(context.Background(), topic)
		if err != nil || len(ns) == 0 {
			// Fall back to the whole notebook so the modal is never
			// uselessly empty when notes exist under another topic.
			all, allErr := svc.All(context.Background())
			if allErr == nil && len(all) > 0 {
				return notesLoadedMsg{Notes: all}
			}
		}
		return notesLoadedMsg{Notes: ns, Err: err}
	}
}

// tickCmd schedules the next display tick for the current chain.
func (s *StudyScreen) tickCmd() tea.Cmd {
	seq := s.tickSeq
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{Seq: seq, At: t}
	})
}
