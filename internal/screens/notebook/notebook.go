package notebook

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/mjard/sciquiz/internal/notes"
	"github.com/mjard/sciquiz/internal/router"
	"github.com/mjard/sciquiz/internal/screen"
	"github.com/mjard/sciquiz/internal/store"
	"github.com/mjard/sciquiz/internal/ui/components"
	"github.com/mjard/sciquiz/internal/ui/layout"
	"github.com/mjard/sciquiz/internal/ui/theme"
)

type notesLoadedMsg struct {
	Notes []store.Note
	Err   error
}

type noteSavedMsg struct {
	Err error
}

// Screen modes.
const (
	modeList = iota
	modeAdd
)

// NotebookScreen lists saved study notes and lets the user add or
// delete them.
type NotebookScreen struct {
	svc      *notes.Service
	notes    []store.Note
	selected int
	loaded   bool
	errMsg   string

	mode       int
	topicInput components.TextInput
	bodyInput  components.TextInput
	addFocus   int // 0 topic, 1 body
}

var _ screen.Screen = (*NotebookScreen)(nil)
var _ screen.KeyHintProvider = (*NotebookScreen)(nil)

// New creates a new NotebookScreen.
func New(svc *notes.Service) *NotebookScreen {
	return &NotebookScreen{
		svc:        svc,
		topicInput: components.NewTextInput("Topic", 120),
		bodyInput:  components.NewTextInput("Note text", 500),
	}
}

func (s *NotebookScreen) Init() tea.Cmd {
	return s.reload()
}

func (s *NotebookScreen) reload() tea.Cmd {
	return func() tea.Msg {
		ns, err := s.svc.All(context.Background())
		return notesLoadedMsg{Notes: ns, Err: err}
	}
}

func (s *NotebookScreen) Title() string {
	if s.mode == modeAdd {
		return "New Note"
	}
	return "My Notes"
}

func (s *NotebookScreen) KeyHints() []layout.KeyHint {
	if s.mode == modeAdd {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "A", Description: "Add"},
		{Key: "D", Description: "Delete"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *NotebookScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.notes = msg.Notes
			s.errMsg = ""
		}
		s.loaded = true
		if s.selected >= len(s.notes) && s.selected > 0 {
			s.selected = len(s.notes) - 1
		}
		return s, nil

	case noteSavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.mode = modeList
		s.topicInput.Reset()
		s.bodyInput.Reset()
		return s, s.reload()

	case tea.KeyMsg:
		if s.mode == modeAdd {
			return s.handleAddKey(msg)
		}
		return s.handleListKey(msg)
	}
	return s, nil
}

func (s *NotebookScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.notes)-1 {
			s.selected++
		}
	case "a":
		s.mode = modeAdd
		s.addFocus = 0
		s.bodyInput.Blur()
		return s, s.topicInput.Focus()
	case "d":
		if s.selected < len(s.notes) {
			id := s.notes[s.selected].ID
			return s, func() tea.Msg {
				err := s.svc.Delete(context.Background(), id)
				if err != nil {
					return notesLoadedMsg{Err: err}
				}
				ns, lerr := s.svc.All(context.Background())
				return notesLoadedMsg{Notes: ns, Err: lerr}
			}
		}
	}
	return s, nil
}

func (s *NotebookScreen) handleAddKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeList
		s.topicInput.Reset()
		s.bodyInput.Reset()
		return s, nil

	case "tab", "shift+tab":
		s.addFocus = 1 - s.addFocus
		if s.addFocus == 0 {
			s.bodyInput.Blur()
			return s, s.topicInput.Focus()
		}
		s.topicInput.Blur()
		return s, s.bodyInput.Focus()

	case "enter":
		topic := s.topicInput.Value()
		body := s.bodyInput.Value()
		return s, func() tea.Msg {
			_, err := s.svc.Add(context.Background(), topic, body, "")
			return noteSavedMsg{Err: err}
		}
	}

	var cmd tea.Cmd
	if s.addFocus == 0 {
		s.topicInput, cmd = s.topicInput.Update(msg)
	} else {
		s.bodyInput, cmd = s.bodyInput.Update(msg)
	}
	return s, cmd
}

func (s *NotebookScreen) View(width, height int) string {
	if s.mode == modeAdd {
		return s.renderAdd(width, height)
	}
	return s.renderList(width, height)
}

func (s *NotebookScreen) renderList(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading notes...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.ErrorStyle().Render(s.errMsg)))
		b.WriteString("\n\n")
	}

	if len(s.notes) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No notes yet. Press A to add one."))
		return b.String()
	}

	for i, n := range s.notes {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		header := prefix + n.Topic
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(header)))
		b.WriteString("\n")

		if i == s.selected {
			body := lipgloss.NewStyle().Width(min(width-12, 70)).
				Foreground(theme.TextDim).Render(n.Body)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *NotebookScreen) renderAdd(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle().Render("New Note"))
	b.WriteString("\n\n")
	b.WriteString("Topic\n" + s.topicInput.View())
	b.WriteString("\n\n")
	b.WriteString("Note\n" + s.bodyInput.View())
	if s.errMsg != "" {
		b.WriteString("\n\n" + theme.ErrorStyle().Render(s.errMsg))
	}
	return layout.CenterBox(theme.CardStyle().Render(b.String()), width, height)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
