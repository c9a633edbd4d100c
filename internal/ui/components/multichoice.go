package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mjard/sciquiz/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Before grading it only
// tracks the learner's pick; the answer key is revealed by Grade.
type MultiChoice struct {
	Question    string
	Options     []string
	Selected    int
	ChosenIndex int

	graded       bool
	correctIndex int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question:    question,
		Options:     options,
		Selected:    0,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.graded {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", " ", "space":
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// Answered reports whether the learner has picked an option.
func (m MultiChoice) Answered() bool {
	return m.ChosenIndex >= 0
}

// Grade locks the component and marks which option was correct.
func (m *MultiChoice) Grade(correctIndex int) {
	m.graded = true
	m.correctIndex = correctIndex
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E", "F"}

	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == m.Selected && !m.graded {
			prefix = "▸ "
		}

		mark := " "
		if i == m.ChosenIndex {
			mark = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)

		if m.graded {
			if i == m.correctIndex {
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			} else if i == m.ChosenIndex {
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else if i == m.ChosenIndex {
				s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}
