package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/mjard/sciquiz/internal/content"
	"github.com/mjard/sciquiz/internal/notes"
	"github.com/mjard/sciquiz/internal/progress"
	"github.com/mjard/sciquiz/internal/router"
	"github.com/mjard/sciquiz/internal/screen"
	"github.com/mjard/sciquiz/internal/screens/history"
	"github.com/mjard/sciquiz/internal/screens/notebook"
	"github.com/mjard/sciquiz/internal/screens/study"
	"github.com/mjard/sciquiz/internal/store"
	"github.com/mjard/sciquiz/internal/ui/components"
	"github.com/mjard/sciquiz/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu     components.Menu
	summary  progress.Summary
	hasStats bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The stats strip reads the local store
// only; remote statistics live on the history screen.
func New(client content.Client, progressSvc *progress.Service, notesSvc *notes.Service, progressRepo store.ProgressRepo) *HomeScreen {
	var summary progress.Summary
	hasStats := false
	if progressRepo != nil {
		if records, err := progressRepo.All(context.Background()); err == nil && len(records) > 0 {
			summary = progress.Summarize(records)
			hasStats = true
		}
	}

	items := []components.MenuItem{
		{Label: "START LEARNING", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(client, progressSvc, notesSvc)}
			}
		}},
		{Label: "LEARNING HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(progressSvc)}
			}
		}},
		{Label: "MY NOTES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: notebook.New(notesSvc)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		summary:  summary,
		hasStats: hasStats,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("S C I Q U I Z")
	tagline := theme.HintStyle().
		Render("theory, quiz, repeat")
	sections = append(sections, title+"\n"+tagline)

	if h.hasStats {
		stats := fmt.Sprintf("%d topics · %d quizzes · %.1f%% avg",
			h.summary.CompletedTopics, h.summary.TotalQuizzes, h.summary.AverageScore)
		sections = append(sections, theme.CardStyle().Render(
			lipgloss.NewStyle().Foreground(theme.Text).Render(stats)))
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
