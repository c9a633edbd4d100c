package history

import (
	"context"
	"fmt"
	"image/color"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/mjard/sciquiz/internal/progress"
	"github.com/mjard/sciquiz/internal/router"
	"github.com/mjard/sciquiz/internal/screen"
	"github.com/mjard/sciquiz/internal/store"
	"github.com/mjard/sciquiz/internal/ui/components"
	"github.com/mjard/sciquiz/internal/ui/layout"
	"github.com/mjard/sciquiz/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []store.ProgressRecord
	Summary progress.Summary
}

// Tabs on the history screen.
const (
	tabRecords = iota
	tabStats
)

// HistoryScreen shows past quiz attempts and the aggregate statistics.
type HistoryScreen struct {
	svc      *progress.Service
	records  []store.ProgressRecord
	summary  progress.Summary
	tab      int
	selected int
	expanded map[int]bool
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc *progress.Service) *HistoryScreen {
	return &HistoryScreen{
		svc:      svc,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		return historyLoadedMsg{
			Records: s.svc.History(ctx),
			Summary: s.svc.Stats(ctx),
		}
	}
}

func (s *HistoryScreen) Title() string {
	return "Learning History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "History/Stats"},
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.records = msg.Records
		s.summary = msg.Summary
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "left", "right":
			s.tab = 1 - s.tab
			return s, nil
		case "up", "k":
			if s.tab == tabRecords && s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.tab == tabRecords && s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.tab == tabRecords {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTabs()))
	b.WriteString("\n\n")

	if s.tab == tabStats {
		b.WriteString(s.renderStats(width))
	} else {
		b.WriteString(s.renderRecords(width))
	}
	return b.String()
}

func (s *HistoryScreen) renderTabs() string {
	labels := []string{"Attempts", "Statistics"}
	var parts []string
	for i, l := range labels {
		if i == s.tab {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Primary).Bold(true).Underline(true).Render(l))
		} else {
			parts = append(parts, theme.HintStyle().Render(l))
		}
	}
	return strings.Join(parts, "    ")
}

func (s *HistoryScreen) renderRecords(width int) string {
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No quizzes yet. Complete one to see it here.")
	}

	var b strings.Builder
	for i, rec := range s.records {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		notesMark := ""
		if rec.UsedNotes {
			notesMark = "  [notes]"
		}

		topic := rec.Topic
		if len(topic) > 42 {
			topic = topic[:39] + "..."
		}

		line := fmt.Sprintf("%s%s  %-42s  %3.0f%%  %s%s",
			prefix, rec.Date, topic, rec.Score, rec.TimeSpent, notesMark)

		style := lipgloss.NewStyle().Foreground(scoreColor(rec.Score))
		if i == s.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    difficulty: %s    subject: %s", rec.Difficulty, rec.Subject)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.HintStyle().Render(detail)))
			b.WriteString("\n")
			if rec.Notes != "" {
				note := lipgloss.NewStyle().Width(min(width-12, 70)).
					Foreground(theme.TextDim).Render("    " + rec.Notes)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, note))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func (s *HistoryScreen) renderStats(width int) string {
	sum := s.summary
	if sum.TotalQuizzes == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No statistics yet.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Completed topics   %d\n", sum.CompletedTopics))
	b.WriteString(fmt.Sprintf("Total quizzes      %d\n", sum.TotalQuizzes))
	b.WriteString(fmt.Sprintf("Average score      %.1f%%\n", sum.AverageScore))
	b.WriteString("\n")

	if len(sum.TopicsBySubject) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("Topics by subject"))
		b.WriteString("\n\n")

		subjects := make([]string, 0, len(sum.TopicsBySubject))
		maxCount := 0
		for subj, n := range sum.TopicsBySubject {
			subjects = append(subjects, subj)
			if n > maxCount {
				maxCount = n
			}
		}
		sort.Strings(subjects)

		for _, subj := range subjects {
			n := sum.TopicsBySubject[subj]
			bar := components.NewProgressBar(
				fmt.Sprintf("%-10s %2d", subj, n),
				float64(n)/float64(maxCount), false, 40)
			b.WriteString(bar.View())
			b.WriteString("\n")
		}
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.CardStyle().Render(b.String()))
}

func scoreColor(score float64) color.Color {
	switch progress.ScoreBand(score) {
	case progress.BandHigh:
		return theme.Success
	case progress.BandMid:
		return theme.Warning
	default:
		return theme.Error
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
