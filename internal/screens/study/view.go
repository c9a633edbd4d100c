package study

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/mjard/sciquiz/internal/content"
	"github.com/mjard/sciquiz/internal/progress"
	sess "github.com/mjard/sciquiz/internal/session"
	"github.com/mjard/sciquiz/internal/ui/components"
	"github.com/mjard/sciquiz/internal/ui/layout"
	"github.com/mjard/sciquiz/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	switch s.state.Modal {
	case sess.ModalNotesConfirm:
		return s.renderNotesConfirm(width, height)
	case sess.ModalNotes:
		return s.renderNotesModal(width, height)
	case sess.ModalResults:
		return s.renderResults(width, height)
	}

	switch s.state.Phase {
	case sess.PhaseHome:
		return s.renderHome(width, height)
	case sess.PhaseTheoryLoading:
		return renderLoading(width, "Generating theory for \""+s.state.Objective+"\"...")
	case sess.PhaseTheoryShown:
		return s.renderTheory(width, height)
	case sess.PhaseQuizLoading:
		return renderLoading(width, "Building your quiz...")
	case sess.PhaseQuizActive, sess.PhaseQuizGraded:
		if s.state.QuizEmpty() {
			return s.renderEmptyQuiz(width, height)
		}
		return s.renderQuiz(width, height)
	}
	return ""
}

func (s *StudyScreen) renderHome(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centered(width, theme.TitleStyle().Render("What do you want to learn?")))
	b.WriteString("\n\n")

	if s.state.ErrMsg != "" {
		b.WriteString(centered(width, theme.ErrorStyle().Render(s.state.ErrMsg)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n")

	if s.state.ValidationMsg != "" {
		b.WriteString(centered(width, theme.WarningStyle().Render(s.state.ValidationMsg)))
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderDifficultyRow()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderSuggestions(width)))

	return b.String()
}

func (s *StudyScreen) renderDifficultyRow() string {
	var parts []string
	for _, d := range content.Difficulties() {
		label := " " + string(d) + " "
		switch {
		case d == s.state.Difficulty && s.focus == focusDifficulty:
			parts = append(parts, theme.ButtonActiveStyle().Render(label))
		case d == s.state.Difficulty:
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Secondary).Bold(true).Render("["+label+"]"))
		default:
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).Render(" "+label+" "))
		}
	}
	prefix := lipgloss.NewStyle().Foreground(theme.Text).Render("Difficulty:  ")
	return prefix + strings.Join(parts, " ")
}

func (s *StudyScreen) renderSuggestions(width int) string {
	var tabs []string
	for i, cat := range s.categories {
		if i == s.catIdx {
			tabs = append(tabs, lipgloss.NewStyle().
				Foreground(theme.Primary).Bold(true).Underline(true).Render(cat.Label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().
				Foreground(theme.TextDim).Render(cat.Label))
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n\n")

	cat := s.categories[s.catIdx]
	for i, obj := range cat.Objectives {
		switch {
		case i == s.sugIdx && s.focus == focusSuggest:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).Bold(true).Render("  ▸ " + obj))
		case s.focus == focusSuggest:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("    " + obj))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + obj))
		}
		b.WriteString("\n")
	}

	return theme.CardStyle().Width(min(width-8, 60)).Render(b.String())
}

func (s *StudyScreen) renderTheory(width, height int) string {
	t := s.state.Theory
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + theme.TitleStyle().Render(s.state.Objective))
	b.WriteString("\n")
	b.WriteString("  " + theme.HintStyle().Render("difficulty: "+string(s.state.Difficulty)))
	b.WriteString("\n\n")

	if s.state.ErrMsg != "" {
		b.WriteString("  " + theme.ErrorStyle().Render(s.state.ErrMsg))
		b.WriteString("\n\n")
	}
	if t != nil && t.Warning != "" {
		b.WriteString("  " + theme.WarningStyle().Render("⚠ "+t.Warning))
		b.WriteString("\n\n")
	}

	bodyWidth := min(width-6, 78)
	if t != nil {
		body := lipgloss.NewStyle().Width(bodyWidth).Foreground(theme.Text).Render(t.Body)
		b.WriteString(indent(body, 2))
		b.WriteString("\n")

		if len(t.RelatedTopics) > 0 {
			b.WriteString("\n  " + theme.HintStyle().Render("Related topics:"))
			b.WriteString("\n")
			for i, topic := range t.RelatedTopics {
				if i >= 9 {
					break
				}
				b.WriteString(fmt.Sprintf("    %s %s\n",
					theme.HintStyle().Render(fmt.Sprintf("[%d]", i+1)),
					lipgloss.NewStyle().Foreground(theme.Text).Render(topic)))
			}
		}
	}

	b.WriteString("\n  " + theme.HintStyle().Render("Press Enter to take the quiz."))
	return b.String()
}

func (s *StudyScreen) renderQuiz(width, height int) string {
	st := s.state
	var b strings.Builder

	graded := st.Graded()
	questions := st.Quiz.Questions
	q := questions[s.qIdx]

	// Status line: position, answered count, timer.
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.qIdx+1, len(questions)))

	var rightParts []string
	if graded {
		rightParts = append(rightParts,
			fmt.Sprintf("Score %d/%d", st.Grade.CorrectCount, st.Grade.Total))
	} else {
		rightParts = append(rightParts,
			fmt.Sprintf("Answered %d/%d", len(st.Answers)-st.Unanswered(), len(questions)))
	}
	if st.Timing.UsedNotes {
		rightParts = append(rightParts, "notes used")
	}
	rightParts = append(rightParts, "⏱ "+st.Timing.DisplayAt(time.Now(), graded))
	right := theme.HintStyle().Render(strings.Join(rightParts, "   "))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	line := left
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	if st.Quiz.Warning != "" && !graded {
		b.WriteString("  " + theme.WarningStyle().Render("⚠ "+st.Quiz.Warning))
		b.WriteString("\n\n")
	}
	if st.ValidationMsg != "" {
		b.WriteString("  " + theme.WarningStyle().Render(st.ValidationMsg))
		b.WriteString("\n\n")
	}

	mc := components.NewMultiChoice(q.Text, q.Options)
	mc.Selected = s.optIdx
	mc.ChosenIndex = s.answerIndex(s.qIdx)
	if graded {
		mc.Grade(s.keyIndex(s.qIdx))
	}
	b.WriteString(indent(lipgloss.NewStyle().Width(min(width-6, 78)).Render(mc.View()), 2))
	b.WriteString("\n")

	if graded {
		key := st.Key[s.qIdx]
		if st.Grade.PerQuestion[s.qIdx] {
			b.WriteString("  " + theme.SuccessStyle().Render("✓ Correct"))
		} else {
			b.WriteString("  " + theme.ErrorStyle().Render("✗ Incorrect") +
				theme.HintStyle().Render("   correct answer: "+key.CorrectAnswer))
		}
		b.WriteString("\n")
		if key.Explanation != "" {
			exp := lipgloss.NewStyle().Width(min(width-6, 78)).
				Foreground(theme.TextDim).Render(key.Explanation)
			b.WriteString("\n" + indent(exp, 2) + "\n")
		}
	}

	return b.String()
}

func (s *StudyScreen) renderEmptyQuiz(width, height int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("No questions came back for this objective.") +
		"\n\n" + theme.HintStyle().
		Render("Try a different difficulty or rephrase the objective.\n\nPress Esc to go back to the theory.")
	return layout.CenterBox(theme.CardStyle().Render(msg), width, height)
}

func (s *StudyScreen) renderResults(width, height int) string {
	st := s.state
	percent := progress.ScorePercent(*st.Grade)

	var verdict string
	switch progress.ScoreBand(percent) {
	case progress.BandHigh:
		verdict = theme.SuccessStyle().Render("Excellent work!")
	case progress.BandMid:
		verdict = theme.WarningStyle().Render("Good effort. Review the misses and retake.")
	default:
		verdict = theme.ErrorStyle().Render("Tough one. Reread the theory and try again.")
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle().Render("Quiz Results"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score      %d/%d  (%.0f%%)\n", st.Grade.CorrectCount, st.Grade.Total, percent))
	b.WriteString("Time       " + sess.FormatElapsed(st.Timing.Elapsed) + "\n")
	b.WriteString("Difficulty " + string(st.Difficulty) + "\n")
	if st.Timing.UsedNotes {
		b.WriteString(theme.WarningStyle().Render("Notes were used during this attempt.") + "\n")
	}
	b.WriteString("\n")

	bar := components.NewProgressBar("", percent/100, true, 36)
	b.WriteString(bar.View())
	b.WriteString("\n\n")
	b.WriteString(verdict)
	b.WriteString("\n\n")
	b.WriteString(theme.HintStyle().Render("Esc close · R retake · ←/→ review answers"))

	return layout.CenterBox(theme.CardStyle().Render(b.String()), width, height)
}

func (s *StudyScreen) renderNotesConfirm(width, height int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Open your notes?") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(44).
			Render("This attempt will be permanently marked as notes-assisted, even if you close them right away.") +
		"\n\n" +
		theme.SuccessStyle().Render("[Y] Open notes") + "   " +
		lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] Keep going")
	return layout.CenterBox(theme.CardStyle().Render(msg), width, height)
}

func (s *StudyScreen) renderNotesModal(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle().Render("My Notes"))
	b.WriteString("\n\n")

	if len(s.topicNotes) == 0 {
		b.WriteString(theme.HintStyle().Render("No saved notes yet."))
	} else {
		for _, n := range s.topicNotes {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(n.Topic))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Width(min(width-16, 64)).Foreground(theme.Text).Render(n.Body))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(theme.HintStyle().Render("Esc to close"))
	return layout.CenterBox(theme.CardStyle().Render(b.String()), width, height)
}

// answerIndex returns the option index of the saved answer for question i,
// or -1 when the slot is empty.
func (s *StudyScreen) answerIndex(i int) int {
	if i >= len(s.state.Answers) || s.state.Answers[i] == "" {
		return -1
	}
	for j, opt := range s.state.Quiz.Questions[i].Options {
		if opt == s.state.Answers[i] {
			return j
		}
	}
	return -1
}

// keyIndex returns the option index of the corrected answer for question i.
func (s *StudyScreen) keyIndex(i int) int {
	if i >= len(s.state.Key) {
		return -1
	}
	want := s.state.Key[i].CorrectAnswer
	for j, opt := range s.state.Key[i].Options {
		if opt == want {
			return j
		}
	}
	return -1
}

func renderLoading(width int, label string) string {
	return "\n\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(label)
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
