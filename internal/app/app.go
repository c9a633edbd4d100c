package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mjard/sciquiz/internal/content"
	"github.com/mjard/sciquiz/internal/notes"
	"github.com/mjard/sciquiz/internal/progress"
	"github.com/mjard/sciquiz/internal/router"
	"github.com/mjard/sciquiz/internal/screen"
	"github.com/mjard/sciquiz/internal/screens/home"
	"github.com/mjard/sciquiz/internal/store"
	"github.com/mjard/sciquiz/internal/ui/layout"
	"github.com/mjard/sciquiz/internal/ui/theme"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Client       content.Client
	ProgressSvc  *progress.Service
	NotesSvc     *notes.Service
	ProgressRepo store.ProgressRepo
	Prefs        store.PrefsRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	prefs    store.PrefsRepo
	darkMode bool
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	darkMode := true
	if opts.Prefs != nil {
		darkMode, _ = opts.Prefs.GetBool(context.Background(), store.PrefDarkMode, true)
	}
	theme.Use(darkMode)

	homeScreen := home.New(opts.Client, opts.ProgressSvc, opts.NotesSvc, opts.ProgressRepo)
	return AppModel{
		router:   router.New(homeScreen),
		prefs:    opts.Prefs,
		darkMode: darkMode,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.darkMode = !m.darkMode
			theme.Use(m.darkMode)
			if m.prefs != nil {
				_ = m.prefs.SetBool(context.Background(), store.PrefDarkMode, m.darkMode)
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints takes the active screen's hints when it provides them and
// always appends the global quit hint.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	if hints == nil {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
