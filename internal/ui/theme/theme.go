package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color roles. Use swaps the active palette; screens build styles at
// render time, so a toggle takes effect on the next frame.
var (
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#0D9488") // Teal
	Accent    = lipgloss.Color("#D97706") // Amber
	Success   = lipgloss.Color("#16A34A") // Green
	Warning   = lipgloss.Color("#CA8A04") // Yellow
	Error     = lipgloss.Color("#DC2626") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

type palette struct {
	primary, secondary, accent, success, warning color.Color
	err, text, textDim, bgCard, border           color.Color
}

var dark = palette{
	primary: lipgloss.Color("#2563EB"), secondary: lipgloss.Color("#0D9488"), accent: lipgloss.Color("#D97706"),
	success: lipgloss.Color("#16A34A"), warning: lipgloss.Color("#CA8A04"), err: lipgloss.Color("#DC2626"),
	text: lipgloss.Color("#F8FAFC"), textDim: lipgloss.Color("#94A3B8"), bgCard: lipgloss.Color("#1E293B"), border: lipgloss.Color("#334155"),
}

// light keeps the same hue roles on a bright background.
var light = palette{
	primary: lipgloss.Color("#1D4ED8"), secondary: lipgloss.Color("#0F766E"), accent: lipgloss.Color("#B45309"),
	success: lipgloss.Color("#15803D"), warning: lipgloss.Color("#A16207"), err: lipgloss.Color("#B91C1C"),
	text: lipgloss.Color("#0F172A"), textDim: lipgloss.Color("#64748B"), bgCard: lipgloss.Color("#E2E8F0"), border: lipgloss.Color("#CBD5E1"),
}

// Use switches between the dark and light palettes.
func Use(darkMode bool) {
	p := light
	if darkMode {
		p = dark
	}
	Primary, Secondary, Accent, Success, Warning = p.primary, p.secondary, p.accent, p.success, p.warning
	Error, Text, TextDim, BgCard, Border = p.err, p.text, p.textDim, p.bgCard, p.border
}

// Style helpers shared across screens.

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TextDim).Italic(true)
}

func BodyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Text)
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Error).Bold(true)
}

func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Warning)
}

func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Success).Bold(true)
}

func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
}

func ButtonActiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(Primary).Foreground(Text).Bold(true).Padding(0, 2)
}

func ButtonInactiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 2)
}
