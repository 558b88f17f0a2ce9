package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/berlinclock/internal/clock"
	"github.com/javiermolinar/berlinclock/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Row    lipgloss.Style
	Error  lipgloss.Style
	Footer lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	if t == nil {
		t, _ = theme.Load("mocha")
	}

	return &Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Color(t.Border)).
			BorderBackground(theme.Color(t.Bg)).
			Background(theme.Color(t.Bg)).
			Padding(0, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Color(t.Accent)),
		Label: lipgloss.NewStyle().
			Foreground(theme.Color(t.FgMuted)),
		// Lamp rows are centered on the widest row.
		Row: lipgloss.NewStyle().
			Foreground(theme.Color(t.Fg)).
			Width(clock.MinutesFiveWidth).
			Align(lipgloss.Center),
		Error: lipgloss.NewStyle().
			Foreground(theme.Color(t.Warning)),
		Footer: lipgloss.NewStyle().
			Foreground(theme.Color(t.FgMuted)).
			Italic(true),
	}
}
