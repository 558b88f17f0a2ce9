package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const title = "Berlin Clock"

// View renders the clock frame.
func (m Model) View() string {
	lines := []string{
		m.styles.Title.Render(title),
		m.styles.Label.Render(m.current.String() + "  " + m.labelMode()),
		"",
	}
	for _, row := range m.display.Rows() {
		lines = append(lines, m.styles.Row.Render(row))
	}
	lines = append(lines, "")

	if m.mode == ModeInput {
		lines = append(lines, m.input.View())
	}
	if m.status != "" {
		lines = append(lines, m.styles.Error.Render(m.status))
	}
	lines = append(lines, m.styles.Footer.Render(m.renderHints()))

	box := m.styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	if m.width > 0 && m.height > 0 {
		box = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return truncateLines(box, m.width)
}

func (m Model) labelMode() string {
	if m.mode == ModeInput {
		return m.prevMode.String()
	}
	return m.mode.String()
}

func (m Model) renderHints() string {
	hints := m.hints()
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// truncateLines cuts every line to width cells. Zero width leaves s as is.
func truncateLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
