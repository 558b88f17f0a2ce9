package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries the wall-clock time of a tick.
type tickMsg time.Time

// tick fires on the next whole second so the seconds lamp flips on time.
func tick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.following() {
			m.setTime(fromTick(msg, m.nowFunc))
		}
		return m, tick()
	}

	if m.mode == ModeInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// following reports whether the display tracks the wall clock, including
// while a pin is being typed over the live clock.
func (m Model) following() bool {
	return m.mode == ModeLive || (m.mode == ModeInput && m.prevMode == ModeLive)
}
