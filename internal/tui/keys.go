package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/berlinclock/internal/clock"
)

// keyHint is one entry of the footer.
type keyHint struct {
	Key  string
	Desc string
}

var (
	liveHints   = []keyHint{{"/", "pin time"}, {"q", "quit"}}
	pinnedHints = []keyHint{{"/", "pin time"}, {"esc", "live"}, {"q", "quit"}}
	inputHints  = []keyHint{{"enter", "apply"}, {"esc", "cancel"}}
)

func (m Model) hints() []keyHint {
	switch m.mode {
	case ModePinned:
		return pinnedHints
	case ModeInput:
		return inputHints
	default:
		return liveHints
	}
}

// handleKeyMsg routes key presses by mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.mode == ModeInput {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.prevMode = m.mode
		m.mode = ModeInput
		m.status = ""
		m.input.SetValue("")
		return m, m.input.Focus()
	case "esc":
		if m.mode == ModePinned {
			m.mode = ModeLive
			m.status = ""
			m.setTime(clock.FromTime(m.nowFunc()))
		}
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = m.prevMode
		m.status = ""
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		t, err := m.converter.Parse(m.input.Value())
		if err != nil {
			// Keep the previous display and let the user fix the input.
			m.status = err.Error()
			return m, nil
		}
		m.setTime(t)
		m.mode = ModePinned
		m.status = ""
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// fromTick converts a tick to clock time, falling back to now for zero ticks.
func fromTick(msg tickMsg, now func() time.Time) clock.Time {
	t := time.Time(msg)
	if t.IsZero() {
		t = now()
	}
	return clock.FromTime(t)
}
