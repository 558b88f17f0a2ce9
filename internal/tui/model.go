// Package tui provides the live clock terminal interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/berlinclock/internal/clock"
	"github.com/javiermolinar/berlinclock/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeLive   Mode = iota // Following the wall clock
	ModePinned             // Showing a user-entered time
	ModeInput              // Typing a time to pin
)

// String returns a short label for the mode.
func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModePinned:
		return "pinned"
	case ModeInput:
		return "input"
	default:
		return "unknown"
	}
}

// Model is the main TUI model.
type Model struct {
	converter *clock.Converter
	styles    *Styles
	nowFunc   func() time.Time

	mode     Mode
	prevMode Mode // mode to restore when input is cancelled
	current  clock.Time
	display  clock.Display
	input    textinput.Model
	status   string

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithConverter sets the converter used for pinned times.
func WithConverter(c *clock.Converter) Option {
	return func(m *Model) { m.converter = c }
}

// WithTheme sets the color theme.
func WithTheme(t *theme.Theme) Option {
	return func(m *Model) { m.styles = NewStyles(t) }
}

// WithNow overrides the wall clock (for tests).
func WithNow(now func() time.Time) Option {
	return func(m *Model) { m.nowFunc = now }
}

// New creates a live clock model.
func New(opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "HH:MM:SS"
	ti.Prompt = "time> "
	ti.CharLimit = 12

	m := Model{
		converter: clock.NewConverter(nil),
		nowFunc:   time.Now,
		input:     ti,
		mode:      ModeLive,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.styles == nil {
		m.styles = NewStyles(nil)
	}
	m.setTime(clock.FromTime(m.nowFunc()))
	return m
}

// Init starts the once-per-second tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Mode returns the current mode.
func (m Model) Mode() Mode { return m.mode }

// Current returns the time being displayed.
func (m Model) Current() clock.Time { return m.current }

// Display returns the lamp rows being displayed.
func (m Model) Display() clock.Display { return m.display }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

func (m *Model) setTime(t clock.Time) {
	m.current = t
	m.display = clock.Encode(t)
}

// Run starts the TUI and blocks until the user quits.
func Run(opts ...Option) error {
	p := tea.NewProgram(New(opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
