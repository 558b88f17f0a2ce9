package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiermolinar/berlinclock/internal/clock"
	"github.com/javiermolinar/berlinclock/internal/tui/theme"
)

func asciiProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func fixedNow(h, m, s int) func() time.Time {
	return func() time.Time { return time.Date(2025, 1, 9, h, m, s, 0, time.UTC) }
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok, "Update returned %T", updated)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = send(t, m, runes(string(r)))
	}
	return m
}

func TestNew_StartsLiveAtNow(t *testing.T) {
	m := New(WithNow(fixedNow(13, 17, 1)))

	assert.Equal(t, ModeLive, m.Mode())
	assert.Equal(t, clock.Time{Hours: 13, Minutes: 17, Seconds: 1}, m.Current())
	assert.Equal(t, "RROO", m.Display().HoursFive)
	assert.NotNil(t, m.Init())
}

func TestUpdate_TickAdvancesLiveClock(t *testing.T) {
	m := New(WithNow(fixedNow(0, 0, 0)))

	m = send(t, m, tickMsg(time.Date(2025, 1, 9, 23, 59, 59, 0, time.UTC)))

	assert.Equal(t, clock.Time{Hours: 23, Minutes: 59, Seconds: 59}, m.Current())
	assert.Equal(t, "O\r\nRRRR\r\nRRRO\r\nYYRYYRYYRYY\r\nYYYY", m.Display().String())
}

func TestUpdate_TickReturnsNextTick(t *testing.T) {
	m := New(WithNow(fixedNow(0, 0, 0)))
	_, cmd := m.Update(tickMsg(time.Time{}))
	assert.NotNil(t, cmd)
}

func TestPinTime(t *testing.T) {
	m := New(WithNow(fixedNow(8, 0, 0)))

	m = send(t, m, runes("/"))
	require.Equal(t, ModeInput, m.Mode())

	m = typeText(t, m, "24:00:00")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModePinned, m.Mode())
	assert.True(t, m.Current().IsEndOfDay())
	assert.Equal(t, "RRRR", m.Display().HoursOne)

	// Ticks do not move a pinned clock.
	m = send(t, m, tickMsg(time.Date(2025, 1, 9, 9, 0, 0, 0, time.UTC)))
	assert.True(t, m.Current().IsEndOfDay())

	// esc returns to the wall clock.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeLive, m.Mode())
	assert.Equal(t, clock.Time{Hours: 8}, m.Current())
}

func TestPinTime_InvalidKeepsDisplay(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	m := New(WithNow(fixedNow(13, 17, 1)), WithConverter(clock.NewConverter(&log)))
	before := m.Display()

	m = send(t, m, runes("/"))
	m = typeText(t, m, "24:00:01")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeInput, m.Mode(), "input stays open for correction")
	assert.Equal(t, before, m.Display())
	assert.Contains(t, m.Status(), "24:00:01")
	assert.Contains(t, buf.String(), `"kind":"midnight"`)
}

func TestInput_EscRestoresPreviousMode(t *testing.T) {
	m := New(WithNow(fixedNow(1, 2, 3)))

	m = send(t, m, runes("/"))
	m = typeText(t, m, "12")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeLive, m.Mode())
	assert.Empty(t, m.Status())
}

func TestInput_LiveClockKeepsTicking(t *testing.T) {
	m := New(WithNow(fixedNow(1, 2, 3)))
	m = send(t, m, runes("/"))
	m = typeText(t, m, "12")

	m = send(t, m, tickMsg(time.Date(2025, 1, 9, 1, 2, 4, 0, time.UTC)))

	assert.Equal(t, ModeInput, m.Mode())
	assert.Equal(t, clock.Time{Hours: 1, Minutes: 2, Seconds: 4}, m.Current())
	assert.Equal(t, "Y", m.Display().Seconds)
	assert.Equal(t, "12", m.input.Value())
}

func TestInput_PinnedClockStaysPinned(t *testing.T) {
	m := New(WithNow(fixedNow(1, 2, 3)))
	m = send(t, m, runes("/"))
	m = typeText(t, m, "24:00:00")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ModePinned, m.Mode())

	m = send(t, m, runes("/"))
	m = send(t, m, tickMsg(time.Date(2025, 1, 9, 1, 2, 4, 0, time.UTC)))

	assert.Equal(t, clock.Time{Hours: 24}, m.Current())
}

func TestInput_QIsTypedNotQuit(t *testing.T) {
	m := New(WithNow(fixedNow(1, 2, 3)))
	m = send(t, m, runes("/"))

	m = send(t, m, runes("q"))
	assert.Equal(t, ModeInput, m.Mode())
	assert.Equal(t, "q", m.input.Value())
}

func TestQuitKeys(t *testing.T) {
	m := New(WithNow(fixedNow(1, 2, 3)))

	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "key %q should quit", key.String())
	}
}

func TestView_RendersRows(t *testing.T) {
	asciiProfile(t)
	th, err := theme.Load("frappe")
	require.NoError(t, err)

	m := New(WithNow(fixedNow(13, 17, 1)), WithTheme(th))
	out := m.View()

	assert.Contains(t, out, title)
	assert.Contains(t, out, "13:17:01  live")
	for _, row := range []string{"RROO", "RRRO", "YYROOOOOOOO", "YYOO"} {
		assert.Contains(t, out, row)
	}
	assert.Contains(t, out, "/ pin time")
	assert.Contains(t, out, "╭")
}

func TestView_InputAndStatus(t *testing.T) {
	asciiProfile(t)

	m := New(WithNow(fixedNow(13, 17, 1)))
	m = send(t, m, runes("/"))
	m = typeText(t, m, "ab")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	out := m.View()
	assert.Contains(t, out, "time> ")
	assert.Contains(t, out, "HH:MM:SS format")
	assert.Contains(t, out, "enter apply")
}

func TestView_TruncatesToWidth(t *testing.T) {
	asciiProfile(t)

	m := New(WithNow(fixedNow(13, 17, 1)))
	m = send(t, m, tea.WindowSizeMsg{Width: 12, Height: 20})

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 12, "line %q", line)
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "live", ModeLive.String())
	assert.Equal(t, "pinned", ModePinned.String())
	assert.Equal(t, "input", ModeInput.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
