// Package clock converts wall-clock times to the lamp rows of the Berlin
// set theory clock (Mengenlehreuhr).
//
// The display has five rows, top to bottom:
//
//	seconds       1 lamp, on for even seconds
//	hours x5      4 red lamps
//	hours x1      4 red lamps
//	minutes x5   11 lamps, red on the quarter hours, yellow otherwise
//	minutes x1    4 yellow lamps
//
// Lamps render as Y (yellow), R (red) or O (off), rows joined by CRLF.
package clock

import (
	"strings"
	"time"
)

// RowSeparator joins rows in the rendered output on every platform.
const RowSeparator = "\r\n"

// Display holds the rendered rows of one time.
type Display struct {
	Seconds     string
	HoursFive   string
	HoursOne    string
	MinutesFive string
	MinutesOne  string
}

// Rows returns the rows top to bottom.
func (d Display) Rows() []string {
	return []string{d.Seconds, d.HoursFive, d.HoursOne, d.MinutesFive, d.MinutesOne}
}

// String assembles the rows into the canonical output.
func (d Display) String() string {
	return Assemble(d.Seconds, d.HoursFive, d.HoursOne, d.MinutesFive, d.MinutesOne)
}

// Assemble joins the five rows with RowSeparator, with no trailing separator.
func Assemble(seconds, hoursFive, hoursOne, minutesFive, minutesOne string) string {
	var b strings.Builder
	b.Grow(SecondsWidth + HoursFiveWidth + HoursOneWidth + MinutesFiveWidth + MinutesOneWidth + 4*len(RowSeparator))
	b.WriteString(seconds)
	b.WriteString(RowSeparator)
	b.WriteString(hoursFive)
	b.WriteString(RowSeparator)
	b.WriteString(hoursOne)
	b.WriteString(RowSeparator)
	b.WriteString(minutesFive)
	b.WriteString(RowSeparator)
	b.WriteString(minutesOne)
	return b.String()
}

// Encode renders a validated Time.
func Encode(t Time) Display {
	return Display{
		Seconds:     SecondsRow(t.Seconds),
		HoursFive:   HoursFiveRow(t.Hours),
		HoursOne:    HoursOneRow(t.Hours),
		MinutesFive: MinutesFiveRow(t.Minutes),
		MinutesOne:  MinutesOneRow(t.Minutes),
	}
}

// FromTime returns the wall-clock time of t in its own location.
func FromTime(t time.Time) Time {
	h, m, s := t.Clock()
	return Time{Hours: h, Minutes: m, Seconds: s}
}

// Convert parses input as HH:MM:SS and returns its lamp rows.
// Invalid input returns a *ValidationError and no output.
func Convert(input string) (string, error) {
	t, err := Parse(input)
	if err != nil {
		return "", err
	}
	return Encode(t).String(), nil
}
