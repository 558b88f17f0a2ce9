package clock

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	maxHours   = 24
	maxMinutes = 59
	maxSeconds = 59
)

// Time is a validated wall-clock time. Hours is 24 only for the 24:00:00
// end-of-day sentinel.
type Time struct {
	Hours   int
	Minutes int
	Seconds int
}

// String formats t as HH:MM:SS.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// IsEndOfDay reports whether t is the 24:00:00 sentinel.
func (t Time) IsEndOfDay() bool {
	return t.Hours == maxHours
}

// Parse parses "HH:MM:SS" into a Time.
// Checks run in order: empty input, field count, hours, minutes, seconds,
// then the 24:00:00 rule. The first failing check is returned as a
// *ValidationError.
func Parse(input string) (Time, error) {
	if input == "" {
		return Time{}, newValidationError(KindEmpty, "", input,
			"input time must not be empty", nil)
	}

	parts := strings.Split(input, ":")
	if len(parts) != 3 {
		return Time{}, newValidationError(KindFieldCount, "", input,
			fmt.Sprintf("input time %q must be in HH:MM:SS format", input), nil)
	}

	hours, err := parseField(parts[0], FieldHours, maxHours)
	if err != nil {
		return Time{}, err
	}
	minutes, err := parseField(parts[1], FieldMinutes, maxMinutes)
	if err != nil {
		return Time{}, err
	}
	seconds, err := parseField(parts[2], FieldSeconds, maxSeconds)
	if err != nil {
		return Time{}, err
	}

	if hours == maxHours && (minutes != 0 || seconds != 0) {
		return Time{}, newValidationError(KindMidnight, FieldHours, input,
			fmt.Sprintf("invalid time %q: hours may be 24 only at 24:00:00", input), nil)
	}

	return Time{Hours: hours, Minutes: minutes, Seconds: seconds}, nil
}

// parseField parses one component and checks it lies in [0, upper].
func parseField(s string, field Field, upper int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, newValidationError(KindNotNumeric, field, s,
			fmt.Sprintf("%s must be an integer, got %q", field, s), err)
	}
	if v < 0 || v > upper {
		return 0, newValidationError(KindOutOfRange, field, s,
			fmt.Sprintf("%s must be between 0 and %d, got %d", field, upper, v), nil)
	}
	return v, nil
}
