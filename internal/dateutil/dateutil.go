// Package dateutil provides date parsing utilities for history filtering.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be YYYY-MM-DD, a weekday, today, yesterday, or a duration like 90m")
	ErrDateInFuture      = errors.New("date cannot be in the future")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseDate parses a date string in YYYY-MM-DD format in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseSince parses a lower bound for history listings. Accepted forms:
//   - Empty string: zero time (no bound)
//   - "today", "yesterday": midnight of that day
//   - Weekday names: "monday" through "sunday" (most recent occurrence, today included)
//   - Absolute date: "2025-01-15" (YYYY-MM-DD), midnight in relativeTo's location
//   - Durations: "90m", "2h" (relativeTo minus the duration)
//
// All inputs are case-insensitive.
// Returns ErrDateInFuture if the bound is after relativeTo.
// Returns ErrInvalidDateFormat for unrecognized input.
func ParseSince(s string, relativeTo time.Time) (time.Time, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	today := TruncateToDay(relativeTo)

	switch input {
	case "":
		return time.Time{}, nil
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if target, ok := weekdayMap[input]; ok {
		return previousWeekday(today, target), nil
	}

	if d, err := time.ParseDuration(input); err == nil {
		if d < 0 {
			return time.Time{}, ErrDateInFuture
		}
		return relativeTo.Add(-d), nil
	}

	result, err := ParseDate(input, relativeTo.Location())
	if err != nil {
		return time.Time{}, err
	}
	if result.After(today) {
		return time.Time{}, ErrDateInFuture
	}
	return result, nil
}

// previousWeekday returns the most recent occurrence of target on or before today.
func previousWeekday(today time.Time, target time.Weekday) time.Time {
	daysBack := int(today.Weekday()) - int(target)
	if daysBack < 0 {
		daysBack += 7
	}
	return today.AddDate(0, 0, -daysBack)
}
