package clock

import (
	"errors"
	"fmt"
)

// Kind classifies why an input time was rejected.
type Kind int

const (
	KindEmpty      Kind = iota + 1 // input is empty
	KindFieldCount                 // input does not have exactly three fields
	KindNotNumeric                 // a field is not a base-10 integer
	KindOutOfRange                 // a field is outside its allowed range
	KindMidnight                   // hours is 24 but minutes or seconds are not zero
)

// String returns a short stable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindFieldCount:
		return "field_count"
	case KindNotNumeric:
		return "not_numeric"
	case KindOutOfRange:
		return "out_of_range"
	case KindMidnight:
		return "midnight"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Field names the time component a validation error refers to.
type Field string

const (
	FieldHours   Field = "hours"
	FieldMinutes Field = "minutes"
	FieldSeconds Field = "seconds"
)

// Sentinel errors, one per Kind. A *ValidationError matches its kind's
// sentinel with errors.Is.
var (
	ErrEmpty      = errors.New("time must not be empty")
	ErrFieldCount = errors.New("time must be in HH:MM:SS format")
	ErrNotNumeric = errors.New("time field must be an integer")
	ErrOutOfRange = errors.New("time field out of range")
	ErrMidnight   = errors.New("24 hours is only valid as 24:00:00")
)

// ValidationError reports an input time that cannot be converted.
type ValidationError struct {
	Kind  Kind
	Field Field  // empty for whole-input failures
	Value string // offending input or field text
	msg   string
	orig  error
}

func newValidationError(kind Kind, field Field, value, msg string, orig error) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Value: value, msg: msg, orig: orig}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.msg
}

// Unwrap returns the underlying parse error, if any.
func (e *ValidationError) Unwrap() error { return e.orig }

// Is reports whether target is the sentinel for e's kind.
func (e *ValidationError) Is(target error) bool {
	return target != nil && target == e.sentinel()
}

func (e *ValidationError) sentinel() error {
	switch e.Kind {
	case KindEmpty:
		return ErrEmpty
	case KindFieldCount:
		return ErrFieldCount
	case KindNotNumeric:
		return ErrNotNumeric
	case KindOutOfRange:
		return ErrOutOfRange
	case KindMidnight:
		return ErrMidnight
	default:
		return nil
	}
}

// KindOf returns the Kind of err if it is (or wraps) a *ValidationError.
func KindOf(err error) (Kind, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	return 0, false
}
