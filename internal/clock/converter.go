package clock

import (
	"errors"

	"github.com/rs/zerolog"
)

// Converter wraps Convert with diagnostic logging of rejected input.
// The zero value logs nothing. A Converter is safe for concurrent use.
type Converter struct {
	log *zerolog.Logger
}

// NewConverter returns a Converter that reports validation failures to log.
// A nil log disables reporting.
func NewConverter(log *zerolog.Logger) *Converter {
	return &Converter{log: log}
}

// Convert behaves like the package-level Convert.
func (c *Converter) Convert(input string) (string, error) {
	out, err := Convert(input)
	if err != nil {
		c.report(input, err)
		return "", err
	}
	return out, nil
}

// Parse behaves like the package-level Parse.
func (c *Converter) Parse(input string) (Time, error) {
	t, err := Parse(input)
	if err != nil {
		c.report(input, err)
	}
	return t, err
}

func (c *Converter) report(input string, err error) {
	if c == nil || c.log == nil {
		return
	}
	ev := c.log.Error().Str("input", input)
	var ve *ValidationError
	if errors.As(err, &ve) {
		ev = ev.Stringer("kind", ve.Kind)
		if ve.Field != "" {
			ev = ev.Str("field", string(ve.Field))
		}
	}
	ev.Msg(err.Error())
}
