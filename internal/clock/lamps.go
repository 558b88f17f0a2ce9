package clock

import "strings"

// Lamp is the state of a single lamp, rendered as one character.
type Lamp byte

const (
	LampOff    Lamp = 'O'
	LampYellow Lamp = 'Y'
	LampRed    Lamp = 'R'
)

// Row widths, top to bottom.
const (
	SecondsWidth     = 1
	HoursFiveWidth   = 4
	HoursOneWidth    = 4
	MinutesFiveWidth = 11
	MinutesOneWidth  = 4
)

// minutesOneOffset is where the one-minute patterns start in minutePatterns.
const minutesOneOffset = 12

var (
	// hourPatterns[n] has the first n of four red lamps lit.
	hourPatterns [HoursFiveWidth + 1]string

	// minutePatterns[0..11] is the five-minute row with i lamps lit,
	// minutePatterns[12..16] the one-minute row with i lamps lit.
	minutePatterns [minutesOneOffset + MinutesOneWidth + 1]string

	endOfDayHours = strings.Repeat(string(LampRed), HoursFiveWidth)
)

func init() {
	for n := range hourPatterns {
		hourPatterns[n] = litRow(HoursFiveWidth, n, func(int) Lamp { return LampRed })
	}
	for n := 0; n <= MinutesFiveWidth; n++ {
		minutePatterns[n] = litRow(MinutesFiveWidth, n, quarterLamp)
	}
	for n := 0; n <= MinutesOneWidth; n++ {
		minutePatterns[minutesOneOffset+n] = litRow(MinutesOneWidth, n, func(int) Lamp { return LampYellow })
	}
}

// litRow renders width lamps with the first lit switched on, coloured by on.
// on receives the 1-indexed lamp position.
func litRow(width, lit int, on func(pos int) Lamp) string {
	var b strings.Builder
	b.Grow(width)
	for i := 1; i <= width; i++ {
		if i <= lit {
			b.WriteByte(byte(on(i)))
		} else {
			b.WriteByte(byte(LampOff))
		}
	}
	return b.String()
}

// quarterLamp marks every third five-minute lamp (quarter hours) red.
func quarterLamp(pos int) Lamp {
	if pos%3 == 0 {
		return LampRed
	}
	return LampYellow
}

// hourBlockPattern returns the four-lamp hour row with n lamps lit, 0 <= n <= 4.
func hourBlockPattern(n int) string {
	return hourPatterns[n]
}

// SecondsRow returns the blinking seconds lamp: on for even seconds.
func SecondsRow(seconds int) string {
	if seconds%2 == 0 {
		return string(LampYellow)
	}
	return string(LampOff)
}

// HoursFiveRow returns the top hour row, one lamp per five hours.
func HoursFiveRow(hours int) string {
	if hours == maxHours {
		return endOfDayHours
	}
	return hourBlockPattern(hours / 5)
}

// HoursOneRow returns the second hour row, one lamp per remaining hour.
func HoursOneRow(hours int) string {
	if hours == maxHours {
		return endOfDayHours
	}
	return hourBlockPattern(hours % 5)
}

// MinutesFiveRow returns the eleven-lamp row, one lamp per five minutes.
func MinutesFiveRow(minutes int) string {
	return minutePatterns[minutes/5]
}

// MinutesOneRow returns the bottom row, one lamp per remaining minute.
func MinutesOneRow(minutes int) string {
	return minutePatterns[minutesOneOffset+minutes%5]
}
