package prayer

import (
	"fmt"
	"math"
	"strings"
)

// Placeholder is what an unreachable event formats to.
const Placeholder = "no time for this date/location"

// Time is the result of solving one event: either a fractional local hour
// or the unreachable sentinel. The zero value is unreachable, so a Time can
// never accidentally format as midnight.
type Time struct {
	hours float64
	ok    bool
}

// At wraps a fractional local hour into a reachable Time.
func At(hours float64) Time { return Time{hours: hours, ok: true} }

// Unreachable is the sentinel for an event the sun never produces on the
// given date at the given latitude.
func Unreachable() Time { return Time{} }

// Reachable reports whether the event has a time at all.
func (t Time) Reachable() bool { return t.ok }

// Hours returns the raw fractional hour. The boolean mirrors Reachable.
func (t Time) Hours() (float64, bool) { return t.hours, t.ok }

// Add returns the time shifted by the given number of minutes. Shifting an
// unreachable time keeps it unreachable.
func (t Time) Add(minutes int) Time {
	if !t.ok {
		return t
	}
	return At(t.hours + float64(minutes)/60)
}

// clock normalizes the fractional hour into a 24h wall-clock hour/minute
// pair: wrap into [0,24), round to the nearest minute, carry a rounded-up
// 60 into the hour, wrap the hour at 24.
func (t Time) clock() (hour, min int) {
	h := math.Mod(t.hours, 24)
	if h < 0 {
		h += 24
	}

	hour = int(h)
	min = int(math.Round((h - float64(hour)) * 60))
	if min == 60 {
		min = 0
		hour = (hour + 1) % 24
	}
	return hour, min
}

// Minutes returns the event as minutes since local midnight, for scheduling
// consumers. The boolean is false for an unreachable event.
func (t Time) Minutes() (int, bool) {
	if !t.ok {
		return 0, false
	}
	hour, min := t.clock()
	return hour*60 + min, true
}

// String renders 12-hour civil time ("5:07 AM") or the unreachable
// placeholder.
func (t Time) String() string {
	if !t.ok {
		return Placeholder
	}

	hour, min := t.clock()
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", h12, min, suffix)
}

// ParseClock is the inverse of Time.String for reachable values: it parses
// "H:MM AM/PM" back into minutes since midnight.
func ParseClock(s string) (int, error) {
	var hour, min int
	var suffix string
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d %s", &hour, &min, &suffix); err != nil {
		return 0, fmt.Errorf("invalid clock string %q: %w", s, err)
	}
	if hour < 1 || hour > 12 || min < 0 || min > 59 {
		return 0, fmt.Errorf("invalid clock string %q: out of range", s)
	}

	switch strings.ToUpper(suffix) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("invalid clock string %q: bad AM/PM suffix", s)
	}

	return hour*60 + min, nil
}
