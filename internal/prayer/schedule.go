package prayer

import "time"

// EventNames lists the six daily events in chronological order.
var EventNames = []string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"}

// ShortNames maps event names to abbreviations for compact displays.
var ShortNames = map[string]string{
	"Fajr":    "F",
	"Sunrise": "S",
	"Dhuhr":   "D",
	"Asr":     "A",
	"Maghrib": "M",
	"Isha":    "I",
}

// Schedule is one day's computed events. Under non-polar conditions the
// reachable times are strictly increasing in the order of EventNames.
type Schedule struct {
	Fajr    Time
	Sunrise Time
	Dhuhr   Time
	Asr     Time
	Maghrib Time
	Isha    Time
}

// Event pairs an event name with its computed time.
type Event struct {
	Name string
	Time Time
}

// Events returns the schedule as a slice in chronological order.
func (s Schedule) Events() []Event {
	return []Event{
		{"Fajr", s.Fajr},
		{"Sunrise", s.Sunrise},
		{"Dhuhr", s.Dhuhr},
		{"Asr", s.Asr},
		{"Maghrib", s.Maghrib},
		{"Isha", s.Isha},
	}
}

// Lookup returns the time for the named event.
func (s Schedule) Lookup(name string) (Time, bool) {
	for _, e := range s.Events() {
		if e.Name == name {
			return e.Time, true
		}
	}
	return Time{}, false
}

// Strings returns the formatted clock string for every event, keyed by
// event name. Unreachable events carry the placeholder.
func (s Schedule) Strings() map[string]string {
	out := make(map[string]string, len(EventNames))
	for _, e := range s.Events() {
		out[e.Name] = e.Time.String()
	}
	return out
}

// MinutesSinceMidnight returns the reachable events as minutes since local
// midnight, for scheduling consumers. Unreachable events are absent.
func (s Schedule) MinutesSinceMidnight() map[string]int {
	out := make(map[string]int, len(EventNames))
	for _, e := range s.Events() {
		if m, ok := e.Time.Minutes(); ok {
			out[e.Name] = m
		}
	}
	return out
}

// Prayer is an event anchored to a concrete wall-clock instant, for
// countdown and next-prayer logic.
type Prayer struct {
	Name string
	Time time.Time
}

// Prayers converts the schedule's reachable events into wall-clock instants
// on the given date in the given location, filtered to the selected names.
func (s Schedule) Prayers(date time.Time, loc *time.Location, selected []string) []Prayer {
	var prayers []Prayer
	for _, name := range selected {
		t, ok := s.Lookup(name)
		if !ok {
			continue
		}
		min, ok := t.Minutes()
		if !ok {
			continue
		}
		prayers = append(prayers, Prayer{
			Name: name,
			Time: time.Date(date.Year(), date.Month(), date.Day(), 0, min, 0, 0, loc),
		})
	}
	return prayers
}

// NextPrayer finds the next upcoming prayer relative to now. If every
// prayer has passed it returns nil (caller should roll over to tomorrow's
// Fajr).
func NextPrayer(prayers []Prayer, now time.Time) *Prayer {
	for i := range prayers {
		if prayers[i].Time.After(now) {
			return &prayers[i]
		}
	}
	return nil
}

// CurrentPrayer returns the most recent prayer whose time has passed, or
// nil before the first prayer of the day.
func CurrentPrayer(prayers []Prayer, now time.Time) *Prayer {
	var current *Prayer
	for i := range prayers {
		if !prayers[i].Time.After(now) {
			current = &prayers[i]
		}
	}
	return current
}

// TimeRemaining returns the duration until the given prayer time.
func TimeRemaining(prayer Prayer, now time.Time) time.Duration {
	return prayer.Time.Sub(now)
}
