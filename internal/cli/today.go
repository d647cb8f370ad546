package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/waqt-dev/waqt/internal/config"
	"github.com/waqt-dev/waqt/internal/display"
	"github.com/waqt-dev/waqt/internal/hijri"
	"github.com/waqt-dev/waqt/internal/prayer"
)

func runToday(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	now := time.Now()
	loc, err := resolveLocation(cfg, now)
	if err != nil {
		return err
	}

	date, err := resolveDate(loc, now)
	if err != nil {
		return err
	}

	s, err := scheduleFor(cfg, loc, date)
	if err != nil {
		return err
	}

	// Hijri date and any observance falling on it.
	hdate := hijri.FromGregorian(date.Year(), date.Month(), date.Day(), cfg.HijriAdjustOrZero())
	eventName, _ := hdate.Event()

	// Current/next only make sense when showing the live date.
	var current, next *prayer.Prayer
	tz := fixedZone(loc.UTCOffset)
	nowLocal := now.In(tz)
	if sameDay(date, nowLocal) {
		prayers := s.Prayers(date, tz, selectedPrayers(cfg))
		current = prayer.CurrentPrayer(prayers, nowLocal)
		next = prayer.NextPrayer(prayers, nowLocal)
	}

	if FlagJSON {
		return printTodayJSON(cfg, loc, date, s, hdate, eventName, current, next, nowLocal)
	}

	printTodayRich(cfg, loc, date, s, hdate, eventName, current, next, nowLocal)
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// printTodayRich renders the colored terminal output for the schedule.
func printTodayRich(cfg *config.Config, loc resolvedLocation, date time.Time, s prayer.Schedule,
	hdate hijri.Date, eventName string, current, next *prayer.Prayer, now time.Time) {

	fmt.Println()
	fmt.Printf("  %s\n", display.Bold("Prayer Times"))
	fmt.Println()

	fmt.Printf("  %s\n", loc.Label)
	fmt.Printf("  %s\n", date.Format("02 Jan 2006"))
	fmt.Printf("  %s\n", hdate.Format())
	if eventName != "" {
		fmt.Printf("  %s\n", display.Yellow(eventName))
	}
	fmt.Println()

	selected := selectedPrayers(cfg)
	maxNameLen := 0
	for _, name := range selected {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	for _, name := range selected {
		t, ok := s.Lookup(name)
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %-*s  %s", maxNameLen, name, displayTime(t, cfg))

		switch {
		case !t.Reachable():
			fmt.Println(display.Dim(line))
		case current != nil && name == current.Name:
			fmt.Println(display.Dim(line))
		case next != nil && name == next.Name:
			remaining := prayer.FormatRemaining(prayer.TimeRemaining(*next, now))
			fmt.Println(display.Accent(line) + display.Accent(fmt.Sprintf("  <- next in %s", remaining)))
		default:
			fmt.Println(line)
		}
	}

	fmt.Println()
}

// todayJSON is the JSON output structure for the root command.
type todayJSON struct {
	Location todayJSONLocation `json:"location"`
	Date     todayJSONDate     `json:"date"`
	Timings  map[string]string `json:"timings"`
	// Minutes holds minutes-since-midnight for reachable events, for
	// scheduling consumers.
	Minutes map[string]int `json:"minutes_since_midnight"`
	Current string         `json:"current,omitempty"`
	Next    *todayJSONNext `json:"next,omitempty"`
}

type todayJSONLocation struct {
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	UTCOffset float64 `json:"utc_offset"`
}

type todayJSONDate struct {
	Gregorian string `json:"gregorian"`
	Hijri     string `json:"hijri"`
	Event     string `json:"event,omitempty"`
}

type todayJSONNext struct {
	Prayer    string `json:"prayer"`
	Time      string `json:"time"`
	Remaining string `json:"remaining"`
}

// printTodayJSON renders structured JSON output.
func printTodayJSON(cfg *config.Config, loc resolvedLocation, date time.Time, s prayer.Schedule,
	hdate hijri.Date, eventName string, current, next *prayer.Prayer, now time.Time) error {

	timings := make(map[string]string)
	minutes := make(map[string]int)
	for _, name := range selectedPrayers(cfg) {
		t, ok := s.Lookup(name)
		if !ok {
			continue
		}
		timings[strings.ToLower(name)] = t.String()
		if m, ok := t.Minutes(); ok {
			minutes[strings.ToLower(name)] = m
		}
	}

	out := todayJSON{
		Location: todayJSONLocation{
			Label:     loc.Label,
			Latitude:  loc.Lat,
			Longitude: loc.Lng,
			UTCOffset: loc.UTCOffset,
		},
		Date: todayJSONDate{
			Gregorian: date.Format("2006-01-02"),
			Hijri:     hdate.Format(),
			Event:     eventName,
		},
		Timings: timings,
		Minutes: minutes,
	}

	if current != nil {
		out.Current = strings.ToLower(current.Name)
	}
	if next != nil {
		out.Next = &todayJSONNext{
			Prayer:    strings.ToLower(next.Name),
			Time:      next.Time.Format(goTimeFormat(cfg)),
			Remaining: prayer.FormatRemaining(prayer.TimeRemaining(*next, now)),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
