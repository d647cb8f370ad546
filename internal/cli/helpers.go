package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/waqt-dev/waqt/internal/cache"
	"github.com/waqt-dev/waqt/internal/config"
	"github.com/waqt-dev/waqt/internal/geo"
	"github.com/waqt-dev/waqt/internal/prayer"
)

// schedules memoises computations for the lifetime of one invocation.
var schedules = cache.New()

// resolvedLocation is where and in which civil offset to compute.
type resolvedLocation struct {
	Lat, Lng  float64
	UTCOffset float64
	Label     string
}

// resolveLocation applies the location policy: explicit coordinates win,
// then the city directory. An explicit utc_offset always wins over the
// directory's; with bare coordinates and no offset, the local clock's
// current offset is used.
func resolveLocation(cfg *config.Config, now time.Time) (resolvedLocation, error) {
	explicitOffset := cfg.UTCOffset

	if cfg.Latitude != 0 || cfg.Longitude != 0 {
		loc := resolvedLocation{
			Lat:       cfg.Latitude,
			Lng:       cfg.Longitude,
			UTCOffset: localUTCOffset(now),
			Label:     fmt.Sprintf("%.4f, %.4f", cfg.Latitude, cfg.Longitude),
		}
		if explicitOffset != nil {
			loc.UTCOffset = *explicitOffset
		}
		if cfg.City != "" {
			loc.Label = cfg.City
		}
		log.Debug().Float64("lat", loc.Lat).Float64("lng", loc.Lng).
			Float64("utc_offset", loc.UTCOffset).Msg("location from coordinates")
		return loc, nil
	}

	if cfg.City != "" {
		entry, err := geo.Lookup(cfg.City)
		if err != nil {
			return resolvedLocation{}, err
		}
		loc := resolvedLocation{
			Lat:       entry.Latitude,
			Lng:       entry.Longitude,
			UTCOffset: entry.UTCOffset,
			Label:     entry.Label(),
		}
		if explicitOffset != nil {
			loc.UTCOffset = *explicitOffset
		}
		log.Debug().Str("city", entry.Name).Float64("utc_offset", loc.UTCOffset).
			Msg("location from city directory")
		return loc, nil
	}

	return resolvedLocation{}, fmt.Errorf(
		"no location configured; pass --city or --latitude/--longitude, or run 'waqt config set city <name>'")
}

// localUTCOffset returns the local clock's offset at the given instant, in
// hours. This is the only place DST sneaks in, and only as a default.
func localUTCOffset(now time.Time) float64 {
	_, secs := now.Zone()
	return float64(secs) / 3600
}

// fixedZone builds a time.Location for a fractional-hour offset.
func fixedZone(offsetHours float64) *time.Location {
	secs := int(offsetHours * 3600)
	sign := "+"
	if offsetHours < 0 {
		sign = "-"
	}
	h := int(offsetHours)
	m := int((offsetHours - float64(h)) * 60)
	if h < 0 {
		h = -h
	}
	if m < 0 {
		m = -m
	}
	return time.FixedZone(fmt.Sprintf("UTC%s%d:%02d", sign, h, m), secs)
}

// resolveDate returns the civil date to compute: the --date flag if given,
// otherwise today in the resolved offset.
func resolveDate(loc resolvedLocation, now time.Time) (time.Time, error) {
	if FlagDate != "" {
		d, err := time.ParseInLocation("2006-01-02", FlagDate, fixedZone(loc.UTCOffset))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", FlagDate)
		}
		return d, nil
	}
	return now.In(fixedZone(loc.UTCOffset)), nil
}

// requestFor assembles the engine request for one date.
func requestFor(cfg *config.Config, loc resolvedLocation, date time.Time) (prayer.Request, error) {
	method, err := prayer.ParseMethod(cfg.Method)
	if err != nil {
		return prayer.Request{}, err
	}

	req := prayer.Request{
		Latitude:  loc.Lat,
		Longitude: loc.Lng,
		UTCOffset: loc.UTCOffset,
		Year:      date.Year(),
		Month:     date.Month(),
		Day:       date.Day(),
		Method:    method,
		FajrAngle: cfg.FajrAngle,
		IshaAngle: cfg.IshaAngle,
		AsrFactor: cfg.AsrFactorOrDefault(1),
	}
	if cfg.IshaInterval != nil {
		req.IshaInterval = *cfg.IshaInterval
	}
	return req, nil
}

// scheduleFor computes (or recalls) the schedule for one date.
func scheduleFor(cfg *config.Config, loc resolvedLocation, date time.Time) (prayer.Schedule, error) {
	req, err := requestFor(cfg, loc, date)
	if err != nil {
		return prayer.Schedule{}, err
	}

	s := schedules.Compute(req)
	log.Debug().Str("date", date.Format("2006-01-02")).Str("method", req.Method.String()).
		Interface("times", s.Strings()).Msg("schedule computed")
	return s, nil
}

// selectedPrayers returns the event names to display, from config or the
// full default list.
func selectedPrayers(cfg *config.Config) []string {
	if cfg.Prayers == "" {
		return prayer.EventNames
	}
	names := strings.Split(cfg.Prayers, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}

// goTimeFormat maps the config's "12h"/"24h" to a Go layout for wall-clock
// rendering in next/countdown paths.
func goTimeFormat(cfg *config.Config) string {
	if cfg.TimeFormat == "24h" {
		return "15:04"
	}
	return "3:04 PM"
}

// displayTime renders an engine time for the config's format, with a short
// dash for unreachable events so table columns stay stable.
func displayTime(t prayer.Time, cfg *config.Config) string {
	min, ok := t.Minutes()
	if !ok {
		return "—"
	}
	if cfg.TimeFormat == "24h" {
		return fmt.Sprintf("%02d:%02d", min/60, min%60)
	}
	return t.String()
}
