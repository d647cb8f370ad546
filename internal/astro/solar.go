// Package astro contains the solar-position kernels the prayer-time engine
// is built on: a day-of-year fraction referenced to UTC, a short-term
// declination / equation-of-time model, and the hour-angle solver that
// finds when the sun crosses a target altitude.
//
// Everything here is a pure function of its arguments. Angles are in
// degrees at every package boundary; radians never leak out.
package astro

import (
	"math"
	"time"
)

// State is the sun's position summary for one instant: its declination and
// the equation-of-time correction between mean and apparent solar time.
type State struct {
	DeclinationDeg    float64
	EquationOfTimeMin float64
}

// Position evaluates the short-term solar approximation at the given
// day-of-year fraction (see DayFraction). It accepts any real input;
// values outside [1,366] are valid because the underlying terms are
// periodic, they just don't name a calendar day.
func Position(dayFraction float64) State {
	b := (360.0 / 365.0) * (dayFraction - 81)
	br := b * math.Pi / 180

	return State{
		DeclinationDeg:    23.45 * math.Sin(br),
		EquationOfTimeMin: 9.87*math.Sin(2*br) - 7.53*math.Cos(br) - 1.5*math.Sin(br),
	}
}

// DayFraction maps a local civil time to a continuous 1-based day-of-year
// fraction referenced to UTC. Day 1.0 is midnight UTC on January 1 of the
// date's own year. When localHour-utcOffset leaves [0,24) the day index is
// shifted and the hour wrapped, so the fraction always sits on the correct
// UTC calendar day.
func DayFraction(year int, month time.Month, day int, localHour, utcOffset float64) float64 {
	doy := float64(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).YearDay())

	utcHour := localHour - utcOffset
	shift := math.Floor(utcHour / 24)
	utcHour -= shift * 24

	return doy + shift + utcHour/24
}
