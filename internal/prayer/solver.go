package prayer

import (
	"time"

	"github.com/waqt-dev/waqt/internal/astro"
)

// riseSetAltitudeDeg is the sun-center altitude defining sunrise and sunset:
// the solar semidiameter plus a fixed horizon-dip allowance.
const riseSetAltitudeDeg = -0.833

// refineRounds is the fixed-point budget for angle events. Declination and
// the equation of time drift slowly enough within a day that three
// re-evaluations converge at all non-polar latitudes.
const refineRounds = 3

// noonRounds is the budget for solar noon itself, which has no hour angle
// to solve and settles faster.
const noonRounds = 2

// Request carries every input of one computation. All fields are plain
// values; Compute never mutates the request and holds no state between
// calls, so identical requests always produce identical schedules.
type Request struct {
	Latitude  float64 // signed degrees, north positive
	Longitude float64 // signed degrees, east positive
	UTCOffset float64 // signed hours, fractional allowed; DST pre-resolved by the caller

	Year  int
	Month time.Month
	Day   int

	Method Method
	// FajrAngle and IshaAngle override the preset pair; consulted only
	// when Method is Custom. Nil falls back to the Karachi default.
	FajrAngle *float64
	IshaAngle *float64
	// AsrFactor is the shadow convention, 1 or 2. Zero means 1.
	AsrFactor int
	// IshaInterval is the minutes after Maghrib for interval-based Isha
	// (UmmAlQura). Zero selects DefaultIshaInterval.
	IshaInterval int
}

// asrFactor normalizes the shadow convention.
func (r Request) asrFactor() int {
	if r.AsrFactor == 2 {
		return 2
	}
	return 1
}

// Compute derives the six daily events for the request. The computation is
// pure and synchronous; polar edge cases surface as unreachable times,
// never as errors or NaN.
func Compute(req Request) Schedule {
	p := req.Method.Params(req.FajrAngle, req.IshaAngle, req.IshaInterval)

	// Solar state at the (refined) local noon drives Dhuhr and the Asr
	// altitude target.
	noon, noonState := solarNoon(req)

	asrAlt := astro.AsrAltitude(req.Latitude, noonState.DeclinationDeg, req.asrFactor())

	s := Schedule{
		Fajr:    solveEvent(req, p.FajrAngle, true),
		Sunrise: solveEvent(req, riseSetAltitudeDeg, true),
		Dhuhr:   At(noon),
		Asr:     solveEvent(req, asrAlt, false),
		Maghrib: solveEvent(req, riseSetAltitudeDeg, false),
	}

	if p.IshaInterval > 0 {
		// Interval-based Isha: a fixed offset after Maghrib. Solving the
		// placeholder angle would never converge to anything meaningful.
		s.Isha = s.Maghrib.Add(p.IshaInterval)
	} else {
		s.Isha = solveEvent(req, p.IshaAngle, false)
	}

	return s
}

// solarNoon refines the local clock time of the meridian crossing:
// noon = 12 + utcOffset - lng/15 - EoT/60, re-evaluating the equation of
// time at each improved estimate. It also returns the solar state at the
// final estimate.
func solarNoon(req Request) (float64, astro.State) {
	noon := 12.0
	var st astro.State
	for i := 0; i < noonRounds; i++ {
		st = astro.Position(astro.DayFraction(req.Year, req.Month, req.Day, noon, req.UTCOffset))
		noon = 12 + req.UTCOffset - req.Longitude/15 - st.EquationOfTimeMin/60
	}
	return noon, st
}

// solveEvent finds the local clock hour at which the sun crosses
// altitudeDeg, before or after the meridian. It starts from the noon-state
// estimate and then runs the fixed refinement rounds, re-evaluating the
// solar model at each successive time estimate so the declination and EoT
// drift across the day is absorbed. An unreachable hour angle at any round
// resolves the whole event to unreachable.
func solveEvent(req Request, altitudeDeg float64, beforeNoon bool) Time {
	t := 12.0
	for i := 0; i <= refineRounds; i++ {
		st := astro.Position(astro.DayFraction(req.Year, req.Month, req.Day, t, req.UTCOffset))
		noon := 12 + req.UTCOffset - req.Longitude/15 - st.EquationOfTimeMin/60

		h, ok := astro.HourAngle(req.Latitude, st.DeclinationDeg, altitudeDeg)
		if !ok {
			return Unreachable()
		}

		if beforeNoon {
			t = noon - h/15
		} else {
			t = noon + h/15
		}
	}
	return At(t)
}
