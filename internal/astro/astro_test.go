package astro

import (
	"math"
	"testing"
	"time"
)

func TestDayFraction(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		day       int
		localHour float64
		utcOffset float64
		want      float64
	}{
		{"jan 1 midnight UTC", 2025, time.January, 1, 0, 0, 1.0},
		{"jan 1 noon UTC", 2025, time.January, 1, 12, 0, 1.5},
		{"mar 1 non-leap", 2025, time.March, 1, 0, 0, 60.0},
		{"mar 1 leap year", 2024, time.March, 1, 0, 0, 61.0},
		{"dec 31 non-leap", 2025, time.December, 31, 0, 0, 365.0},
		// Local midnight at UTC+6.5 is still the previous UTC day.
		{"offset shifts back a day", 2025, time.January, 2, 0, 6.5, 1 + 17.5/24},
		// Local 22:00 at UTC-3 is 01:00 the next UTC day.
		{"offset shifts forward a day", 2025, time.January, 1, 22, -3, 2 + 1.0/24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DayFraction(tt.year, tt.month, tt.day, tt.localHour, tt.utcOffset)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DayFraction = %.9f, want %.9f", got, tt.want)
			}
		})
	}
}

func TestPosition_Equinox(t *testing.T) {
	// Around day 81 the declination term crosses zero.
	st := Position(81)
	if math.Abs(st.DeclinationDeg) > 1e-9 {
		t.Errorf("declination at day 81 = %f, want 0", st.DeclinationDeg)
	}
}

func TestPosition_Solstices(t *testing.T) {
	// Summer solstice: B = 90 degrees near day 172.25.
	summer := 81 + 365.0/4
	st := Position(summer)
	if math.Abs(st.DeclinationDeg-23.45) > 1e-9 {
		t.Errorf("summer declination = %f, want 23.45", st.DeclinationDeg)
	}

	winter := 81 + 3*365.0/4
	st = Position(winter)
	if math.Abs(st.DeclinationDeg+23.45) > 1e-9 {
		t.Errorf("winter declination = %f, want -23.45", st.DeclinationDeg)
	}
}

func TestPosition_Periodic(t *testing.T) {
	a := Position(40)
	b := Position(40 + 365)
	if math.Abs(a.DeclinationDeg-b.DeclinationDeg) > 1e-9 ||
		math.Abs(a.EquationOfTimeMin-b.EquationOfTimeMin) > 1e-9 {
		t.Errorf("Position is not periodic over 365 days: %+v vs %+v", a, b)
	}
}

func TestPosition_EoTBounded(t *testing.T) {
	// The equation of time never exceeds ~17 minutes in magnitude.
	for d := 1.0; d <= 366; d++ {
		if eot := Position(d).EquationOfTimeMin; math.Abs(eot) > 17.5 {
			t.Fatalf("EoT(%v) = %f minutes, outside plausible range", d, eot)
		}
	}
}

func TestHourAngle(t *testing.T) {
	tests := []struct {
		name     string
		lat      float64
		decl     float64
		altitude float64
		wantOK   bool
		wantDeg  float64 // checked only when wantOK
	}{
		// Equator at equinox: the sun crosses the horizon exactly 90
		// degrees from the meridian.
		{"equator equinox horizon", 0, 0, 0, true, 90},
		{"equator equinox zenith", 0, 0, 90, true, 0},
		// 80N at winter solstice: the sun stays below the horizon all day.
		{"polar night sunrise", 80, -23.45, -0.833, false, 0},
		// 80N at summer solstice: the sun never drops to -18.
		{"polar day astronomical twilight", 80, 23.45, -18, false, 0},
		// Mid-latitude sunrise lands between 6 and 12 hours of angle.
		{"mid latitude sunrise", 45, 10, -0.833, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HourAngle(tt.lat, tt.decl, tt.altitude)
			if ok != tt.wantOK {
				t.Fatalf("HourAngle ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.IsNaN(got) {
				t.Fatalf("HourAngle returned NaN with ok=true")
			}
			if tt.wantDeg != 0 && math.Abs(got-tt.wantDeg) > 1e-6 {
				t.Errorf("HourAngle = %f, want %f", got, tt.wantDeg)
			}
			if got < 0 || got > 180 {
				t.Errorf("HourAngle = %f, outside [0,180]", got)
			}
		})
	}
}

func TestAsrAltitude(t *testing.T) {
	// Equinox at the equator: the noon shadow is zero, so the factor-1
	// altitude is atan(1) = 45 degrees and factor-2 is atan(1/2).
	if got := AsrAltitude(0, 0, 1); math.Abs(got-45) > 1e-9 {
		t.Errorf("AsrAltitude(0,0,1) = %f, want 45", got)
	}
	want2 := math.Atan(0.5) * 180 / math.Pi
	if got := AsrAltitude(0, 0, 2); math.Abs(got-want2) > 1e-9 {
		t.Errorf("AsrAltitude(0,0,2) = %f, want %f", got, want2)
	}
}

func TestAsrAltitude_FactorLowersTarget(t *testing.T) {
	// A longer shadow means the sun is lower, so factor 2 must always give
	// a smaller altitude than factor 1 at latitudes where the sun rises.
	for lat := -55.0; lat <= 55; lat += 5 {
		for decl := -23.45; decl <= 23.45; decl += 4 {
			a1 := AsrAltitude(lat, decl, 1)
			a2 := AsrAltitude(lat, decl, 2)
			if a2 >= a1 {
				t.Fatalf("AsrAltitude(lat=%v, decl=%v): factor 2 (%f) >= factor 1 (%f)",
					lat, decl, a2, a1)
			}
		}
	}
}
