// Package hijri converts Gregorian dates to the Hijri (Islamic) calendar
// using the tabular arithmetic calendar with the civil (Friday) epoch.
//
// The arithmetic calendar approximates the observational one; actual month
// starts can differ by a day or two depending on moon sighting, which is
// why every entry point takes a caller-supplied day adjustment.
package hijri

import (
	"fmt"
	"time"
)

// Date is a Hijri calendar date. Day and Month are 1-based.
type Date struct {
	Day   int
	Month int
	Year  int
}

// monthNames are the twelve Hijri months, index 0 = Muharram.
var monthNames = [12]string{
	"Muharram", "Safar", "Rabi' al-Awwal", "Rabi' al-Thani",
	"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Dhu al-Qi'dah", "Dhu al-Hijjah",
}

// MonthName returns the English name of the date's month, or "" for an
// out-of-range month.
func (d Date) MonthName() string {
	if d.Month < 1 || d.Month > 12 {
		return ""
	}
	return monthNames[d.Month-1]
}

// Format renders the date as "DD Month YYYY AH".
func (d Date) Format() string {
	name := d.MonthName()
	if name == "" {
		return ""
	}
	return fmt.Sprintf("%d %s %d AH", d.Day, name, d.Year)
}

// FromGregorian converts a Gregorian calendar date to Hijri. adjustDays
// shifts the Gregorian day before conversion (typically -1..+2) to align
// the arithmetic calendar with a locally sighted month start.
func FromGregorian(year int, month time.Month, day, adjustDays int) Date {
	jd := julianDayNumber(year, int(month), day) + adjustDays

	// Tabular Islamic calendar, civil epoch (JDN 1948440 = 1 Muharram 1 AH).
	// 10631 days per 30-year cycle.
	l := jd - 1948440 + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29

	hm := (24 * l) / 709
	hd := l - (709*hm)/24
	hy := 30*n + j - 30

	return Date{Day: hd, Month: hm, Year: hy}
}

// julianDayNumber returns the Julian day number at noon of the given
// Gregorian calendar date.
func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}
