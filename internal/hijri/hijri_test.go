package hijri

import (
	"testing"
	"time"
)

func TestFromGregorian(t *testing.T) {
	tests := []struct {
		name   string
		year   int
		month  time.Month
		day    int
		adjust int
		want   Date
	}{
		// Civil epoch: 1 Muharram 1 AH = 19 July 622 (proleptic Gregorian).
		{"epoch", 622, time.July, 19, 0, Date{1, 1, 1}},
		// Year 1 AH is a common year of 354 days.
		{"start of year 2", 623, time.July, 8, 0, Date{1, 1, 2}},
		// 1 Ramadan 1446 falls on 1 March 2025 in the civil tabular calendar.
		{"ramadan 1446 begins", 2025, time.March, 1, 0, Date{1, 9, 1446}},
		{"mid ramadan", 2025, time.March, 20, 0, Date{20, 9, 1446}},
		// Ramadan is a 30-day month, so Shawwal begins 31 March.
		{"eid al-fitr 1446", 2025, time.March, 31, 0, Date{1, 10, 1446}},
		// A positive adjustment moves the Hijri date forward one day.
		{"plus-one adjustment", 2025, time.March, 20, 1, Date{21, 9, 1446}},
		{"minus-one adjustment", 2025, time.March, 20, -1, Date{19, 9, 1446}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromGregorian(tt.year, tt.month, tt.day, tt.adjust)
			if got != tt.want {
				t.Errorf("FromGregorian(%d-%02d-%02d, %+d) = %+v, want %+v",
					tt.year, tt.month, tt.day, tt.adjust, got, tt.want)
			}
		})
	}
}

// Stepping one Gregorian day at a time must step the Hijri calendar one day
// at a time too: days run 1..29 or 1..30 and months run 1..12.
func TestFromGregorian_Continuity(t *testing.T) {
	prev := FromGregorian(2024, time.January, 1, 0)
	cur := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 800; i++ {
		got := FromGregorian(cur.Year(), cur.Month(), cur.Day(), 0)

		switch {
		case got.Day == prev.Day+1 && got.Month == prev.Month && got.Year == prev.Year:
			// normal step
		case got.Day == 1 && got.Month == prev.Month+1 && got.Year == prev.Year:
			if prev.Day != 29 && prev.Day != 30 {
				t.Fatalf("month %d ended after %d days", prev.Month, prev.Day)
			}
		case got.Day == 1 && got.Month == 1 && got.Year == prev.Year+1:
			if prev.Month != 12 || (prev.Day != 29 && prev.Day != 30) {
				t.Fatalf("year %d ended at %+v", prev.Year, prev)
			}
		default:
			t.Fatalf("discontinuity: %+v -> %+v at %s", prev, got, cur.Format("2006-01-02"))
		}

		prev = got
		cur = cur.AddDate(0, 0, 1)
	}
}

func TestDateFormat(t *testing.T) {
	d := Date{Day: 20, Month: 9, Year: 1446}
	if got := d.Format(); got != "20 Ramadan 1446 AH" {
		t.Errorf("Format() = %q, want %q", got, "20 Ramadan 1446 AH")
	}

	bad := Date{Day: 1, Month: 13, Year: 1446}
	if got := bad.Format(); got != "" {
		t.Errorf("Format() of invalid month = %q, want empty", got)
	}
}

func TestEventFor(t *testing.T) {
	tests := []struct {
		day, month int
		want       string
		wantOK     bool
	}{
		{1, 9, "First day of Ramadan", true},
		{1, 10, "Eid al-Fitr", true},
		{10, 12, "Eid al-Adha", true},
		{10, 1, "Day of Ashura", true},
		{15, 9, "", false},
		{2, 10, "", false},
	}

	for _, tt := range tests {
		got, ok := EventFor(tt.day, tt.month)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("EventFor(%d, %d) = %q,%v, want %q,%v",
				tt.day, tt.month, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDateEvent(t *testing.T) {
	d := FromGregorian(2025, time.March, 31, 0) // Eid al-Fitr 1446
	name, ok := d.Event()
	if !ok || name != "Eid al-Fitr" {
		t.Errorf("Event() = %q,%v, want Eid al-Fitr,true", name, ok)
	}
}
