package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/waqt-dev/waqt/internal/config"
	"github.com/waqt-dev/waqt/internal/prayer"
)

func f64(v float64) *float64 { return &v }

func TestResolveLocation_CoordinatesWin(t *testing.T) {
	cfg := &config.Config{
		City:      "Karachi", // would resolve elsewhere
		Latitude:  16.8409,
		Longitude: 96.1735,
		UTCOffset: f64(6.5),
	}

	loc, err := resolveLocation(cfg, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if loc.Lat != 16.8409 || loc.Lng != 96.1735 || loc.UTCOffset != 6.5 {
		t.Errorf("resolveLocation = %+v, want explicit coordinates", loc)
	}
	// The city name still serves as the display label.
	if loc.Label != "Karachi" {
		t.Errorf("Label = %q, want city name", loc.Label)
	}
}

func TestResolveLocation_CityDirectory(t *testing.T) {
	cfg := &config.Config{City: "Yangon"}

	loc, err := resolveLocation(cfg, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if loc.Lat != 16.8409 || loc.UTCOffset != 6.5 {
		t.Errorf("resolveLocation = %+v, want Yangon directory entry", loc)
	}
	if loc.Label != "Yangon, Myanmar" {
		t.Errorf("Label = %q", loc.Label)
	}
}

func TestResolveLocation_ExplicitOffsetBeatsDirectory(t *testing.T) {
	cfg := &config.Config{City: "London", UTCOffset: f64(1)} // BST in effect

	loc, err := resolveLocation(cfg, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if loc.UTCOffset != 1 {
		t.Errorf("UTCOffset = %v, want explicit 1", loc.UTCOffset)
	}
}

func TestResolveLocation_Unconfigured(t *testing.T) {
	if _, err := resolveLocation(&config.Config{}, time.Now()); err == nil {
		t.Fatal("expected error with no location configured")
	}
}

func TestFixedZone(t *testing.T) {
	tests := []struct {
		offset   float64
		wantName string
		wantSecs int
	}{
		{6.5, "UTC+6:30", 23400},
		{0, "UTC+0:00", 0},
		{-5, "UTC-5:00", -18000},
		{-3.5, "UTC-3:30", -12600},
	}

	for _, tt := range tests {
		loc := fixedZone(tt.offset)
		name, secs := time.Now().In(loc).Zone()
		if name != tt.wantName || secs != tt.wantSecs {
			t.Errorf("fixedZone(%v) = %s/%d, want %s/%d", tt.offset, name, secs, tt.wantName, tt.wantSecs)
		}
	}
}

func TestResolveDate_Flag(t *testing.T) {
	FlagDate = "2025-03-20"
	defer func() { FlagDate = "" }()

	loc := resolvedLocation{UTCOffset: 6.5}
	d, err := resolveDate(loc, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 2025 || d.Month() != time.March || d.Day() != 20 {
		t.Errorf("resolveDate = %v", d)
	}
}

func TestResolveDate_InvalidFlag(t *testing.T) {
	FlagDate = "20/03/2025"
	defer func() { FlagDate = "" }()

	if _, err := resolveDate(resolvedLocation{}, time.Now()); err == nil {
		t.Fatal("expected error for malformed --date")
	}
}

func TestRequestFor(t *testing.T) {
	asr := 2
	interval := 100
	cfg := &config.Config{Method: "ummalqura", AsrFactor: &asr, IshaInterval: &interval}
	loc := resolvedLocation{Lat: 21.4225, Lng: 39.8262, UTCOffset: 3}
	date := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

	req, err := requestFor(cfg, loc, date)
	if err != nil {
		t.Fatal(err)
	}
	if req.Method != prayer.UmmAlQura || req.AsrFactor != 2 || req.IshaInterval != 100 {
		t.Errorf("requestFor = %+v", req)
	}
	if req.Latitude != 21.4225 || req.UTCOffset != 3 {
		t.Errorf("requestFor coordinates = %+v", req)
	}
}

func TestRequestFor_BadMethod(t *testing.T) {
	cfg := &config.Config{Method: "isna"}
	if _, err := requestFor(cfg, resolvedLocation{}, time.Now()); err == nil {
		t.Fatal("expected error for unknown method")
	}
}

func TestSelectedPrayers(t *testing.T) {
	if got := selectedPrayers(&config.Config{}); len(got) != len(prayer.EventNames) {
		t.Errorf("default selection = %v", got)
	}

	cfg := &config.Config{Prayers: "Fajr, Maghrib ,Isha"}
	got := selectedPrayers(cfg)
	want := []string{"Fajr", "Maghrib", "Isha"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("selectedPrayers = %v, want %v", got, want)
	}
}

func TestDisplayTime(t *testing.T) {
	cfg12 := &config.Config{TimeFormat: "12h"}
	cfg24 := &config.Config{TimeFormat: "24h"}

	tm := prayer.At(17 + 39.0/60)
	if got := displayTime(tm, cfg12); got != "5:39 PM" {
		t.Errorf("12h = %q", got)
	}
	if got := displayTime(tm, cfg24); got != "17:39" {
		t.Errorf("24h = %q", got)
	}
	if got := displayTime(prayer.Unreachable(), cfg12); got != "—" {
		t.Errorf("unreachable cell = %q, want dash", got)
	}
}
