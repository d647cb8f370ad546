package geo

import (
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"exact", "Yangon", false},
		{"lowercase", "yangon", false},
		{"mixed case with spaces", "  kUaLa LuMpUr ", false},
		{"unknown", "Atlantis", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Lookup(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Lookup(%q) expected error, got %+v", tt.in, loc)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.in, err)
			}
			if loc.Latitude == 0 && loc.Longitude == 0 {
				t.Errorf("Lookup(%q) returned zero coordinates", tt.in)
			}
		})
	}
}

func TestLookup_Yangon(t *testing.T) {
	loc, err := Lookup("Yangon")
	if err != nil {
		t.Fatal(err)
	}
	if loc.Latitude != 16.8409 || loc.Longitude != 96.1735 || loc.UTCOffset != 6.5 {
		t.Errorf("Yangon = %+v", loc)
	}
	if got := loc.Label(); got != "Yangon, Myanmar" {
		t.Errorf("Label() = %q, want %q", got, "Yangon, Myanmar")
	}
}

func TestCities_SortedAndFiltered(t *testing.T) {
	all := Cities("")
	if len(all) < 20 {
		t.Fatalf("directory suspiciously small: %d entries", len(all))
	}
	if !sort.SliceIsSorted(all, func(i, j int) bool { return all[i].Name < all[j].Name }) {
		t.Error("Cities(\"\") not sorted by name")
	}

	mm := Cities("myanmar")
	if len(mm) != 2 {
		t.Fatalf("Cities(myanmar) = %d entries, want 2", len(mm))
	}
	for _, l := range mm {
		if l.Country != "Myanmar" {
			t.Errorf("filtered entry from wrong country: %+v", l)
		}
	}

	if got := Cities("zzz-nowhere"); len(got) != 0 {
		t.Errorf("Cities(zzz-nowhere) = %d entries, want 0", len(got))
	}
}

func TestDirectory_PlausibleCoordinates(t *testing.T) {
	for _, l := range Cities("") {
		if l.Latitude < -90 || l.Latitude > 90 {
			t.Errorf("%s: latitude %v out of range", l.Name, l.Latitude)
		}
		if l.Longitude < -180 || l.Longitude > 180 {
			t.Errorf("%s: longitude %v out of range", l.Name, l.Longitude)
		}
		if l.UTCOffset < -12 || l.UTCOffset > 14 {
			t.Errorf("%s: UTC offset %v out of range", l.Name, l.UTCOffset)
		}
	}
}
