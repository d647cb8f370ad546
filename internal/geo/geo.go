// Package geo is the bundled city directory: display names, coordinates,
// and standard-time UTC offsets for common lookups by name.
//
// Offsets are standard time, not DST-adjusted; callers in a DST zone should
// supply the in-effect offset explicitly.
package geo

import (
	"fmt"
	"sort"
	"strings"
)

// Location is one directory entry.
type Location struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
	UTCOffset float64 // standard-time offset, hours east of UTC
}

// Label returns the "City, Country" display string.
func (l Location) Label() string {
	return l.Name + ", " + l.Country
}

var directory = []Location{
	{"Amman", "Jordan", 31.9454, 35.9284, 3},
	{"Ankara", "Turkey", 39.9334, 32.8597, 3},
	{"Baghdad", "Iraq", 33.3152, 44.3661, 3},
	{"Cairo", "Egypt", 30.0444, 31.2357, 2},
	{"Casablanca", "Morocco", 33.5731, -7.5898, 1},
	{"Dhaka", "Bangladesh", 23.8103, 90.4125, 6},
	{"Dubai", "United Arab Emirates", 25.2048, 55.2708, 4},
	{"Islamabad", "Pakistan", 33.6844, 73.0479, 5},
	{"Istanbul", "Turkey", 41.0082, 28.9784, 3},
	{"Jakarta", "Indonesia", -6.2088, 106.8456, 7},
	{"Karachi", "Pakistan", 24.8607, 67.0011, 5},
	{"Kuala Lumpur", "Malaysia", 3.1390, 101.6869, 8},
	{"Kuwait City", "Kuwait", 29.3759, 47.9774, 3},
	{"Lahore", "Pakistan", 31.5204, 74.3587, 5},
	{"London", "United Kingdom", 51.5074, -0.1278, 0},
	{"Madinah", "Saudi Arabia", 24.5247, 39.5692, 3},
	{"Makkah", "Saudi Arabia", 21.4225, 39.8262, 3},
	{"Mandalay", "Myanmar", 21.9588, 96.0891, 6.5},
	{"Muscat", "Oman", 23.5880, 58.3829, 4},
	{"New York", "United States", 40.7128, -74.0060, -5},
	{"Paris", "France", 48.8566, 2.3522, 1},
	{"Riyadh", "Saudi Arabia", 24.7136, 46.6753, 3},
	{"Singapore", "Singapore", 1.3521, 103.8198, 8},
	{"Sydney", "Australia", -33.8688, 151.2093, 10},
	{"Tehran", "Iran", 35.6892, 51.3890, 3.5},
	{"Toronto", "Canada", 43.6532, -79.3832, -5},
	{"Tunis", "Tunisia", 36.8065, 10.1815, 1},
	{"Yangon", "Myanmar", 16.8409, 96.1735, 6.5},
}

// Lookup finds a city by name, case-insensitively.
func Lookup(name string) (*Location, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, fmt.Errorf("empty city name")
	}

	for i := range directory {
		if strings.ToLower(directory[i].Name) == needle {
			loc := directory[i]
			return &loc, nil
		}
	}

	return nil, fmt.Errorf("unknown city %q; run 'waqt cities' for the directory", name)
}

// Cities returns the directory filtered by an optional substring match on
// the city or country name, sorted by city name.
func Cities(filter string) []Location {
	needle := strings.ToLower(strings.TrimSpace(filter))

	var out []Location
	for _, l := range directory {
		if needle == "" ||
			strings.Contains(strings.ToLower(l.Name), needle) ||
			strings.Contains(strings.ToLower(l.Country), needle) {
			out = append(out, l)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
