package prayer

import (
	"fmt"
	"strings"
)

// Method identifies a calculation convention for the Fajr and Isha angles.
type Method int

const (
	// MWL is the Muslim World League convention (-18 / -17).
	MWL Method = iota
	// Karachi is the University of Islamic Sciences, Karachi (-18 / -18).
	Karachi
	// Egypt is the Egyptian General Authority of Survey (-19.5 / -17.5).
	Egypt
	// UmmAlQura uses -18.5 for Fajr and a fixed interval after Maghrib for
	// Isha instead of an angle. The interval is a placeholder for the
	// seasonally varying published value; see DefaultIshaInterval.
	UmmAlQura
	// Custom carries caller-supplied angles.
	Custom
)

// DefaultIshaInterval is the minutes after Maghrib used for UmmAlQura Isha
// when the caller does not supply one.
const DefaultIshaInterval = 90

// Params are the resolved solver inputs for a method: both angles in
// degrees below the horizon, and a nonzero IshaInterval (minutes after
// Maghrib) when Isha is interval-based rather than angle-based.
type Params struct {
	FajrAngle    float64
	IshaAngle    float64
	IshaInterval int
}

// presetAngles maps each non-Custom method to its (fajr, isha) pair.
var presetAngles = map[Method][2]float64{
	MWL:       {-18, -17},
	Karachi:   {-18, -18},
	Egypt:     {-19.5, -17.5},
	UmmAlQura: {-18.5, 0}, // Isha is interval-based; the angle is unused
}

// karachiDefault backs the Custom fallback when a caller picks Custom but
// leaves an angle unset.
var karachiDefault = presetAngles[Karachi]

// Params resolves the method into concrete solver inputs.
//
// customFajr/customIsha are consulted only for the Custom method; a nil
// angle falls back to the Karachi default for that side, keeping the
// function total. ishaInterval is consulted only for UmmAlQura; zero or
// negative selects DefaultIshaInterval.
func (m Method) Params(customFajr, customIsha *float64, ishaInterval int) Params {
	switch m {
	case Custom:
		p := Params{FajrAngle: karachiDefault[0], IshaAngle: karachiDefault[1]}
		if customFajr != nil {
			p.FajrAngle = *customFajr
		}
		if customIsha != nil {
			p.IshaAngle = *customIsha
		}
		return p
	case UmmAlQura:
		if ishaInterval <= 0 {
			ishaInterval = DefaultIshaInterval
		}
		return Params{FajrAngle: presetAngles[m][0], IshaInterval: ishaInterval}
	default:
		angles, ok := presetAngles[m]
		if !ok {
			angles = karachiDefault
		}
		return Params{FajrAngle: angles[0], IshaAngle: angles[1]}
	}
}

// String returns the canonical lowercase method name.
func (m Method) String() string {
	switch m {
	case MWL:
		return "mwl"
	case Karachi:
		return "karachi"
	case Egypt:
		return "egypt"
	case UmmAlQura:
		return "ummalqura"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Description returns the long-form name shown by the methods command.
func (m Method) Description() string {
	switch m {
	case MWL:
		return "Muslim World League"
	case Karachi:
		return "University of Islamic Sciences, Karachi"
	case Egypt:
		return "Egyptian General Authority of Survey"
	case UmmAlQura:
		return "Umm Al-Qura University, Makkah"
	case Custom:
		return "Custom angles"
	default:
		return "Unknown"
	}
}

// Methods lists every method in display order.
var Methods = []Method{MWL, Karachi, Egypt, UmmAlQura, Custom}

// ParseMethod resolves a method name, accepting a few common spellings.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mwl", "muslim-world-league":
		return MWL, nil
	case "karachi":
		return Karachi, nil
	case "egypt", "egyptian":
		return Egypt, nil
	case "ummalqura", "umm-al-qura", "makkah":
		return UmmAlQura, nil
	case "custom":
		return Custom, nil
	default:
		return 0, fmt.Errorf("unknown method %q; valid methods: %s", s, strings.Join(MethodNames(), ", "))
	}
}

// MethodNames returns the canonical names of all methods.
func MethodNames() []string {
	names := make([]string, len(Methods))
	for i, m := range Methods {
		names[i] = m.String()
	}
	return names
}
