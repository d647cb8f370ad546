package astro

import "math"

func rad(deg float64) float64 { return deg * math.Pi / 180 }
func deg(rad float64) float64 { return rad * 180 / math.Pi }

// HourAngle returns the magnitude, in degrees, of the sun's hour angle when
// it crosses altitudeDeg at the given latitude and declination. The boolean
// is false when the sun never reaches that altitude on the given day (polar
// day or polar night); the caller must not treat the returned value as
// meaningful in that case.
//
// The intermediate cosine is checked against [-1,1] before acos so an
// out-of-range ratio becomes an explicit "unreachable" instead of a NaN.
func HourAngle(latDeg, declDeg, altitudeDeg float64) (float64, bool) {
	lat := rad(latDeg)
	decl := rad(declDeg)
	alt := rad(altitudeDeg)

	cosH := (math.Sin(alt) - math.Sin(lat)*math.Sin(decl)) /
		(math.Cos(lat) * math.Cos(decl))
	if cosH < -1 || cosH > 1 {
		return 0, false
	}

	return deg(math.Acos(cosH)), true
}

// AsrAltitude derives the target solar altitude for Asr from the shadow
// convention: the prayer begins when an object's shadow equals shadowFactor
// times its height plus the shadow it casts at solar noon. shadowFactor is
// 1 for the Shafi/Maliki/Hanbali convention and 2 for Hanafi.
//
// The denominator can only vanish when shadowFactor+tan|lat-decl| crosses
// zero, which does not occur for factors 1 and 2 at latitudes where the sun
// rises at all; math.Atan is total regardless, so no guard is needed.
func AsrAltitude(latDeg, declDeg float64, shadowFactor int) float64 {
	return deg(math.Atan(1 / (float64(shadowFactor) + math.Tan(rad(math.Abs(latDeg-declDeg))))))
}
