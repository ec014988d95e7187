package astro

import (
	"math"

	"github.com/soniakeys/unit"
)

// Horizon is a position in an observer's horizon frame.
type Horizon struct {
	Altitude float64 // degrees above the horizon, [-90, 90]
	Azimuth  float64 // degrees from north through east, [0, 360)
}

// EquatorialToHorizon converts a declination/right ascension pair into
// altitude/azimuth for an observer at latDeg whose local mean sidereal time
// is lmstDeg. All angles are in degrees; inputs are assumed in range.
func EquatorialToHorizon(decDeg, raDeg, latDeg, lmstDeg float64) Horizon {
	dec := unit.AngleFromDeg(decDeg)
	lat := unit.AngleFromDeg(latDeg)
	ha := unit.AngleFromDeg(lmstDeg - raDeg)

	sinDec, cosDec := dec.Sin(), dec.Cos()
	sinLat, cosLat := lat.Sin(), lat.Cos()
	cosHA := ha.Cos()

	sinAlt := sinDec*sinLat + cosDec*cosLat*cosHA
	alt := math.Asin(clampUnit(sinAlt))

	y := -cosDec * ha.Sin()
	x := sinDec*cosLat - cosDec*sinLat*cosHA
	az := math.Atan2(y, x)

	return Horizon{
		Altitude: unit.Angle(alt).Deg(),
		Azimuth:  NormalizeDegrees(unit.Angle(az).Deg()),
	}
}

// clampUnit keeps rounding error from pushing asin out of its domain.
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
