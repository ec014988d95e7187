// Package astro converts catalog (equatorial) coordinates into an observer's
// horizon coordinates. It does a single-epoch transform with no refraction,
// nutation or proper motion.
package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"
)

// SiderealDay is the length of one mean sidereal day.
const SiderealDay = 86164090500 * time.Microsecond

// CivilTime is a local calendar date and clock reading plus the zone offset
// that turns it into UT. Fields are not validated.
type CivilTime struct {
	Year, Month, Day int
	Hour, Minute     int
	Second           float64
	ZoneOffsetHours  float64 // local minus UTC
}

// CivilFromTime samples t in its own location.
func CivilFromTime(t time.Time) CivilTime {
	_, offset := t.Zone()
	return CivilTime{
		Year:            t.Year(),
		Month:           int(t.Month()),
		Day:             t.Day(),
		Hour:            t.Hour(),
		Minute:          t.Minute(),
		Second:          float64(t.Second()) + float64(t.Nanosecond())/1e9,
		ZoneOffsetHours: float64(offset) / 3600,
	}
}

// JulianDay returns the Julian day of the civil time in UT.
func (c CivilTime) JulianDay() float64 {
	hours := float64(c.Hour) + float64(c.Minute)/60 + c.Second/3600 - c.ZoneOffsetHours
	return julian.CalendarGregorianToJD(c.Year, c.Month, float64(c.Day)+hours/24)
}

// GMST returns Greenwich mean sidereal time in degrees, in [0, 360).
func GMST(c CivilTime) float64 {
	return timeToDegrees(sidereal.Mean(c.JulianDay()))
}

// LMST returns local mean sidereal time in degrees for an observer at
// longitudeDeg (east positive). The result is GMST plus longitude and is
// not reduced; use NormalizeDegrees before comparing values.
func LMST(c CivilTime, longitudeDeg float64) float64 {
	return GMST(c) + longitudeDeg
}

// NormalizeDegrees reduces deg into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

func timeToDegrees(t unit.Time) float64 {
	return t.Angle().Deg()
}
