package sky

import (
	gomath "math"

	"github.com/Faultbox/skydome/pkg/astro"
	"github.com/Faultbox/skydome/pkg/math"
)

// starBase is the marker position before rotation: on the horizon, due north.
var starBase = math.Vec3{X: -1}

// axisFix aligns the grid model's pole (+Y) with the scene's horizon frame.
var axisFix = math.QuatFromRotationZ(gomath.Pi / 2)

func radians(deg float64) float32 {
	return float32(deg * gomath.Pi / 180)
}

// SphereRotation returns the rigid rotation of the celestial sphere for an
// observer at latDeg when local sidereal time is lmstDeg. It is anchored on
// two directions: the celestial pole (dec 90, ra 0) gives the tilt and a
// point on the equator (dec 0, ra 0) gives the turn.
func SphereRotation(latDeg, lmstDeg float64) math.Quat {
	pole := astro.EquatorialToHorizon(90, 0, latDeg, lmstDeg)
	anchor := astro.EquatorialToHorizon(0, 0, latDeg, lmstDeg)

	tilt := math.QuatFromRotationZ(-radians(pole.Altitude))
	turn := math.QuatFromRotationY(-radians(anchor.Azimuth))
	return axisFix.Mul(tilt).Mul(turn)
}

// HorizonRotation maps the base marker point to the direction of pos.
func HorizonRotation(pos astro.Horizon) math.Quat {
	az := math.QuatFromRotationY(-radians(pos.Azimuth))
	alt := math.QuatFromRotationZ(-radians(pos.Altitude))
	return az.Mul(alt)
}

// StarTransform returns the marker transform for a star. Scale is 1; the
// caller applies marker scaling afterwards.
func StarTransform(star Star, latDeg, lmstDeg float64) Transform {
	rot := HorizonRotation(astro.EquatorialToHorizon(star.Dec, star.RA, latDeg, lmstDeg))
	return Transform{
		Translation: rot.Rotate(starBase),
		Rotation:    rot,
		Scale:       math.Splat(1),
	}
}

// OrientScene recomputes every sky-bound transform for the observer at the
// given civil time. Previous transforms are replaced, not adjusted, so the
// result depends only on the inputs.
func OrientScene(obs Observer, at astro.CivilTime, scene *Scene) {
	lmst := astro.LMST(at, obs.Longitude)

	sphere := IdentityTransform()
	sphere.Rotation = SphereRotation(obs.Latitude, lmst)
	for i := range scene.Background {
		if scene.Background[i].Groups.Has(GroupSky) {
			scene.Background[i].Transform = sphere
		}
	}

	for i := range scene.Stars {
		scene.Stars[i].Transform = StarTransform(scene.Stars[i].Star, obs.Latitude, lmst)
	}
}

const maxStarScale = 1.5

// StarScale returns the marker scale for a camera orbit radius: markers
// shrink when zoomed in and stop growing past radius 5.
func StarScale(cameraRadius float32) float32 {
	s := maxStarScale * cameraRadius / 5
	if s < maxStarScale {
		return s
	}
	return maxStarScale
}

// ScaleStars applies StarScale to every marker.
func ScaleStars(scene *Scene, cameraRadius float32) {
	s := math.Splat(StarScale(cameraRadius))
	for i := range scene.Stars {
		scene.Stars[i].Transform.Scale = s
	}
}
