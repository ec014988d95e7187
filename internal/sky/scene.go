// Package sky orients the celestial sphere and its star markers for an
// observer and handles star picking. All per-frame work is synchronous and
// driven by Controller.Tick.
package sky

import (
	"github.com/Faultbox/skydome/pkg/math"
)

// Star is a catalog entry. Coordinates are in degrees.
type Star struct {
	Name string
	RA   float64
	Dec  float64
}

// Observer is the geographic location the sky is computed for, in degrees
// (longitude east positive).
type Observer struct {
	Latitude  float64
	Longitude float64
}

// Transform places a renderable entity in the world.
type Transform struct {
	Translation math.Vec3
	Rotation    math.Quat
	Scale       math.Vec3
}

// IdentityTransform returns a transform that leaves geometry unchanged.
func IdentityTransform() Transform {
	return Transform{Rotation: math.QuatIdentity(), Scale: math.Splat(1)}
}

// Matrix returns the model matrix.
func (t Transform) Matrix() math.Mat4 {
	return math.Compose(t.Translation, t.Rotation, t.Scale)
}

// Group tags background entities. An entity may carry several tags.
type Group uint8

const (
	// GroupSky entities rotate rigidly with the celestial sphere.
	GroupSky Group = 1 << iota
	// GroupEquatorial entities are shown by the equatorial grid toggle.
	GroupEquatorial
	// GroupAzimuthal entities are shown by the azimuthal grid toggle.
	GroupAzimuthal
)

// Has reports whether g carries all bits of other.
func (g Group) Has(other Group) bool {
	return g&other == other
}

// Entity is a piece of background geometry: grid rings, markers, the floor.
type Entity struct {
	Name      string
	Mesh      Mesh
	Groups    Group
	Transform Transform
	Visible   bool
}

// StarEntity is a star marker. Its world position is Transform.Translation.
type StarEntity struct {
	Star      Star
	Transform Transform
}

// Position returns the marker's world position.
func (s StarEntity) Position() math.Vec3 {
	return s.Transform.Translation
}

// Scene holds everything the renderer draws. It is created once at startup.
type Scene struct {
	Background []Entity
	Stars      []StarEntity
}

// NewScene builds the background geometry and one marker per star. Markers
// start at the reference point until the first orientation update.
func NewScene(stars []Star) *Scene {
	s := &Scene{
		Background: backgroundEntities(),
		Stars:      make([]StarEntity, len(stars)),
	}
	for i, star := range stars {
		tr := IdentityTransform()
		tr.Translation = math.Vec3{X: 1}
		s.Stars[i] = StarEntity{Star: star, Transform: tr}
	}
	return s
}
