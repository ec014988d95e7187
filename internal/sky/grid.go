package sky

import (
	gomath "math"

	"github.com/Faultbox/skydome/pkg/math"
)

// Topology is the primitive a mesh is drawn with.
type Topology int

const (
	LineStrip Topology = iota
	LineList
)

// Color is linear RGBA.
type Color [4]float32

// Mesh is line geometry in model space.
type Mesh struct {
	Vertices []math.Vec3
	Topology Topology
	Color    Color
}

const (
	ringVertices  = 100
	ringCount     = 36 // rings per full turn; half of them plus one are built
	floorSegments = 24
	floorRadius   = 0.75
)

var (
	equatorialFaint = Color{0.175, 0.175, 0.25, 0.1}
	equatorialColor = Color{0.175, 0.175, 0.25, 1}
	azimuthalColor  = Color{0.8431372549, 0.6, 0.1294117647, 1}
	markerColor     = Color{0.7, 0.7, 1.0, 1}
	floorColor      = Color{0, 1, 0, 0.5}
	mastColor       = Color{1, 0, 0, 1}

	// StarColor is the marker colour for catalog stars.
	StarColor = Color{1, 0.7, 0.5, 1}
)

// StarMarkerRadius is the model-space radius of a star marker.
const StarMarkerRadius = 0.05

// ringKind selects which family of unit-sphere circles to build.
type ringKind int

const (
	// parallels are circles of constant Y.
	parallels ringKind = iota
	// meridians are great circles through the Y poles.
	meridians
)

// ring builds one closed circle on the unit sphere. phi selects the circle
// within its family.
func ring(kind ringKind, phi float64) []math.Vec3 {
	verts := make([]math.Vec3, 0, ringVertices+1)
	sinPhi, cosPhi := gomath.Sincos(phi)
	for v := 0; v < ringVertices; v++ {
		theta := (float64(v)/ringVertices*2 - 1) * gomath.Pi
		sinTheta, cosTheta := gomath.Sincos(theta)
		var p math.Vec3
		switch kind {
		case parallels:
			p = math.Vec3{X: float32(sinPhi * cosTheta), Y: float32(cosPhi), Z: float32(sinPhi * sinTheta)}
		case meridians:
			p = math.Vec3{X: float32(sinTheta * sinPhi), Y: float32(cosTheta), Z: float32(sinTheta * cosPhi)}
		}
		verts = append(verts, p)
	}
	return append(verts, verts[0])
}

// ringSet builds rings at every 10 degrees over half a turn.
func ringSet(name string, kind ringKind, color Color, groups Group) []Entity {
	entities := make([]Entity, 0, ringCount/2+1)
	for circle := 0; circle <= ringCount/2; circle++ {
		phi := float64(circle) / ringCount * 2 * gomath.Pi
		entities = append(entities, Entity{
			Name:      name,
			Mesh:      Mesh{Vertices: ring(kind, phi), Topology: LineStrip, Color: color},
			Groups:    groups,
			Transform: IdentityTransform(),
			Visible:   true,
		})
	}
	return entities
}

// floorFan builds the telescope floor: a fan of triangles around the origin
// drawn as one strip.
func floorFan() []math.Vec3 {
	verts := make([]math.Vec3, 0, floorSegments*3)
	point := func(j int) math.Vec3 {
		s, c := gomath.Sincos(2 * gomath.Pi * float64(j) / floorSegments)
		return math.Vec3{X: float32(floorRadius * c), Z: float32(floorRadius * s)}
	}
	for j := 0; j < floorSegments; j++ {
		verts = append(verts, math.Vec3{}, point(j), point(j+1))
	}
	return verts
}

func segment(color Color, groups Group, name string, from, to math.Vec3) Entity {
	return Entity{
		Name:      name,
		Mesh:      Mesh{Vertices: []math.Vec3{from, to}, Topology: LineStrip, Color: color},
		Groups:    groups,
		Transform: IdentityTransform(),
		Visible:   true,
	}
}

// backgroundEntities returns the grids, the pole and equinox markers and the
// telescope floor and mast.
func backgroundEntities() []Entity {
	equatorial := GroupSky | GroupEquatorial

	var out []Entity
	out = append(out, ringSet("equatorial-parallel", parallels, equatorialFaint, equatorial)...)
	out = append(out, ringSet("equatorial-meridian", meridians, equatorialColor, equatorial)...)
	out = append(out, ringSet("azimuthal-parallel", parallels, azimuthalColor, GroupAzimuthal)...)
	out = append(out, ringSet("azimuthal-meridian", meridians, azimuthalColor, GroupAzimuthal)...)
	out = append(out,
		segment(markerColor, equatorial, "celestial-pole", math.Vec3{Y: 1}, math.Vec3{Y: 1.25}),
		segment(markerColor, equatorial, "vernal-equinox", math.Vec3{X: -1}, math.Vec3{X: -1.25}),
		Entity{
			Name:      "floor",
			Mesh:      Mesh{Vertices: floorFan(), Topology: LineStrip, Color: floorColor},
			Transform: IdentityTransform(),
			Visible:   true,
		},
		Entity{
			Name:      "mast",
			Mesh:      Mesh{Vertices: []math.Vec3{{}, {Y: 1}}, Topology: LineList, Color: mastColor},
			Transform: IdentityTransform(),
			Visible:   true,
		},
	)
	return out
}
