// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/Faultbox/skydome/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
// ok is false when the viewport is empty or the ray has no direction.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) (ray Ray, ok bool) {
	if viewportW <= 0 || viewportH <= 0 {
		return Ray{}, false
	}

	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	// Unproject near and far points (TransformVec3 does the perspective divide)
	near := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	far := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	dir := far.Sub(near).Normalize()
	if dir == (math.Vec3{}) {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: dir}, true
}

// DistanceToPoint returns the shortest distance between the infinite line
// through the ray and p: |dir x (p - origin)| for a unit direction.
func (r Ray) DistanceToPoint(p math.Vec3) float32 {
	return r.Direction.Cross(p.Sub(r.Origin)).Length()
}
