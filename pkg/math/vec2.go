// Package math provides the vector, quaternion and matrix types used by the
// sky scene and the renderer.
package math

// Vec2 is a 2D vector, used for screen-space cursor positions.
type Vec2 struct {
	X, Y float32
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}
