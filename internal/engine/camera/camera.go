// Package camera provides the orbit camera that looks at the sky sphere.
package camera

import (
	gomath "math"

	"github.com/Faultbox/skydome/internal/engine/picking"
	"github.com/Faultbox/skydome/pkg/math"
)

// Pose is a yaw/pitch/radius triple. Angles are in radians.
type Pose struct {
	Yaw    float32
	Pitch  float32
	Radius float32
}

// Original is the pose restored by Reset: yaw -15 deg, pitch 20 deg, radius 4.
var Original = Pose{
	Yaw:    float32(-15 * gomath.Pi / 180),
	Pitch:  float32(20 * gomath.Pi / 180),
	Radius: 4.0,
}

const (
	// eyeDistance keeps the eye outside the unit sphere; with an orthographic
	// projection it does not change the image.
	eyeDistance = 10.0
	nearPlane   = 0.1
	farPlane    = 100.0

	// maxPitch keeps LookAt away from the degenerate straight-up view.
	maxPitch = gomath.Pi/2 - 0.001
)

// OrbitCamera orbits the origin with an orthographic projection whose
// vertical extent equals the radius. Input moves the target pose; Update
// eases the current pose toward it.
type OrbitCamera struct {
	Current Pose
	Target  Pose

	// Constraints
	MinRadius float32
	MaxRadius float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	// Smoothness is the share of the remaining distance kept per 1/60 s.
	// Zero snaps to the target.
	Smoothness float32

	viewportW, viewportH float32
}

// NewOrbitCamera creates a camera at the Original pose.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Current:         Original,
		Target:          Original,
		MinRadius:       0.05,
		MaxRadius:       20.0,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		Smoothness:      0.8,
	}
}

// SetViewport records the viewport size in pixels used for ray casting and
// the projection aspect ratio.
func (c *OrbitCamera) SetViewport(width, height int) {
	c.viewportW = float32(width)
	c.viewportH = float32(height)
}

// Reset moves the target back to the Original pose.
func (c *OrbitCamera) Reset() {
	c.Target = Original
}

// Retarget points the camera at a new yaw and pitch, keeping the radius.
func (c *OrbitCamera) Retarget(yaw, pitch float32) {
	c.Target.Yaw = yaw
	c.Target.Pitch = pitch
}

// HandleDrag updates the target rotation based on a mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Target.Yaw -= deltaX * c.DragSensitivity
	c.Target.Pitch += deltaY * c.DragSensitivity
	c.Target.Pitch = clamp(c.Target.Pitch, -maxPitch, maxPitch)
}

// HandleZoom updates the target radius based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Target.Radius -= delta * c.Target.Radius * c.ZoomSensitivity
	c.Target.Radius = clamp(c.Target.Radius, c.MinRadius, c.MaxRadius)
}

// Update eases the current pose toward the target.
func (c *OrbitCamera) Update(dt float64) {
	if c.Smoothness <= 0 {
		c.Current = c.Target
		return
	}
	t := 1 - float32(gomath.Pow(float64(c.Smoothness), dt*60))
	c.Current.Yaw += (c.Target.Yaw - c.Current.Yaw) * t
	c.Current.Pitch += (c.Target.Pitch - c.Current.Pitch) * t
	c.Current.Radius += (c.Target.Radius - c.Current.Radius) * t
}

// Position returns the eye position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	pitch := float64(clamp(c.Current.Pitch, -maxPitch, maxPitch))
	yaw := float64(c.Current.Yaw)
	return math.Vec3{
		X: float32(gomath.Cos(pitch) * gomath.Sin(yaw)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Cos(pitch) * gomath.Cos(yaw)),
	}.Scale(eyeDistance)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), math.Vec3{}, math.AxisY)
}

// ProjectionMatrix returns the orthographic projection.
func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	aspect := float32(1)
	if c.viewportH > 0 {
		aspect = c.viewportW / c.viewportH
	}
	halfH := c.Current.Radius / 2
	halfW := halfH * aspect
	return math.Ortho(-halfW, halfW, -halfH, halfH, nearPlane, farPlane)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// CursorRay casts a world-space ray through the cursor position (pixels,
// origin top-left). ok is false when no viewport has been set.
func (c *OrbitCamera) CursorRay(x, y float32) (picking.Ray, bool) {
	return picking.ScreenToRay(x, y, c.viewportW, c.viewportH, c.ViewProjection().Inverse())
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
