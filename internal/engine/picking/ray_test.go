package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/skydome/pkg/math"
)

func TestDistanceToPoint(t *testing.T) {
	ray := Ray{Origin: math.Vec3{Z: -5}, Direction: math.AxisZ}

	tests := []struct {
		name  string
		point math.Vec3
		want  float32
	}{
		{"on the ray", math.Vec3{Z: 1}, 0},
		{"behind the origin", math.Vec3{X: 0.5, Z: -10}, 0.5},
		{"offset in x", math.Vec3{X: 0.04}, 0.04},
		{"offset in x and y", math.Vec3{X: 0.03, Y: 0.04, Z: 2}, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ray.DistanceToPoint(tt.point)
			if gomath.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("expected distance %v, got %v", tt.want, got)
			}
		})
	}
}

func TestScreenToRayOrtho(t *testing.T) {
	// Camera at +Z looking at the origin, 2x2 world units visible.
	view := math.LookAt(math.Vec3{Z: 10}, math.Vec3{}, math.AxisY)
	proj := math.Ortho(-1, 1, -1, 1, 0.1, 100)
	inv := proj.Mul(view).Inverse()

	// Screen centre maps to the view axis.
	ray, ok := ScreenToRay(50, 50, 100, 100, inv)
	if !ok {
		t.Fatal("expected a ray")
	}
	if d := ray.DistanceToPoint(math.Vec3{}); d > 1e-4 {
		t.Errorf("centre ray should pass through the origin, distance %v", d)
	}
	if ray.Direction.Distance(math.Vec3{Z: -1}) > 1e-4 {
		t.Errorf("expected direction (0,0,-1), got %v", ray.Direction)
	}

	// Top-right pixel maps to (1, 1) in world XY.
	ray, _ = ScreenToRay(100, 0, 100, 100, inv)
	if d := ray.DistanceToPoint(math.Vec3{X: 1, Y: 1}); d > 1e-4 {
		t.Errorf("corner ray should pass through (1,1,0), distance %v", d)
	}
}

func TestScreenToRayEmptyViewport(t *testing.T) {
	if _, ok := ScreenToRay(0, 0, 0, 100, math.Identity()); ok {
		t.Error("expected no ray for an empty viewport")
	}
}
