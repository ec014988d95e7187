package sky

import (
	"fmt"
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skydome/internal/engine/picking"
	"github.com/Faultbox/skydome/internal/logger"
	"github.com/Faultbox/skydome/pkg/math"
)

const (
	// DefaultPickThreshold is the ray-to-star distance, in world units,
	// below which a star is hit.
	DefaultPickThreshold = 0.05
	// DefaultDoubleClick is the longest gap between two presses that still
	// counts as a double click.
	DefaultDoubleClick = 200 * time.Millisecond
)

// PickPolicy decides which star wins when several are under the cursor.
type PickPolicy int

const (
	// PickLast lets the last hit in catalog order win.
	PickLast PickPolicy = iota
	// PickNearest picks the hit closest to the ray.
	PickNearest
)

// ParsePickPolicy parses "last" or "nearest". Empty means PickLast.
func ParsePickPolicy(s string) (PickPolicy, error) {
	switch s {
	case "", "last":
		return PickLast, nil
	case "nearest":
		return PickNearest, nil
	default:
		return PickLast, fmt.Errorf("unknown pick policy %q", s)
	}
}

func (p PickPolicy) String() string {
	if p == PickNearest {
		return "nearest"
	}
	return "last"
}

// Camera is the part of the orbit camera the picker needs.
type Camera interface {
	// CursorRay casts a world ray through a cursor position in pixels.
	CursorRay(x, y float32) (picking.Ray, bool)
	// Retarget sets the camera's desired yaw and pitch in radians.
	Retarget(yaw, pitch float32)
}

// Hit is a star within the pick threshold of the cursor ray.
type Hit struct {
	Index    int
	Star     Star
	Position math.Vec3
	Distance float32
}

// HitStars returns every star whose marker lies closer than threshold to
// the ray, in catalog order.
func HitStars(ray picking.Ray, stars []StarEntity, threshold float32) []Hit {
	var hits []Hit
	for i, s := range stars {
		pos := s.Position()
		if d := ray.DistanceToPoint(pos); d < threshold {
			hits = append(hits, Hit{Index: i, Star: s.Star, Position: pos, Distance: d})
		}
	}
	return hits
}

// choose returns the hit that wins under the policy.
func (p PickPolicy) choose(hits []Hit) Hit {
	best := hits[len(hits)-1]
	if p == PickNearest {
		for _, h := range hits {
			if h.Distance < best.Distance {
				best = h
			}
		}
	}
	return best
}

// LookAngles returns the camera yaw and pitch that face a point on the unit
// sphere.
func LookAngles(p math.Vec3) (yaw, pitch float32) {
	y := float64(p.Y)
	if y > 1 {
		y = 1
	} else if y < -1 {
		y = -1
	}
	return float32(gomath.Atan2(float64(p.X), float64(p.Z))), float32(gomath.Asin(y))
}

// PickResult describes what one press did.
type PickResult struct {
	Elapsed     time.Duration
	Hits        []Hit
	Recentered  bool
	Target      Hit
	TargetYaw   float32
	TargetPitch float32
}

// Picker resolves presses into star hits and double-click recentering. It
// remembers only the time of the previous press.
type Picker struct {
	Threshold   float32
	DoubleClick time.Duration
	Policy      PickPolicy

	lastPress time.Time
}

// NewPicker returns a picker with default settings whose previous press is
// taken to be at start.
func NewPicker(start time.Time) *Picker {
	return &Picker{
		Threshold:   DefaultPickThreshold,
		DoubleClick: DefaultDoubleClick,
		Policy:      PickLast,
		lastPress:   start,
	}
}

// HandlePress processes a primary-button press at now. The press time is
// recorded before anything else. Without a cursor or a camera ray the press
// does nothing more. A hit within the double-click window retargets the
// camera once, at the winning star.
func (p *Picker) HandlePress(now time.Time, cursor math.Vec2, hasCursor bool, cam Camera, stars []StarEntity) PickResult {
	res := PickResult{Elapsed: now.Sub(p.lastPress)}
	p.lastPress = now

	if !hasCursor || cam == nil {
		return res
	}
	ray, ok := cam.CursorRay(cursor.X, cursor.Y)
	if !ok {
		return res
	}

	res.Hits = HitStars(ray, stars, p.Threshold)
	for _, h := range res.Hits {
		logger.Info("star hit",
			zap.String("name", h.Star.Name),
			zap.Float64("ra", h.Star.RA),
			zap.Float64("dec", h.Star.Dec),
			zap.Float32("distance", h.Distance),
		)
	}
	if len(res.Hits) == 0 || res.Elapsed >= p.DoubleClick {
		return res
	}

	res.Target = p.Policy.choose(res.Hits)
	res.TargetYaw, res.TargetPitch = LookAngles(res.Target.Position)
	res.Recentered = true
	cam.Retarget(res.TargetYaw, res.TargetPitch)

	logger.Debug("recentering on star",
		zap.String("name", res.Target.Star.Name),
		zap.Duration("elapsed", res.Elapsed),
		zap.Stringer("policy", p.Policy),
	)
	return res
}
