package sky

import (
	"time"

	"github.com/Faultbox/skydome/pkg/astro"
	"github.com/Faultbox/skydome/pkg/math"
)

// FrameInput is what the window layer hands the controller each frame.
type FrameInput struct {
	Now          time.Time
	Cursor       math.Vec2
	HasCursor    bool
	Pressed      bool // primary button went down this frame
	CameraRadius float32
}

// Controller owns the per-frame sky state and runs the frame systems in a
// fixed order.
type Controller struct {
	Observer Observer
	View     ViewState
	Time     *TimeState
	Scene    *Scene
	Picker   *Picker

	camera Camera
}

// NewController wires the sky systems together. start seeds the picker's
// press history.
func NewController(obs Observer, view ViewState, scene *Scene, clock Clock, cam Camera, start time.Time) *Controller {
	return &Controller{
		Observer: obs,
		View:     view,
		Time:     NewTimeState(clock),
		Scene:    scene,
		Picker:   NewPicker(start),
		camera:   cam,
	}
}

// Tick runs one frame: orientation, marker scaling, picking, visibility.
// Picking runs after orientation so it sees this frame's star positions.
func (c *Controller) Tick(in FrameInput) PickResult {
	if !c.View.TimeStopped {
		at := c.Time.Sample()
		OrientScene(c.Observer, astro.CivilFromTime(at), c.Scene)
	}

	ScaleStars(c.Scene, in.CameraRadius)

	var res PickResult
	if in.Pressed {
		res = c.Picker.HandlePress(in.Now, in.Cursor, in.HasCursor, c.camera, c.Scene.Stars)
	}

	ApplyVisibility(c.View, c.Scene)
	return res
}

// StarHorizons returns each star's altitude and azimuth at the time the
// sky was last oriented for, in catalog order. It is nil before the first
// orientation.
func (c *Controller) StarHorizons() []astro.Horizon {
	at, ok := c.Time.Last()
	if !ok {
		return nil
	}
	lmst := astro.LMST(astro.CivilFromTime(at), c.Observer.Longitude)
	out := make([]astro.Horizon, len(c.Scene.Stars))
	for i, s := range c.Scene.Stars {
		out[i] = astro.EquatorialToHorizon(s.Star.Dec, s.Star.RA, c.Observer.Latitude, lmst)
	}
	return out
}
