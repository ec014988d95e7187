package sdlapp

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/skydome/internal/app"
)

var bindings = map[sdl.Scancode]app.Action{
	sdl.SCANCODE_ESCAPE: app.ActionQuit,
	sdl.SCANCODE_R:      app.ActionResetView,
	sdl.SCANCODE_A:      app.ActionToggleAzimuthal,
	sdl.SCANCODE_E:      app.ActionToggleEquatorial,
	sdl.SCANCODE_SPACE:  app.ActionToggleTime,
	sdl.SCANCODE_TAB:    app.ActionNextTab,
	sdl.SCANCODE_F12:    app.ActionScreenshot,
}

// ActionFor returns the action bound to a key.
func ActionFor(key sdl.Scancode) app.Action {
	return bindings[key]
}

