// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/skydome/pkg/math"
)

// EventType classifies a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseDown
	EventMouseUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
}

// Input collects one frame of events and the mouse state derived from
// them.
type Input struct {
	events []Event

	cursor    math.Vec2
	hasCursor bool

	primaryPressed bool
	rightDown      bool
	dragX, dragY   float32
	wheel          float32
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events for this frame.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.beginFrame()

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			quit = true
		}
	}
	return quit
}

// beginFrame clears per-frame state. Cursor and button state persist.
func (i *Input) beginFrame() {
	i.events = i.events[:0]
	i.primaryPressed = false
	i.dragX, i.dragY = 0, 0
	i.wheel = 0
}

// handle translates one SDL event. It reports whether the event asks to
// quit.
func (i *Input) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		case sdl.WINDOWEVENT_ENTER:
			i.hasCursor = true
		case sdl.WINDOWEVENT_LEAVE:
			i.hasCursor = false
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			i.events = append(i.events, Event{
				Type: EventKeyDown,
				Key:  e.Keysym.Scancode,
			})
		}

	case *sdl.MouseMotionEvent:
		i.cursor = math.Vec2{X: float32(e.X), Y: float32(e.Y)}
		i.hasCursor = true
		if i.rightDown {
			i.dragX += float32(e.XRel)
			i.dragY += float32(e.YRel)
		}

	case *sdl.MouseButtonEvent:
		i.cursor = math.Vec2{X: float32(e.X), Y: float32(e.Y)}
		i.hasCursor = true
		pressed := e.State == sdl.PRESSED
		ev := Event{
			Type:   EventMouseUp,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: e.Button,
		}
		if pressed {
			ev.Type = EventMouseDown
		}
		switch e.Button {
		case sdl.BUTTON_LEFT:
			if pressed {
				i.primaryPressed = true
			}
		case sdl.BUTTON_RIGHT:
			i.rightDown = pressed
		}
		i.events = append(i.events, ev)

	case *sdl.MouseWheelEvent:
		i.wheel += float32(e.Y)
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Cursor returns the last known cursor position in window pixels and
// whether the cursor is inside the window.
func (i *Input) Cursor() (math.Vec2, bool) {
	return i.cursor, i.hasCursor
}

// PrimaryPressed reports whether the left button went down this frame.
func (i *Input) PrimaryPressed() bool {
	return i.primaryPressed
}

// Drag returns the cursor movement in pixels while the right button was
// held this frame.
func (i *Input) Drag() (dx, dy float32) {
	return i.dragX, i.dragY
}

// Wheel returns the scroll amount this frame, positive away from the user.
func (i *Input) Wheel() float32 {
	return i.wheel
}
