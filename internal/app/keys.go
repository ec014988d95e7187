package app

import "github.com/Faultbox/skydome/internal/sky"

// Action is what a key binding or control does.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionResetView
	ActionToggleAzimuthal
	ActionToggleEquatorial
	ActionToggleTime
	ActionNextTab
	ActionScreenshot
)

// Resetter is the camera part the reset binding needs.
type Resetter interface {
	Reset()
}

// Apply runs the view and camera actions. Quit and screenshot are handled
// by the frontend.
func Apply(action Action, view *sky.ViewState, cam Resetter) {
	switch action {
	case ActionResetView:
		cam.Reset()
	case ActionToggleAzimuthal:
		view.ToggleAzimuthalGrid()
	case ActionToggleEquatorial:
		view.ToggleEquatorialGrid()
	case ActionToggleTime:
		view.ToggleTimeStopped()
	case ActionNextTab:
		view.Tab = view.Tab.Next()
	}
}

// Control is one button of the control bar.
type Control struct {
	Label    string
	Action   Action
	Selected bool
}

// ControlBar returns the control bar buttons in display order. The time
// button reads R while time runs and S while it is stopped.
func ControlBar(view sky.ViewState) []Control {
	timeLabel := "R"
	if view.TimeStopped {
		timeLabel = "S"
	}
	return []Control{
		{Label: "Reset view", Action: ActionResetView},
		{Label: "Azimuthal grid", Action: ActionToggleAzimuthal, Selected: view.ShowAzimuthalGrid},
		{Label: "Equatorial grid", Action: ActionToggleEquatorial, Selected: view.ShowEquatorialGrid},
		{Label: timeLabel, Action: ActionToggleTime, Selected: view.TimeStopped},
	}
}

// StatusLine shows the time the sky is oriented for and whether it is
// stopped.
func StatusLine(view sky.ViewState, ts *sky.TimeState) string {
	at, ok := ts.Last()
	if !ok {
		return "no sky time yet"
	}
	line := at.Format("2006-01-02 15:04:05 MST")
	if view.TimeStopped {
		line += " | paused"
	}
	return line
}

// WindowTitle shows the active panel and the sky time.
func WindowTitle(view sky.ViewState, panel sky.PanelInfo, ts *sky.TimeState) string {
	return Title + " | " + view.Tab.Describe(panel) + " | " + StatusLine(view, ts)
}
