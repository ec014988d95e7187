package sky

import (
	"fmt"
	"strings"
)

// ViewState holds the user toggles read every frame.
type ViewState struct {
	ShowEquatorialGrid bool
	ShowAzimuthalGrid  bool
	TimeStopped        bool
	Tab                Tab
}

// DefaultViewState shows the azimuthal grid only, with time running.
func DefaultViewState() ViewState {
	return ViewState{ShowAzimuthalGrid: true}
}

// ToggleEquatorialGrid flips equatorial grid visibility.
func (v *ViewState) ToggleEquatorialGrid() { v.ShowEquatorialGrid = !v.ShowEquatorialGrid }

// ToggleAzimuthalGrid flips azimuthal grid visibility.
func (v *ViewState) ToggleAzimuthalGrid() { v.ShowAzimuthalGrid = !v.ShowAzimuthalGrid }

// ToggleTimeStopped freezes or unfreezes time.
func (v *ViewState) ToggleTimeStopped() { v.TimeStopped = !v.TimeStopped }

// GroupVisible reports whether entities tagged g should be drawn.
func (v ViewState) GroupVisible(g Group) bool {
	switch {
	case g.Has(GroupEquatorial):
		return v.ShowEquatorialGrid
	case g.Has(GroupAzimuthal):
		return v.ShowAzimuthalGrid
	default:
		return true
	}
}

// ApplyVisibility writes the grid toggles to every background entity.
func ApplyVisibility(v ViewState, scene *Scene) {
	for i := range scene.Background {
		e := &scene.Background[i]
		e.Visible = v.GroupVisible(e.Groups)
	}
}

// Tab selects the side panel content.
type Tab int

const (
	TabStars Tab = iota
	TabTelescope
)

// Tabs lists the panel tabs in display order.
func Tabs() []Tab {
	return []Tab{TabStars, TabTelescope}
}

// Next cycles to the following tab.
func (t Tab) Next() Tab {
	switch t {
	case TabStars:
		return TabTelescope
	default:
		return TabStars
	}
}

func (t Tab) String() string {
	switch t {
	case TabStars:
		return "Stars"
	case TabTelescope:
		return "Telescope control"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

// PanelInfo is what the panels can show.
type PanelInfo struct {
	Stars      []Star
	Observer   Observer
	SerialPath string
	SDRURL     string
}

// Describe renders a one-line summary of the tab's panel.
func (t Tab) Describe(info PanelInfo) string {
	switch t {
	case TabStars:
		names := make([]string, len(info.Stars))
		for i, s := range info.Stars {
			names[i] = s.Name
		}
		return fmt.Sprintf("%s: %d [%s]", t, len(info.Stars), strings.Join(names, ", "))
	case TabTelescope:
		return fmt.Sprintf("%s: serial %s, SDR++ %s, lat %.4f, lon %.4f",
			t, info.SerialPath, info.SDRURL, info.Observer.Latitude, info.Observer.Longitude)
	default:
		return t.String()
	}
}
