package gui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/skydome/internal/app"
	"github.com/Faultbox/skydome/internal/sky"
	"github.com/Faultbox/skydome/pkg/astro"
)

const (
	panelWidth = 450
	barHeight  = 36
)

// rect is an area in window coordinates.
type rect struct {
	X, Y, W, H float32
}

// layout splits the work area: the panel takes the right edge at full
// height, the control bar runs under the sky view.
func layout(work rect) (view, panel, bar rect) {
	pw := min(panelWidth, work.W)
	bh := min(barHeight, work.H)

	panel = rect{X: work.X + work.W - pw, Y: work.Y, W: pw, H: work.H}
	view = rect{X: work.X, Y: work.Y, W: work.W - pw, H: work.H - bh}
	bar = rect{X: work.X, Y: work.Y + work.H - bh, W: work.W - pw, H: bh}
	return view, panel, bar
}

var shortcuts = []struct {
	key    imgui.Key
	action app.Action
}{
	{imgui.KeyEscape, app.ActionQuit},
	{imgui.KeyR, app.ActionResetView},
	{imgui.KeyA, app.ActionToggleAzimuthal},
	{imgui.KeyE, app.ActionToggleEquatorial},
	{imgui.KeySpace, app.ActionToggleTime},
	{imgui.KeyTab, app.ActionNextTab},
	{imgui.KeyF12, app.ActionScreenshot},
}

var (
	selectedButton = imgui.NewVec4(0.26, 0.59, 0.98, 0.8)
	noticeColor    = imgui.NewVec4(0.2, 1.0, 0.2, 1.0)
)

func fixedWindow(name string, area rect, flags imgui.WindowFlags) bool {
	imgui.SetNextWindowPos(imgui.NewVec2(area.X, area.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(area.W, area.H))
	return imgui.BeginV(name, nil, flags|imgui.WindowFlagsNoMove|imgui.WindowFlagsNoResize|imgui.WindowFlagsNoCollapse)
}

func (g *GUI) drawPanel(area rect) {
	if fixedWindow("##Panel", area, imgui.WindowFlagsNoTitleBar) {
		for i, tab := range sky.Tabs() {
			if i > 0 {
				imgui.SameLine()
			}
			label := tab.String()
			if imgui.SelectableBoolV(label, g.sky.View.Tab == tab, 0, imgui.NewVec2(imgui.CalcTextSize(label).X, 0)) {
				g.sky.View.Tab = tab
			}
		}
		imgui.Separator()
		imgui.Spacing()

		switch g.sky.View.Tab {
		case sky.TabStars:
			g.drawStarsTab()
		case sky.TabTelescope:
			g.drawTelescopeTab()
		}
	}
	imgui.End()
}

var starColumns = []string{"Name", "RA", "Dec", "Alt", "Az"}

// starRows formats the stars table in catalog order. Altitude and azimuth
// read "-" until the sky has been oriented.
func starRows(stars []sky.StarEntity, horizons []astro.Horizon) [][]string {
	rows := make([][]string, len(stars))
	for i, s := range stars {
		alt, az := "-", "-"
		if i < len(horizons) {
			alt = fmt.Sprintf("%.2f", horizons[i].Altitude)
			az = fmt.Sprintf("%.2f", horizons[i].Azimuth)
		}
		rows[i] = []string{s.Star.Name, fmt.Sprintf("%.4f", s.Star.RA), fmt.Sprintf("%.4f", s.Star.Dec), alt, az}
	}
	return rows
}

func (g *GUI) drawStarsTab() {
	if len(g.sky.Scene.Stars) == 0 {
		imgui.TextDisabled("No stars configured")
		return
	}

	if imgui.BeginTable("stars", int32(len(starColumns))) {
		imgui.TableSetupColumnV(starColumns[0], imgui.TableColumnFlagsWidthStretch, 0, 0)
		for _, c := range starColumns[1:] {
			imgui.TableSetupColumnV(c, imgui.TableColumnFlagsWidthFixed, 70, 0)
		}

		imgui.TableNextRow()
		for _, c := range starColumns {
			imgui.TableNextColumn()
			imgui.TextDisabled(c)
		}
		for _, row := range starRows(g.sky.Scene.Stars, g.sky.StarHorizons()) {
			imgui.TableNextRow()
			for _, cell := range row {
				imgui.TableNextColumn()
				imgui.Text(cell)
			}
		}
		imgui.EndTable()
	}

	imgui.Spacing()
	imgui.TextDisabled("Double-click a star to center it")
}

func (g *GUI) drawTelescopeTab() {
	if !imgui.BeginTable("telescope", 2) {
		return
	}
	imgui.TableSetupColumnV("Label", imgui.TableColumnFlagsWidthFixed, 160, 0)
	imgui.TableSetupColumnV("Value", imgui.TableColumnFlagsWidthStretch, 0, 0)

	row := func(label string) {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(label)
		imgui.TableNextColumn()
		imgui.SetNextItemWidth(-1)
	}

	row("Telescope serial port:")
	imgui.Text(g.panel.SerialPath)

	row("SDR++ host:")
	imgui.InputTextWithHint("##sdrpp", "host:port", &g.panel.SDRURL, 0, nil)

	lat := float32(g.sky.Observer.Latitude)
	row("Latitude")
	if imgui.SliderFloatV("##latitude", &lat, -90, 90, "%.4f", imgui.SliderFlagsNone) {
		g.sky.Observer.Latitude = float64(lat)
	}

	lon := float32(g.sky.Observer.Longitude)
	row("Longitude")
	if imgui.SliderFloatV("##longitude", &lon, -180, 180, "%.4f", imgui.SliderFlagsNone) {
		g.sky.Observer.Longitude = float64(lon)
	}

	imgui.EndTable()
	g.panel.Observer = g.sky.Observer
}

func (g *GUI) drawControlBar(area rect) {
	if fixedWindow("##Controls", area, imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsNoScrollbar) {
		for i, c := range app.ControlBar(g.sky.View) {
			if i > 0 {
				imgui.SameLine()
			}
			if c.Selected {
				imgui.PushStyleColorVec4(imgui.ColButton, selectedButton)
			}
			if imgui.Button(c.Label) {
				g.apply(c.Action)
			}
			if c.Selected {
				imgui.PopStyleColor()
			}
		}

		imgui.SameLine()
		imgui.TextDisabled(app.StatusLine(g.sky.View, g.sky.Time))
		if g.notice != "" {
			imgui.SameLine()
			imgui.TextColored(noticeColor, g.notice)
		}
	}
	imgui.End()
}
