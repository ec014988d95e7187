package app

import (
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/skydome/internal/config"
	"github.com/Faultbox/skydome/internal/engine/camera"
	"github.com/Faultbox/skydome/internal/sky"
)

var start = time.Date(2024, 3, 1, 22, 15, 30, 0, time.UTC)

func fixedClock() time.Time { return start }

func TestCatalogSkipsIncompleteEntries(t *testing.T) {
	ra, dec := 10.0, 20.0
	entries := []config.StarConfig{
		{Name: "ok", RA: &ra, Dec: &dec},
		{Name: "no dec", RA: &ra},
	}

	stars := Catalog(entries)
	if len(stars) != 1 || stars[0] != (sky.Star{Name: "ok", RA: 10, Dec: 20}) {
		t.Errorf("unexpected catalog %+v", stars)
	}
}

func TestNewSkyFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Picking.Threshold = 0.07
	cfg.Picking.DoubleClick = 300 * time.Millisecond
	cfg.Picking.Policy = "nearest"
	cfg.View.ShowEquatorialGrid = true
	cfg.View.Frozen = true

	ctrl, panel, err := NewSky(cfg, camera.NewOrbitCamera(), fixedClock, start)
	if err != nil {
		t.Fatalf("NewSky failed: %v", err)
	}

	if ctrl.Picker.Threshold != 0.07 || ctrl.Picker.DoubleClick != 300*time.Millisecond || ctrl.Picker.Policy != sky.PickNearest {
		t.Errorf("unexpected picker %+v", ctrl.Picker)
	}
	if !ctrl.View.ShowEquatorialGrid || !ctrl.View.TimeStopped {
		t.Errorf("unexpected view %+v", ctrl.View)
	}
	if len(ctrl.Scene.Stars) != 2 || len(panel.Stars) != 2 {
		t.Fatalf("expected 2 stars, got %d/%d", len(ctrl.Scene.Stars), len(panel.Stars))
	}
	if panel.SerialPath != cfg.Telescope.SerialPath || panel.SDRURL != cfg.Telescope.SDRPPURL {
		t.Errorf("unexpected panel %+v", panel)
	}

	// A frozen start is still oriented for the start time.
	if ctrl.Scene.Stars[0].Position() == (sky.NewScene(Catalog(cfg.Stars)).Stars[0].Position()) {
		t.Error("expected stars oriented before the first frame")
	}
	if _, ok := ctrl.Time.Last(); !ok {
		t.Error("expected the clock to be sampled")
	}
}

func TestNewSkyRejectsUnknownPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Picking.Policy = "closest"

	if _, _, err := NewSky(cfg, camera.NewOrbitCamera(), fixedClock, start); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}

type resetCounter struct{ n int }

func (r *resetCounter) Reset() { r.n++ }

func TestWindowTitle(t *testing.T) {
	panel := sky.PanelInfo{Stars: []sky.Star{{Name: "Sirius"}}, SerialPath: "/dev/sTTY_ACM0"}
	ts := sky.NewTimeState(fixedClock)
	ts.Sample()

	view := sky.DefaultViewState()
	if title := WindowTitle(view, panel, ts); !strings.Contains(title, "Sirius") || strings.Contains(title, "paused") {
		t.Errorf("unexpected stars title %q", title)
	}

	view.Tab = sky.TabTelescope
	view.TimeStopped = true
	title := WindowTitle(view, panel, ts)
	if !strings.Contains(title, "/dev/sTTY_ACM0") || !strings.HasSuffix(title, "paused") {
		t.Errorf("unexpected telescope title %q", title)
	}
}

func TestStatusLine(t *testing.T) {
	ts := sky.NewTimeState(fixedClock)
	view := sky.DefaultViewState()

	if line := StatusLine(view, ts); line != "no sky time yet" {
		t.Errorf("expected placeholder before the first sample, got %q", line)
	}

	ts.Sample()
	if line := StatusLine(view, ts); line != "2024-03-01 22:15:30 UTC" {
		t.Errorf("expected sky time, got %q", line)
	}

	view.TimeStopped = true
	if line := StatusLine(view, ts); line != "2024-03-01 22:15:30 UTC | paused" {
		t.Errorf("expected paused sky time, got %q", line)
	}
}

func TestControlBar(t *testing.T) {
	view := sky.DefaultViewState()
	controls := ControlBar(view)

	labels := make([]string, len(controls))
	for i, c := range controls {
		labels[i] = c.Label
	}
	if got := strings.Join(labels, ","); got != "Reset view,Azimuthal grid,Equatorial grid,R" {
		t.Fatalf("unexpected controls %q", got)
	}
	if controls[0].Selected || !controls[1].Selected || controls[2].Selected || controls[3].Selected {
		t.Errorf("unexpected selection %+v", controls)
	}

	// Clicking every button once flips each toggle and resets the camera.
	cam := &resetCounter{}
	for _, c := range controls {
		Apply(c.Action, &view, cam)
	}
	if cam.n != 1 {
		t.Errorf("expected one reset, got %d", cam.n)
	}

	after := ControlBar(view)
	if after[1].Selected || !after[2].Selected || !after[3].Selected {
		t.Errorf("expected toggles flipped, got %+v", after)
	}
	if after[3].Label != "S" {
		t.Errorf("expected stopped time button S, got %q", after[3].Label)
	}
}
