package sky

import (
	"strings"
	"testing"
)

func TestGroupVisible(t *testing.T) {
	tests := []struct {
		name  string
		view  ViewState
		group Group
		want  bool
	}{
		{name: "default equatorial", view: DefaultViewState(), group: GroupSky | GroupEquatorial, want: false},
		{name: "default azimuthal", view: DefaultViewState(), group: GroupAzimuthal, want: true},
		{name: "untagged", view: ViewState{}, group: 0, want: true},
		{name: "sky only", view: ViewState{}, group: GroupSky, want: true},
		{name: "equatorial on", view: ViewState{ShowEquatorialGrid: true}, group: GroupSky | GroupEquatorial, want: true},
		{name: "azimuthal off", view: ViewState{}, group: GroupAzimuthal, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.view.GroupVisible(tt.group); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestApplyVisibility(t *testing.T) {
	scene := NewScene(nil)
	view := DefaultViewState()
	view.ToggleEquatorialGrid()
	view.ToggleAzimuthalGrid()

	ApplyVisibility(view, scene)

	for _, e := range scene.Background {
		want := true
		if e.Groups.Has(GroupAzimuthal) {
			want = false
		}
		if e.Visible != want {
			t.Errorf("%s: expected visible=%v, got %v", e.Name, want, e.Visible)
		}
	}
}

func TestToggleTimeStopped(t *testing.T) {
	v := DefaultViewState()
	if v.TimeStopped {
		t.Fatal("expected time to run by default")
	}
	v.ToggleTimeStopped()
	if !v.TimeStopped {
		t.Error("expected time stopped after toggle")
	}
	v.ToggleTimeStopped()
	if v.TimeStopped {
		t.Error("expected time running after second toggle")
	}
}

func TestTabCycle(t *testing.T) {
	if TabStars.Next() != TabTelescope || TabTelescope.Next() != TabStars {
		t.Error("expected tabs to alternate")
	}
	if TabStars.String() != "Stars" || TabTelescope.String() != "Telescope control" {
		t.Errorf("unexpected tab names %q, %q", TabStars, TabTelescope)
	}

	tabs := Tabs()
	for i, tab := range tabs {
		if next := tab.Next(); next != tabs[(i+1)%len(tabs)] {
			t.Errorf("expected %s to cycle to %s, got %s", tab, tabs[(i+1)%len(tabs)], next)
		}
	}
}

func TestTabDescribe(t *testing.T) {
	info := PanelInfo{
		Stars:      testCatalog,
		Observer:   testObserver,
		SerialPath: "/dev/sTTY_ACM0",
		SDRURL:     "https://localhost:7777",
	}

	stars := TabStars.Describe(info)
	if !strings.Contains(stars, "Orion Nebula") || !strings.Contains(stars, "Sirius") {
		t.Errorf("expected star names in %q", stars)
	}

	telescope := TabTelescope.Describe(info)
	for _, want := range []string{"/dev/sTTY_ACM0", "https://localhost:7777", "42.5951"} {
		if !strings.Contains(telescope, want) {
			t.Errorf("expected %q in %q", want, telescope)
		}
	}
}

func TestBackgroundGroups(t *testing.T) {
	scene := NewScene(testCatalog)

	var sky, azimuthal, untagged int
	for _, e := range scene.Background {
		switch {
		case e.Groups.Has(GroupSky):
			sky++
			if !e.Groups.Has(GroupEquatorial) {
				t.Errorf("%s: sky entity without equatorial tag", e.Name)
			}
		case e.Groups.Has(GroupAzimuthal):
			azimuthal++
		default:
			untagged++
		}
	}

	rings := ringCount/2 + 1
	if sky != 2*rings+2 {
		t.Errorf("expected %d sky entities, got %d", 2*rings+2, sky)
	}
	if azimuthal != 2*rings {
		t.Errorf("expected %d azimuthal entities, got %d", 2*rings, azimuthal)
	}
	if untagged != 2 {
		t.Errorf("expected floor and mast untagged, got %d", untagged)
	}
	if len(scene.Stars) != len(testCatalog) {
		t.Errorf("expected %d markers, got %d", len(testCatalog), len(scene.Stars))
	}
}

func TestRingsLieOnUnitSphere(t *testing.T) {
	for _, kind := range []ringKind{parallels, meridians} {
		verts := ring(kind, 0.7)
		if len(verts) != ringVertices+1 {
			t.Fatalf("expected %d vertices, got %d", ringVertices+1, len(verts))
		}
		if verts[0] != verts[len(verts)-1] {
			t.Error("expected closed ring")
		}
		for _, v := range verts {
			if l := float64(v.Length()); !near(l, 1, 1e-5) {
				t.Fatalf("vertex %+v off the unit sphere", v)
			}
		}
	}
}
