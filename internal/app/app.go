// Package app builds the sky controller from configuration and defines the
// user actions shared by the frontends.
package app

import (
	"time"

	"github.com/Faultbox/skydome/internal/config"
	"github.com/Faultbox/skydome/internal/engine/camera"
	"github.com/Faultbox/skydome/internal/sky"
)

// Title is the window title prefix.
const Title = "Skydome"

// Catalog converts validated config entries to stars.
func Catalog(entries []config.StarConfig) []sky.Star {
	stars := make([]sky.Star, 0, len(entries))
	for _, e := range entries {
		if e.RA == nil || e.Dec == nil {
			continue
		}
		stars = append(stars, sky.Star{Name: e.Name, RA: *e.RA, Dec: *e.Dec})
	}
	return stars
}

// NewSky builds the sky controller and panel contents from configuration.
func NewSky(cfg *config.Config, cam sky.Camera, clock sky.Clock, start time.Time) (*sky.Controller, sky.PanelInfo, error) {
	policy, err := sky.ParsePickPolicy(cfg.Picking.Policy)
	if err != nil {
		return nil, sky.PanelInfo{}, err
	}

	stars := Catalog(cfg.Stars)
	obs := sky.Observer{Latitude: cfg.Observer.Latitude, Longitude: cfg.Observer.Longitude}
	view := sky.ViewState{
		ShowEquatorialGrid: cfg.View.ShowEquatorialGrid,
		ShowAzimuthalGrid:  cfg.View.ShowAzimuthalGrid,
		Tab:                sky.TabStars,
	}

	ctrl := sky.NewController(obs, view, sky.NewScene(stars), clock, cam, start)
	ctrl.Picker.Threshold = cfg.Picking.Threshold
	ctrl.Picker.DoubleClick = cfg.Picking.DoubleClick
	ctrl.Picker.Policy = policy

	// Orient once so a frozen start still shows the sky for now.
	ctrl.Tick(sky.FrameInput{Now: start, CameraRadius: camera.Original.Radius})
	ctrl.View.TimeStopped = cfg.View.Frozen

	panel := sky.PanelInfo{
		Stars:      stars,
		Observer:   obs,
		SerialPath: cfg.Telescope.SerialPath,
		SDRURL:     cfg.Telescope.SDRPPURL,
	}
	return ctrl, panel, nil
}
