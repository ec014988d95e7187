// Package sdlapp runs the sky viewer in a plain SDL window. The sky fills
// the window, keys drive the view and the panel is summarized in the title.
package sdlapp

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skydome/internal/app"
	"github.com/Faultbox/skydome/internal/config"
	"github.com/Faultbox/skydome/internal/engine/camera"
	"github.com/Faultbox/skydome/internal/engine/debug"
	"github.com/Faultbox/skydome/internal/engine/input"
	"github.com/Faultbox/skydome/internal/engine/renderer"
	"github.com/Faultbox/skydome/internal/engine/window"
	"github.com/Faultbox/skydome/internal/logger"
	"github.com/Faultbox/skydome/internal/sky"
)

// App is the running application.
type App struct {
	running bool
	title   string

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	camera      *camera.OrbitCamera
	sky         *sky.Controller
	panel       sky.PanelInfo
	screenshots *debug.ScreenshotCapture
}

// New creates the window, renderer and sky state.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Float64("latitude", cfg.Observer.Latitude),
		zap.Float64("longitude", cfg.Observer.Longitude),
		zap.Int("stars", len(cfg.Stars)),
	)

	format, err := debug.ParseFormat(cfg.Debug.ScreenshotFormat)
	if err != nil {
		return nil, err
	}

	a := &App{
		camera:      camera.NewOrbitCamera(),
		input:       input.New(),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "skydome", format),
	}

	a.sky, a.panel, err = app.NewSky(cfg, a.camera, time.Now, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to build sky: %w", err)
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      app.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh}, a.sky.Scene)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.camera.SetViewport(a.window.GetSize())

	logger.Info("initialized successfully")
	return a, nil
}

// Run starts the main loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.camera.SetViewport(a.window.GetSize())
				a.renderer.Resize(a.window.DrawableSize())
			case input.EventKeyDown:
				a.apply(ActionFor(event.Key))
			}
		}

		// 2. Camera
		a.camera.HandleDrag(a.input.Drag())
		a.camera.HandleZoom(a.input.Wheel())
		a.camera.Update(dt)

		// 3. Sky systems
		cursor, hasCursor := a.input.Cursor()
		a.sky.Tick(sky.FrameInput{
			Now:          now,
			Cursor:       cursor,
			HasCursor:    hasCursor,
			Pressed:      a.input.PrimaryPressed(),
			CameraRadius: a.camera.Current.Radius,
		})

		// 4. Render and present
		_, dh := a.window.DrawableSize()
		a.renderer.Draw(a.sky.Scene, a.camera.ViewProjection(), float32(dh)/a.camera.Current.Radius)
		a.window.SwapBuffers()
		a.updateTitle()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", time.Duration(dt*float64(time.Second))))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// apply runs a key action against the app.
func (a *App) apply(action app.Action) {
	switch action {
	case app.ActionQuit:
		a.running = false
	case app.ActionScreenshot:
		a.screenshot()
	default:
		app.Apply(action, &a.sky.View, a.camera)
	}
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (a *App) updateTitle() {
	title := app.WindowTitle(a.sky.View, a.panel, a.sky.Time)
	if title != a.title {
		a.window.SetTitle(title)
		a.title = title
	}
}

// Close cleans up resources.
func (a *App) Close() {
	logger.Info("closing")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
