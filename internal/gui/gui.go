// Package gui runs the sky viewer inside Dear ImGui: the sky view, a side
// panel with Stars and Telescope control tabs, and a control bar.
package gui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/skydome/internal/app"
	"github.com/Faultbox/skydome/internal/config"
	"github.com/Faultbox/skydome/internal/engine/camera"
	"github.com/Faultbox/skydome/internal/engine/debug"
	"github.com/Faultbox/skydome/internal/engine/framebuffer"
	"github.com/Faultbox/skydome/internal/engine/renderer"
	"github.com/Faultbox/skydome/internal/engine/ui"
	"github.com/Faultbox/skydome/internal/logger"
	"github.com/Faultbox/skydome/internal/sky"
	"github.com/Faultbox/skydome/pkg/math"
)

// GUI is the ImGui frontend.
type GUI struct {
	backend     *ui.Backend
	renderer    *renderer.Renderer
	target      *framebuffer.Framebuffer
	camera      *camera.OrbitCamera
	sky         *sky.Controller
	panel       sky.PanelInfo
	screenshots *debug.ScreenshotCapture

	lastFrame           time.Time
	lastMouse           imgui.Vec2
	screenshotRequested bool
	notice              string
	title               string
}

// New creates the window, the offscreen target and the sky state.
func New(cfg *config.Config) (*GUI, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Float64("latitude", cfg.Observer.Latitude),
		zap.Float64("longitude", cfg.Observer.Longitude),
		zap.Int("stars", len(cfg.Stars)),
	)
	if cfg.Graphics.Fullscreen {
		logger.Warn("fullscreen is ignored by the imgui frontend")
	}

	format, err := debug.ParseFormat(cfg.Debug.ScreenshotFormat)
	if err != nil {
		return nil, err
	}

	g := &GUI{
		camera:      camera.NewOrbitCamera(),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "skydome", format),
	}

	g.sky, g.panel, err = app.NewSky(cfg, g.camera, time.Now, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to build sky: %w", err)
	}

	g.backend, err = ui.NewBackend(app.Title, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.target, err = framebuffer.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create sky target: %w", err)
	}

	g.renderer, err = renderer.New(renderer.Config{Width: cfg.Graphics.Width, Height: cfg.Graphics.Height}, g.sky.Scene)
	if err != nil {
		g.target.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	logger.Info("initialized successfully")
	return g, nil
}

// Run starts the frame loop and returns when the window is closed.
func (g *GUI) Run() {
	logger.Info("starting main loop")
	g.lastFrame = time.Now()
	g.backend.Run(g.frame)
}

// frame is called by the backend once per frame.
func (g *GUI) frame() {
	now := time.Now()
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now

	if !imgui.IsAnyItemActive() {
		for _, s := range shortcuts {
			if ui.IsKeyPressed(s.key) {
				g.apply(s.action)
			}
		}
	}

	x, y, w, h := ui.WorkArea()
	view, panel, bar := layout(rect{X: x, Y: y, W: w, H: h})

	g.drawSky(now, dt, view)
	g.drawPanel(panel)
	g.drawControlBar(bar)

	if title := app.WindowTitle(g.sky.View, g.panel, g.sky.Time); title != g.title {
		g.title = title
		g.backend.SetWindowTitle(title)
	}
}

// apply runs a shortcut or control bar action.
func (g *GUI) apply(action app.Action) {
	switch action {
	case app.ActionQuit:
		g.backend.Close()
	case app.ActionScreenshot:
		g.screenshotRequested = true
	default:
		app.Apply(action, &g.sky.View, g.camera)
	}
}

// drawSky feeds mouse state to the camera and the sky controller, renders
// the scene offscreen and shows it as an image filling area.
func (g *GUI) drawSky(now time.Time, dt float64, area rect) {
	imgui.SetNextWindowPos(imgui.NewVec2(area.X, area.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(area.W, area.H))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoCollapse

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Sky", nil, flags) {
		origin := imgui.CursorScreenPos()
		size := imgui.ContentRegionAvail()
		mouse := imgui.MousePos()
		hovered := imgui.IsWindowHovered()

		if hovered {
			if imgui.IsMouseDragging(imgui.MouseButtonRight) {
				g.camera.HandleDrag(mouse.X-g.lastMouse.X, mouse.Y-g.lastMouse.Y)
			}
			g.camera.HandleZoom(imgui.CurrentIO().MouseWheel())
		}
		g.lastMouse = mouse

		g.camera.SetViewport(int(size.X), int(size.Y))
		g.camera.Update(dt)

		g.sky.Tick(sky.FrameInput{
			Now:          now,
			Cursor:       math.Vec2{X: mouse.X - origin.X, Y: mouse.Y - origin.Y},
			HasCursor:    hovered,
			Pressed:      hovered && imgui.IsMouseClickedBool(imgui.MouseButtonLeft),
			CameraRadius: g.camera.Current.Radius,
		})

		g.renderSky(size)

		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(g.target.ColorTexture()))
		imgui.ImageV(*texRef, size, imgui.NewVec2(0, 1), imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// renderSky draws the scene into the offscreen target at drawable
// resolution.
func (g *GUI) renderSky(size imgui.Vec2) {
	sx, sy := ui.FramebufferScale()
	g.target.Resize(int(size.X*sx), int(size.Y*sy))
	_, fh := g.target.Size()

	restore := g.target.Bind()
	g.renderer.Draw(g.sky.Scene, g.camera.ViewProjection(), float32(fh)/g.camera.Current.Radius)
	restore()

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.screenshot()
	}
}

func (g *GUI) screenshot() {
	pixels, w, h := g.target.ReadPixels()
	path, err := g.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		g.notice = "Screenshot failed"
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
	g.notice = "Saved " + path
}

// Close releases what outlives the GL context. GL objects are freed with
// the context when the backend loop ends.
func (g *GUI) Close() {
	logger.Info("closing")
}
