// Package ui provides the Dear ImGui window backend.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/skydome/internal/logger"
)

// Backend owns the SDL window, the GL context and the ImGui frame loop.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window and initializes OpenGL in its context.
func NewBackend(title string, width, height int) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(0.08, 0.08, 0.1, 1.0))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	logger.Info("imgui backend created",
		zap.String("title", title),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return b, nil
}

// Run calls frame once per frame until the window is closed. frame runs
// between the ImGui frame start and its render, with the GL context current.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// Close asks the loop to stop after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// WorkArea returns the main viewport work area in window coordinates.
func WorkArea() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// FramebufferScale returns drawable pixels per window unit.
func FramebufferScale() (float32, float32) {
	s := imgui.CurrentIO().DisplayFramebufferScale()
	return s.X, s.Y
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
