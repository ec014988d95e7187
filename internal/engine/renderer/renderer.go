// Package renderer draws the sky scene with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/skydome/internal/engine/shader"
	"github.com/Faultbox/skydome/internal/logger"
	"github.com/Faultbox/skydome/internal/sky"
	"github.com/Faultbox/skydome/pkg/math"
)

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;
uniform mat4 uModel;
uniform float uPointSize;

void main() {
	gl_Position = uViewProj * uModel * vec4(aPos, 1.0);
	gl_PointSize = uPointSize;
}
`

const fragmentShaderSource = `
#version 410 core

uniform vec4 uColor;
uniform bool uRoundPoint;

out vec4 FragColor;

void main() {
	if (uRoundPoint && length(gl_PointCoord - vec2(0.5)) > 0.5) {
		discard;
	}
	FragColor = uColor;
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// mesh is an uploaded vertex buffer.
type mesh struct {
	vao, vbo uint32
	count    int32
	mode     uint32
	color    sky.Color
}

// Renderer draws background lines and star markers.
type Renderer struct {
	config  Config
	program *shader.Program

	background []mesh
	star       mesh
}

// New creates a renderer and uploads the scene's static geometry.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, scene *sky.Scene) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	r.program, err = shader.NewProgram(vertexShaderSource, fragmentShaderSource,
		"uViewProj", "uModel", "uPointSize", "uColor", "uRoundPoint")
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.background = make([]mesh, len(scene.Background))
	for i, e := range scene.Background {
		r.background[i] = upload(e.Mesh.Vertices, primitive(e.Mesh.Topology), e.Mesh.Color)
	}
	r.star = upload([]math.Vec3{{}}, gl.POINTS, sky.StarColor)

	r.Resize(cfg.Width, cfg.Height)

	logger.Debug("scene uploaded",
		zap.Int("background", len(r.background)),
		zap.Int("stars", len(scene.Stars)),
	)
	return r, nil
}

func primitive(t sky.Topology) uint32 {
	if t == sky.LineList {
		return gl.LINES
	}
	return gl.LINE_STRIP
}

// upload creates a VAO holding positions only.
func upload(vertices []math.Vec3, mode uint32, color sky.Color) mesh {
	m := mesh{count: int32(len(vertices)), mode: mode, color: color}
	if len(vertices) == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(math.Vec3{})), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, int32(unsafe.Sizeof(math.Vec3{})), nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

func (m *mesh) release() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for i := range r.background {
		r.background[i].release()
	}
	r.star.release()
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame into the bound framebuffer. pixelsPerUnit
// converts world lengths to framebuffer pixels and sizes the star markers.
// GL state is set on every call since the UI pass changes it.
func (r *Renderer) Draw(scene *sky.Scene, viewProj math.Mat4, pixelsPerUnit float32) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	gl.UniformMatrix4fv(r.program.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform1f(r.program.Uniform("uPointSize"), 1)
	gl.Uniform1i(r.program.Uniform("uRoundPoint"), 0)

	for i, e := range scene.Background {
		if !e.Visible || i >= len(r.background) {
			continue
		}
		r.drawMesh(&r.background[i], e.Transform.Matrix())
	}

	gl.Uniform1i(r.program.Uniform("uRoundPoint"), 1)
	for _, s := range scene.Stars {
		size := 2 * sky.StarMarkerRadius * s.Transform.Scale.X * pixelsPerUnit
		gl.Uniform1f(r.program.Uniform("uPointSize"), size)
		r.drawMesh(&r.star, s.Transform.Matrix())
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.DEPTH_TEST)
}

func (r *Renderer) drawMesh(m *mesh, model math.Mat4) {
	if m.vao == 0 {
		return
	}
	c := m.color
	gl.UniformMatrix4fv(r.program.Uniform("uModel"), 1, false, model.Ptr())
	gl.Uniform4f(r.program.Uniform("uColor"), c[0], c[1], c[2], c[3])
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(m.mode, 0, m.count)
}

// ReadPixels returns the back buffer as tightly packed RGBA rows, bottom
// row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
