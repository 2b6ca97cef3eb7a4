// Package renderer draws the scene and the avatar as lit boxes.
package renderer

import (
	_ "embed"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/stroll/internal/engine/scene"
	"github.com/Faultbox/stroll/internal/engine/shader"
	"github.com/Faultbox/stroll/internal/logger"
	"github.com/Faultbox/stroll/pkg/math"
)

var (
	//go:embed shaders/box.vert
	boxVertexSrc string
	//go:embed shaders/box.frag
	boxFragmentSrc string
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program
	cubeVAO uint32
	cubeVBO uint32
	cubeLen int32

	viewProj math.Mat4
}

// New creates a new renderer. It must be called after the OpenGL context
// exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.New(boxVertexSrc, boxFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.createCube()
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin clears the frame and sets the camera and light for the draws that
// follow.
func (r *Renderer) Begin(viewProj math.Mat4, background [3]float32, light scene.Light) {
	gl.ClearColor(background[0], background[1], background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.viewProj = viewProj
	r.program.Use()
	r.program.SetMat4("uViewProj", viewProj)
	r.program.SetVec3("uLightDir", [3]float32{light.Direction.X, light.Direction.Y, light.Direction.Z})
	r.program.SetVec3("uLightColor", light.Color)
	r.program.SetVec3("uAmbient", light.Ambient)
	gl.BindVertexArray(r.cubeVAO)
}

// DrawScene draws every object in s.
func (r *Renderer) DrawScene(s *scene.Scene) {
	for _, o := range s.Objects() {
		r.DrawBox(o.Transform.Matrix(), o.Renderable.Color)
	}
}

// DrawBox draws a unit cube transformed by model.
func (r *Renderer) DrawBox(model math.Mat4, color [3]float32) {
	r.program.SetMat4("uModel", model)
	r.program.SetVec3("uColor", color)
	gl.DrawArrays(gl.TRIANGLES, 0, r.cubeLen)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

func (r *Renderer) createCube() {
	vertices := cubeVertices()
	r.cubeLen = int32(len(vertices) / 6)

	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)

	// Normal (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("cube created",
		zap.Uint32("vao", r.cubeVAO),
		zap.Uint32("vbo", r.cubeVBO),
	)
}
