// Package camera provides the follow camera used to frame the avatar.
package camera

import (
	gomath "math"

	"github.com/Faultbox/stroll/pkg/math"
)

// FollowCamera trails a target at a fixed world-space offset. The offset
// does not rotate with the target.
type FollowCamera struct {
	// Offset from the look-at point to the eye.
	Offset math.Vec3
	// LookAt is the point looked at, relative to the target position.
	LookAt math.Vec3

	// Projection
	FOV  float32 // vertical, degrees
	Near float32
	Far  float32

	// Smoothing is how quickly the camera catches up, per second.
	// Zero snaps to the target every frame.
	Smoothing float32

	// Zoom limits for HandleZoom, as multiples of the initial offset length.
	MinZoom float32
	MaxZoom float32

	eye, target math.Vec3
	baseLen     float32
	placed      bool
}

// NewFollowCamera creates a camera positioned at (80, 35, 45) relative to a
// look-at point 10 units above the target.
func NewFollowCamera() *FollowCamera {
	c := &FollowCamera{
		LookAt:    math.Vec3{Y: 10},
		FOV:       60,
		Near:      1,
		Far:       1000,
		Smoothing: 5,
		MinZoom:   0.3,
		MaxZoom:   3,
	}
	c.SetOffset(math.Vec3{X: 80, Y: 35, Z: 45}.Sub(c.LookAt))
	return c
}

// SetOffset replaces the eye offset and resets the zoom range to it.
func (c *FollowCamera) SetOffset(offset math.Vec3) {
	c.Offset = offset
	c.baseLen = offset.Length()
}

// Follow moves the camera towards the target at pos. The first call snaps.
func (c *FollowCamera) Follow(pos math.Vec3, dt float64) {
	target := pos.Add(c.LookAt)
	eye := target.Add(c.Offset)

	if !c.placed || c.Smoothing <= 0 {
		c.target, c.eye = target, eye
		c.placed = true
		return
	}
	if !(dt > 0) {
		return
	}

	t := float32(1 - gomath.Exp(-float64(c.Smoothing)*dt))
	c.target = lerp(c.target, target, t)
	c.eye = lerp(c.eye, eye, t)
}

// HandleZoom scales the offset; positive delta moves closer.
func (c *FollowCamera) HandleZoom(delta float32) {
	length := c.Offset.Length()
	if length == 0 || c.baseLen == 0 {
		return
	}
	next := length - delta*length*0.1
	if lo := c.MinZoom * c.baseLen; next < lo {
		next = lo
	}
	if hi := c.MaxZoom * c.baseLen; next > hi {
		next = hi
	}
	c.Offset = c.Offset.Scale(next / length)
}

// Eye returns the camera position.
func (c *FollowCamera) Eye() math.Vec3 { return c.eye }

// Target returns the point the camera looks at.
func (c *FollowCamera) Target() math.Vec3 { return c.target }

// ViewMatrix returns the view matrix for the current position.
func (c *FollowCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.eye, c.target, math.Up)
}

// ProjectionMatrix returns the perspective matrix for the given aspect ratio.
func (c *FollowCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if !(aspect > 0) {
		aspect = 1
	}
	fov := float32(float64(c.FOV) * gomath.Pi / 180)
	return math.Perspective(fov, aspect, c.Near, c.Far)
}

func lerp(a, b math.Vec3, t float32) math.Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}
