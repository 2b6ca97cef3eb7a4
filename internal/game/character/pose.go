package character

import "github.com/Faultbox/stroll/pkg/math"

// Pose is what the renderer needs to draw the avatar this frame: where it
// stands plus the blended secondary motion from the active clips.
type Pose struct {
	Position math.Vec3
	Rotation math.Quat
	// Bob is a vertical offset and Lean a forward tilt in radians, both
	// blended across actions by their current weights.
	Bob  float32
	Lean float32
}

// Pose samples the mixer for the current frame.
func (c *Controller) Pose() Pose {
	p := Pose{Position: c.motion.Position, Rotation: c.motion.Rotation}
	if c.mixer == nil {
		return p
	}
	if v, ok := c.mixer.Sample("bob"); ok {
		p.Bob = v
	}
	if v, ok := c.mixer.Sample("lean"); ok {
		p.Lean = v
	}
	return p
}

// Matrix returns the model matrix for a box of the given size standing on
// the ground at the pose.
func (p Pose) Matrix(size math.Vec3) math.Mat4 {
	lean := math.QuatFromAxisAngle(math.Right, p.Lean)
	center := p.Position.Add(math.Vec3{Y: size.Y/2 + p.Bob})
	return math.TRS(center, p.Rotation.Mul(lean), size)
}
