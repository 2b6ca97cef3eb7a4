// Package scene holds the static objects of the world. It is a plain list of
// renderables at transforms; drawing is left to the renderer.
package scene

import (
	"github.com/Faultbox/stroll/pkg/math"
)

// ObjectID identifies an object added to a scene.
type ObjectID int

// Renderable describes what to draw. Everything is drawn as a unit cube
// scaled by the object's transform.
type Renderable struct {
	Kind  string
	Color [3]float32
}

// Transform places an object in the world.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
}

// NewTransform returns a transform at pos with no rotation and unit scale.
func NewTransform(pos math.Vec3) Transform {
	return Transform{
		Position: pos,
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Matrix returns the model matrix: scale, then rotate, then translate.
func (t Transform) Matrix() math.Mat4 {
	return math.TRS(t.Position, t.Rotation, t.Scale)
}

// Object is a renderable placed in the scene.
type Object struct {
	ID         ObjectID
	Renderable Renderable
	Transform  Transform
}

// Light is a single directional light.
type Light struct {
	Direction math.Vec3
	Color     [3]float32
	Ambient   [3]float32
}

// DefaultLight is a warm sun from above and behind the default camera.
func DefaultLight() Light {
	return Light{
		Direction: math.Vec3{X: -1, Y: -1, Z: -1}.Normalize(),
		Color:     [3]float32{1, 1, 0.95},
		Ambient:   [3]float32{0.35, 0.35, 0.4},
	}
}

// Scene is an append-only collection of static objects.
type Scene struct {
	objects []Object
	Light   Light
	// Background is the clear colour.
	Background [3]float32
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		Light:      DefaultLight(),
		Background: [3]float32{0.55, 0.7, 0.9},
	}
}

// Add places r at t and returns its id.
func (s *Scene) Add(r Renderable, t Transform) ObjectID {
	id := ObjectID(len(s.objects) + 1)
	s.objects = append(s.objects, Object{ID: id, Renderable: r, Transform: t})
	return id
}

// Objects returns the objects in insertion order. The slice must not be
// modified.
func (s *Scene) Objects() []Object {
	return s.objects
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}
