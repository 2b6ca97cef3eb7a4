package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/stroll/pkg/math"
)

// Layout is the on-disk description of a scene's set dressing.
type Layout struct {
	Ground  *LayoutObject  `yaml:"ground"`
	Objects []LayoutObject `yaml:"objects"`
}

// LayoutObject is one box. Position is the centre of its base; Size is the
// full extent; Yaw rotates it around the up axis in radians.
type LayoutObject struct {
	Kind     string     `yaml:"kind"`
	Position [3]float32 `yaml:"position"`
	Size     [3]float32 `yaml:"size"`
	Yaw      float32    `yaml:"yaw"`
	Color    [3]float32 `yaml:"color"`
}

// ParseLayout decodes a YAML layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	for i, o := range l.Objects {
		if o.Size[0] <= 0 || o.Size[1] <= 0 || o.Size[2] <= 0 {
			return nil, fmt.Errorf("layout object %d (%s): size must be positive", i, o.Kind)
		}
	}
	return &l, nil
}

// Populate adds the ground, when present, and every object to s.
func (l *Layout) Populate(s *Scene) []ObjectID {
	ids := make([]ObjectID, 0, len(l.Objects)+1)
	if l.Ground != nil {
		g := *l.Ground
		g.Kind = "ground"
		// The ground's top face is at y = 0.
		g.Position[1] -= g.Size[1]
		ids = append(ids, s.Add(g.renderable(), g.transform()))
	}
	for _, o := range l.Objects {
		ids = append(ids, s.Add(o.renderable(), o.transform()))
	}
	return ids
}

func (o LayoutObject) renderable() Renderable {
	return Renderable{Kind: o.Kind, Color: o.Color}
}

func (o LayoutObject) transform() Transform {
	size := math.Vec3{X: o.Size[0], Y: o.Size[1], Z: o.Size[2]}
	return Transform{
		Position: math.Vec3{X: o.Position[0], Y: o.Position[1] + size.Y/2, Z: o.Position[2]},
		Rotation: math.QuatFromAxisAngle(math.Up, o.Yaw),
		Scale:    size,
	}
}
