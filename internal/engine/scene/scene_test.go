package scene

import (
	"testing"

	"github.com/Faultbox/stroll/pkg/math"
)

func TestAddAssignsIDsInOrder(t *testing.T) {
	s := New()
	a := s.Add(Renderable{Kind: "house"}, NewTransform(math.Vec3{X: 1}))
	b := s.Add(Renderable{Kind: "tree"}, NewTransform(math.Vec3{X: 2}))

	if a == b {
		t.Fatalf("ids collide: %d", a)
	}
	objs := s.Objects()
	if len(objs) != 2 || s.Len() != 2 {
		t.Fatalf("got %d objects, want 2", len(objs))
	}
	if objs[0].ID != a || objs[1].ID != b {
		t.Errorf("ids = %d, %d; want %d, %d", objs[0].ID, objs[1].ID, a, b)
	}
	if objs[1].Renderable.Kind != "tree" {
		t.Errorf("kind = %s, want tree", objs[1].Renderable.Kind)
	}
}

func TestTransformMatrixPlacesOrigin(t *testing.T) {
	tr := NewTransform(math.Vec3{X: 3, Y: 4, Z: 5})
	tr.Scale = math.Vec3{X: 2, Y: 2, Z: 2}
	got := tr.Matrix().TransformPoint(math.Vec3{X: 0.5})
	want := math.Vec3{X: 4, Y: 4, Z: 5}
	if got != want {
		t.Errorf("TransformPoint = %+v, want %+v", got, want)
	}
}

const layoutYAML = `
ground:
  size: [100, 2, 100]
objects:
  - {kind: house, position: [10, 0, -10], size: [8, 6, 8], color: [1, 0, 0]}
  - {kind: tree, position: [-5, 0, 5], size: [1, 10, 1], yaw: 1.5}
`

func TestLayoutPopulate(t *testing.T) {
	l, err := ParseLayout([]byte(layoutYAML))
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}

	s := New()
	ids := l.Populate(s)
	if len(ids) != 3 {
		t.Fatalf("got %d ids, want 3", len(ids))
	}

	objs := s.Objects()
	ground := objs[0]
	if ground.Renderable.Kind != "ground" {
		t.Errorf("first object kind = %s, want ground", ground.Renderable.Kind)
	}
	// Top face at y = 0.
	if top := ground.Transform.Position.Y + ground.Transform.Scale.Y/2; top != 0 {
		t.Errorf("ground top = %v, want 0", top)
	}

	house := objs[1]
	// Base sits on the ground.
	if base := house.Transform.Position.Y - house.Transform.Scale.Y/2; base != 0 {
		t.Errorf("house base = %v, want 0", base)
	}
	if house.Renderable.Color != [3]float32{1, 0, 0} {
		t.Errorf("house color = %v", house.Renderable.Color)
	}
}

func TestParseLayoutRejectsEmptySize(t *testing.T) {
	_, err := ParseLayout([]byte("objects:\n  - {kind: rock, position: [0, 0, 0]}\n"))
	if err == nil {
		t.Error("expected error for zero size, got nil")
	}
}

func TestParseLayoutInvalidYAML(t *testing.T) {
	if _, err := ParseLayout([]byte("objects: [")); err == nil {
		t.Error("expected parse error, got nil")
	}
}
