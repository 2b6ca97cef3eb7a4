package character

import (
	"math"
	"testing"

	"github.com/Faultbox/stroll/internal/engine/anim"
	"github.com/Faultbox/stroll/internal/engine/input"
	m3 "github.com/Faultbox/stroll/pkg/math"
)

func TestPoseBeforeLoad(t *testing.T) {
	c := NewController(&fakeInput{})
	p := c.Pose()
	if p.Bob != 0 || p.Lean != 0 {
		t.Errorf("pose before load = %+v, want no secondary motion", p)
	}
}

func TestPoseBlendsTracks(t *testing.T) {
	clips := testClips(t)
	idle, err := anim.NewClip("idle", 1, map[string][]anim.Keyframe{
		"bob": {{Time: 0, Value: 0}, {Time: 1, Value: 0}},
	})
	if err != nil {
		t.Fatal(err)
	}
	walk, err := anim.NewClip("walk", 0.8, map[string][]anim.Keyframe{
		"bob": {{Time: 0, Value: 2}, {Time: 0.8, Value: 2}},
	})
	if err != nil {
		t.Fatal(err)
	}
	clips["idle"], clips["walk"] = idle, walk
	ch := testCharacter(t)
	ch.Clips = clips

	in := &fakeInput{snap: input.Snapshot{Forward: true}}
	c := NewController(in)
	if err := c.OnLoaded(ch); err != nil {
		t.Fatal(err)
	}

	// Halfway through the 0.5s crossfade idle and walk weigh the same.
	step(t, c, 0.25, 1)
	if got := c.Pose().Bob; math.Abs(float64(got-1)) > 1e-5 {
		t.Errorf("bob mid-fade = %v, want 1", got)
	}
	step(t, c, 0.25, 1)
	if got := c.Pose().Bob; math.Abs(float64(got-2)) > 1e-5 {
		t.Errorf("bob after fade = %v, want 2", got)
	}
}

func TestPoseMatrixStandsOnGround(t *testing.T) {
	p := Pose{Position: m3.Vec3{X: 5}, Rotation: m3.QuatIdentity()}
	m := p.Matrix(m3.Vec3{X: 1, Y: 2, Z: 1})

	foot := m.TransformPoint(m3.Vec3{Y: -0.5})
	if math.Abs(float64(foot.Y)) > 1e-6 || math.Abs(float64(foot.X-5)) > 1e-6 {
		t.Errorf("foot at %+v, want (5, 0, 0)", foot)
	}
}
