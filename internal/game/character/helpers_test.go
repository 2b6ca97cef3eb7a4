package character

import (
	"testing"

	"github.com/Faultbox/stroll/internal/assets"
	"github.com/Faultbox/stroll/internal/engine/anim"
	"github.com/Faultbox/stroll/internal/engine/input"
)

var clipDurations = map[string]float64{
	"idle":  1.0,
	"walk":  0.8,
	"run":   0.5,
	"dance": 1.2,
}

func testClips(t *testing.T) map[string]*anim.Clip {
	t.Helper()
	clips := make(map[string]*anim.Clip, len(clipDurations))
	for name, d := range clipDurations {
		c, err := anim.NewClip(name, d, nil)
		if err != nil {
			t.Fatalf("NewClip(%s): %v", name, err)
		}
		clips[name] = c
	}
	return clips
}

func testCharacter(t *testing.T) *assets.Character {
	t.Helper()
	return &assets.Character{
		Model: assets.Model{Name: "test", Scale: 1},
		Clips: testClips(t),
	}
}

func newTestFSM(t *testing.T) (*FSM, *anim.Mixer) {
	t.Helper()
	mixer := anim.NewMixer()
	b, err := NewBindings(mixer, testClips(t))
	if err != nil {
		t.Fatalf("NewBindings: %v", err)
	}
	f, err := NewFSM(b, DefaultBlend(), nil)
	if err != nil {
		t.Fatalf("NewFSM: %v", err)
	}
	return f, mixer
}

func mustAction(t *testing.T, f *FSM, id StateID) *anim.Action {
	t.Helper()
	a, err := f.Bindings().Action(id)
	if err != nil {
		t.Fatalf("Action(%s): %v", id, err)
	}
	return a
}

func assertState(t *testing.T, f *FSM, want StateID) {
	t.Helper()
	got, ok := f.StateID()
	if !ok {
		t.Fatalf("no current state, want %s", want)
	}
	if got != want {
		t.Fatalf("state = %s, want %s", got, want)
	}
}

// fakeInput is a scripted input source.
type fakeInput struct {
	snap input.Snapshot
}

func (f *fakeInput) Snapshot() input.Snapshot { return f.snap }
