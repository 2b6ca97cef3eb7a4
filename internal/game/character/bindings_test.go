package character

import (
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/stroll/internal/engine/anim"
)

func TestNewBindingsMissingClip(t *testing.T) {
	clips := testClips(t)
	delete(clips, "dance")
	delete(clips, "run")

	_, err := NewBindings(anim.NewMixer(), clips)
	if !errors.Is(err, ErrMissingBinding) {
		t.Fatalf("expected ErrMissingBinding, got %v", err)
	}
	for _, name := range []string{"dance", "run"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

func TestBindingsShareMixer(t *testing.T) {
	mixer := anim.NewMixer()
	clips := testClips(t)
	b, err := NewBindings(mixer, clips)
	if err != nil {
		t.Fatalf("NewBindings: %v", err)
	}

	for _, id := range AllStates {
		a, err := b.Action(id)
		if err != nil {
			t.Fatalf("Action(%s): %v", id, err)
		}
		if a.Mixer() != mixer {
			t.Errorf("%s action belongs to another mixer", id)
		}
		if a != mixer.ClipAction(clips[id.String()]) {
			t.Errorf("%s action is not the mixer's clip action", id)
		}
		c, err := b.Clip(id)
		if err != nil {
			t.Fatalf("Clip(%s): %v", id, err)
		}
		if c.Duration != clipDurations[id.String()] {
			t.Errorf("%s clip duration = %v", id, c.Duration)
		}
	}
}

func TestBindingsLookupUnknown(t *testing.T) {
	b, err := NewBindings(anim.NewMixer(), testClips(t))
	if err != nil {
		t.Fatalf("NewBindings: %v", err)
	}
	if _, err := b.Action(StateID(42)); !errors.Is(err, ErrMissingBinding) {
		t.Errorf("expected ErrMissingBinding, got %v", err)
	}
	if err := b.Validate(Idle, StateID(42)); !errors.Is(err, ErrMissingBinding) {
		t.Errorf("expected ErrMissingBinding from Validate, got %v", err)
	}
}

func TestStateIDString(t *testing.T) {
	want := map[StateID]string{Idle: "idle", Walk: "walk", Run: "run", Dance: "dance", StateID(9): "unknown"}
	for id, name := range want {
		if id.String() != name {
			t.Errorf("StateID(%d).String() = %q, want %q", int(id), id.String(), name)
		}
	}
}
