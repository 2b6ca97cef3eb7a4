package character

import (
	"errors"
	"fmt"

	"github.com/Faultbox/stroll/internal/engine/anim"
)

// ErrMissingBinding means a state has no clip/action. It is a load-ordering
// or asset bug, never a runtime condition.
var ErrMissingBinding = errors.New("character: missing animation binding")

// Binding pairs a state's clip with its action on the character's mixer.
type Binding struct {
	Clip   *anim.Clip
	Action *anim.Action
}

// Bindings maps every state to its animation. Built once when loading
// completes and read-only afterwards.
type Bindings struct {
	mixer   *anim.Mixer
	byState map[StateID]Binding
}

// NewBindings creates an action on mixer for each state's clip, looked up by
// state name. Every state in AllStates must have a clip.
func NewBindings(mixer *anim.Mixer, clips map[string]*anim.Clip) (*Bindings, error) {
	b := &Bindings{
		mixer:   mixer,
		byState: make(map[StateID]Binding, len(AllStates)),
	}
	for _, id := range AllStates {
		clip, ok := clips[id.String()]
		if !ok || clip == nil {
			continue
		}
		b.byState[id] = Binding{Clip: clip, Action: mixer.ClipAction(clip)}
	}
	if err := b.Validate(AllStates...); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks that each id has a binding.
func (b *Bindings) Validate(ids ...StateID) error {
	var missing []error
	for _, id := range ids {
		if _, ok := b.byState[id]; !ok {
			missing = append(missing, fmt.Errorf("%w: %s", ErrMissingBinding, id))
		}
	}
	return errors.Join(missing...)
}

// Action returns the action bound to id.
func (b *Bindings) Action(id StateID) (*anim.Action, error) {
	binding, ok := b.byState[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingBinding, id)
	}
	return binding.Action, nil
}

// Clip returns the clip bound to id.
func (b *Bindings) Clip(id StateID) (*anim.Clip, error) {
	binding, ok := b.byState[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingBinding, id)
	}
	return binding.Clip, nil
}

// Mixer returns the mixer the actions belong to.
func (b *Bindings) Mixer() *anim.Mixer {
	return b.mixer
}
