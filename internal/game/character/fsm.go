package character

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/stroll/internal/engine/input"
	"github.com/Faultbox/stroll/internal/game/fsm"
)

// Crossfade durations in seconds.
const (
	// BlendDuration is used between idle, walk and run.
	BlendDuration = 0.5
	// DanceBlendDuration is used when the dance is triggered.
	DanceBlendDuration = 0.2
)

// Blend holds the crossfade durations used by the states.
type Blend struct {
	Default float64
	Dance   float64
}

// DefaultBlend returns the standard crossfade durations.
func DefaultBlend() Blend {
	return Blend{Default: BlendDuration, Dance: DanceBlendDuration}
}

// FSM is the character animation state machine: idle, walk, run and dance
// registered on a generic machine.
type FSM struct {
	*Machine
	bindings *Bindings
	blend    Blend
}

// NewFSM registers the four animation states. The machine has no current
// state until SetState is called.
func NewFSM(bindings *Bindings, blend Blend, log *zap.Logger) (*FSM, error) {
	f := &FSM{
		Machine:  fsm.New[StateID, input.Snapshot](log),
		bindings: bindings,
		blend:    blend,
	}

	factories := map[StateID]fsm.Factory[StateID, input.Snapshot]{
		Idle:  func(*Machine) State { return &idleState{fsm: f} },
		Walk:  func(*Machine) State { return &walkState{locomotionState{fsm: f, id: Walk, partner: Run}} },
		Run:   func(*Machine) State { return &runState{locomotionState{fsm: f, id: Run, partner: Walk}} },
		Dance: func(*Machine) State { return &danceState{fsm: f} },
	}
	for _, id := range AllStates {
		if err := f.Register(id, factories[id]); err != nil {
			return nil, fmt.Errorf("registering %s: %w", id, err)
		}
	}
	return f, nil
}

// Bindings returns the animation bindings the states play.
func (f *FSM) Bindings() *Bindings {
	return f.bindings
}

// StateID returns the current state, if any.
func (f *FSM) StateID() (StateID, bool) {
	return f.CurrentID()
}
