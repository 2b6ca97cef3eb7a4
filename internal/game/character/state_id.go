// Package character wires the avatar's animation state machine and the
// locomotion controller that integrates keyboard input into movement.
package character

import (
	"github.com/Faultbox/stroll/internal/engine/input"
	"github.com/Faultbox/stroll/internal/game/fsm"
)

// StateID identifies an animation state.
type StateID int

const (
	Idle StateID = iota
	Walk
	Run
	Dance
)

// AllStates lists every state that needs an animation binding.
var AllStates = []StateID{Idle, Walk, Run, Dance}

var stateNames = map[StateID]string{
	Idle:  "idle",
	Walk:  "walk",
	Run:   "run",
	Dance: "dance",
}

// String returns the state name, which is also the clip name it binds to.
func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// State is a character animation state.
type State = fsm.State[StateID, input.Snapshot]

// Machine is the generic machine specialised for the character.
type Machine = fsm.Machine[StateID, input.Snapshot]
