// Package input turns key events into the movement snapshot read by the
// character controller.
package input

import (
	"fmt"
	"strings"
)

// Key identifies a physical key independent of the windowing backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyLeftShift
	KeyRightShift
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

var keyNames = map[Key]string{
	KeyW:          "W",
	KeyA:          "A",
	KeyS:          "S",
	KeyD:          "D",
	KeySpace:      "SPACE",
	KeyLeftShift:  "LSHIFT",
	KeyRightShift: "RSHIFT",
	KeyUp:         "UP",
	KeyDown:       "DOWN",
	KeyLeft:       "LEFT",
	KeyRight:      "RIGHT",
	KeyEscape:     "ESCAPE",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseKey resolves a key name as written in the config file.
// "SHIFT" is accepted as an alias for the left shift key.
func ParseKey(name string) (Key, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "SHIFT" {
		return KeyLeftShift, nil
	}
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// Action is a logical movement command a key can be bound to.
type Action int

const (
	ActionNone Action = iota
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionJump
	ActionRun
)

var actionNames = map[Action]string{
	ActionForward:  "forward",
	ActionBackward: "backward",
	ActionLeft:     "left",
	ActionRight:    "right",
	ActionJump:     "jump",
	ActionRun:      "run",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction resolves an action name as written in the config file.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}
