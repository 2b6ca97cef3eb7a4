package input

import "fmt"

// Keymap binds keys to actions. Several keys may share one action.
type Keymap map[Key]Action

// DefaultKeymap returns the WASD layout: SPACE triggers the dance and either
// shift key is the run modifier.
func DefaultKeymap() Keymap {
	return Keymap{
		KeyW:          ActionForward,
		KeyA:          ActionLeft,
		KeyS:          ActionBackward,
		KeyD:          ActionRight,
		KeySpace:      ActionJump,
		KeyLeftShift:  ActionRun,
		KeyRightShift: ActionRun,
	}
}

// KeymapFromNames builds a keymap from action -> key names, e.g.
// {"forward": ["W", "UP"]}.
func KeymapFromNames(bindings map[string][]string) (Keymap, error) {
	km := make(Keymap)
	for actionName, keys := range bindings {
		action, err := ParseAction(actionName)
		if err != nil {
			return nil, err
		}
		for _, keyName := range keys {
			key, err := ParseKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("binding %s: %w", actionName, err)
			}
			if prev, ok := km[key]; ok && prev != action {
				return nil, fmt.Errorf("key %s bound to both %s and %s", key, prev, action)
			}
			km[key] = action
		}
	}
	return km, nil
}
