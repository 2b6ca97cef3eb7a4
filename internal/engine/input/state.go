package input

// Snapshot is the movement input sampled once per tick.
type Snapshot struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool // dance trigger
	Run      bool // run modifier
}

// Moving reports whether forward or backward is held.
func (s Snapshot) Moving() bool {
	return s.Forward || s.Backward
}

// State records key events into a Snapshot. Events and reads must happen on
// the same goroutine as the tick.
type State struct {
	keymap Keymap
	snap   Snapshot
	// held counts pressed keys per action so that releasing one of two keys
	// bound to the same action keeps it active.
	held map[Action]map[Key]bool
}

// NewState creates an input state using the given keymap. A nil keymap uses
// DefaultKeymap.
func NewState(km Keymap) *State {
	if km == nil {
		km = DefaultKeymap()
	}
	return &State{
		keymap: km,
		held:   make(map[Action]map[Key]bool),
	}
}

// OnKeyDown records a key press. Unbound keys are ignored.
func (s *State) OnKeyDown(k Key) {
	action, ok := s.keymap[k]
	if !ok {
		return
	}
	keys := s.held[action]
	if keys == nil {
		keys = make(map[Key]bool)
		s.held[action] = keys
	}
	keys[k] = true
	s.set(action, true)
}

// OnKeyUp records a key release. Unbound keys are ignored.
func (s *State) OnKeyUp(k Key) {
	action, ok := s.keymap[k]
	if !ok {
		return
	}
	keys := s.held[action]
	delete(keys, k)
	s.set(action, len(keys) > 0)
}

// Snapshot returns the current flags. Reading does not consume anything.
func (s *State) Snapshot() Snapshot {
	return s.snap
}

// Reset releases every action, e.g. when the window loses focus and key-up
// events will never arrive.
func (s *State) Reset() {
	s.snap = Snapshot{}
	s.held = make(map[Action]map[Key]bool)
}

// SetKeymap swaps the bindings and releases everything held.
func (s *State) SetKeymap(km Keymap) {
	s.keymap = km
	s.Reset()
}

func (s *State) set(a Action, down bool) {
	switch a {
	case ActionForward:
		s.snap.Forward = down
	case ActionBackward:
		s.snap.Backward = down
	case ActionLeft:
		s.snap.Left = down
	case ActionRight:
		s.snap.Right = down
	case ActionJump:
		s.snap.Jump = down
	case ActionRun:
		s.snap.Run = down
	}
}
