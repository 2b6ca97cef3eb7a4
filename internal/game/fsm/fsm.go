// Package fsm implements a finite-state machine whose states are created
// from registered factories on every transition.
package fsm

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrUnknownState is returned when a transition targets an ID with no
	// registered factory. It indicates a wiring bug.
	ErrUnknownState = errors.New("fsm: unknown state")
	// ErrDuplicateState is returned by Register when the ID is taken.
	ErrDuplicateState = errors.New("fsm: state already registered")
)

// State is one state of a Machine.
type State[ID comparable, In any] interface {
	// ID returns the registered identifier of this state.
	ID() ID

	// Enter is called after the state becomes current. prev is the state
	// that was just exited, or nil on the first transition.
	Enter(prev State[ID, In]) error

	// Exit is called before the state is replaced.
	Exit() error

	// Update is called every tick while the state is current.
	Update(dt float64, in In) error
}

// Factory builds a fresh state instance for a transition.
type Factory[ID comparable, In any] func(m *Machine[ID, In]) State[ID, In]

// Machine holds the registered factories and the current state.
type Machine[ID comparable, In any] struct {
	factories map[ID]Factory[ID, In]
	current   State[ID, In]
	log       *zap.Logger
}

// New creates an empty machine. A nil logger discards transition logs.
func New[ID comparable, In any](log *zap.Logger) *Machine[ID, In] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine[ID, In]{
		factories: make(map[ID]Factory[ID, In]),
		log:       log,
	}
}

// Register associates id with a factory. Registering the same id twice is an
// error; use Replace to swap a factory on purpose.
func (m *Machine[ID, In]) Register(id ID, f Factory[ID, In]) error {
	if _, ok := m.factories[id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateState, id)
	}
	m.factories[id] = f
	return nil
}

// Replace associates id with a factory, overwriting any previous one. The
// current state instance is not affected until the next transition into id.
func (m *Machine[ID, In]) Replace(id ID, f Factory[ID, In]) {
	m.factories[id] = f
}

// Registered reports whether id has a factory.
func (m *Machine[ID, In]) Registered(id ID) bool {
	_, ok := m.factories[id]
	return ok
}

// Current returns the current state, or nil before the first transition.
func (m *Machine[ID, In]) Current() State[ID, In] {
	return m.current
}

// CurrentID returns the current state's ID and whether there is one.
func (m *Machine[ID, In]) CurrentID() (ID, bool) {
	if m.current == nil {
		var zero ID
		return zero, false
	}
	return m.current.ID(), true
}

// SetState transitions to id. Re-entering the current state is a no-op.
// An unregistered id fails before the current state is exited.
func (m *Machine[ID, In]) SetState(id ID) error {
	prev := m.current
	if prev != nil && prev.ID() == id {
		return nil
	}

	f, ok := m.factories[id]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownState, id)
	}

	if prev != nil {
		if err := prev.Exit(); err != nil {
			return fmt.Errorf("exiting %v: %w", prev.ID(), err)
		}
	}

	next := f(m)
	m.current = next

	if prev != nil {
		m.log.Debug("state transition",
			zap.Stringer("from", stringer(prev.ID())),
			zap.Stringer("to", stringer(id)),
		)
	} else {
		m.log.Debug("initial state", zap.Stringer("state", stringer(id)))
	}

	if err := next.Enter(prev); err != nil {
		return fmt.Errorf("entering %v: %w", id, err)
	}
	return nil
}

// Update delegates to the current state. It does nothing before the first
// transition.
func (m *Machine[ID, In]) Update(dt float64, in In) error {
	if m.current == nil {
		return nil
	}
	return m.current.Update(dt, in)
}

type idStringer struct{ v any }

func (s idStringer) String() string { return fmt.Sprint(s.v) }

func stringer(v any) fmt.Stringer { return idStringer{v} }
