package fsm

import (
	"errors"
	"testing"
)

type recorder struct {
	events []string
}

type testState struct {
	id   string
	rec  *recorder
	m    *Machine[string, int]
	prev string
	next map[int]string
}

func (s *testState) ID() string { return s.id }

func (s *testState) Enter(prev State[string, int]) error {
	if prev != nil {
		s.prev = prev.ID()
	}
	s.rec.events = append(s.rec.events, "enter:"+s.id+"<"+s.prev)
	return nil
}

func (s *testState) Exit() error {
	s.rec.events = append(s.rec.events, "exit:"+s.id)
	return nil
}

func (s *testState) Update(_ float64, in int) error {
	if target, ok := s.next[in]; ok {
		return s.m.SetState(target)
	}
	return nil
}

func newTestMachine(t *testing.T, rec *recorder, ids ...string) *Machine[string, int] {
	t.Helper()
	m := New[string, int](nil)
	for _, id := range ids {
		id := id
		err := m.Register(id, func(m *Machine[string, int]) State[string, int] {
			return &testState{id: id, rec: rec, m: m, next: map[int]string{1: "a", 2: "b"}}
		})
		if err != nil {
			t.Fatalf("Register(%s): %v", id, err)
		}
	}
	return m
}

func TestSetStateEntersWithPrevious(t *testing.T) {
	rec := &recorder{}
	m := newTestMachine(t, rec, "a", "b")

	if err := m.SetState("a"); err != nil {
		t.Fatalf("SetState(a): %v", err)
	}
	if err := m.SetState("b"); err != nil {
		t.Fatalf("SetState(b): %v", err)
	}

	want := []string{"enter:a<", "exit:a", "enter:b<a"}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, rec.events[i], want[i])
		}
	}
}

func TestSetStateSameIsNoop(t *testing.T) {
	rec := &recorder{}
	m := newTestMachine(t, rec, "a")
	_ = m.SetState("a")
	first := m.Current()

	if err := m.SetState("a"); err != nil {
		t.Fatalf("SetState(a) again: %v", err)
	}
	if len(rec.events) != 1 {
		t.Errorf("re-entry fired extra events: %v", rec.events)
	}
	if m.Current() != first {
		t.Error("re-entry replaced the state instance")
	}
}

func TestSetStateUnknownFailsFast(t *testing.T) {
	rec := &recorder{}
	m := newTestMachine(t, rec, "a")
	_ = m.SetState("a")

	err := m.SetState("fly")
	if !errors.Is(err, ErrUnknownState) {
		t.Fatalf("SetState(fly) error = %v, want ErrUnknownState", err)
	}
	if id, _ := m.CurrentID(); id != "a" {
		t.Errorf("current = %q after failed transition, want a", id)
	}
	if len(rec.events) != 1 {
		t.Errorf("failed transition fired events: %v", rec.events)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	rec := &recorder{}
	m := newTestMachine(t, rec, "a")
	err := m.Register("a", func(*Machine[string, int]) State[string, int] { return nil })
	if !errors.Is(err, ErrDuplicateState) {
		t.Errorf("duplicate Register error = %v, want ErrDuplicateState", err)
	}
}

func TestReplace(t *testing.T) {
	rec := &recorder{}
	m := newTestMachine(t, rec, "a")
	replaced := false
	m.Replace("a", func(m *Machine[string, int]) State[string, int] {
		replaced = true
		return &testState{id: "a", rec: rec, m: m}
	})
	_ = m.SetState("a")
	if !replaced {
		t.Error("Replace did not swap the factory")
	}
}

func TestUpdateWithoutStateIsNoop(t *testing.T) {
	m := New[string, int](nil)
	if err := m.Update(0.1, 1); err != nil {
		t.Errorf("Update before first transition: %v", err)
	}
	if _, ok := m.CurrentID(); ok {
		t.Error("CurrentID reported a state before the first transition")
	}
}

func TestUpdateDelegates(t *testing.T) {
	rec := &recorder{}
	m := newTestMachine(t, rec, "a", "b")
	_ = m.SetState("a")
	if err := m.Update(0.1, 2); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if id, _ := m.CurrentID(); id != "b" {
		t.Errorf("current = %q, want b", id)
	}
}
