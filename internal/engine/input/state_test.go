package input

import "testing"

func TestDefaultMapping(t *testing.T) {
	tests := []struct {
		key  Key
		want Snapshot
	}{
		{KeyW, Snapshot{Forward: true}},
		{KeyS, Snapshot{Backward: true}},
		{KeyA, Snapshot{Left: true}},
		{KeyD, Snapshot{Right: true}},
		{KeySpace, Snapshot{Jump: true}},
		{KeyLeftShift, Snapshot{Run: true}},
		{KeyRightShift, Snapshot{Run: true}},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			s := NewState(nil)
			s.OnKeyDown(tt.key)
			if got := s.Snapshot(); got != tt.want {
				t.Errorf("after %s down: got %+v, want %+v", tt.key, got, tt.want)
			}
			s.OnKeyUp(tt.key)
			if got := s.Snapshot(); got != (Snapshot{}) {
				t.Errorf("after %s up: got %+v, want empty", tt.key, got)
			}
		})
	}
}

func TestRepeatedEventsAreIdempotent(t *testing.T) {
	s := NewState(nil)
	s.OnKeyDown(KeyW)
	s.OnKeyDown(KeyW)
	first := s.Snapshot()
	second := s.Snapshot()
	if first != second || !first.Forward {
		t.Errorf("snapshot reads differ or forward missing: %+v %+v", first, second)
	}

	s.OnKeyUp(KeyW)
	s.OnKeyUp(KeyW)
	if s.Snapshot().Forward {
		t.Error("forward still held after key up")
	}
}

func TestSharedActionNeedsAllKeysReleased(t *testing.T) {
	s := NewState(nil)
	s.OnKeyDown(KeyLeftShift)
	s.OnKeyDown(KeyRightShift)
	s.OnKeyUp(KeyLeftShift)
	if !s.Snapshot().Run {
		t.Error("run released while right shift is still down")
	}
	s.OnKeyUp(KeyRightShift)
	if s.Snapshot().Run {
		t.Error("run still held after both shifts released")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	s := NewState(nil)
	s.OnKeyDown(KeyEscape)
	if got := s.Snapshot(); got != (Snapshot{}) {
		t.Errorf("unbound key changed snapshot: %+v", got)
	}
}

func TestReset(t *testing.T) {
	s := NewState(nil)
	s.OnKeyDown(KeyW)
	s.OnKeyDown(KeySpace)
	s.Reset()
	if got := s.Snapshot(); got != (Snapshot{}) {
		t.Errorf("Reset left flags set: %+v", got)
	}
}

func TestKeymapFromNames(t *testing.T) {
	km, err := KeymapFromNames(map[string][]string{
		"forward": {"W", "up"},
		"run":     {"shift"},
	})
	if err != nil {
		t.Fatalf("KeymapFromNames: %v", err)
	}
	s := NewState(km)
	s.OnKeyDown(KeyUp)
	s.OnKeyDown(KeyLeftShift)
	want := Snapshot{Forward: true, Run: true}
	if got := s.Snapshot(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestKeymapFromNamesErrors(t *testing.T) {
	if _, err := KeymapFromNames(map[string][]string{"fly": {"W"}}); err == nil {
		t.Error("expected error for unknown action")
	}
	if _, err := KeymapFromNames(map[string][]string{"forward": {"F13"}}); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := KeymapFromNames(map[string][]string{"forward": {"W"}, "jump": {"W"}}); err == nil {
		t.Error("expected error for key bound twice")
	}
}
