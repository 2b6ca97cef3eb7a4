package anim

import "errors"

// FinishedEvent is delivered when an action reaches the end of a bounded loop.
type FinishedEvent struct {
	Action *Action
}

// Subscription is a registered finished listener. Release it to stop
// receiving events; releasing twice is harmless.
type Subscription struct {
	mixer    *Mixer
	fn       func(FinishedEvent) error
	released bool
}

// Release unregisters the listener.
func (s *Subscription) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	s.mixer.removeListener(s)
}

// Released reports whether Release has been called.
func (s *Subscription) Released() bool {
	return s == nil || s.released
}

// Mixer advances every scheduled action of one model.
type Mixer struct {
	actions   map[*Clip]*Action
	active    []*Action
	listeners []*Subscription
	time      float64
}

// NewMixer creates an empty mixer.
func NewMixer() *Mixer {
	return &Mixer{actions: make(map[*Clip]*Action)}
}

// ClipAction returns the action for clip, creating it on first use. The same
// clip always maps to the same action.
func (m *Mixer) ClipAction(c *Clip) *Action {
	if a, ok := m.actions[c]; ok {
		return a
	}
	a := newAction(m, c)
	m.actions[c] = a
	return a
}

// Time returns the total mixer time in seconds.
func (m *Mixer) Time() float64 { return m.time }

// OnFinished registers a finished listener.
func (m *Mixer) OnFinished(fn func(FinishedEvent) error) *Subscription {
	s := &Subscription{mixer: m, fn: fn}
	m.listeners = append(m.listeners, s)
	return s
}

// Listeners returns the number of registered finished listeners.
func (m *Mixer) Listeners() int { return len(m.listeners) }

// Update advances all scheduled actions by dt seconds, then delivers finished
// events. Listener errors are joined and returned.
func (m *Mixer) Update(dt float64) error {
	m.time += dt

	var done []*Action
	for _, a := range append([]*Action(nil), m.active...) {
		if a.update(dt) {
			done = append(done, a)
		}
	}

	var errs []error
	for _, a := range done {
		for _, s := range append([]*Subscription(nil), m.listeners...) {
			if s.released {
				continue
			}
			if err := s.fn(FinishedEvent{Action: a}); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Sample blends a track across all contributing actions by effective weight.
func (m *Mixer) Sample(track string) (float32, bool) {
	var sum, total float64
	for _, a := range m.active {
		w := a.EffectiveWeight()
		if w <= 0 {
			continue
		}
		v, ok := a.Sample(track)
		if !ok {
			continue
		}
		sum += w * float64(v)
		total += w
	}
	if total == 0 {
		return 0, false
	}
	return float32(sum / total), true
}

func (m *Mixer) activate(a *Action) {
	if m.isActive(a) {
		return
	}
	m.active = append(m.active, a)
}

func (m *Mixer) deactivate(a *Action) {
	for i, x := range m.active {
		if x == a {
			m.active = append(m.active[:i], m.active[i+1:]...)
			return
		}
	}
}

func (m *Mixer) isActive(a *Action) bool {
	for _, x := range m.active {
		if x == a {
			return true
		}
	}
	return false
}

func (m *Mixer) removeListener(s *Subscription) {
	for i, x := range m.listeners {
		if x == s {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}
