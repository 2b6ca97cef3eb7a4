package character

import (
	"github.com/Faultbox/stroll/internal/engine/anim"
	"github.com/Faultbox/stroll/internal/engine/input"
)

// Phase policy: walk and run are one family and keep their relative playback
// position across a switch; every other transition restarts the clip.

type idleState struct {
	fsm *FSM
}

func (s *idleState) ID() StateID { return Idle }

func (s *idleState) Enter(prev State) error {
	cur, err := s.fsm.bindings.Action(Idle)
	if err != nil {
		return err
	}
	if prev == nil {
		cur.Play()
		return nil
	}

	prevAction, err := s.fsm.bindings.Action(prev.ID())
	if err != nil {
		return err
	}
	cur.SetTime(0)
	cur.SetEnabled(true)
	cur.SetEffectiveTimeScale(1)
	cur.SetEffectiveWeight(1)
	cur.CrossFadeFrom(prevAction, s.fsm.blend.Default, true)
	cur.Play()
	return nil
}

func (s *idleState) Exit() error { return nil }

func (s *idleState) Update(_ float64, in input.Snapshot) error {
	if in.Moving() {
		return s.fsm.SetState(Walk)
	}
	if in.Jump {
		return s.fsm.SetState(Dance)
	}
	return nil
}

// locomotionState is the shared part of walk and run.
type locomotionState struct {
	fsm     *FSM
	id      StateID
	partner StateID
}

func (s *locomotionState) ID() StateID { return s.id }

func (s *locomotionState) Enter(prev State) error {
	cur, err := s.fsm.bindings.Action(s.id)
	if err != nil {
		return err
	}
	if prev == nil {
		cur.Play()
		return nil
	}

	prevAction, err := s.fsm.bindings.Action(prev.ID())
	if err != nil {
		return err
	}

	cur.SetEnabled(true)
	if prev.ID() == s.partner {
		ratio := cur.Clip().Duration / prevAction.Clip().Duration
		cur.SetTime(prevAction.Time() * ratio)
	} else {
		cur.SetTime(0)
		cur.SetEffectiveTimeScale(1)
		cur.SetEffectiveWeight(1)
	}
	cur.CrossFadeFrom(prevAction, s.fsm.blend.Default, true)
	cur.Play()
	return nil
}

func (s *locomotionState) Exit() error { return nil }

type walkState struct {
	locomotionState
}

func (s *walkState) Update(_ float64, in input.Snapshot) error {
	if in.Moving() {
		if in.Run {
			return s.fsm.SetState(Run)
		}
		return nil
	}
	return s.fsm.SetState(Idle)
}

type runState struct {
	locomotionState
}

func (s *runState) Update(_ float64, in input.Snapshot) error {
	if in.Moving() {
		if !in.Run {
			return s.fsm.SetState(Walk)
		}
		return nil
	}
	return s.fsm.SetState(Idle)
}

// danceState plays the dance once and returns to idle when the mixer reports
// the clip finished. Input is ignored while dancing.
type danceState struct {
	fsm    *FSM
	action *anim.Action
	sub    *anim.Subscription
}

func (s *danceState) ID() StateID { return Dance }

func (s *danceState) Enter(prev State) error {
	cur, err := s.fsm.bindings.Action(Dance)
	if err != nil {
		return err
	}
	s.action = cur
	s.sub = cur.Mixer().OnFinished(s.finished)

	cur.Reset()
	cur.SetLoop(anim.LoopOnce, 1)
	cur.SetClampWhenFinished(true)
	if prev != nil {
		prevAction, err := s.fsm.bindings.Action(prev.ID())
		if err != nil {
			s.release()
			return err
		}
		cur.CrossFadeFrom(prevAction, s.fsm.blend.Dance, true)
	}
	cur.Play()
	return nil
}

func (s *danceState) finished(e anim.FinishedEvent) error {
	if e.Action != s.action {
		return nil
	}
	s.release()
	return s.fsm.SetState(Idle)
}

// Exit releases the finished listener on every way out of the state,
// including transitions forced from outside.
func (s *danceState) Exit() error {
	s.release()
	return nil
}

func (s *danceState) Update(float64, input.Snapshot) error { return nil }

func (s *danceState) release() {
	s.sub.Release()
}
