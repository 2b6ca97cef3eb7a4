package anim

import "math"

// LoopMode controls what happens when an action reaches the end of its clip.
type LoopMode int

const (
	// LoopRepeat wraps back to the start.
	LoopRepeat LoopMode = iota
	// LoopOnce stops at the end and emits a finished event.
	LoopOnce
)

func (m LoopMode) String() string {
	if m == LoopOnce {
		return "once"
	}
	return "repeat"
}

// Action is the playback state of one clip on one mixer. Effective weight is
// the base weight times the active fade; effective time scale is the warp
// value while warping, otherwise the base time scale.
type Action struct {
	mixer *Mixer
	clip  *Clip

	time        float64
	timeScale   float64
	weight      float64
	enabled     bool
	paused      bool
	loop        LoopMode
	repetitions int
	loopCount   int
	clamp       bool
	finished    bool

	fade interpolant
	warp interpolant
}

func newAction(m *Mixer, c *Clip) *Action {
	return &Action{
		mixer:     m,
		clip:      c,
		timeScale: 1,
		weight:    1,
		enabled:   true,
		loop:      LoopRepeat,
	}
}

// Clip returns the clip played by this action.
func (a *Action) Clip() *Clip { return a.clip }

// Mixer returns the owning mixer.
func (a *Action) Mixer() *Mixer { return a.mixer }

// Time returns the local playback time in seconds.
func (a *Action) Time() float64 { return a.time }

// SetTime sets the local playback time in seconds.
func (a *Action) SetTime(t float64) { a.time = t }

// Enabled reports whether the action contributes to the pose.
func (a *Action) Enabled() bool { return a.enabled }

// SetEnabled toggles the action without touching its time.
func (a *Action) SetEnabled(enabled bool) { a.enabled = enabled }

// Paused reports whether playback is frozen (e.g. clamped at the end).
func (a *Action) Paused() bool { return a.paused }

// IsRunning reports whether the action is scheduled and advancing.
func (a *Action) IsRunning() bool {
	return a.enabled && !a.paused && a.mixer.isActive(a)
}

// Loop returns the loop mode and repetition count.
func (a *Action) Loop() (LoopMode, int) { return a.loop, a.repetitions }

// SetLoop sets the loop mode. repetitions <= 0 means unbounded for LoopRepeat.
func (a *Action) SetLoop(mode LoopMode, repetitions int) {
	a.loop = mode
	a.repetitions = repetitions
}

// SetClampWhenFinished freezes a LoopOnce action on its last frame instead of
// disabling it.
func (a *Action) SetClampWhenFinished(clamp bool) { a.clamp = clamp }

// Play schedules the action on its mixer. Calling Play on a running action
// has no effect.
func (a *Action) Play() {
	a.mixer.activate(a)
}

// Stop unschedules the action and resets it.
func (a *Action) Stop() {
	a.mixer.deactivate(a)
	a.Reset()
}

// Reset rewinds to the start, re-enables and cancels any fade or warp.
func (a *Action) Reset() {
	a.paused = false
	a.enabled = true
	a.time = 0
	a.loopCount = 0
	a.finished = false
	a.fade.stop()
	a.warp.stop()
}

// SetEffectiveTimeScale sets the base time scale and cancels warping.
func (a *Action) SetEffectiveTimeScale(scale float64) {
	a.timeScale = scale
	a.warp.stop()
}

// EffectiveTimeScale returns the speed the action is currently played at.
func (a *Action) EffectiveTimeScale() float64 {
	if a.paused {
		return 0
	}
	if a.warp.active {
		return a.warp.value()
	}
	return a.timeScale
}

// SetEffectiveWeight sets the base weight and cancels fading.
func (a *Action) SetEffectiveWeight(weight float64) {
	a.weight = weight
	a.fade.stop()
}

// EffectiveWeight returns the blend weight the action currently contributes.
func (a *Action) EffectiveWeight() float64 {
	if !a.enabled {
		return 0
	}
	if a.fade.active {
		return a.weight * a.fade.value()
	}
	return a.weight
}

// FadeIn ramps the weight multiplier from 0 to 1.
func (a *Action) FadeIn(duration float64) {
	a.fade.start(0, 1, duration)
}

// FadeOut ramps the weight multiplier from 1 to 0; the action is disabled
// once the ramp completes.
func (a *Action) FadeOut(duration float64) {
	a.fade.start(1, 0, duration)
}

// Warp ramps the time scale from start to end.
func (a *Action) Warp(start, end, duration float64) {
	a.warp.start(start, end, duration)
}

// CrossFadeFrom fades this action in while other fades out over duration
// seconds. With warp, both time scales are ramped so the two clips stay in
// step even when their lengths differ.
func (a *Action) CrossFadeFrom(other *Action, duration float64, warp bool) {
	other.FadeOut(duration)
	a.FadeIn(duration)
	if warp && other.clip.Duration > 0 && a.clip.Duration > 0 {
		inDur := a.clip.Duration
		outDur := other.clip.Duration
		other.Warp(1, outDur/inDur, duration)
		a.Warp(inDur/outDur, 1, duration)
	}
}

// CrossFadeTo is CrossFadeFrom seen from the outgoing side.
func (a *Action) CrossFadeTo(other *Action, duration float64, warp bool) {
	other.CrossFadeFrom(a, duration, warp)
}

// Sample evaluates a clip track at the current local time.
func (a *Action) Sample(track string) (float32, bool) {
	return a.clip.Sample(track, a.time)
}

// update advances the action by dt seconds of mixer time and reports whether
// it just finished.
func (a *Action) update(dt float64) bool {
	if !a.enabled {
		return false
	}

	scale := a.EffectiveTimeScale()
	if a.warp.active && a.warp.advance(dt) {
		a.warp.stop()
		a.timeScale = a.warp.to
		if a.timeScale == 0 {
			a.paused = true
		}
	}

	finished := false
	if !a.paused {
		finished = a.advanceTime(dt * scale)
	}

	if a.fade.active && a.fade.advance(dt) {
		a.fade.stop()
		if a.fade.to == 0 {
			a.enabled = false
		}
	}

	return finished
}

func (a *Action) advanceTime(delta float64) bool {
	duration := a.clip.Duration
	t := a.time + delta

	if a.loop == LoopOnce {
		if t >= duration {
			t = duration
		} else if t < 0 {
			t = 0
		} else {
			a.time = t
			return false
		}
		a.time = t
		if a.clamp {
			a.paused = true
		} else {
			a.enabled = false
		}
		if a.finished {
			return false
		}
		a.finished = true
		return true
	}

	if duration <= 0 {
		a.time = t
		return false
	}
	loops := math.Floor(t / duration)
	t -= loops * duration
	a.time = t
	if loops > 0 {
		a.loopCount += int(loops)
		if a.repetitions > 0 && a.loopCount >= a.repetitions && !a.finished {
			a.time = duration
			a.paused = a.clamp
			a.enabled = a.clamp
			a.finished = true
			return true
		}
	}
	return false
}
