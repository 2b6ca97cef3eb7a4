// Package anim provides the clip mixer that drives the avatar's animations:
// per-clip actions with crossfading, time warping, loop modes and a finished
// event for one-shot clips.
package anim

import (
	"fmt"
	"sort"
)

// Keyframe is a single scalar sample on a track.
type Keyframe struct {
	Time  float64 `yaml:"t"`
	Value float32 `yaml:"v"`
}

// Clip is a named, immutable animation. Tracks are optional scalar channels
// (e.g. "bob", "lean") sampled by the renderer.
type Clip struct {
	Name     string
	Duration float64
	Tracks   map[string][]Keyframe
}

// NewClip validates and builds a clip. Track keyframes are sorted by time.
func NewClip(name string, duration float64, tracks map[string][]Keyframe) (*Clip, error) {
	if name == "" {
		return nil, fmt.Errorf("clip has no name")
	}
	if !(duration > 0) {
		return nil, fmt.Errorf("clip %s: duration must be positive, got %v", name, duration)
	}
	sorted := make(map[string][]Keyframe, len(tracks))
	for track, keys := range tracks {
		ks := append([]Keyframe(nil), keys...)
		sort.SliceStable(ks, func(i, j int) bool { return ks[i].Time < ks[j].Time })
		sorted[track] = ks
	}
	return &Clip{Name: name, Duration: duration, Tracks: sorted}, nil
}

// Sample interpolates a track at time t (seconds). Times outside the keyed
// range hold the first or last value.
func (c *Clip) Sample(track string, t float64) (float32, bool) {
	keys := c.Tracks[track]
	if len(keys) == 0 {
		return 0, false
	}
	if len(keys) == 1 || t <= keys[0].Time {
		return keys[0].Value, true
	}

	// Find surrounding keyframes
	var prev, next int
	for i := range keys {
		if keys[i].Time > t {
			next = i
			break
		}
		prev = i
		next = i
	}

	if prev == next {
		return keys[prev].Value, true
	}

	k0 := keys[prev]
	k1 := keys[next]
	f := float32((t - k0.Time) / (k1.Time - k0.Time))
	return k0.Value + f*(k1.Value-k0.Value), true
}
