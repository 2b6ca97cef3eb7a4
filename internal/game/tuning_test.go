package game

import (
	"testing"
	"time"

	"github.com/Faultbox/stroll/internal/config"
	"github.com/Faultbox/stroll/internal/game/character"
)

func TestDefaultConfigMatchesControllerDefaults(t *testing.T) {
	cfg := config.Default()

	if got, want := TuningFromConfig(cfg.Locomotion), character.DefaultTuning(); got != want {
		t.Errorf("tuning = %+v, want %+v", got, want)
	}
	if got, want := BlendFromConfig(cfg.Animation), character.DefaultBlend(); got != want {
		t.Errorf("blend = %+v, want %+v", got, want)
	}
}

func TestNewCameraFromConfig(t *testing.T) {
	cfg := config.Default()
	cam := newCamera(cfg.Camera)
	cam.Follow(vec(config.Vector{}), 0)

	if got, want := cam.Eye(), vec(cfg.Camera.Offset); got != want {
		t.Errorf("eye = %+v, want %+v", got, want)
	}
	if got, want := cam.Target(), vec(cfg.Camera.Target); got != want {
		t.Errorf("target = %+v, want %+v", got, want)
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		dt, limit, want time.Duration
	}{
		{16 * time.Millisecond, time.Second, 16 * time.Millisecond},
		{5 * time.Second, time.Second, time.Second},
		{-time.Millisecond, time.Second, 0},
		{5 * time.Second, 0, 5 * time.Second},
	}
	for _, tt := range tests {
		if got := clampDelta(tt.dt, tt.limit); got != tt.want {
			t.Errorf("clampDelta(%v, %v) = %v, want %v", tt.dt, tt.limit, got, tt.want)
		}
	}
}
