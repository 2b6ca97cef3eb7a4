package game

import (
	"github.com/Faultbox/stroll/internal/config"
	"github.com/Faultbox/stroll/internal/engine/camera"
	"github.com/Faultbox/stroll/internal/game/character"
	"github.com/Faultbox/stroll/pkg/math"
)

// TuningFromConfig converts the locomotion section to controller tuning.
func TuningFromConfig(c config.LocomotionConfig) character.Tuning {
	return character.Tuning{
		Acceleration: vec(c.Acceleration),
		Deceleration: vec(c.Deceleration),
		TurnRate:     c.TurnRate,
		RunBoost:     c.RunBoost,
	}
}

// BlendFromConfig converts the animation section to crossfade durations.
func BlendFromConfig(c config.AnimationConfig) character.Blend {
	return character.Blend{
		Default: c.Blend.Seconds(),
		Dance:   c.DanceBlend.Seconds(),
	}
}

func newCamera(c config.CameraConfig) *camera.FollowCamera {
	cam := camera.NewFollowCamera()
	cam.LookAt = vec(c.Target)
	cam.SetOffset(vec(c.Offset).Sub(cam.LookAt))
	if c.FOV > 0 {
		cam.FOV = c.FOV
	}
	if c.Near > 0 {
		cam.Near = c.Near
	}
	if c.Far > c.Near {
		cam.Far = c.Far
	}
	return cam
}

func vec(v config.Vector) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
