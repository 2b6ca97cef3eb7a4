package character

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/stroll/internal/assets"
	"github.com/Faultbox/stroll/internal/engine/anim"
	"github.com/Faultbox/stroll/internal/engine/input"
	"github.com/Faultbox/stroll/pkg/math"
)

// InputSource provides the input snapshot sampled each tick.
type InputSource interface {
	Snapshot() input.Snapshot
}

// Tuning holds the movement constants.
type Tuning struct {
	// Acceleration per axis; Z drives forward speed, Y the turn speed.
	Acceleration math.Vec3
	// Deceleration per axis, applied as velocity * Deceleration * dt.
	// Components are expected to be <= 0.
	Deceleration math.Vec3
	// TurnRate scales the yaw step: TurnRate * pi * dt * Acceleration.Y.
	TurnRate float32
	// RunBoost multiplies acceleration while the run modifier is held.
	RunBoost float32
}

// DefaultTuning returns the standard movement constants.
func DefaultTuning() Tuning {
	return Tuning{
		Acceleration: math.Vec3{X: 1, Y: 0.25, Z: 50},
		Deceleration: math.Vec3{X: -0.0005, Y: -0.0001, Z: -5},
		TurnRate:     4,
		RunBoost:     2,
	}
}

// Validate rejects tuning that would make decay accelerate the character.
func (t Tuning) Validate() error {
	d := t.Deceleration
	if d.X > 0 || d.Y > 0 || d.Z > 0 {
		return fmt.Errorf("deceleration must not be positive: %+v", d)
	}
	if !t.Acceleration.IsFinite() || !d.IsFinite() {
		return fmt.Errorf("tuning contains non-finite values")
	}
	if t.RunBoost <= 0 {
		return fmt.Errorf("run boost must be positive, got %v", t.RunBoost)
	}
	return nil
}

// Motion is the character's physical state.
type Motion struct {
	Position math.Vec3
	Rotation math.Quat
	Velocity math.Vec3
}

// Controller integrates input into motion every tick and keeps the animation
// state machine and mixer in step with it.
type Controller struct {
	input  InputSource
	tuning Tuning
	blend  Blend
	log    *zap.Logger

	motion Motion
	model  assets.Model
	mixer  *anim.Mixer
	fsm    *FSM
	ready  bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithTuning overrides the movement constants.
func WithTuning(t Tuning) Option {
	return func(c *Controller) { c.tuning = t }
}

// WithBlend overrides the crossfade durations.
func WithBlend(b Blend) Option {
	return func(c *Controller) { c.blend = b }
}

// WithLogger sets the logger used by the controller and its state machine.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// NewController creates a controller that does nothing until OnLoaded.
func NewController(in InputSource, opts ...Option) *Controller {
	c := &Controller{
		input:  in,
		tuning: DefaultTuning(),
		blend:  DefaultBlend(),
		log:    zap.NewNop(),
		motion: Motion{Rotation: math.QuatIdentity()},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnLoaded binds the loaded clips to a new mixer and enters Idle. Any error
// here is a configuration bug.
func (c *Controller) OnLoaded(ch *assets.Character) error {
	mixer := anim.NewMixer()
	bindings, err := NewBindings(mixer, ch.Clips)
	if err != nil {
		return err
	}
	f, err := NewFSM(bindings, c.blend, c.log.Named("fsm"))
	if err != nil {
		return err
	}
	if err := f.SetState(Idle); err != nil {
		return err
	}

	c.model = ch.Model
	c.mixer = mixer
	c.fsm = f
	c.ready = true
	c.log.Info("character ready",
		zap.String("model", ch.Model.Name),
		zap.Int("clips", len(ch.Clips)),
	)
	return nil
}

// Ready reports whether the model and all clips have loaded.
func (c *Controller) Ready() bool { return c.ready }

// Motion returns the current physical state.
func (c *Controller) Motion() Motion { return c.motion }

// Model returns the loaded model descriptor.
func (c *Controller) Model() assets.Model { return c.model }

// Mixer returns the animation mixer, or nil before loading completes.
func (c *Controller) Mixer() *anim.Mixer { return c.mixer }

// FSM returns the animation state machine, or nil before loading completes.
func (c *Controller) FSM() *FSM { return c.fsm }

// State returns the current animation state.
func (c *Controller) State() (StateID, bool) {
	if c.fsm == nil {
		return 0, false
	}
	return c.fsm.StateID()
}

// Tuning returns the movement constants in use.
func (c *Controller) Tuning() Tuning { return c.tuning }

// SetTuning swaps the movement constants. Call it between ticks.
func (c *Controller) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.tuning = t
	return nil
}

// Place teleports the character and faces it yaw radians around the up axis.
// Velocity is cleared.
func (c *Controller) Place(pos math.Vec3, yaw float32) {
	c.motion = Motion{
		Position: pos,
		Rotation: math.QuatFromAxisAngle(math.Up, yaw),
	}
}

// Update advances the character by dt seconds.
func (c *Controller) Update(dt float64) error {
	if !c.ready {
		return nil
	}
	if dt < 0 || gomath.IsNaN(dt) || gomath.IsInf(dt, 0) {
		dt = 0
	}

	in := c.input.Snapshot()
	if err := c.fsm.Update(dt, in); err != nil {
		return fmt.Errorf("animation state: %w", err)
	}

	step := float32(dt)
	prev := c.motion
	velocity := prev.Velocity

	decay := velocity.Mul(c.tuning.Deceleration).Scale(step)
	velocity = velocity.Add(math.Vec3{
		X: clampDecay(decay.X, velocity.X),
		Y: clampDecay(decay.Y, velocity.Y),
		Z: clampDecay(decay.Z, velocity.Z),
	})

	acc := c.tuning.Acceleration
	if in.Run {
		acc = acc.Scale(c.tuning.RunBoost)
	}
	if id, _ := c.fsm.StateID(); id == Dance {
		acc = math.Vec3{}
	}

	if in.Forward {
		velocity.Z += acc.Z * step
	}
	if in.Backward {
		velocity.Z -= acc.Z * step
	}

	rotation := prev.Rotation
	turn := c.tuning.TurnRate * gomath.Pi * step * c.tuning.Acceleration.Y
	if turn != 0 && in.Left != in.Right {
		if in.Right {
			turn = -turn
		}
		rotation = rotation.Mul(math.QuatFromAxisAngle(math.Up, turn)).Normalize()
	}

	forward := rotation.Rotate(math.Forward).Normalize()
	sideways := rotation.Rotate(math.Right).Normalize()
	position := prev.Position.
		Add(forward.Scale(velocity.Z * step)).
		Add(sideways.Scale(velocity.X * step))

	if !position.IsFinite() || !velocity.IsFinite() {
		c.log.Warn("discarding non-finite motion step", zap.Float64("dt", dt))
		c.motion.Velocity = math.Vec3{}
	} else {
		c.motion = Motion{Position: position, Rotation: rotation, Velocity: velocity}
	}

	if err := c.mixer.Update(dt); err != nil {
		return fmt.Errorf("animation mixer: %w", err)
	}
	return nil
}

// clampDecay limits a decay step so it can bring v to zero but never past it.
func clampDecay(step, v float32) float32 {
	limit := float32(gomath.Abs(float64(v)))
	if float32(gomath.Abs(float64(step))) > limit {
		if step < 0 {
			return -limit
		}
		return limit
	}
	return step
}
