// Package config handles demo configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/stroll/internal/engine/input"
)

// Config holds all settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Loop       LoopConfig       `yaml:"loop"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Animation  AnimationConfig  `yaml:"animation"`
	Camera     CameraConfig     `yaml:"camera"`
	Assets     AssetsConfig     `yaml:"assets"`
	Scene      SceneConfig      `yaml:"scene"`
	Input      InputConfig      `yaml:"input"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Vector is a YAML-friendly 3-component vector, written as [x, y, z].
type Vector [3]float32

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// LoopConfig holds frame timing settings.
type LoopConfig struct {
	// MaxFrameDelta caps the dt handed to the simulation after a stall.
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`
}

// LocomotionConfig holds the movement constants.
type LocomotionConfig struct {
	Acceleration Vector  `yaml:"acceleration"`
	Deceleration Vector  `yaml:"deceleration"`
	TurnRate     float32 `yaml:"turn_rate"`
	RunBoost     float32 `yaml:"run_boost"`
}

// AnimationConfig holds crossfade durations.
type AnimationConfig struct {
	Blend      time.Duration `yaml:"blend"`
	DanceBlend time.Duration `yaml:"dance_blend"`
}

// CameraConfig holds the follow camera settings.
type CameraConfig struct {
	Offset Vector  `yaml:"offset"`
	Target Vector  `yaml:"target"`
	FOV    float32 `yaml:"fov"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

// AssetsConfig holds asset locations. An empty Dir uses the built-in assets.
type AssetsConfig struct {
	Dir       string `yaml:"dir"`
	Character string `yaml:"character"`
}

// SceneConfig holds the static scene layout path, relative to the assets.
type SceneConfig struct {
	Layout string `yaml:"layout"`
}

// InputConfig maps action names to key names.
type InputConfig struct {
	Keymap map[string][]string `yaml:"keymap"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Stroll",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Loop: LoopConfig{
			MaxFrameDelta: time.Second,
		},
		Locomotion: LocomotionConfig{
			Acceleration: Vector{1, 0.25, 50},
			Deceleration: Vector{-0.0005, -0.0001, -5},
			TurnRate:     4,
			RunBoost:     2,
		},
		Animation: AnimationConfig{
			Blend:      500 * time.Millisecond,
			DanceBlend: 200 * time.Millisecond,
		},
		Camera: CameraConfig{
			Offset: Vector{80, 35, 45},
			Target: Vector{0, 10, 0},
			FOV:    60,
			Near:   1,
			Far:    1000,
		},
		Assets: AssetsConfig{
			Character: "characters/avatar.yaml",
		},
		Scene: SceneConfig{
			Layout: "scenes/town.yaml",
		},
		Input: InputConfig{
			Keymap: map[string][]string{
				"forward":  {"W"},
				"backward": {"S"},
				"left":     {"A"},
				"right":    {"D"},
				"jump":     {"SPACE"},
				"run":      {"LSHIFT", "RSHIFT"},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Keymap builds the input keymap from the configured key names.
func (c *Config) Keymap() (input.Keymap, error) {
	if len(c.Input.Keymap) == 0 {
		return input.DefaultKeymap(), nil
	}
	return input.KeymapFromNames(c.Input.Keymap)
}

// Validate checks values the rest of the program relies on.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Loop.MaxFrameDelta <= 0 {
		return fmt.Errorf("loop.max_frame_delta must be positive, got %v", c.Loop.MaxFrameDelta)
	}
	for i, d := range c.Locomotion.Deceleration {
		if d > 0 {
			return fmt.Errorf("locomotion.deceleration[%d] must not be positive, got %v", i, d)
		}
	}
	if c.Locomotion.RunBoost <= 0 {
		return fmt.Errorf("locomotion.run_boost must be positive, got %v", c.Locomotion.RunBoost)
	}
	if c.Animation.Blend < 0 || c.Animation.DanceBlend < 0 {
		return fmt.Errorf("animation blend durations must not be negative")
	}
	if c.Assets.Character == "" {
		return fmt.Errorf("assets.character is required")
	}
	if _, err := c.Keymap(); err != nil {
		return fmt.Errorf("input.keymap: %w", err)
	}
	return nil
}
