// Package game wires the window, input, asset loader, character controller,
// camera and renderer together and runs the main loop.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stroll/internal/assets"
	"github.com/Faultbox/stroll/internal/config"
	"github.com/Faultbox/stroll/internal/engine/camera"
	"github.com/Faultbox/stroll/internal/engine/input"
	"github.com/Faultbox/stroll/internal/engine/renderer"
	"github.com/Faultbox/stroll/internal/engine/scene"
	"github.com/Faultbox/stroll/internal/engine/window"
	"github.com/Faultbox/stroll/internal/game/character"
	"github.com/Faultbox/stroll/internal/logger"
	"github.com/Faultbox/stroll/pkg/math"
)

// Game is the running demo.
type Game struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	watcher  *config.Watcher

	input      *input.State
	loader     *assets.Loader
	controller *character.Controller
	camera     *camera.FollowCamera
	scene      *scene.Scene

	// loadErr is set by the load callback and checked by the loop.
	loadErr error
	cancel  context.CancelFunc
}

// New creates the window and every subsystem. cfgPath, when not empty, is
// watched for changes.
func New(cfg *config.Config, cfgPath string) (*Game, error) {
	g := &Game{
		cfg: cfg,
		log: logger.Named("game"),
	}

	g.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	keymap, err := cfg.Keymap()
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	g.input = input.NewState(keymap)

	// Window also creates the OpenGL context the renderer needs.
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.GetSize()
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.loader = assets.NewLoader(cfg.Assets.Dir, logger.Named("assets"))
	g.scene = scene.New()
	if err := loadLayout(g.loader, cfg.Scene.Layout, g.scene); err != nil {
		g.Close()
		return nil, err
	}

	g.controller = character.NewController(g.input,
		character.WithTuning(TuningFromConfig(cfg.Locomotion)),
		character.WithBlend(BlendFromConfig(cfg.Animation)),
		character.WithLogger(logger.Named("character")),
	)
	g.camera = newCamera(cfg.Camera)

	if cfgPath != "" {
		g.watcher, err = config.Watch(cfgPath)
		if err != nil {
			g.log.Warn("config hot reload disabled", zap.String("path", cfgPath), zap.Error(err))
		} else {
			g.log.Info("watching config", zap.String("path", g.watcher.Path()))
		}
	}

	g.log.Info("initialized", zap.Int("scene_objects", g.scene.Len()))
	return g, nil
}

// Run starts the main loop. It returns when the window is closed, Escape is
// pressed, or a load or configuration error makes continuing pointless.
func (g *Game) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	defer cancel()

	g.loader.LoadCharacter(ctx, g.cfg.Assets.Character, g.onCharacterLoaded)

	g.running = true
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := clampDelta(now.Sub(lastTime), g.cfg.Loop.MaxFrameDelta)
		lastTime = now

		// Work posted from other goroutines is applied first, on this thread.
		g.loader.Poll()
		if g.loadErr != nil {
			return g.loadErr
		}
		g.applyConfigUpdates()

		g.handleEvents()
		if !g.running {
			break
		}

		if err := g.controller.Update(dt.Seconds()); err != nil {
			return fmt.Errorf("update: %w", err)
		}

		g.camera.Follow(g.controller.Motion().Position, dt.Seconds())
		g.render()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			state, _ := g.controller.State()
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Stringer("state", state),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up all resources.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.cancel != nil {
		g.cancel()
	}
	if g.watcher != nil {
		g.watcher.Close()
	}
	if g.loader != nil {
		g.loader.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) onCharacterLoaded(ch *assets.Character, err error) {
	if err != nil {
		g.loadErr = fmt.Errorf("loading character: %w", err)
		return
	}
	if err := g.controller.OnLoaded(ch); err != nil {
		g.loadErr = fmt.Errorf("binding character: %w", err)
	}
}

func (g *Game) handleEvents() {
	for _, e := range g.window.PollEvents() {
		switch e.Type {
		case window.EventQuit:
			g.running = false
		case window.EventResize:
			g.renderer.Resize(e.Width, e.Height)
		case window.EventFocusLost:
			// Key-up events are lost while unfocused.
			g.input.Reset()
		case window.EventKeyDown:
			if e.Key == input.KeyEscape {
				g.running = false
				continue
			}
			g.input.OnKeyDown(e.Key)
		case window.EventKeyUp:
			g.input.OnKeyUp(e.Key)
		}
	}
}

func (g *Game) applyConfigUpdates() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Updates:
		if ok {
			g.applyConfig(cfg)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("config reload failed", zap.Error(err))
		}
	default:
	}
}

// applyConfig applies the settings that can change while running. Window,
// asset and scene settings need a restart.
func (g *Game) applyConfig(cfg *config.Config) {
	if err := g.controller.SetTuning(TuningFromConfig(cfg.Locomotion)); err != nil {
		g.log.Warn("ignoring locomotion settings", zap.Error(err))
	}
	if km, err := cfg.Keymap(); err == nil {
		g.input.SetKeymap(km)
	}
	logger.SetLevel(cfg.Logging.Level)
	g.camera.FOV = cfg.Camera.FOV
	g.cfg.Loop = cfg.Loop
	g.cfg.Locomotion = cfg.Locomotion
	g.log.Info("config reloaded")
}

func (g *Game) render() {
	aspect := g.renderer.Aspect()
	viewProj := g.camera.ProjectionMatrix(aspect).Mul(g.camera.ViewMatrix())

	g.renderer.Begin(viewProj, g.scene.Background, g.scene.Light)
	g.renderer.DrawScene(g.scene)
	if g.controller.Ready() {
		m := g.controller.Model()
		size := math.Vec3{X: m.Size[0], Y: m.Size[1], Z: m.Size[2]}.Scale(m.Scale)
		g.renderer.DrawBox(g.controller.Pose().Matrix(size), m.Color)
	}
	g.renderer.End()
}

func loadLayout(l *assets.Loader, path string, s *scene.Scene) error {
	if path == "" {
		return nil
	}
	data, err := l.Read(path)
	if err != nil {
		return fmt.Errorf("scene layout: %w", err)
	}
	layout, err := scene.ParseLayout(data)
	if err != nil {
		return fmt.Errorf("scene layout %s: %w", path, err)
	}
	layout.Populate(s)
	return nil
}

func clampDelta(dt, limit time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if limit > 0 && dt > limit {
		return limit
	}
	return dt
}
