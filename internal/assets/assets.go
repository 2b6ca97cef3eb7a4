// Package assets loads the character model descriptor and its animation clips
// in the background and hands the result to the tick thread.
package assets

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/stroll/internal/engine/anim"
)

//go:embed data
var builtin embed.FS

// Builtin returns the assets shipped with the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Model describes the avatar: its display scale, the extents of the box
// drawn for it and the clip file for each animation.
type Model struct {
	Name  string            `yaml:"name"`
	Scale float32           `yaml:"scale"`
	Size  [3]float32        `yaml:"size"`
	Color [3]float32        `yaml:"color"`
	Clips map[string]string `yaml:"clips"`
}

// Character is a fully loaded model with all of its clips.
type Character struct {
	Model Model
	Clips map[string]*anim.Clip
}

// clipFile is the on-disk clip format.
type clipFile struct {
	Name     string                     `yaml:"name"`
	Duration float64                    `yaml:"duration"`
	Tracks   map[string][]anim.Keyframe `yaml:"tracks"`
}

type completion struct {
	ch  *Character
	err error
	cb  func(*Character, error)
}

// Loader reads assets from a file system. Loads run on goroutines; their
// callbacks only run inside Poll, on the caller's goroutine.
type Loader struct {
	fsys  fs.FS
	cache *Cache
	log   *zap.Logger

	done    chan completion
	wg      sync.WaitGroup
	pending int
}

// NewLoader creates a loader rooted at dir, or on the built-in assets when
// dir is empty.
func NewLoader(dir string, log *zap.Logger) *Loader {
	fsys := Builtin()
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	return NewLoaderFS(fsys, log)
}

// NewLoaderFS creates a loader over fsys.
func NewLoaderFS(fsys fs.FS, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		fsys:  fsys,
		cache: NewCache(),
		log:   log,
		done:  make(chan completion, 4),
	}
}

// Cache returns the loader's file cache.
func (l *Loader) Cache() *Cache { return l.cache }

// Read returns the contents of name, served from the cache when possible.
func (l *Loader) Read(name string) ([]byte, error) {
	if data, ok := l.cache.Get(name); ok {
		return data, nil
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	l.cache.Set(name, data)
	return data, nil
}

// LoadModel reads and validates a model descriptor.
func (l *Loader) LoadModel(name string) (Model, error) {
	data, err := l.Read(name)
	if err != nil {
		return Model{}, err
	}
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Model{}, fmt.Errorf("parsing model %s: %w", name, err)
	}
	if m.Name == "" {
		return Model{}, fmt.Errorf("model %s: missing name", name)
	}
	if len(m.Clips) == 0 {
		return Model{}, fmt.Errorf("model %s: no clips", name)
	}
	if m.Scale == 0 {
		m.Scale = 1
	}
	return m, nil
}

// LoadClip reads one clip file.
func (l *Loader) LoadClip(name string) (*anim.Clip, error) {
	data, err := l.Read(name)
	if err != nil {
		return nil, err
	}
	var f clipFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing clip %s: %w", name, err)
	}
	clip, err := anim.NewClip(f.Name, f.Duration, f.Tracks)
	if err != nil {
		return nil, fmt.Errorf("clip %s: %w", name, err)
	}
	return clip, nil
}

// Load reads the model at name and all of its clips, the clips concurrently.
// It blocks; use LoadCharacter from the tick thread.
func (l *Loader) Load(ctx context.Context, name string) (*Character, error) {
	model, err := l.LoadModel(name)
	if err != nil {
		return nil, err
	}

	// Clip files are resolved relative to the assets root.
	names := make([]string, 0, len(model.Clips))
	for clipName := range model.Clips {
		names = append(names, clipName)
	}
	sort.Strings(names)

	clips := make([]*anim.Clip, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, clipName := range names {
		file := path.Clean(model.Clips[clipName])
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			clip, err := l.LoadClip(file)
			if err != nil {
				return err
			}
			if clip.Name != clipName {
				return fmt.Errorf("clip %s: file names it %q", clipName, clip.Name)
			}
			clips[i] = clip
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", model.Name, err)
	}

	ch := &Character{
		Model: model,
		Clips: make(map[string]*anim.Clip, len(names)),
	}
	for i, clipName := range names {
		ch.Clips[clipName] = clips[i]
	}
	return ch, nil
}

// LoadCharacter starts loading in the background. cb runs exactly once,
// from a later call to Poll, with either the character or an error.
func (l *Loader) LoadCharacter(ctx context.Context, name string, cb func(*Character, error)) {
	l.pending++
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ch, err := l.Load(ctx, name)
		if err != nil {
			l.log.Warn("character load failed", zap.String("path", name), zap.Error(err))
		} else {
			l.log.Debug("character loaded", zap.String("path", name), zap.Int("clips", len(ch.Clips)))
		}
		l.done <- completion{ch: ch, err: err, cb: cb}
	}()
}

// Pending returns the number of loads whose callback has not run yet.
func (l *Loader) Pending() int { return l.pending }

// Poll runs the callbacks of finished loads without blocking and returns how
// many ran.
func (l *Loader) Poll() int {
	n := 0
	for {
		select {
		case c := <-l.done:
			l.deliver(c)
			n++
		default:
			return n
		}
	}
}

// Await blocks until one load finishes and runs its callback.
func (l *Loader) Await(ctx context.Context) error {
	if l.pending == 0 {
		return fmt.Errorf("no pending loads")
	}
	select {
	case c := <-l.done:
		l.deliver(c)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close waits for in-flight loads to finish. Their callbacks are dropped.
func (l *Loader) Close() {
	go func() {
		for range l.done {
		}
	}()
	l.wg.Wait()
	close(l.done)
	l.pending = 0
}

func (l *Loader) deliver(c completion) {
	l.pending--
	c.cb(c.ch, c.err)
}
