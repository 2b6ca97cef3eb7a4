package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/stroll/internal/engine/input"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventFocusLost
	EventKeyDown
	EventKeyUp
)

// Event is a window or keyboard event. Key is set for key events, Width and
// Height for resizes.
type Event struct {
	Type   EventType
	Key    input.Key
	Width  int
	Height int
}

var scancodeKeys = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_W:      input.KeyW,
	sdl.SCANCODE_A:      input.KeyA,
	sdl.SCANCODE_S:      input.KeyS,
	sdl.SCANCODE_D:      input.KeyD,
	sdl.SCANCODE_SPACE:  input.KeySpace,
	sdl.SCANCODE_LSHIFT: input.KeyLeftShift,
	sdl.SCANCODE_RSHIFT: input.KeyRightShift,
	sdl.SCANCODE_UP:     input.KeyUp,
	sdl.SCANCODE_DOWN:   input.KeyDown,
	sdl.SCANCODE_LEFT:   input.KeyLeft,
	sdl.SCANCODE_RIGHT:  input.KeyRight,
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
}

// KeyFromScancode maps an SDL scancode to a key. Unmapped scancodes return
// input.KeyUnknown.
func KeyFromScancode(sc sdl.Scancode) input.Key {
	if k, ok := scancodeKeys[sc]; ok {
		return k
	}
	return input.KeyUnknown
}

// PollEvents drains the SDL queue. The returned slice is reused by the next
// call.
func (w *Window) PollEvents() []Event {
	w.events = w.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.events = append(w.events, Event{Type: EventQuit})

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				w.events = append(w.events, Event{
					Type:   EventResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				w.events = append(w.events, Event{Type: EventFocusLost})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			key := KeyFromScancode(e.Keysym.Scancode)
			if key == input.KeyUnknown {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				w.events = append(w.events, Event{Type: EventKeyDown, Key: key})
			} else if e.Type == sdl.KEYUP {
				w.events = append(w.events, Event{Type: EventKeyUp, Key: key})
			}
		}
	}

	return w.events
}
