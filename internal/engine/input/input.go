// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies input events.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseDrag
	EventMouseWheel
	EventClick
)

// clickSlop is how far, in pixels, the mouse may move between press and
// release for the release to count as a click.
const clickSlop = 4

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    string // Key name, see keyNames
	Shift  bool
	Width  int
	Height int
	DX, DY float32 // Drag or wheel delta
	X, Y   float32 // Click position in window coordinates
	Right  bool    // Click with the right button
}

// keyNames maps the scancodes the client reacts to onto plain names so
// bindings can be declared without SDL.
var keyNames = map[sdl.Scancode]string{
	sdl.SCANCODE_K:         "k",
	sdl.SCANCODE_O:         "o",
	sdl.SCANCODE_J:         "j",
	sdl.SCANCODE_L:         "l",
	sdl.SCANCODE_I:         "i",
	sdl.SCANCODE_M:         "m",
	sdl.SCANCODE_R:         "r",
	sdl.SCANCODE_BACKSPACE: "backspace",
	sdl.SCANCODE_ESCAPE:    "escape",
	sdl.SCANCODE_F12:       "f12",
	sdl.SCANCODE_LEFT:      "left",
	sdl.SCANCODE_RIGHT:     "right",
	sdl.SCANCODE_UP:        "up",
	sdl.SCANCODE_DOWN:      "down",
}

// Input handles all input processing.
type Input struct {
	events   []Event
	dragging bool
	dragged  float32 // Distance moved since the left button went down
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			name, ok := keyNames[e.Keysym.Scancode]
			if !ok {
				continue
			}
			i.events = append(i.events, Event{
				Type:  EventKeyDown,
				Key:   name,
				Shift: e.Keysym.Mod&uint16(sdl.KMOD_SHIFT) != 0,
			})

		case *sdl.MouseButtonEvent:
			i.handleButton(e)

		case *sdl.MouseMotionEvent:
			if i.dragging {
				i.dragged += abs(float32(e.XRel)) + abs(float32(e.YRel))
				i.events = append(i.events, Event{
					Type: EventMouseDrag,
					DX:   float32(e.XRel),
					DY:   float32(e.YRel),
				})
			}

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type: EventMouseWheel,
				DY:   float32(e.Y),
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

func (i *Input) handleButton(e *sdl.MouseButtonEvent) {
	click := Event{Type: EventClick, X: float32(e.X), Y: float32(e.Y)}

	switch e.Button {
	case sdl.BUTTON_LEFT:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			i.dragging = true
			i.dragged = 0
			return
		}
		i.dragging = false
		if i.dragged < clickSlop {
			i.events = append(i.events, click)
		}

	case sdl.BUTTON_RIGHT:
		if e.Type == sdl.MOUSEBUTTONUP {
			click.Right = true
			i.events = append(i.events, click)
		}
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
