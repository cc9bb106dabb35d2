// Package input turns SDL2 events into per-frame input state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseWheel
	EventMouseDrag
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	DX, DY int
}

// Input tracks held keys and collects the events of the current frame.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool
	drag   bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update drains the SDL event queue. It returns true once the user asked
// to quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			code := e.Keysym.Scancode
			switch {
			case e.Type == sdl.KEYDOWN && e.Repeat == 0:
				i.held[code] = true
				i.events = append(i.events, Event{Type: EventKeyDown, Key: code})
			case e.Type == sdl.KEYUP:
				delete(i.held, code)
				i.events = append(i.events, Event{Type: EventKeyUp, Key: code})
			}

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_RIGHT {
				i.drag = e.Type == sdl.MOUSEBUTTONDOWN
			}

		case *sdl.MouseMotionEvent:
			if i.drag {
				i.events = append(i.events, Event{Type: EventMouseDrag, DX: int(e.XRel), DY: int(e.YRel)})
			}

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{Type: EventMouseWheel, DY: int(e.Y)})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyDown reports whether a key is currently held.
func (i *Input) IsKeyDown(code sdl.Scancode) bool {
	return i.held[code]
}

// IsKeyPressed reports whether a key went down during the last Update.
func (i *Input) IsKeyPressed(code sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == code {
			return true
		}
	}
	return false
}
