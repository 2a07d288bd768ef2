package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// Event is an abstract game input, independent of the keyboard.
type Event int

const (
	EventNone Event = iota
	EventLeft
	EventRight
	EventRotateLeft
	EventRotateRight
	EventFall
	EventRestart
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventLeft:
		return "Left"
	case EventRight:
		return "Right"
	case EventRotateLeft:
		return "RotateLeft"
	case EventRotateRight:
		return "RotateRight"
	case EventFall:
		return "Fall"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// controls is the frozen control table. Any input layer must produce
// exactly these codes for these events.
var controls = map[core.KeyCode]Event{
	core.KeySpace: EventFall,
	core.KeyLeft:  EventLeft,
	core.KeyRight: EventRight,
	core.KeyUp:    EventRotateLeft,
	core.KeyDown:  EventRotateRight,
}

// Translate maps a raw key code to a game event.
// Codes outside the control table translate to EventNone.
func Translate(code core.KeyCode) Event {
	if ev, ok := controls[code]; ok {
		return ev
	}
	return EventNone
}
