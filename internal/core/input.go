package core

// KeyCode is a raw, platform-neutral key code. The platform layer maps its
// own key events onto these codes; games translate codes into their events.
// The arrow and space values follow the classic keyboard scan table.
type KeyCode int

const (
	KeyNone  KeyCode = 0
	KeyEnter KeyCode = 13
	KeyEsc   KeyCode = 27
	KeySpace KeyCode = 32
	KeyP     KeyCode = 'p'
	KeyQ     KeyCode = 'q'
	KeyR     KeyCode = 'r'
	KeyUp    KeyCode = 273
	KeyDown  KeyCode = 274
	KeyRight KeyCode = 275
	KeyLeft  KeyCode = 276
)

// String returns a human-readable name for the key code.
func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeySpace:
		return "space"
	case KeyP:
		return "p"
	case KeyQ:
		return "q"
	case KeyR:
		return "r"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	default:
		return "unknown"
	}
}

// InputFrame is the pending-input slot for one simulation tick.
// Keys pressed between two ticks are coalesced: the most recent one wins.
type InputFrame struct {
	key KeyCode
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a key press, replacing any earlier press in this frame.
func (f *InputFrame) Set(k KeyCode) {
	f.key = k
}

// Latest returns the most recent key pressed this frame, or KeyNone.
func (f InputFrame) Latest() KeyCode {
	return f.key
}

// Has returns true if k is the key that will be applied this frame.
func (f InputFrame) Has(k KeyCode) bool {
	return k != KeyNone && f.key == k
}

// Empty reports whether no key was pressed this frame.
func (f InputFrame) Empty() bool {
	return f.key == KeyNone
}

// Clear consumes the pending key.
func (f *InputFrame) Clear() {
	f.key = KeyNone
}
