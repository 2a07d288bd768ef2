package engine

import "time"

// Mode is the state-machine mode of a session.
type Mode int

const (
	// ModePlaying: the current piece is controllable and falling.
	ModePlaying Mode = iota
	// ModeFalling: the current piece has landed and is being locked in.
	ModeFalling
	// ModeGameOver: a new piece could not spawn. Only Restart leaves it.
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeFalling:
		return "falling"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is one snapshot of a session. Transitions return new snapshots;
// a State handed out by the engine is never modified afterwards.
type State struct {
	Occupied  Occupied
	Current   Piece
	Next      Piece
	FallTime  time.Duration // accumulated since the last forced drop
	FallSpeed time.Duration // time per forced drop
	Score     int
	Lines     int // rows cleared this session
	Pieces    int // pieces locked this session
	LastClear int // rows cleared by a lock during the latest tick
	Running   bool
	Mode      Mode
	Pending   Event // latest input since the previous tick
}

// CurrentCells returns the cells covered by the current piece.
func (s State) CurrentCells() []Cell {
	return s.Current.Cells()
}
