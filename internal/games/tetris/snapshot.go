package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Mode     string // engine mode, or "error" when the session did not start
	Score    int
	Lines    int
	Pieces   int
	Current  engine.Piece
	Next     engine.Kind
	Occupied int // number of locked cells
	FallTime int64
	Paused   bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	mode := g.state.Mode.String()
	if g.eng == nil {
		mode = "error"
	}
	return Snapshot{
		Tick:     g.tick,
		Variant:  string(g.variant),
		Mode:     mode,
		Score:    g.state.Score,
		Lines:    g.state.Lines,
		Pieces:   g.state.Pieces,
		Current:  g.state.Current,
		Next:     g.state.Next.Kind,
		Occupied: len(g.state.Occupied),
		FallTime: g.state.FallTime.Milliseconds(),
		Paused:   g.paused,
	}
}
