package engine

import (
	"errors"
	"fmt"
	"time"
)

// Engine drives the session state machine. It holds only the rules and the
// piece source; all session data lives in the State values it returns.
type Engine struct {
	rules Rules
	grid  Grid
	src   Source
}

// NewEngine validates the rules and creates an engine drawing pieces from src.
func NewEngine(rules Rules, src Source) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil piece source", ErrInvalidRules)
	}
	return &Engine{
		rules: rules,
		grid:  rules.Grid(),
		src:   src,
	}, nil
}

// MustEngine is NewEngine for rules known to be valid. It panics on error.
func MustEngine(rules Rules, src Source) *Engine {
	e, err := NewEngine(rules, src)
	if err != nil {
		panic(err)
	}
	return e
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Grid returns the playfield.
func (e *Engine) Grid() Grid {
	return e.grid
}

func (e *Engine) spawn() Piece {
	return Spawn(e.src.Next(), e.rules.Width)
}

// NewState starts a fresh session: empty stack, a current and a next piece,
// zero score, Playing.
func (e *Engine) NewState() State {
	s := State{
		Occupied:  Occupied{},
		Current:   e.spawn(),
		Next:      e.spawn(),
		FallSpeed: e.rules.FallSpeed,
		Mode:      ModePlaying,
	}
	return e.Enter(s)
}

// Post records an input for the next tick. A later event replaces an
// earlier one; EventNone never replaces a real event.
func Post(s State, ev Event) State {
	if ev != EventNone {
		s.Pending = ev
	}
	return s
}

// Tick advances the session by one external tick: the pending event (the
// argument or an earlier Post, latest wins) is handled once, then elapsed
// time feeds the fall timer. A GameOver session only reacts to Restart.
func (e *Engine) Tick(s State, elapsed time.Duration, pending Event) State {
	s = Post(s, pending)
	ev := s.Pending
	s.Pending = EventNone

	if s.Mode == ModeGameOver {
		return e.HandleEvent(s, ev)
	}

	s.LastClear = 0
	s = e.HandleEvent(s, ev)
	if s.Mode == ModeGameOver {
		return s
	}
	// a Falling state resolves here; lock resets FallTime
	s.FallTime += elapsed
	return e.Update(s)
}

// Enter runs the entry action of the state's mode.
func (e *Engine) Enter(s State) State {
	switch s.Mode {
	case ModePlaying:
		if !e.grid.PieceFits(s.Current, s.Occupied) {
			s.Mode = ModeGameOver
			return e.Enter(s)
		}
		s.Running = true
	case ModeFalling:
		return e.lock(s)
	case ModeGameOver:
		s.Running = false
	}
	return s
}

// HandleEvent applies one input event according to the current mode.
func (e *Engine) HandleEvent(s State, ev Event) State {
	switch s.Mode {
	case ModePlaying:
		return e.handlePlaying(s, ev)
	case ModeGameOver:
		if ev == EventRestart {
			return e.NewState()
		}
	}
	return s
}

// Update applies time-driven behavior. Callers add elapsed time to
// FallTime before calling it.
func (e *Engine) Update(s State) State {
	switch s.Mode {
	case ModePlaying:
		if s.FallTime < s.FallSpeed {
			return s
		}
		moved, ok := e.descend(s)
		if ok {
			// keep the remainder so the cadence does not drift
			moved.FallTime -= moved.FallSpeed
		}
		return moved
	case ModeFalling:
		return e.Enter(s)
	}
	return s
}

func (e *Engine) handlePlaying(s State, ev Event) State {
	switch ev {
	case EventLeft:
		return e.try(s, s.Current.Translated(-1, 0))
	case EventRight:
		return e.try(s, s.Current.Translated(1, 0))
	case EventRotateLeft:
		return e.try(s, s.Current.Rotated(CounterClockwise))
	case EventRotateRight:
		return e.try(s, s.Current.Rotated(Clockwise))
	case EventFall:
		s, _ = e.descend(s)
		return s
	}
	return s
}

// try commits p as the current piece when it fits; otherwise s is unchanged.
// Rotations get no wall kicks.
func (e *Engine) try(s State, p Piece) State {
	if e.grid.PieceFits(p, s.Occupied) {
		s.Current = p
	}
	return s
}

// descend moves the current piece one row down, or locks it when it has
// landed. The bool reports whether the piece moved.
func (e *Engine) descend(s State) (State, bool) {
	down := s.Current.Translated(0, 1)
	if e.grid.PieceFits(down, s.Occupied) {
		s.Current = down
		return s, true
	}
	s.Mode = ModeFalling
	return e.Enter(s), false
}

// lock merges the landed piece, clears full rows, scores, and promotes the
// next piece. The session ends if the promoted piece cannot spawn.
func (e *Engine) lock(s State) State {
	occ := s.Occupied.With(s.Current)
	rows := e.grid.FullRows(occ)
	if len(rows) > 0 {
		occ = e.grid.ClearRows(occ, rows)
		s.Score += e.rules.Scoring.Points(len(rows))
		s.Lines += len(rows)
	}
	s.Occupied = occ
	s.Pieces++
	s.LastClear = len(rows)
	s.Current = s.Next
	s.Next = e.spawn()
	s.FallTime = 0
	s.Mode = ModePlaying
	return e.Enter(s)
}

// Ghost returns where the current piece would come to rest if it kept
// falling without input.
func (e *Engine) Ghost(s State) Piece {
	p := s.Current
	for {
		down := p.Translated(0, 1)
		if !e.grid.PieceFits(down, s.Occupied) {
			return p
		}
		p = down
	}
}

// CheckInvariants reports the first broken structural invariant of s:
// locked cells outside the grid, or a Playing piece overlapping the stack.
func (e *Engine) CheckInvariants(s State) error {
	for c := range s.Occupied {
		if !e.grid.InBounds(c) {
			return fmt.Errorf("engine: locked cell %v out of bounds", c)
		}
	}
	if s.Mode == ModePlaying && !e.grid.PieceFits(s.Current, s.Occupied) {
		return errors.New("engine: current piece overlaps the stack or leaves the grid")
	}
	return nil
}
