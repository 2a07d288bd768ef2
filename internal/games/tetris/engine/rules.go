package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules is wrapped by every configuration error from Validate.
var ErrInvalidRules = errors.New("engine: invalid rules")

// Rules are the tunable parameters of a session.
type Rules struct {
	Width     int
	Height    int
	FallSpeed time.Duration
	Scoring   ScoreTable
}

// DefaultRules returns the classic 10x20 well with a half-second drop.
func DefaultRules() Rules {
	return Rules{
		Width:     10,
		Height:    20,
		FallSpeed: 500 * time.Millisecond,
		Scoring:   DefaultScoreTable(),
	}
}

// Grid returns the playfield described by the rules.
func (r Rules) Grid() Grid {
	return Grid{Width: r.Width, Height: r.Height}
}

// Validate rejects rules no session could be played with.
func (r Rules) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalidRules, r.Width, r.Height)
	}
	if w := MaxTemplateWidth(); r.Width < w {
		return fmt.Errorf("%w: grid width %d is narrower than the widest shape (%d)", ErrInvalidRules, r.Width, w)
	}
	if h := MaxTemplateHeight(); r.Height < h {
		return fmt.Errorf("%w: grid height %d is shorter than the tallest shape (%d)", ErrInvalidRules, r.Height, h)
	}
	if r.FallSpeed <= 0 {
		return fmt.Errorf("%w: fall speed must be positive, got %s", ErrInvalidRules, r.FallSpeed)
	}
	if err := r.Scoring.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}
	return nil
}
