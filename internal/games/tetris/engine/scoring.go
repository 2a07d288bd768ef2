package engine

import (
	"errors"
	"fmt"
)

// ScoreTable holds the points awarded for clearing N rows with one lock,
// indexed by N. Index 0 must be 0.
type ScoreTable []int

// DefaultScoreTable rewards multi-row clears more per row than single clears.
func DefaultScoreTable() ScoreTable {
	return ScoreTable{0, 100, 300, 500, 800}
}

// Points returns the award for clearing n rows at once. Counts past the end
// of the table continue the table's last step linearly.
func (t ScoreTable) Points(n int) int {
	if n <= 0 || len(t) == 0 {
		return 0
	}
	last := len(t) - 1
	if n <= last {
		return t[n]
	}
	step := t[last]
	if last > 0 {
		step = t[last] - t[last-1]
	}
	return t[last] + (n-last)*step
}

// Validate checks that the table starts at zero and strictly increases.
func (t ScoreTable) Validate() error {
	if len(t) < 2 {
		return errors.New("score table needs at least entries for 0 and 1 rows")
	}
	if t[0] != 0 {
		return fmt.Errorf("score for 0 rows must be 0, got %d", t[0])
	}
	for n := 1; n < len(t); n++ {
		if t[n] <= t[n-1] {
			return fmt.Errorf("score for %d rows (%d) must exceed score for %d rows (%d)", n, t[n], n-1, t[n-1])
		}
	}
	return nil
}
