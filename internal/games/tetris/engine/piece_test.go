package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func TestEveryRotationHasFourCells(t *testing.T) {
	for _, k := range engine.Kinds() {
		for r := 0; r < engine.RotationCount(k); r++ {
			assert.Len(t, engine.Offsets(k, r), 4, "%s rotation %d", k, r)
		}
	}
}

func TestRotationCounts(t *testing.T) {
	for _, k := range engine.Kinds() {
		expected := 4
		if k == engine.KindO {
			expected = 1
		}
		assert.Equal(t, expected, engine.RotationCount(k), "kind %s", k)
	}
}

func TestOffsetsWrapRotation(t *testing.T) {
	assert.Equal(t, engine.Offsets(engine.KindT, 0), engine.Offsets(engine.KindT, 4))
	assert.Equal(t, engine.Offsets(engine.KindT, 3), engine.Offsets(engine.KindT, -1))
}

func TestSpawnAnchorCentersAtTop(t *testing.T) {
	for _, k := range engine.Kinds() {
		p := engine.Spawn(k, 10)
		minY, minX, maxX := 1<<30, 1<<30, -1
		for _, c := range p.Cells() {
			minY = min(minY, c.Y)
			minX = min(minX, c.X)
			maxX = max(maxX, c.X)
		}
		assert.Equal(t, 0, minY, "%s should touch row 0", k)
		left, right := minX, 9-maxX
		assert.LessOrEqual(t, abs(left-right), 1, "%s should be centered, margins %d/%d", k, left, right)
		assert.Equal(t, p, engine.Spawn(k, 10), "spawn must be deterministic")
	}
}

func TestKindNamesAndColors(t *testing.T) {
	for _, k := range engine.Kinds() {
		parsed, err := engine.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
		assert.NotEqual(t, core.ColorDefault, engine.Color(k))
	}
	_, err := engine.ParseKind("Q")
	assert.Error(t, err)
}

func TestPieceCellsFollowAnchor(t *testing.T) {
	p := engine.Piece{Kind: engine.KindO, Anchor: engine.Cell{X: 3, Y: 5}}
	assert.ElementsMatch(t, []engine.Cell{{X: 3, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 6}, {X: 4, Y: 6}}, p.Cells())
}

func TestTranslatedDoesNotMutate(t *testing.T) {
	p := engine.Piece{Kind: engine.KindL, Anchor: engine.Cell{X: 3, Y: 5}}
	moved := p.Translated(-2, 1)

	assert.Equal(t, engine.Cell{X: 1, Y: 6}, moved.Anchor)
	assert.Equal(t, engine.Cell{X: 3, Y: 5}, p.Anchor)
	assert.Equal(t, p.Rotation, moved.Rotation)
}

func TestRotatedFourTimesIsIdentity(t *testing.T) {
	for _, k := range engine.Kinds() {
		if engine.RotationCount(k) != 4 {
			continue
		}
		p := engine.Piece{Kind: k, Rotation: 1, Anchor: engine.Cell{X: 4, Y: 4}}
		for _, dir := range []engine.Direction{engine.Clockwise, engine.CounterClockwise} {
			r := p
			for i := 0; i < 4; i++ {
				r = r.Rotated(dir)
			}
			assert.Equal(t, p, r, "%s rotated four times in direction %d", k, dir)
		}
	}
}

func TestRotatedWrapsBothWays(t *testing.T) {
	p := engine.Piece{Kind: engine.KindT}
	assert.Equal(t, 3, p.Rotated(engine.CounterClockwise).Rotation)
	assert.Equal(t, 1, p.Rotated(engine.Clockwise).Rotation)

	o := engine.Piece{Kind: engine.KindO}
	assert.Equal(t, 0, o.Rotated(engine.Clockwise).Rotation)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
