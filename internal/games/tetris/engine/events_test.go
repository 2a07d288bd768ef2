package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func TestTranslateControlTable(t *testing.T) {
	tests := []struct {
		code     core.KeyCode
		expected engine.Event
	}{
		{core.KeySpace, engine.EventFall},
		{core.KeyLeft, engine.EventLeft},
		{core.KeyRight, engine.EventRight},
		{core.KeyUp, engine.EventRotateLeft},
		{core.KeyDown, engine.EventRotateRight},
		{core.KeyR, engine.EventNone},
		{core.KeyEnter, engine.EventNone},
		{core.KeyNone, engine.EventNone},
		{core.KeyCode(-7), engine.EventNone},
		{core.KeyCode(99999), engine.EventNone},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, engine.Translate(tc.code), "Translate(%v)", tc.code)
	}
}

func TestTranslateRawCodes(t *testing.T) {
	// The control contract is defined on these exact codes.
	assert.Equal(t, engine.EventFall, engine.Translate(32))
	assert.Equal(t, engine.EventLeft, engine.Translate(276))
	assert.Equal(t, engine.EventRight, engine.Translate(275))
	assert.Equal(t, engine.EventRotateLeft, engine.Translate(273))
	assert.Equal(t, engine.EventRotateRight, engine.Translate(274))
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "RotateLeft", engine.EventRotateLeft.String())
	assert.Equal(t, "Unknown", engine.Event(42).String())
}
