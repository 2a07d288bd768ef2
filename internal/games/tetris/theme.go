package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Theme holds the colors used to draw a session.
type Theme struct {
	Pieces map[engine.Kind]core.Color
	Frame  core.Color
	Ghost  core.Color
}

// DefaultTheme uses the catalog colors of each kind.
func DefaultTheme() Theme {
	t := Theme{
		Pieces: make(map[engine.Kind]core.Color),
		Frame:  core.ColorWhite,
		Ghost:  core.ColorGray,
	}
	for _, k := range engine.Kinds() {
		t.Pieces[k] = engine.Color(k)
	}
	return t
}

// ThemeFromConfig overlays config entries on the default theme. Keys are
// kind letters, "frame" or "ghost". Bad entries are skipped and reported.
func ThemeFromConfig(entries map[string]string) (Theme, []error) {
	t := DefaultTheme()
	var errs []error
	for key, name := range entries {
		c, err := core.ParseColor(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme %s: %w", key, err))
			continue
		}
		switch key {
		case "frame":
			t.Frame = c
		case "ghost":
			t.Ghost = c
		default:
			k, err := engine.ParseKind(key)
			if err != nil {
				errs = append(errs, fmt.Errorf("theme %s: %w", key, err))
				continue
			}
			t.Pieces[k] = c
		}
	}
	return t, errs
}

// PieceColor returns the color of a kind.
func (t Theme) PieceColor(k engine.Kind) core.Color {
	if c, ok := t.Pieces[k]; ok {
		return c
	}
	return engine.Color(k)
}
