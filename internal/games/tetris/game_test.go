package tetris

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// useConfig points Reset at a temporary config file for the test.
func useConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	SetConfigPath(path)
	SetDifficultyPreset(config.DifficultyFixed)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset(config.DifficultyFixed)
		SetLogger(nil)
	})
}

func startGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	require.NoError(t, g.Err())
	return g
}

func press(g *Game, key core.KeyCode, dt time.Duration) core.StepResult {
	in := core.NewInputFrame()
	in.Set(key)
	return g.Step(in, dt)
}

// blockSpawn arranges for the next lock to end the session: the spawn area
// is filled and the current piece sits on the floor.
func blockSpawn(g *Game) {
	occ := engine.Occupied{}
	for x := 3; x <= 6; x++ {
		occ[engine.Cell{X: x, Y: 0}] = engine.KindZ
		occ[engine.Cell{X: x, Y: 1}] = engine.KindZ
	}
	g.state.Occupied = occ
	g.state.Current = engine.Piece{Kind: engine.KindO, Anchor: engine.Cell{X: 0, Y: 18}}
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"tetris", "tetris_bag"} {
		assert.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestDeterminism(t *testing.T) {
	useConfig(t, "randomizer: uniform\n")

	g1 := startGame(t, New(), 12345)
	g2 := startGame(t, New(), 12345)

	keys := []core.KeyCode{core.KeyNone, core.KeyLeft, core.KeyUp, core.KeyNone,
		core.KeyRight, core.KeyDown, core.KeySpace, core.KeyNone}
	for i := 0; i < 2000; i++ {
		k := keys[i%len(keys)]
		if g1.State().GameOver {
			k = core.KeyR
		}
		press(g1, k, 33*time.Millisecond)
		press(g2, k, 33*time.Millisecond)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Positive(t, g1.Snapshot().Pieces+g1.Snapshot().Score)
}

func TestKeysDriveEngine(t *testing.T) {
	useConfig(t, "randomizer: uniform\n")
	g := startGame(t, New(), 1)
	start := g.state.Current.Anchor

	press(g, core.KeyLeft, 0)
	assert.Equal(t, start.X-1, g.state.Current.Anchor.X)

	press(g, core.KeyRight, 0)
	assert.Equal(t, start.X, g.state.Current.Anchor.X)

	press(g, core.KeySpace, 0)
	assert.Equal(t, start.Y+1, g.state.Current.Anchor.Y)

	press(g, core.KeyQ, 0)
	assert.Equal(t, start.Y+1, g.state.Current.Anchor.Y, "unmapped keys do nothing")
}

func TestElapsedTimeFeedsGravity(t *testing.T) {
	useConfig(t, "fall_speed_ms: 100\n")
	g := startGame(t, New(), 1)
	y := g.state.Current.Anchor.Y

	g.Step(core.NewInputFrame(), 60*time.Millisecond)
	assert.Equal(t, y, g.state.Current.Anchor.Y)

	g.Step(core.NewInputFrame(), 60*time.Millisecond)
	assert.Equal(t, y+1, g.state.Current.Anchor.Y)
	assert.Equal(t, int64(20), g.Snapshot().FallTime)
}

func TestDifficultyPresetSetsFallSpeed(t *testing.T) {
	useConfig(t, "fall_speed_ms: 500\n")
	SetDifficultyPreset(config.DifficultyHard)
	g := startGame(t, New(), 1)

	assert.Equal(t, 250*time.Millisecond, g.state.FallSpeed)
}

func TestPauseFreezesSession(t *testing.T) {
	useConfig(t, "randomizer: uniform\n")
	g := startGame(t, New(), 7)

	res := press(g, core.KeyP, 0)
	assert.True(t, res.State.Paused)
	before := g.Snapshot()

	press(g, core.KeyLeft, 10*time.Second)
	after := g.Snapshot()
	assert.Equal(t, before.Current, after.Current)
	assert.Equal(t, before.FallTime, after.FallTime)

	res = press(g, core.KeyP, 0)
	assert.False(t, res.State.Paused)
	press(g, core.KeyLeft, 0)
	assert.Equal(t, before.Current.Anchor.X-1, g.state.Current.Anchor.X)
}

func TestGameOverAndRestart(t *testing.T) {
	useConfig(t, "randomizer: uniform\n")
	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	g := startGame(t, New(), 3)

	press(g, core.KeyR, 0)
	assert.False(t, g.State().GameOver, "restart key does nothing while playing")

	blockSpawn(g)
	g.state.Score = 900
	res := press(g, core.KeySpace, 0)
	require.True(t, res.State.GameOver)
	assert.Equal(t, 900, res.State.Score)
	assert.Contains(t, buf.String(), "game over")

	res = press(g, core.KeyP, 0)
	assert.False(t, res.State.Paused, "cannot pause a finished game")

	res = press(g, core.KeyLeft, time.Minute)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, 900, res.State.Score)

	res = press(g, core.KeyEnter, time.Minute)
	assert.False(t, res.State.GameOver)
	assert.Zero(t, res.State.Score)
	assert.Empty(t, g.state.Occupied)
	assert.Zero(t, g.state.FallTime, "restart does not apply elapsed time")
	assert.Contains(t, buf.String(), "session restarted")
}

func TestInvalidConfigIsReported(t *testing.T) {
	useConfig(t, "grid:\n  width: 2\n  height: 20\n")
	assert.ErrorIs(t, Check(), engine.ErrInvalidRules)

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	assert.ErrorIs(t, g.Err(), engine.ErrInvalidRules)

	assert.NotPanics(t, func() { press(g, core.KeySpace, time.Second) })
	assert.Equal(t, "error", g.Snapshot().Mode)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Config error")
}

func TestCheckMissingConfig(t *testing.T) {
	useConfig(t, "")
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, Check())
}

func TestRandomizerSelection(t *testing.T) {
	useConfig(t, "randomizer: bag\n")
	g := startGame(t, New(), 1)
	_, isBag := g.newSource(1).(*engine.BagSource)
	assert.True(t, isBag, "config selects the bag")

	useConfig(t, "randomizer: uniform\n")
	g = startGame(t, NewBag(), 1)
	_, isBag = g.newSource(1).(*engine.BagSource)
	assert.True(t, isBag, "bag variant always uses the bag")

	g = startGame(t, New(), 1)
	_, isUniform := g.newSource(1).(*engine.UniformSource)
	assert.True(t, isUniform)
}

func TestRenderLayout(t *testing.T) {
	useConfig(t, "randomizer: uniform\n")
	g := startGame(t, New(), 9)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, label := range []string{"Tetris", "NEXT", "SCORE", "LINES", "PIECES"} {
		assert.Contains(t, out, label)
	}

	w, h := g.layoutSize()
	assert.Equal(t, 35, w)
	assert.Equal(t, 23, h)
	ox, oy := (80-w)/2, (24-h)/2
	assert.Equal(t, '┌', screen.Get(ox, oy+hudHeight))
	assert.Equal(t, '┘', screen.Get(ox+21, oy+hudHeight+21))

	// The current piece is drawn two columns per cell in its color.
	color := g.theme.PieceColor(g.state.Current.Kind)
	for _, c := range g.state.Current.Cells() {
		x := ox + 1 + c.X*cellW
		y := oy + hudHeight + 1 + c.Y
		assert.Equal(t, core.Cell{Rune: blockChar, Color: color}, screen.GetCell(x, y))
		assert.Equal(t, core.Cell{Rune: blockChar, Color: color}, screen.GetCell(x+1, y))
	}

	assert.Contains(t, out, string(ghostChar))
}

func TestRenderBanners(t *testing.T) {
	useConfig(t, "randomizer: uniform\n")
	g := startGame(t, New(), 9)
	screen := core.NewScreen(80, 24)

	press(g, core.KeyP, 0)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	press(g, core.KeyP, 0)
	blockSpawn(g)
	press(g, core.KeySpace, 0)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
	assert.Contains(t, screen.String(), "Press R to restart")
}

func TestSmallWindow(t *testing.T) {
	useConfig(t, "randomizer: uniform\n")
	g := startGame(t, New(), 9)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Window too"), screen.String())

	g.Resize(20, 10)
	before := g.Snapshot()
	g.Step(core.NewInputFrame(), 10*time.Second)
	assert.Equal(t, before.Current, g.Snapshot().Current, "hidden well does not advance")

	g.Resize(80, 24)
	g.Step(core.NewInputFrame(), time.Second)
	assert.Equal(t, before.Current.Anchor.Y+1, g.Snapshot().Current.Anchor.Y)
}

func TestThemeFromConfig(t *testing.T) {
	theme, errs := ThemeFromConfig(map[string]string{
		"I":     "bright_cyan",
		"frame": "gray",
		"Q":     "red",
		"T":     "plaid",
	})

	assert.Len(t, errs, 2)
	assert.Equal(t, core.ColorBrightCyan, theme.PieceColor(engine.KindI))
	assert.Equal(t, core.ColorGray, theme.Frame)
	assert.Equal(t, core.ColorGray, theme.Ghost)
	assert.Equal(t, engine.Color(engine.KindT), theme.PieceColor(engine.KindT))
}
