// Package tetris adapts the falling-block engine to the platform: it turns
// key codes into engine events, feeds wall-clock time to the fall timer,
// and draws the well into a core.Screen.
package tetris

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Variant selects how pieces are generated.
type Variant string

const (
	VariantClassic Variant = "tetris"
	VariantBag     Variant = "tetris_bag"
)

// Package-level settings applied on every Reset, set by the CLI before the
// platform creates games through the registry.
var (
	configPath       string
	difficultyPreset = config.DifficultyFixed
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger for session events. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game around an engine session.
type Game struct {
	variant Variant
	eng     *engine.Engine
	state   engine.State
	cfg     config.TetrisConfig
	theme   Theme
	seed    int64
	tick    uint64
	paused  bool
	err     error // configuration error; the session does not start

	screenW int
	screenH int
}

// New creates a game whose randomizer follows the config file.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewBag creates a game that always uses the 7-bag randomizer.
func NewBag() *Game {
	return &Game{variant: VariantBag}
}

func init() {
	registry.Register(string(VariantClassic), "Tetris", func() registry.Game {
		return New()
	})
	registry.Register(string(VariantBag), "Tetris (7-Bag)", func() registry.Game {
		return NewBag()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantBag {
		return "Tetris (7-Bag)"
	}
	return "Tetris"
}

// LoadConfig loads the config file and applies the difficulty preset.
func LoadConfig(path string, preset config.DifficultyPreset) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(path)
	if err != nil {
		return cfg, err
	}
	config.ApplyTetrisPreset(&cfg, preset)
	return cfg, nil
}

// RulesFromConfig converts a config into engine rules.
func RulesFromConfig(cfg config.TetrisConfig) engine.Rules {
	return engine.Rules{
		Width:     cfg.Grid.Width,
		Height:    cfg.Grid.Height,
		FallSpeed: cfg.FallSpeed(),
		Scoring:   engine.ScoreTable(cfg.Scoring),
	}
}

// Check reports whether the current config path and preset produce a
// playable game, so callers can fail before opening the terminal UI.
func Check() error {
	cfg, err := LoadConfig(configPath, difficultyPreset)
	if err != nil {
		return err
	}
	return RulesFromConfig(cfg).Validate()
}

func (g *Game) newSource(seed int64) engine.Source {
	if g.variant == VariantBag || g.cfg.Randomizer == config.RandomizerBag {
		return engine.NewBagSource(seed)
	}
	return engine.NewUniformSource(seed)
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.paused = false
	g.err = nil
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	tc, err := LoadConfig(configPath, difficultyPreset)
	if err != nil {
		g.fail(err)
		return
	}
	g.cfg = tc

	theme, warnings := ThemeFromConfig(tc.Theme)
	for _, w := range warnings {
		logger.Warn("ignoring theme entry", "err", w)
	}
	g.theme = theme

	eng, err := engine.NewEngine(RulesFromConfig(tc), g.newSource(cfg.Seed))
	if err != nil {
		g.fail(err)
		return
	}
	g.eng = eng
	g.state = eng.NewState()

	logger.Info("session started",
		"variant", g.variant,
		"grid", fmt.Sprintf("%dx%d", tc.Grid.Width, tc.Grid.Height),
		"fall_speed", tc.FallSpeed(),
		"seed", cfg.Seed,
	)
}

func (g *Game) fail(err error) {
	g.err = err
	g.eng = nil
	g.state = engine.State{}
	logger.Error("cannot start session", "err", err)
}

// Resize records the terminal size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.tick++
	if g.eng == nil {
		return core.StepResult{State: g.State()}
	}

	key := in.Latest()
	over := g.state.Mode == engine.ModeGameOver

	// Handle pause toggle
	if key == core.KeyP && !over {
		g.paused = !g.paused
		logger.Debug("pause toggled", "paused", g.paused)
		return core.StepResult{State: g.State()}
	}

	// Time does not flow while paused or while the well is hidden
	if g.paused || g.tooSmall() {
		return core.StepResult{State: g.State()}
	}

	ev := engine.Translate(key)
	if over && (key == core.KeyR || key == core.KeyEnter) {
		ev = engine.EventRestart
	}

	prev := g.state
	g.state = g.eng.Tick(g.state, dt, ev)
	g.logTransition(prev)

	return core.StepResult{State: g.State()}
}

func (g *Game) logTransition(prev engine.State) {
	s := g.state
	switch {
	case prev.Mode == engine.ModeGameOver && s.Mode == engine.ModePlaying:
		logger.Info("session restarted", "previous_score", prev.Score)
		return
	case s.Pieces > prev.Pieces:
		logger.Debug("piece locked", "kind", prev.Current.Kind, "pieces", s.Pieces)
	}
	if s.LastClear > 0 {
		logger.Info("rows cleared", "rows", s.LastClear, "score", s.Score, "lines", s.Lines)
	}
	if prev.Mode != engine.ModeGameOver && s.Mode == engine.ModeGameOver {
		logger.Info("game over", "score", s.Score, "lines", s.Lines, "pieces", s.Pieces)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Lines:    g.state.Lines,
		GameOver: g.eng != nil && g.state.Mode == engine.ModeGameOver,
		Paused:   g.paused,
	}
}

// Err returns the configuration error that prevented the session from
// starting, if any.
func (g *Game) Err() error {
	return g.err
}
