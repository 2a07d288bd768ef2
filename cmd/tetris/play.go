package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: tetris).

Controls:
  Left/Right or A/D  - Move
  Up/W               - Rotate counter-clockwise
  Down/S             - Rotate clockwise
  Space              - Drop one row
  P                  - Pause
  R/Enter            - Restart (after game over)
  Esc/B              - Leave (paused or game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slow fall (800ms per row)
  normal - Default fall (500ms per row)
  hard   - Fast fall (250ms per row)
  fixed  - Keep the config's fall_speed_ms

Examples:
  tetris play
  tetris play tetris_bag
  tetris play --difficulty hard --seed 42
  tetris play --config ./my-tetris.yaml --log-file tetris.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := string(tetris.VariantClassic)
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown variant %q\nRun 'tetris list' to see available variants.", gameID)
	}

	// The alt screen owns stdout, so logs go to --log-file or nowhere.
	logger, closeLog, err := newLogger(io.Discard, "tetris")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if err := configureGame(logger); err != nil {
		closeLog()
		fail("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := tui.Run(game, runtimeConfig()); err != nil {
		closeLog()
		fail("running game: %v", err)
	}
}
