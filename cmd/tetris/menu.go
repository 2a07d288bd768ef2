package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively",
	Long: `Start with a variant picker menu.

Use arrow keys or j/k to navigate, Enter to select a variant.
Esc on the pause or game-over screen returns to the menu.

Examples:
  tetris menu
  tetris menu --fps 60`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard, "tetris")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if err := configureGame(logger); err != nil {
		closeLog()
		fail("%v", err)
	}

	if err := tui.RunSession(runtimeConfig()); err != nil {
		closeLog()
		fail("%v", err)
	}
}
