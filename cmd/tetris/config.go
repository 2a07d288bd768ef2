package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would use, after the search order
(--config, ~/.tetris/configs, ./configs, built-in default) and the
difficulty preset are applied.

Examples:
  tetris config > ~/.tetris/configs/tetris.yaml
  tetris config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := tetris.LoadConfig(flagConfig, preset)
	if err != nil {
		fail("%v", err)
	}
	if err := tetris.RulesFromConfig(cfg).Validate(); err != nil {
		fail("%v", err)
	}

	out, err := config.MarshalTetris(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(out))
}
