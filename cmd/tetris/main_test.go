package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// withFlags restores the global flags and the game package settings, and
// hides any user or working-directory config.
func withFlags(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	cfgPath, difficulty, logFile, logLevel := flagConfig, flagDifficulty, flagLogFile, flagLogLevel
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagLogFile, flagLogLevel = cfgPath, difficulty, logFile, logLevel
		tetris.SetConfigPath("")
		tetris.SetDifficultyPreset(config.DifficultyFixed)
		tetris.SetLogger(nil)
	})
}

func TestConfigureGameReportsErrors(t *testing.T) {
	tests := []struct {
		name       string
		config     string
		difficulty string
		wantErr    string
	}{
		{"unknown difficulty", "", "extreme", "unknown difficulty"},
		{"missing config file", filepath.Join(t.TempDir(), "nope.yaml"), "", "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t)
			flagConfig = tt.config
			flagDifficulty = tt.difficulty

			err := configureGame(nil)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("configureGame() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewLoggerClosesLogFile(t *testing.T) {
	withFlags(t)
	flagLogFile = filepath.Join(t.TempDir(), "tetris.log")
	flagLogLevel = "debug"

	logger, closeLog, err := newLogger(io.Discard, "tetris")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if err := configureGame(logger); err != nil {
		t.Fatalf("configureGame() error = %v", err)
	}
	logger.Info("before close")
	closeLog()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "before close") {
		t.Errorf("log file = %q, want the logged line", data)
	}

	// Writes after close are dropped by the closed file.
	logger.Info("after close")
	data, _ = os.ReadFile(flagLogFile)
	if strings.Contains(string(data), "after close") {
		t.Error("log file still open after closer ran")
	}
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	withFlags(t)
	flagLogLevel = "loud"

	if _, _, err := newLogger(io.Discard, "tetris"); err == nil {
		t.Error("newLogger() accepted an unknown level")
	}
}
