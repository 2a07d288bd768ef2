// Package tui provides the Bubble Tea integration for the tetris platform.
// It handles the terminal UI loop, key mapping, and session orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// maxTickDelta caps the time fed to a game after a stall (a suspended
// terminal, a slow SSH link), so gravity never makes up for lost time.
const maxTickDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick. Source names the game
// model that scheduled it; other models ignore it.
type TickMsg struct {
	At     time.Time
	Source uint64
}

// lastModelID numbers game models so a tick scheduled by a model that has
// since been left cannot drive its successor.
var lastModelID atomic.Uint64

func nextModelID() uint64 {
	return lastModelID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message for the
// given model after the configured interval.
func tickCmd(cfg core.RuntimeConfig, source uint64) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Source: source}
	})
}

// tickDelta returns the game time between two ticks. The first tick of a
// session uses the nominal interval.
func tickDelta(last, now time.Time, nominal time.Duration) time.Duration {
	if last.IsZero() {
		return nominal
	}
	dt := now.Sub(last)
	switch {
	case dt < 0:
		return 0
	case dt > maxTickDelta:
		return maxTickDelta
	}
	return dt
}
