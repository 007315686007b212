// Package tui provides the Bubble Tea host for the breakout variants.
// It handles the terminal UI loop, input translation, and session flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// TickMsg is sent to trigger a game simulation tick. ID names the tick
// loop that produced it so a model ignores ticks from an earlier game.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

var lastTickID atomic.Uint64

// nextTickID returns a fresh tick loop identifier.
func nextTickID() uint64 {
	return lastTickID.Add(1)
}

// tickCmd returns a command that delivers the next tick for the game's
// driver. Fixed-interval games tick on the wall clock; refresh-driven
// games are re-armed a frame after each handled tick.
func tickCmd(id uint64, h core.HostHints) tea.Cmd {
	interval := h.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}
	msg := func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	}
	if h.FixedInterval {
		return tea.Every(interval, msg)
	}
	return tea.Tick(interval, msg)
}
