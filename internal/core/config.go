package core

import "time"

// RuntimeConfig contains host parameters passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Ticks per second for refresh-driven variants (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Outcome is the terminal result of a session.
type Outcome int

const (
	OutcomeNone Outcome = iota // Session still in play
	OutcomeWon                 // Every brick destroyed
	OutcomeLost                // Last life lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// GameState is the summary a game reports to the platform after each tick.
type GameState struct {
	Score    int
	Lives    int
	HasLives bool    // Whether the variant keeps a life counter
	Ticks    uint64  // Ticks since the last reset
	Outcome  Outcome // Non-none once the session reached a terminal state
}

// Over reports whether the session is waiting for acknowledgement.
func (s GameState) Over() bool {
	return s.Outcome != OutcomeNone
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState

	// Announcement is set on the tick the session reaches a terminal
	// state and carries the message the host should show the player.
	Announcement string
}

// HostHints tell the platform how a game wants to be driven.
type HostHints struct {
	// Interval selects a fixed-interval timer; otherwise ticks are
	// refresh-driven at Interval and re-armed after each frame.
	FixedInterval bool
	Interval      time.Duration

	// KeyHold is how long a direction stays held without a key repeat
	// before the host reports it released.
	KeyHold time.Duration

	// Pointer reports whether pointer motion should be forwarded.
	Pointer bool
}
