// Package config provides YAML-based session configuration loading and
// difficulty presets for the game variants.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Tick drivers.
const (
	DriverFrame    = "frame"    // Refresh-driven: re-armed after each frame
	DriverInterval = "interval" // Fixed-interval timer
)

// SessionConfig contains everything needed to build a session.
// Both game variants are instances of this one schema.
type SessionConfig struct {
	Surface  SurfaceConfig  `yaml:"surface"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing"`
	Input    InputConfig    `yaml:"input"`
}

// SurfaceConfig is the logical drawing area in surface units.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball's spawn, velocity and size.
type BallConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`
	Radius float64 `yaml:"radius"`

	// RespawnLift is how far above the bottom edge the ball reappears
	// after a lost life. It respawns horizontally centred.
	RespawnLift float64 `yaml:"respawn_lift"`
}

// PaddleConfig defines paddle size and easing.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Per-tick displacement while a key is held
	ReleaseSpeed float64 `yaml:"release_speed"` // Velocity left over when a key is released
	Deceleration float64 `yaml:"deceleration"`  // Velocity removed per tick after release
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// Total returns the number of bricks in the grid, zero when disabled.
func (b BricksConfig) Total() int {
	if !b.Enabled {
		return 0
	}
	return b.Rows * b.Columns
}

// GameplayConfig defines rule toggles.
type GameplayConfig struct {
	// Lives is the starting life count. Zero or less means the variant has
	// no life counter and the first miss ends the session.
	Lives      int  `yaml:"lives"`
	WinEnabled bool `yaml:"win_enabled"`
	Pointer    bool `yaml:"pointer"` // Whether pointer motion moves the paddle

	// CapBrickInversions limits brick hits to one velocity inversion per
	// tick. Off by default: overlapping several bricks in one tick inverts
	// once per brick.
	CapBrickInversions bool `yaml:"cap_brick_inversions"`
}

// HasLives reports whether the variant keeps a life counter.
func (g GameplayConfig) HasLives() bool {
	return g.Lives > 0
}

// TimingConfig selects how the host drives ticks.
type TimingConfig struct {
	Driver     string `yaml:"driver"`      // "frame" or "interval"
	IntervalMS int    `yaml:"interval_ms"` // Interval driver period
	FPS        int    `yaml:"fps"`         // Frame driver rate; 0 uses the host default
}

// Interval returns the tick period for the configured driver.
func (t TimingConfig) Interval(defaultFPS int) time.Duration {
	if t.Driver == DriverInterval && t.IntervalMS > 0 {
		return time.Duration(t.IntervalMS) * time.Millisecond
	}
	fps := t.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// InputConfig tunes host input translation.
type InputConfig struct {
	// KeyHoldMS is how long a direction stays held after its last key
	// repeat when the terminal reports no key-up events.
	KeyHoldMS int `yaml:"key_hold_ms"`
}

// KeyHold returns the key-hold window.
func (i InputConfig) KeyHold() time.Duration {
	if i.KeyHoldMS <= 0 {
		return 120 * time.Millisecond
	}
	return time.Duration(i.KeyHoldMS) * time.Millisecond
}

// Validate reports every problem in the config, joined.
func (c SessionConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		bad("surface must have positive size, got %gx%g", c.Surface.Width, c.Surface.Height)
	}
	if c.Ball.Radius <= 0 {
		bad("ball radius must be positive, got %g", c.Ball.Radius)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		bad("paddle must have positive size, got %gx%g", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Width > c.Surface.Width {
		bad("paddle width %g exceeds surface width %g", c.Paddle.Width, c.Surface.Width)
	}
	if c.Paddle.Speed < 0 || c.Paddle.ReleaseSpeed < 0 || c.Paddle.Deceleration < 0 {
		bad("paddle speeds must not be negative")
	}

	if c.Bricks.Enabled {
		b := c.Bricks
		if b.Rows <= 0 || b.Columns <= 0 {
			bad("brick grid must have rows and columns, got %dx%d", b.Rows, b.Columns)
		}
		if b.Width <= 0 || b.Height <= 0 {
			bad("bricks must have positive size, got %gx%g", b.Width, b.Height)
		}
		right := b.OffsetLeft + float64(b.Columns)*(b.Width+b.Padding) - b.Padding
		if right > c.Surface.Width {
			bad("brick grid is %g wide, surface is %g", right, c.Surface.Width)
		}
	}
	if c.Gameplay.WinEnabled && !c.Bricks.Enabled {
		bad("win condition needs bricks")
	}

	switch c.Timing.Driver {
	case DriverFrame, DriverInterval:
	default:
		bad("unknown driver %q", c.Timing.Driver)
	}

	return errors.Join(errs...)
}
