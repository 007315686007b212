package config

import (
	_ "embed"
)

// Variant identifiers. Each has an embedded default YAML.
const (
	VariantBricks  = "bricks"
	VariantClassic = "classic"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// DefaultBricksConfig returns the hard-coded brick-grid configuration.
func DefaultBricksConfig() SessionConfig {
	return SessionConfig{
		Surface: SurfaceConfig{Width: 1000, Height: 650},
		Ball: BallConfig{
			X:           100,
			Y:           400,
			DX:          5,
			DY:          5,
			Radius:      10,
			RespawnLift: 30,
		},
		Paddle: PaddleConfig{
			Width:        150,
			Height:       20,
			Speed:        10,
			ReleaseSpeed: 2,
			Deceleration: 0.1,
		},
		Bricks: BricksConfig{
			Enabled:    true,
			Rows:       6,
			Columns:    6,
			Width:      150,
			Height:     30,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			WinEnabled: true,
			Pointer:    true,
		},
		Timing: TimingConfig{
			Driver: DriverFrame,
			FPS:    60,
		},
		Input: InputConfig{KeyHoldMS: 120},
	}
}

// DefaultClassicConfig returns the hard-coded paddle-only configuration.
func DefaultClassicConfig() SessionConfig {
	cfg := DefaultBricksConfig()
	cfg.Bricks = BricksConfig{}
	cfg.Gameplay = GameplayConfig{}
	cfg.Timing = TimingConfig{
		Driver:     DriverInterval,
		IntervalMS: 10,
	}
	return cfg
}

// DefaultConfig returns the hard-coded configuration for a variant.
func DefaultConfig(variant string) (SessionConfig, bool) {
	switch variant {
	case VariantBricks:
		return DefaultBricksConfig(), true
	case VariantClassic:
		return DefaultClassicConfig(), true
	default:
		return SessionConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantBricks:
		return defaultBricksYAML
	case VariantClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}
