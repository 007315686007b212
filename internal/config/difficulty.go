package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string is accepted and
// means "leave the config alone".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// presetTuning is what a preset changes relative to the loaded config.
type presetTuning struct {
	lives      int     // Replaces the life count when the variant has one
	paddleW    float64 // Paddle width multiplier
	ballFactor float64 // Ball velocity multiplier
}

var presets = map[DifficultyPreset]presetTuning{
	DifficultyEasy: {lives: 5, paddleW: 4.0 / 3.0, ballFactor: 0.8},
	DifficultyHard: {lives: 2, paddleW: 0.75, ballFactor: 1.4},
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal (and the empty preset) keep the config as loaded. Variants
// without a life counter keep having none.
func ApplyPreset(cfg *SessionConfig, preset DifficultyPreset) {
	t, ok := presets[preset]
	if !ok {
		return
	}
	if cfg.Gameplay.HasLives() {
		cfg.Gameplay.Lives = t.lives
	}
	cfg.Paddle.Width = min(cfg.Paddle.Width*t.paddleW, cfg.Surface.Width)
	cfg.Ball.DX *= t.ballFactor
	cfg.Ball.DY *= t.ballFactor
}

// Label returns the display name, "default" for the empty preset.
func (p DifficultyPreset) Label() string {
	if p == "" {
		return "default"
	}
	return string(p)
}
