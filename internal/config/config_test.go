package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultsValid(t *testing.T) {
	for _, variant := range []string{VariantBricks, VariantClassic} {
		t.Run(variant, func(t *testing.T) {
			cfg, ok := DefaultConfig(variant)
			if !ok {
				t.Fatalf("no default for %q", variant)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("default invalid: %v", err)
			}
		})
	}

	if _, ok := DefaultConfig("pong"); ok {
		t.Error("unknown variant should have no default")
	}
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	for _, variant := range []string{VariantBricks, VariantClassic} {
		t.Run(variant, func(t *testing.T) {
			want, _ := DefaultConfig(variant)
			got, err := parse(GetDefaultYAML(variant), SessionConfig{})
			if err != nil {
				t.Fatalf("parse embedded: %v", err)
			}
			if got != want {
				t.Errorf("embedded yaml = %+v\nhard-coded = %+v", got, want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SessionConfig)
		wantErr string
	}{
		{"zero surface", func(c *SessionConfig) { c.Surface.Width = 0 }, "surface"},
		{"zero radius", func(c *SessionConfig) { c.Ball.Radius = 0 }, "radius"},
		{"wide paddle", func(c *SessionConfig) { c.Paddle.Width = 2000 }, "exceeds"},
		{"negative speed", func(c *SessionConfig) { c.Paddle.Deceleration = -1 }, "negative"},
		{"grid overflow", func(c *SessionConfig) { c.Bricks.Columns = 7 }, "wide"},
		{"empty grid", func(c *SessionConfig) { c.Bricks.Rows = 0 }, "rows"},
		{"win without bricks", func(c *SessionConfig) { c.Bricks.Enabled = false }, "win"},
		{"bad driver", func(c *SessionConfig) { c.Timing.Driver = "vsync" }, "driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBricksConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultBricksConfig()
	cfg.Ball.Radius = 0
	cfg.Timing.Driver = ""

	err := cfg.Validate()
	if err == nil || strings.Count(err.Error(), "\n") != 1 {
		t.Errorf("expected two joined errors, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	data := "ball:\n  dx: 3\ngameplay:\n  cap_brick_inversions: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantBricks, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ball.DX != 3 || !cfg.Gameplay.CapBrickInversions {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Fields the file omits keep their defaults.
	if cfg.Ball.DY != 5 || cfg.Gameplay.Lives != 3 {
		t.Errorf("defaults lost: dy=%g lives=%d", cfg.Ball.DY, cfg.Gameplay.Lives)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	garbled := filepath.Join(dir, "garbled.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(garbled, []byte("ball: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(invalid, []byte("ball:\n  radius: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		variant string
		path    string
		isValid bool // errors.Is(err, ErrInvalidConfig)
	}{
		{"missing file", VariantBricks, filepath.Join(dir, "nope.yaml"), false},
		{"garbled file", VariantBricks, garbled, false},
		{"invalid values", VariantBricks, invalid, true},
		{"unknown variant", "tetris", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.variant, tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrInvalidConfig) != tt.isValid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v for %v", !tt.isValid, err)
			}
		})
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("paddle:\n  width: 120\n")
	if err := os.WriteFile(filepath.Join(dir, "configs", "classic.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)

	cfg, err := Load(VariantClassic, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paddle.Width != 120 {
		t.Errorf("paddle width = %g, want 120 from ./configs", cfg.Paddle.Width)
	}
	if cfg.Bricks.Enabled {
		t.Error("classic variant should keep bricks disabled")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := DefaultClassicConfig()
	data, err := Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := parse(data, SessionConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestTiming(t *testing.T) {
	tests := []struct {
		name   string
		timing TimingConfig
		fps    int
		want   time.Duration
	}{
		{"interval", TimingConfig{Driver: DriverInterval, IntervalMS: 10}, 60, 10 * time.Millisecond},
		{"frame fps", TimingConfig{Driver: DriverFrame, FPS: 30}, 60, time.Second / 30},
		{"frame host default", TimingConfig{Driver: DriverFrame}, 50, time.Second / 50},
		{"frame fallback", TimingConfig{Driver: DriverFrame}, 0, time.Second / 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.timing.Interval(tt.fps); got != tt.want {
				t.Errorf("Interval() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := (InputConfig{}).KeyHold(); got != 120*time.Millisecond {
		t.Errorf("default key hold = %v", got)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name      string
		base      SessionConfig
		preset    DifficultyPreset
		lives     int
		paddleW   float64
		ballSpeed float64
	}{
		{"easy", DefaultBricksConfig(), DifficultyEasy, 5, 200, 4},
		{"normal", DefaultBricksConfig(), DifficultyNormal, 3, 150, 5},
		{"hard", DefaultBricksConfig(), DifficultyHard, 2, 112.5, 7},
		{"hard classic keeps no lives", DefaultClassicConfig(), DifficultyHard, 0, 112.5, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.base
			ApplyPreset(&cfg, tt.preset)
			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("lives = %d, want %d", cfg.Gameplay.Lives, tt.lives)
			}
			if cfg.Paddle.Width != tt.paddleW {
				t.Errorf("paddle width = %g, want %g", cfg.Paddle.Width, tt.paddleW)
			}
			if cfg.Ball.DX != tt.ballSpeed || cfg.Ball.DY != tt.ballSpeed {
				t.Errorf("ball velocity = (%g,%g), want %g", cfg.Ball.DX, cfg.Ball.DY, tt.ballSpeed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q): %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestPresetLabel(t *testing.T) {
	if got := DifficultyPreset("").Label(); got != "default" {
		t.Errorf("empty label = %q", got)
	}
	if got := DifficultyHard.Label(); got != "hard" {
		t.Errorf("hard label = %q", got)
	}
}
