package breakout

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"bricks", "classic"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestGameHints(t *testing.T) {
	tests := []struct {
		name      string
		game      *Game
		fixed     bool
		interval  time.Duration
		pointer   bool
		wantLives bool
	}{
		{"bricks", New(), false, time.Second / 60, true, true},
		{"classic", NewClassic(), true, 10 * time.Millisecond, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.game.Reset(core.DefaultConfig())
			if err := tt.game.ConfigErr(); err != nil {
				t.Fatalf("config: %v", err)
			}

			h := tt.game.Hints()
			if h.FixedInterval != tt.fixed || h.Interval != tt.interval || h.Pointer != tt.pointer {
				t.Errorf("hints = %+v", h)
			}
			if h.KeyHold != 120*time.Millisecond {
				t.Errorf("key hold = %v, want 120ms", h.KeyHold)
			}
			if w, ht := tt.game.Size(); w != 1000 || ht != 650 {
				t.Errorf("size = %gx%g, want 1000x650", w, ht)
			}
			if tt.game.State().HasLives != tt.wantLives {
				t.Errorf("HasLives = %v, want %v", tt.game.State().HasLives, tt.wantLives)
			}
		})
	}
}

func TestGameAnnouncesOutcome(t *testing.T) {
	g := NewClassic()
	g.Reset(core.DefaultConfig())

	dropBall(g.Session())
	if r := g.Step(); r.Announcement != "" {
		t.Fatalf("announcement on freeze: %q", r.Announcement)
	}
	r := g.Step()
	if r.Announcement != LoseMessage || r.State.Outcome != core.OutcomeLost {
		t.Fatalf("result = %+v, want game over", r)
	}
	if r := g.Step(); r.Announcement != "" {
		t.Errorf("announcement repeated: %q", r.Announcement)
	}

	g.Acknowledge()
	if g.State().Over() {
		t.Error("still over after acknowledge")
	}
}

func TestGameAnnouncesWin(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	s := g.Session()
	for row := range s.Grid().Rows {
		for col := range s.Grid().Columns {
			if row+col > 0 {
				s.Grid().At(row, col).Status = BrickDestroyed
				s.score++
			}
		}
	}
	s.ball.X, s.ball.Y, s.ball.DX, s.ball.DY = 105, 65, 0, -5

	r := g.Step()

	if r.Announcement != WinMessage || r.State.Outcome != core.OutcomeWon {
		t.Errorf("result = %+v, want win", r)
	}
}

func TestGameCustomConfigAndPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\npaddle:\n  width: 200\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.DefaultConfig())
	if err := g.ConfigErr(); err != nil {
		t.Fatalf("config: %v", err)
	}
	if g.State().Lives != 7 || g.Session().Paddle().Width() != 200 {
		t.Errorf("custom config not applied: lives=%d width=%g", g.State().Lives, g.Session().Paddle().Width())
	}

	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })
	g.Reset(core.DefaultConfig())
	if g.State().Lives != 2 || g.Session().Paddle().Width() != 150 {
		t.Errorf("hard preset: lives=%d width=%g", g.State().Lives, g.Session().Paddle().Width())
	}
}

func TestGameBadConfigFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("surface:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.DefaultConfig())

	if g.ConfigErr() == nil {
		t.Error("expected config error")
	}
	if w, _ := g.Size(); w != 1000 {
		t.Errorf("fallback width = %g, want 1000", w)
	}
}

func TestGameSetDifficulty(t *testing.T) {
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	if err := g.SetDifficulty("easy"); err != nil {
		t.Fatal(err)
	}
	g.Reset(core.DefaultConfig())
	if g.State().Lives != 5 {
		t.Errorf("instance preset should win over package preset, lives = %d", g.State().Lives)
	}

	other := New()
	other.Reset(core.DefaultConfig())
	if other.State().Lives != 2 {
		t.Errorf("package preset lost, lives = %d", other.State().Lives)
	}

	if err := g.SetDifficulty("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
