package breakout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// recorder is a Surface that logs every call.
type recorder struct {
	w, h  float64
	calls []string
	fills []core.Paint
	texts []string
}

func (r *recorder) Size() (float64, float64) { return r.w, r.h }

func (r *recorder) Clear() { r.calls = append(r.calls, "clear") }

func (r *recorder) Fill(_ *core.Path, paint core.Paint) {
	r.calls = append(r.calls, "fill")
	r.fills = append(r.fills, paint)
}

func (r *recorder) FillText(_, _ float64, text string, _ core.Color) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, text)
}

func TestRenderOrder(t *testing.T) {
	s := NewSession(config.DefaultBricksConfig())
	s.Grid().At(0, 0).Status = BrickDestroyed
	rec := &recorder{w: 1000, h: 650}

	Render(s, rec)

	if rec.calls[0] != "clear" {
		t.Fatalf("first call = %s, want clear", rec.calls[0])
	}
	// 35 bricks, ball, paddle.
	if len(rec.fills) != 37 {
		t.Fatalf("fills = %d, want 37", len(rec.fills))
	}
	if rec.fills[0].Color != core.ColorRed || rec.fills[5].Color != core.ColorGreen {
		t.Errorf("row colours = %s,%s, want red,green", rec.fills[0].Color, rec.fills[5].Color)
	}
	if ball := rec.fills[35]; ball.Glyph != BallGlyph || ball.Color != core.ColorBlue {
		t.Errorf("ball paint = %+v", ball)
	}
	if paddle := rec.fills[36]; paddle.Glyph != PaddleGlyph {
		t.Errorf("paddle paint = %+v", paddle)
	}
	if len(rec.texts) != 2 || rec.texts[0] != "Score: 0" || rec.texts[1] != "Lives: 3" {
		t.Errorf("hud = %v", rec.texts)
	}
	if last := rec.calls[len(rec.calls)-1]; last != "text" {
		t.Errorf("hud drawn before %s", last)
	}
}

func TestRenderClassicHUD(t *testing.T) {
	s := NewSession(config.DefaultClassicConfig())
	rec := &recorder{w: 1000, h: 650}

	Render(s, rec)

	if len(rec.fills) != 2 {
		t.Errorf("fills = %d, want ball and paddle only", len(rec.fills))
	}
	if len(rec.texts) != 1 || rec.texts[0] != "Score: 0" {
		t.Errorf("hud = %v, want score only", rec.texts)
	}
}

func TestBrickColor(t *testing.T) {
	want := []core.Color{core.ColorRed, core.ColorGreen, core.ColorYellow, core.ColorRed}
	for row, c := range want {
		if got := BrickColor(row); got != c {
			t.Errorf("BrickColor(%d) = %s, want %s", row, got, c)
		}
	}
}

func TestRenderToCanvas(t *testing.T) {
	s := NewSession(config.DefaultBricksConfig())
	screen := core.NewScreen(80, 26)
	canvas := core.NewCanvas(screen, core.NewRect(0, 0, 80, 26), 1000, 650)

	Render(s, canvas)

	top := screen.Row(0)
	if !strings.HasPrefix(top, "Score: 0") {
		t.Errorf("top row = %q, want score at left", top)
	}
	if !strings.HasSuffix(strings.TrimRight(top, " "), "Lives: 3") {
		t.Errorf("top row = %q, want lives at right", top)
	}

	// Ball at (100, 400) lands in column 8, row 16.
	if c := screen.GetCell(8, 16); c.Rune != BallGlyph {
		t.Errorf("ball cell = %q, want %q", c.Rune, BallGlyph)
	}
	// Paddle spans x 425..575 on the bottom row.
	if c := screen.GetCell(40, 25); c.Rune != PaddleGlyph || c.Color != core.ColorBlue {
		t.Errorf("paddle cell = %+v", c)
	}
	// Brick (1,0) covers row 3.
	if c := screen.GetCell(5, 3); c.Rune != BrickGlyph || c.Color != core.ColorGreen {
		t.Errorf("brick cell = %+v", c)
	}
}
