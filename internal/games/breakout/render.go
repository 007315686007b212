package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	BallGlyph   = '●'
	PaddleGlyph = '▀'
	BrickGlyph  = '█'
)

// brickColors cycle by row.
var brickColors = []core.Color{core.ColorRed, core.ColorGreen, core.ColorYellow}

// BrickColor returns the colour of bricks in the given row.
func BrickColor(row int) core.Color {
	return brickColors[row%len(brickColors)]
}

// HUD text positions, in logical units from the top-left and top-right.
const (
	hudInsetLeft  = 8
	hudInsetRight = 65
	hudBaseline   = 20
)

// Render draws the session onto dst. It reads state only.
// Draw order: bricks, ball, paddle, then the HUD on top.
func Render(s *Session, dst core.Surface) {
	dst.Clear()
	w, _ := dst.Size()

	g := s.Grid()
	for row := range g.Rows {
		for col := range g.Columns {
			b := &g.Bricks[row][col]
			if !b.Active() {
				continue
			}
			p := new(core.Path).Rect(b.X, b.Y, b.W, b.H).Close()
			dst.Fill(p, core.Paint{Color: BrickColor(row), Glyph: BrickGlyph})
		}
	}

	ball := s.Ball()
	dst.Fill(
		new(core.Path).Arc(ball.X, ball.Y, ball.Radius(), 0, 2*math.Pi).Close(),
		core.Paint{Color: core.ColorBlue, Glyph: BallGlyph},
	)

	paddle := s.Paddle()
	dst.Fill(
		new(core.Path).Rect(paddle.X, paddle.Y(), paddle.Width(), paddle.Height()).Close(),
		core.Paint{Color: core.ColorBlue, Glyph: PaddleGlyph},
	)

	dst.FillText(hudInsetLeft, hudBaseline, fmt.Sprintf("Score: %d", s.Score()), core.ColorBlue)
	if s.HasLives() {
		dst.FillText(w-hudInsetRight, hudBaseline, fmt.Sprintf("Lives: %d", s.Lives()), core.ColorBlue)
	}
}
