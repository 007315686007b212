package core

import "math"

// Paint describes how a filled path appears on a cell surface.
type Paint struct {
	Color Color
	Glyph rune // Zero means a solid block
}

// DefaultGlyph is used for fills that do not name a glyph.
const DefaultGlyph = '█'

// Surface is the 2D drawing context a game renders into.
// Coordinates are logical units; the surface owns the mapping to pixels
// or cells. Drawing never feeds back into game state.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h float64)

	// Clear erases the whole drawing area.
	Clear()

	// Fill paints every sub-path of p.
	Fill(p *Path, paint Paint)

	// FillText draws text with its baseline-left corner at (x, y).
	FillText(x, y float64, text string, c Color)
}

// Canvas is a Surface backed by a region of a Screen. Logical units are
// scaled independently on each axis to fit the region.
type Canvas struct {
	screen *Screen
	region Rect
	w, h   float64
}

// NewCanvas maps a logical w×h surface onto the given screen region.
func NewCanvas(screen *Screen, region Rect, w, h float64) *Canvas {
	return &Canvas{screen: screen, region: region, w: w, h: h}
}

// Size returns the logical dimensions.
func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

// Region returns the screen cells covered by the canvas.
func (c *Canvas) Region() Rect {
	return c.region
}

// Clear blanks every cell in the region.
func (c *Canvas) Clear() {
	c.screen.DrawRect(c.region, ' ')
}

// cellW and cellH return the logical size of one cell.
func (c *Canvas) cellW() float64 { return c.w / float64(c.region.W) }
func (c *Canvas) cellH() float64 { return c.h / float64(c.region.H) }

// ToCell maps a logical point to the cell that contains it.
func (c *Canvas) ToCell(x, y float64) (int, int) {
	cx := c.region.X + int(math.Floor(x/c.cellW()))
	cy := c.region.Y + int(math.Floor(y/c.cellH()))
	return cx, cy
}

// LogicalX maps a screen column to the logical X of that column's centre.
// ok is false when the column lies outside the canvas.
func (c *Canvas) LogicalX(col int) (x float64, ok bool) {
	if c.region.W <= 0 || col < c.region.X || col >= c.region.Right() {
		return 0, false
	}
	return (float64(col-c.region.X) + 0.5) * c.cellW(), true
}

// Fill paints each cell whose centre falls inside the path. Sub-paths
// smaller than a cell still paint the cell holding their centre, so small
// objects never vanish between cell centres.
func (c *Canvas) Fill(p *Path, paint Paint) {
	if p == nil || p.Empty() || c.region.W <= 0 || c.region.H <= 0 {
		return
	}
	glyph := paint.Glyph
	if glyph == 0 {
		glyph = DefaultGlyph
	}
	cell := Cell{Rune: glyph, Color: paint.Color}
	cw, ch := c.cellW(), c.cellH()

	for _, s := range p.shapes {
		b := s.bounds()
		x0, y0 := c.ToCell(b.X, b.Y)
		x1, y1 := c.ToCell(b.Right(), b.Bottom())
		x0, x1 = max(x0, c.region.X), min(x1, c.region.Right()-1)
		y0, y1 = max(y0, c.region.Y), min(y1, c.region.Bottom()-1)

		painted := false
		for cy := y0; cy <= y1; cy++ {
			ly := (float64(cy-c.region.Y) + 0.5) * ch
			for cx := x0; cx <= x1; cx++ {
				lx := (float64(cx-c.region.X) + 0.5) * cw
				if s.contains(lx, ly) {
					c.screen.SetCell(cx, cy, cell)
					painted = true
				}
			}
		}

		if !painted {
			px, py := s.center()
			cx, cy := c.ToCell(px, py)
			if c.region.Contains(cx, cy) {
				c.screen.SetCell(cx, cy, cell)
			}
		}
	}
}

// FillText draws text on the row containing the baseline point. Text that
// would run past the right edge is shifted left to stay inside the region.
func (c *Canvas) FillText(x, y float64, text string, col Color) {
	if c.region.W <= 0 || c.region.H <= 0 {
		return
	}
	cx, cy := c.ToCell(x, y)
	// The baseline sits at the bottom of the glyph; use the row above when
	// the baseline falls exactly on a row boundary.
	if y > 0 && math.Mod(y, c.cellH()) == 0 {
		cy--
	}
	n := len([]rune(text))
	if cx+n > c.region.Right() {
		cx = c.region.Right() - n
	}
	cx = max(cx, c.region.X)
	cy = Clamp(cy, c.region.Y, c.region.Bottom()-1)
	c.screen.DrawText(cx, cy, text, col)
}

var _ Surface = (*Canvas)(nil)
