// Package breakout implements a configurable paddle-and-ball brick breaker.
// A Session owns all entity state and advances it one tick at a time;
// rendering only reads it.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickStatus is whether a brick still takes part in play.
// Active bricks only ever become Destroyed, never the reverse.
type BrickStatus int

const (
	BrickActive BrickStatus = iota
	BrickDestroyed
)

// String returns the status name.
func (s BrickStatus) String() string {
	if s == BrickActive {
		return "active"
	}
	return "destroyed"
}

// Brick is a single grid cell. Position is fixed when the grid is built.
type Brick struct {
	X, Y   float64
	W, H   float64
	Status BrickStatus
}

// Active reports whether the brick still collides and is drawn.
func (b *Brick) Active() bool {
	return b.Status == BrickActive
}

// Bounds returns the brick's bounding box.
func (b *Brick) Bounds() core.Bounds {
	return core.Bounds{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Grid is the fixed rows × columns layout of bricks.
type Grid struct {
	Rows    int
	Columns int
	Bricks  [][]Brick // [row][col]
}

// NewGrid lays out every brick from the config. A disabled config yields
// an empty grid.
func NewGrid(cfg config.BricksConfig) *Grid {
	if !cfg.Enabled || cfg.Rows <= 0 || cfg.Columns <= 0 {
		return &Grid{}
	}

	g := &Grid{
		Rows:    cfg.Rows,
		Columns: cfg.Columns,
		Bricks:  make([][]Brick, cfg.Rows),
	}
	for row := range cfg.Rows {
		g.Bricks[row] = make([]Brick, cfg.Columns)
		for col := range cfg.Columns {
			g.Bricks[row][col] = Brick{
				X:      float64(col)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft,
				Y:      float64(row)*(cfg.Height+cfg.Padding) + cfg.OffsetTop,
				W:      cfg.Width,
				H:      cfg.Height,
				Status: BrickActive,
			}
		}
	}
	return g
}

// Total returns the number of bricks laid out.
func (g *Grid) Total() int {
	return g.Rows * g.Columns
}

// CountActive returns the number of bricks not yet destroyed.
func (g *Grid) CountActive() int {
	count := 0
	for _, row := range g.Bricks {
		for _, b := range row {
			if b.Active() {
				count++
			}
		}
	}
	return count
}

// At returns a pointer to the brick at (row, col), or nil when out of range.
func (g *Grid) At(row, col int) *Brick {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Columns {
		return nil
	}
	return &g.Bricks[row][col]
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		Rows:    g.Rows,
		Columns: g.Columns,
		Bricks:  make([][]Brick, len(g.Bricks)),
	}
	for i, row := range g.Bricks {
		clone.Bricks[i] = make([]Brick, len(row))
		copy(clone.Bricks[i], row)
	}
	return clone
}
