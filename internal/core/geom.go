// Package core provides fundamental types and utilities shared by the game
// logic and the platform layer. It has no external dependencies (especially
// no Bubble Tea) so the session update step stays pure and testable.
package core

// Rect is an integer, cell-space rectangle used for screen layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Bounds is an axis-aligned bounding box in logical surface units.
type Bounds struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// BoundsAround returns the box enclosing a circle of radius r at (cx, cy).
func BoundsAround(cx, cy, r float64) Bounds {
	return Bounds{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}
}

// Right returns the x-coordinate of the right edge.
func (b Bounds) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Bounds) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether two boxes share interior area.
// Touching edges do not count as overlap.
func (b Bounds) Overlaps(other Bounds) bool {
	return b.Right() > other.X &&
		b.X < other.Right() &&
		b.Bottom() > other.Y &&
		b.Y < other.Bottom()
}

// Contains reports whether the point lies inside the box (edges inclusive
// on the top/left, exclusive on the bottom/right).
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
