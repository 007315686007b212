package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Ball represents the ball state in logical surface units.
// The radius is fixed when the ball is created.
type Ball struct {
	X, Y   float64 // Position (center)
	DX, DY float64 // Displacement per tick
	radius float64
}

// NewBall creates a ball at (x, y) moving by (dx, dy) per tick.
func NewBall(x, y, dx, dy, radius float64) Ball {
	return Ball{X: x, Y: y, DX: dx, DY: dy, radius: radius}
}

// Radius returns the ball radius.
func (b Ball) Radius() float64 {
	return b.radius
}

// Bounds returns the ball's bounding box at its current position.
func (b Ball) Bounds() core.Bounds {
	return core.BoundsAround(b.X, b.Y, b.radius)
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Freeze stops the ball in place.
func (b *Ball) Freeze() {
	b.DX = 0
	b.DY = 0
}

// Frozen reports whether the ball has no velocity.
func (b Ball) Frozen() bool {
	return b.DX == 0 && b.DY == 0
}

// Paddle represents the player's paddle. Its row and size are fixed when
// it is created; only X and DX change during play.
type Paddle struct {
	X  float64 // Left edge
	DX float64 // Horizontal velocity

	y      float64
	width  float64
	height float64
}

// NewPaddle creates a paddle with its top edge at y.
func NewPaddle(x, y, width, height float64) Paddle {
	return Paddle{X: x, y: y, width: width, height: height}
}

// Y returns the top edge.
func (p Paddle) Y() float64 {
	return p.y
}

// Width returns the paddle width.
func (p Paddle) Width() float64 {
	return p.width
}

// Height returns the paddle height.
func (p Paddle) Height() float64 {
	return p.height
}

// Right returns the right edge.
func (p Paddle) Right() float64 {
	return p.X + p.width
}

// Bounds returns the paddle's bounding box.
func (p Paddle) Bounds() core.Bounds {
	return core.Bounds{X: p.X, Y: p.y, W: p.width, H: p.height}
}

// ClampTo keeps the paddle inside [0, surfaceW].
func (p *Paddle) ClampTo(surfaceW float64) {
	p.X = core.ClampF(p.X, 0, surfaceW-p.width)
}

// Wall identifies a surface boundary.
type Wall int

const (
	WallNone Wall = iota
	WallTop
	WallSide
	WallBottom
)

// String returns the wall name.
func (w Wall) String() string {
	switch w {
	case WallTop:
		return "top"
	case WallSide:
		return "side"
	case WallBottom:
		return "bottom"
	default:
		return "none"
	}
}

// The collision tests below look one step ahead: they compare the position
// the ball would reach after this tick's integration against each boundary.

// HitsTopWall reports whether the next step would cross the top edge.
func HitsTopWall(b *Ball) bool {
	return b.Y+b.DY < b.radius
}

// HitsSideWall reports whether the next step would cross the left or
// right edge.
func HitsSideWall(b *Ball, surfaceW float64) bool {
	next := b.X + b.DX
	return next+b.radius > surfaceW || next < b.radius
}

// HitsPaddle reports whether the ball is horizontally over the paddle and
// the next step would reach below its top edge. Direction of travel is
// not considered, so a ball already below the top edge keeps re-triggering.
func HitsPaddle(b *Ball, p *Paddle) bool {
	return b.X > p.X &&
		b.X < p.Right() &&
		b.Y+b.DY > p.y-b.radius
}

// HitsBottomWall reports whether the next step would cross the bottom edge.
func HitsBottomWall(b *Ball, surfaceH float64) bool {
	return b.Y+b.DY+b.radius > surfaceH
}

// HitsBrick reports whether the ball's box overlaps an active brick's box.
func HitsBrick(b *Ball, brick *Brick) bool {
	return brick.Active() && b.Bounds().Overlaps(brick.Bounds())
}
