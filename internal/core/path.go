package core

import "math"

type shapeKind int

const (
	shapeRect shapeKind = iota
	shapeArc
)

// shape is one sub-path: an axis-aligned rectangle or a circular sector.
type shape struct {
	kind       shapeKind
	x, y, w, h float64 // rect
	cx, cy, r  float64 // arc
	start, end float64 // arc angles in radians
}

// contains reports whether the point lies inside the shape.
func (s shape) contains(px, py float64) bool {
	switch s.kind {
	case shapeRect:
		return px >= s.x && px < s.x+s.w && py >= s.y && py < s.y+s.h
	case shapeArc:
		dx, dy := px-s.cx, py-s.cy
		if dx*dx+dy*dy > s.r*s.r {
			return false
		}
		if s.end-s.start >= 2*math.Pi {
			return true
		}
		a := math.Atan2(dy, dx)
		for a < s.start {
			a += 2 * math.Pi
		}
		return a <= s.end
	}
	return false
}

// bounds returns the shape's bounding box.
func (s shape) bounds() Bounds {
	if s.kind == shapeArc {
		return BoundsAround(s.cx, s.cy, s.r)
	}
	return Bounds{X: s.x, Y: s.y, W: s.w, H: s.h}
}

// center returns a point that is always inside a non-empty shape.
func (s shape) center() (float64, float64) {
	if s.kind == shapeArc {
		return s.cx, s.cy
	}
	return s.x + s.w/2, s.y + s.h/2
}

// Path accumulates filled sub-paths in logical surface units.
// The zero value is an empty, open path.
type Path struct {
	shapes []shape
	closed bool
}

// Rect adds an axis-aligned rectangle sub-path.
func (p *Path) Rect(x, y, w, h float64) *Path {
	if w > 0 && h > 0 {
		p.shapes = append(p.shapes, shape{kind: shapeRect, x: x, y: y, w: w, h: h})
	}
	return p
}

// Arc adds a filled circular sector centred on (cx, cy) from startAngle to
// endAngle (radians, clockwise in screen space). A span of 2π or more is a
// full disc.
func (p *Path) Arc(cx, cy, r, startAngle, endAngle float64) *Path {
	if r > 0 {
		p.shapes = append(p.shapes, shape{
			kind: shapeArc, cx: cx, cy: cy, r: r,
			start: startAngle, end: endAngle,
		})
	}
	return p
}

// Close marks the path complete. Further sub-paths may still be added;
// the flag only records that construction reached its end.
func (p *Path) Close() *Path {
	p.closed = true
	return p
}

// Closed reports whether Close was called.
func (p *Path) Closed() bool {
	return p.closed
}

// Empty reports whether the path has no fillable area.
func (p *Path) Empty() bool {
	return len(p.shapes) == 0
}

// Contains reports whether the point lies inside any sub-path.
func (p *Path) Contains(x, y float64) bool {
	for _, s := range p.shapes {
		if s.contains(x, y) {
			return true
		}
	}
	return false
}
