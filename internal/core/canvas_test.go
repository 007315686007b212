package core

import (
	"math"
	"testing"
)

func TestPathContains(t *testing.T) {
	tests := []struct {
		name     string
		path     *Path
		x, y     float64
		expected bool
	}{
		{"rect inside", new(Path).Rect(0, 0, 10, 10), 5, 5, true},
		{"rect right edge", new(Path).Rect(0, 0, 10, 10), 10, 5, false},
		{"disc centre", new(Path).Arc(50, 50, 10, 0, 2*math.Pi), 50, 50, true},
		{"disc rim", new(Path).Arc(50, 50, 10, 0, 2*math.Pi), 60, 50, true},
		{"disc outside corner", new(Path).Arc(50, 50, 10, 0, 2*math.Pi), 58, 58, false},
		{"half disc kept side", new(Path).Arc(0, 0, 10, 0, math.Pi), 0, 5, true},
		{"half disc cut side", new(Path).Arc(0, 0, 10, 0, math.Pi), 0, -5, false},
		{"empty rect ignored", new(Path).Rect(0, 0, 0, 10), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.path.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%g, %g) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestPathClose(t *testing.T) {
	p := new(Path)
	if !p.Empty() || p.Closed() {
		t.Fatal("zero path should be empty and open")
	}
	p.Rect(0, 0, 1, 1).Close()
	if p.Empty() || !p.Closed() {
		t.Error("closed rect path should be non-empty and closed")
	}
}

func TestCanvasFill(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, NewRect(0, 0, 10, 10), 100, 100)

	c.Fill(new(Path).Rect(20, 20, 30, 10), Paint{Color: ColorRed})

	for x := 2; x < 5; x++ {
		if cell := s.GetCell(x, 2); cell.Rune != DefaultGlyph || cell.Color != ColorRed {
			t.Errorf("cell (%d, 2) = %+v", x, cell)
		}
	}
	if s.Get(5, 2) != ' ' || s.Get(2, 3) != ' ' {
		t.Error("fill leaked outside the rectangle")
	}
}

func TestCanvasFillSmallShape(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, NewRect(0, 0, 10, 10), 100, 100)

	// Smaller than a cell and covering no cell centre.
	c.Fill(new(Path).Arc(31, 71, 2, 0, 2*math.Pi), Paint{Color: ColorBlue, Glyph: 'o'})

	if cell := s.GetCell(3, 7); cell.Rune != 'o' || cell.Color != ColorBlue {
		t.Errorf("small disc not drawn, cell = %+v", cell)
	}
}

func TestCanvasFillText(t *testing.T) {
	s := NewScreen(20, 5)
	c := NewCanvas(s, NewRect(0, 0, 20, 5), 200, 50)

	c.FillText(10, 8, "Score: 1", ColorBlue)
	if got := s.Row(0)[1:9]; got != "Score: 1" {
		t.Errorf("row 0 = %q", s.Row(0))
	}

	// Runs past the right edge, so it is shifted left.
	c.FillText(190, 8, "Lives: 3", ColorBlue)
	if got := s.Row(0)[12:]; got != "Lives: 3" {
		t.Errorf("row 0 = %q", s.Row(0))
	}

	// Baseline on a row boundary draws on the row above.
	c.FillText(0, 20, "x", ColorWhite)
	if s.Get(0, 1) != 'x' {
		t.Errorf("row 1 = %q", s.Row(1))
	}
}

func TestCanvasOffsetRegion(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewCanvas(s, NewRect(5, 2, 10, 5), 1000, 650)

	if x, y := c.ToCell(0, 0); x != 5 || y != 2 {
		t.Errorf("ToCell(0,0) = (%d,%d), expected (5,2)", x, y)
	}

	tests := []struct {
		col   int
		wantX float64
		ok    bool
	}{
		{5, 50, true},
		{14, 950, true},
		{4, 0, false},
		{15, 0, false},
	}
	for _, tc := range tests {
		x, ok := c.LogicalX(tc.col)
		if ok != tc.ok || (ok && x != tc.wantX) {
			t.Errorf("LogicalX(%d) = %g, %v; expected %g, %v", tc.col, x, ok, tc.wantX, tc.ok)
		}
	}

	c.Clear()
	c.Fill(new(Path).Rect(0, 0, 1000, 650), Paint{Color: ColorGreen})
	if s.Get(4, 2) != ' ' || s.Get(5, 2) != DefaultGlyph || s.Get(14, 6) != DefaultGlyph || s.Get(15, 6) != ' ' {
		t.Errorf("fill not confined to region:\n%s", s.String())
	}
}
