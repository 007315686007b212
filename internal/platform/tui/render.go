package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256-color codes
// closest to the canvas colours).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("32")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("157")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("174")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawBanner draws a boxed, centred message over the screen.
func drawBanner(s *core.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 6
	h := 5
	if subtitle == "" {
		h = 3
	}
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			s.SetCell(x, y, core.Cell{Rune: ' ', Color: core.ColorWhite})
		}
	}
	s.DrawBox(box)
	s.DrawTextCentered(box.Y+1, title, core.ColorWhite)
	if subtitle != "" {
		s.DrawTextCentered(box.Y+3, subtitle, core.ColorGray)
	}
}
