package core

// Color is a fill colour for surface drawing and screen cells.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the game. The names follow the canvas colours the
// bricks, ball, paddle and HUD were drawn with.
const (
	ColorDefault Color = iota
	ColorBlue          // ball, paddle, HUD text
	ColorGreen         // brick rows 1, 4, ...
	ColorRed           // brick rows 0, 3, ...
	ColorYellow        // brick rows 2, 5, ...
	ColorWhite
	ColorGray
)

// String returns the palette name.
func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
