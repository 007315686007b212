package core

import "fmt"

// Action represents a semantic platform action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A, H - paddle left
	ActionRight             // Right arrow, D, L - paddle right
	ActionConfirm           // Enter, Space - confirm selection / dismiss announcement
	ActionBack              // B, Escape - go back to menu
	ActionPause             // P - pause/unpause
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionScreenshot        // Ctrl+S - dump the current frame
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// Direction identifies a horizontal input direction.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionOf maps a paddle action to its direction.
func DirectionOf(a Action) Direction {
	switch a {
	case ActionLeft:
		return DirLeft
	case ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// InputKind distinguishes the discrete events an input source delivers.
type InputKind int

const (
	InputKeyDown InputKind = iota
	InputKeyUp
	InputPointerMove
)

// InputEvent is one discrete event from the host input source.
// Key events carry a Direction, pointer events an absolute X in logical
// surface units.
type InputEvent struct {
	Kind InputKind
	Dir  Direction
	X    float64
}

// KeyDown creates a key-down event for the given direction.
func KeyDown(d Direction) InputEvent {
	return InputEvent{Kind: InputKeyDown, Dir: d}
}

// KeyUp creates a key-up event for the given direction.
func KeyUp(d Direction) InputEvent {
	return InputEvent{Kind: InputKeyUp, Dir: d}
}

// PointerMove creates a pointer-move event at logical x.
func PointerMove(x float64) InputEvent {
	return InputEvent{Kind: InputPointerMove, X: x}
}

// String formats the event for debug logging.
func (e InputEvent) String() string {
	switch e.Kind {
	case InputKeyDown:
		return "keydown(" + e.Dir.String() + ")"
	case InputKeyUp:
		return "keyup(" + e.Dir.String() + ")"
	case InputPointerMove:
		return fmt.Sprintf("pointer(%.1f)", e.X)
	default:
		return "unknown"
	}
}
