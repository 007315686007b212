package breakout

import "fmt"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventWallBounce     EventKind = iota // Ball reversed off the top or a side wall
	EventPaddleBounce                    // Ball reversed off the paddle
	EventBallFrozen                      // Ball reached the bottom and stopped
	EventBrickDestroyed                  // A brick was hit and removed
	EventLifeLost                        // A miss cost a life; ball and paddle respawned
	EventWon                             // Every brick destroyed
	EventLost                            // Miss with no lives remaining
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleBounce:
		return "paddle_bounce"
	case EventBallFrozen:
		return "ball_frozen"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is one observable outcome of Session.Step.
type Event struct {
	Kind EventKind
	Wall Wall // EventWallBounce only

	// Row and Col locate the brick for EventBrickDestroyed.
	Row, Col int

	// Score and Lives after the event was applied.
	Score int
	Lives int
}

// String formats the event for logs and test failures.
func (e Event) String() string {
	switch e.Kind {
	case EventWallBounce:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Wall)
	case EventBrickDestroyed:
		return fmt.Sprintf("%s(%d,%d) score=%d", e.Kind, e.Row, e.Col, e.Score)
	case EventLifeLost, EventLost:
		return fmt.Sprintf("%s lives=%d", e.Kind, e.Lives)
	default:
		return e.Kind.String()
	}
}

// Count returns how many events of the given kind are in events.
func Count(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
