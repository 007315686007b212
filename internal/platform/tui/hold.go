package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// keyHold synthesizes key-up events for terminals, which only report key
// presses and auto-repeats. A direction counts as held until no repeat has
// arrived for the hold window.
type keyHold struct {
	window   time.Duration
	lastSeen map[core.Direction]time.Time
}

func newKeyHold(window time.Duration) *keyHold {
	return &keyHold{
		window:   window,
		lastSeen: make(map[core.Direction]time.Time, 2),
	}
}

// Press records a press or repeat of dir at now. It returns the events to
// deliver: a key-down when dir was not already held, preceded by a key-up
// for the opposite direction if that was held.
func (h *keyHold) Press(dir core.Direction, now time.Time) []core.InputEvent {
	var events []core.InputEvent

	opposite := core.DirLeft
	if dir == core.DirLeft {
		opposite = core.DirRight
	}
	if _, held := h.lastSeen[opposite]; held {
		delete(h.lastSeen, opposite)
		events = append(events, core.KeyUp(opposite))
	}

	if _, held := h.lastSeen[dir]; !held {
		events = append(events, core.KeyDown(dir))
	}
	h.lastSeen[dir] = now
	return events
}

// Expire releases every direction whose last press is older than the
// window and returns the key-up events for them, left before right.
func (h *keyHold) Expire(now time.Time) []core.InputEvent {
	var events []core.InputEvent
	for _, dir := range []core.Direction{core.DirLeft, core.DirRight} {
		seen, held := h.lastSeen[dir]
		if held && now.Sub(seen) > h.window {
			delete(h.lastSeen, dir)
			events = append(events, core.KeyUp(dir))
		}
	}
	return events
}

// ReleaseAll releases every held direction.
func (h *keyHold) ReleaseAll() []core.InputEvent {
	var events []core.InputEvent
	for _, dir := range []core.Direction{core.DirLeft, core.DirRight} {
		if _, held := h.lastSeen[dir]; held {
			delete(h.lastSeen, dir)
			events = append(events, core.KeyUp(dir))
		}
	}
	return events
}

// Held reports whether dir is currently held.
func (h *keyHold) Held(dir core.Direction) bool {
	_, held := h.lastSeen[dir]
	return held
}
