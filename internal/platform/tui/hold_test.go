package tui

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestKeyHoldPressAndRepeat(t *testing.T) {
	h := newKeyHold(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	got := h.Press(core.DirLeft, t0)
	if !slices.Equal(got, []core.InputEvent{core.KeyDown(core.DirLeft)}) {
		t.Fatalf("first press = %v", got)
	}

	// Auto-repeat keeps the key held without another key-down.
	if got := h.Press(core.DirLeft, t0.Add(30*time.Millisecond)); len(got) != 0 {
		t.Errorf("repeat = %v, want no events", got)
	}
	if got := h.Expire(t0.Add(120 * time.Millisecond)); len(got) != 0 {
		t.Errorf("expire inside window = %v", got)
	}

	got = h.Expire(t0.Add(131 * time.Millisecond))
	if !slices.Equal(got, []core.InputEvent{core.KeyUp(core.DirLeft)}) {
		t.Errorf("expire after window = %v", got)
	}
	if h.Held(core.DirLeft) {
		t.Error("left still held after expiry")
	}
}

func TestKeyHoldOppositeReleases(t *testing.T) {
	h := newKeyHold(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.DirRight, t0)
	got := h.Press(core.DirLeft, t0.Add(10*time.Millisecond))

	want := []core.InputEvent{core.KeyUp(core.DirRight), core.KeyDown(core.DirLeft)}
	if !slices.Equal(got, want) {
		t.Errorf("opposite press = %v, want %v", got, want)
	}
	if h.Held(core.DirRight) || !h.Held(core.DirLeft) {
		t.Error("only left should be held")
	}
}

func TestKeyHoldReleaseAll(t *testing.T) {
	h := newKeyHold(time.Second)
	h.Press(core.DirLeft, time.Unix(0, 0))

	if got := h.ReleaseAll(); !slices.Equal(got, []core.InputEvent{core.KeyUp(core.DirLeft)}) {
		t.Errorf("ReleaseAll = %v", got)
	}
	if got := h.ReleaseAll(); len(got) != 0 {
		t.Errorf("second ReleaseAll = %v, want none", got)
	}
}
