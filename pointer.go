package main

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// touchTracker follows the first finger of a touch gesture. Fingers that land
// while it is down are ignored until it lifts.
type touchTracker struct {
	id     ebiten.TouchID
	active bool
	// pressed and released describe the current frame only.
	pressed  bool
	released bool
	x, y     int
}

// touch is fed once per frame from Game.Update.
var touch touchTracker

// update advances the tracker by one frame. ids are the touches currently
// down, justPressed those that went down this frame.
func (t *touchTracker) update(ids, justPressed []ebiten.TouchID, pos func(ebiten.TouchID) (int, int)) {
	t.pressed, t.released = false, false
	if t.active {
		if slices.Contains(ids, t.id) {
			t.x, t.y = pos(t.id)
			return
		}
		// ebiten stops reporting the position once the finger lifts, so the
		// last seen position stands in for the release point.
		t.active = false
		t.released = true
		return
	}
	if len(justPressed) > 0 {
		t.id = justPressed[0]
		t.active = true
		t.pressed = true
		t.x, t.y = pos(t.id)
	}
}

// pointerPosition returns the current pointer position in screen pixels.
// The primary touch wins over the mouse cursor.
func pointerPosition() (int, int) {
	if touch.active || touch.released {
		return touch.x, touch.y
	}
	return ebiten.CursorPosition()
}

// pointerJustPressed reports whether the primary pointer went down this frame.
func pointerJustPressed() bool {
	if touch.pressed {
		return true
	}
	if touch.active || touch.released {
		return false
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)
}

// pointerPressed reports whether the primary pointer is held.
func pointerPressed() bool {
	if touch.active {
		return true
	}
	if touch.released {
		return false
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButton0)
}

// releasePosition returns where the pointer was released.
func releasePosition() (int, int) {
	if touch.released {
		return touch.x, touch.y
	}
	return ebiten.CursorPosition()
}
