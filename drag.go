package main

import "cornersnap/snap"

// dragGesture tracks one press-move-release on the element. Positions are in
// the boundary's local space; pointer coordinates are in screen space.
type dragGesture struct {
	active bool
	// press is the screen point where the drag started.
	press snap.Point
	// pointer is the latest screen point seen during the drag.
	pointer snap.Point
	// origin is the element position before the drag.
	origin snap.Point
	// free is the element position the gesture currently proposes.
	free snap.Point
	// limit is the furthest position the element may reach.
	limit snap.Point
}

func newDragGesture(limit snap.Point) *dragGesture {
	return &dragGesture{limit: limit}
}

// begin starts a drag at screen point p with the element resting at origin.
func (d *dragGesture) begin(p, origin snap.Point) {
	d.active = true
	d.press = p
	d.pointer = p
	d.origin = origin
	d.free = origin
}

// move updates the free position for the pointer at screen point p.
func (d *dragGesture) move(p snap.Point) {
	if !d.active {
		return
	}
	d.pointer = p
	d.free = d.origin.Add(p.Sub(d.press)).Clamp(d.limit)
}

// vector is the pointer movement so far.
func (d *dragGesture) vector() snap.DragVector {
	v := d.pointer.Sub(d.press)
	return snap.DragVector{DX: v.X, DY: v.Y}
}

// end finishes the drag at screen point p. The distance is the raw pointer
// movement; only the free position is clamped.
func (d *dragGesture) end(p snap.Point) (snap.DragEnd, bool) {
	if !d.active {
		return snap.DragEnd{}, false
	}
	d.move(p)
	d.active = false
	return snap.DragEnd{Distance: p.Sub(d.press), FreePosition: d.free}, true
}

// ResetFreePosition drops the drag offset so the next gesture starts from
// the pre-drag origin.
func (d *dragGesture) ResetFreePosition() {
	d.active = false
	d.free = d.origin
}

// cancel abandons a drag without reporting it.
func (d *dragGesture) cancel() {
	d.ResetFreePosition()
}
