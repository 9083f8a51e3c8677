package main

import (
	"testing"

	"cornersnap/snap"
)

func TestDragGestureClampsFreePosition(t *testing.T) {
	d := newDragGesture(snap.Point{X: 300, Y: 200})
	d.begin(snap.Point{X: 50, Y: 50}, snap.Point{X: 280, Y: 10})
	d.move(snap.Point{X: 150, Y: 20})
	if want := (snap.Point{X: 300, Y: 0}); d.free != want {
		t.Fatalf("free = %+v, want %+v", d.free, want)
	}
}

func TestDragGestureEndReportsRawDistance(t *testing.T) {
	d := newDragGesture(snap.Point{X: 300, Y: 200})
	d.begin(snap.Point{X: 50, Y: 50}, snap.Point{X: 280, Y: 0})
	ev, ok := d.end(snap.Point{X: 150, Y: 40})
	if !ok {
		t.Fatalf("end on an active drag reported nothing")
	}
	if want := (snap.Point{X: 100, Y: -10}); ev.Distance != want {
		t.Fatalf("Distance = %+v, want %+v", ev.Distance, want)
	}
	if want := (snap.Point{X: 300, Y: 0}); ev.FreePosition != want {
		t.Fatalf("FreePosition = %+v, want %+v", ev.FreePosition, want)
	}
	if d.active {
		t.Fatalf("drag still active after end")
	}
	if _, ok := d.end(snap.Point{}); ok {
		t.Fatalf("second end reported a drag")
	}
}

func TestDragGestureVector(t *testing.T) {
	d := newDragGesture(snap.Point{X: 300, Y: 200})
	d.begin(snap.Point{X: 10, Y: 10}, snap.Point{})
	d.move(snap.Point{X: -20, Y: 40})
	if want := (snap.DragVector{DX: -30, DY: 30}); d.vector() != want {
		t.Fatalf("vector = %+v, want %+v", d.vector(), want)
	}
}

func TestDragGestureReset(t *testing.T) {
	d := newDragGesture(snap.Point{X: 300, Y: 200})
	origin := snap.Point{X: 0, Y: 200}
	d.begin(snap.Point{X: 30, Y: 230}, origin)
	d.move(snap.Point{X: 90, Y: 200})
	d.ResetFreePosition()
	if d.active || d.free != origin {
		t.Fatalf("after reset active=%v free=%+v, want inactive at %+v", d.active, d.free, origin)
	}
	d.move(snap.Point{X: 500, Y: 500})
	if d.free != origin {
		t.Fatalf("move after reset changed free to %+v", d.free)
	}
}
