package main

import (
	"strings"
	"testing"
	"time"

	"cornersnap/snap"
)

func TestFormatDelay(t *testing.T) {
	got := formatDelay(50 * time.Millisecond)
	if !strings.Contains(got, "50") || !strings.Contains(got, "ms") {
		t.Fatalf("formatDelay(50ms) = %q", got)
	}
}

func TestHUDLines(t *testing.T) {
	st := snap.State{
		Corner:   snap.BottomRight,
		Position: snap.Point{X: 384, Y: 224},
		LastDrag: snap.DragVector{DX: 100, DY: 100}.Sample(),
	}
	opts := snap.DefaultOptions()
	opts.PredictionEnabled = true
	cs := snap.ComputeCorners(snap.BoundaryMetrics{Width: 480, Height: 320}, snap.ElementMetrics{Width: 96, Height: 96})
	lines := hudLines(st, opts, cs, snap.Point{X: 384, Y: 224})
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"BOTTOM_RIGHT (384, 224)", "Drawn at: BOTTOM_RIGHT", "141.4 px", "diagonal", "Prediction: on, from 10 px"} {
		if !strings.Contains(joined, want) {
			t.Errorf("HUD missing %q:\n%s", want, joined)
		}
	}

	lines = hudLines(snap.State{}, snap.Options{}, cs, snap.Point{X: 200, Y: 100})
	joined = strings.Join(lines, "\n")
	for _, want := range []string{"Last drag: none", "quadrant snapping", "200, 100 (between corners)"} {
		if !strings.Contains(joined, want) {
			t.Errorf("HUD missing %q:\n%s", want, joined)
		}
	}
}
