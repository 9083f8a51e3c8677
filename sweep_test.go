package main

import (
	"bytes"
	"strings"
	"testing"

	"cornersnap/snap"
)

func TestSweepDefaultMetricsAllPass(t *testing.T) {
	b := snap.BoundaryMetrics{Width: gsdef.BoundaryWidth, Height: gsdef.BoundaryHeight}
	e := snap.ElementMetrics{Width: gsdef.ElementWidth, Height: gsdef.ElementHeight}
	results := runSweep(snap.DefaultOptions(), b, e)
	if len(results) != 32 {
		t.Fatalf("got %d results, want 32", len(results))
	}
	for _, r := range results {
		if !r.passed() {
			t.Errorf("%v %v: got %v want %v err %v", r.Start, r.Dir, r.Got, r.Want, r.Err)
		}
	}

	var buf bytes.Buffer
	if failed := writeSweepReport(&buf, b, e, results); failed != 0 {
		t.Fatalf("report counted %d failures", failed)
	}
	if !strings.Contains(buf.String(), "Passed: 32/32 (100%)") {
		t.Fatalf("summary missing from report:\n%s", buf.String())
	}
}

func TestSweepForcesPrediction(t *testing.T) {
	opts := snap.DefaultOptions()
	opts.PredictionEnabled = false
	b := snap.BoundaryMetrics{Width: 400, Height: 300}
	e := snap.ElementMetrics{Width: 100, Height: 100}
	for _, r := range runSweep(opts, b, e) {
		if !r.passed() {
			t.Fatalf("%v %v: got %v want %v", r.Start, r.Dir, r.Got, r.Want)
		}
	}
}

func TestSweepReportCountsFailures(t *testing.T) {
	results := []sweepResult{
		{Start: snap.TopLeft, Dir: snap.DirRight, Got: snap.TopRight, Want: snap.TopRight},
		{Start: snap.TopLeft, Dir: snap.DirDown, Got: snap.TopLeft, Want: snap.BottomLeft},
		{Start: snap.BottomRight, Dir: snap.DirUp, Err: snap.ErrNotReady},
	}
	var buf bytes.Buffer
	failed := writeSweepReport(&buf, snap.BoundaryMetrics{Width: 1, Height: 1}, snap.ElementMetrics{Width: 1, Height: 1}, results)
	if failed != 2 {
		t.Fatalf("failed = %d, want 2", failed)
	}
	out := buf.String()
	for _, want := range []string{"PASS: TOP_LEFT", "expected BOTTOM_LEFT", "=== From BOTTOM_RIGHT ===", "Passed: 1/3 (33%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
