package main

import (
	"bytes"
	"log"
	"testing"
	"time"

	"cornersnap/snap"
)

// captureErrorLog sends logError and logWarn output to a buffer for the
// rest of the test.
func captureErrorLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	errorLogOnce.Do(func() {})
	old := errorLogger
	var buf bytes.Buffer
	errorLogger = log.New(&buf, "", 0)
	t.Cleanup(func() { errorLogger = old })
	return &buf
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	withTempDataDir(t)
	gs = gsdef
	g := newGame(darkPalette)
	t.Cleanup(g.close)
	return g
}

func TestLayoutInitializesMetricsOnce(t *testing.T) {
	logs := captureErrorLog(t)
	g := newTestGame(t)

	if w, h := g.Layout(0, 0); w != 0 || h != 0 {
		t.Fatalf("Layout(0, 0) = %d, %d", w, h)
	}
	if g.machine.Ready() || g.metricsTried {
		t.Fatalf("zero-sized layout initialized the machine")
	}

	if w, h := g.Layout(640, 520); w != 640 || h != 520 {
		t.Fatalf("Layout(640, 520) = %d, %d", w, h)
	}
	if !g.machine.Ready() || !g.metricsTried {
		t.Fatalf("first real layout did not initialize the machine")
	}
	if g.drag == nil || len(g.buttons) != 4 {
		t.Fatalf("drag or buttons missing after layout")
	}

	if err := g.machine.SetCorner(snap.BottomRight); err != nil {
		t.Fatal(err)
	}
	g.Layout(800, 600)
	if got := g.machine.State().Corner; got != snap.BottomRight {
		t.Fatalf("second layout reset the corner to %v", got)
	}
	if logs.Len() != 0 {
		t.Fatalf("unexpected errors logged:\n%s", logs.String())
	}
}

func TestLayoutAppliesStartCorner(t *testing.T) {
	g := newTestGame(t)
	gs.StartCorner = "bottom-left"
	g.Layout(640, 520)

	st := g.machine.State()
	if st.Corner != snap.BottomLeft {
		t.Fatalf("corner = %v, want BOTTOM_LEFT", st.Corner)
	}
	cs, _ := g.machine.Corners()
	if want := cs[snap.BottomLeft].Round(); g.view.Rendered() != want {
		t.Fatalf("rendered at %+v, want %+v", g.view.Rendered(), want)
	}
}

func TestDeferredSnapLandsNextFrame(t *testing.T) {
	g := newTestGame(t)
	g.Layout(640, 520)
	now := time.Now()

	press := boundaryOrigin.Add(snap.Point{X: 10, Y: 10})
	g.step(now, func() {
		g.drag.begin(press, g.view.Rendered())
		ev, ok := g.drag.end(press.Add(snap.Point{X: 300, Y: 250}))
		if !ok {
			t.Fatalf("drag end reported nothing")
		}
		if err := g.machine.OnDragEnd(ev, g.drag); err != nil {
			t.Fatal(err)
		}
	})
	if got := g.machine.State().Corner; got != snap.TopLeft {
		t.Fatalf("snapped to %v in the frame the drag ended", got)
	}
	if want := (snap.Point{X: 300, Y: 224}); g.view.Rendered() != want {
		t.Fatalf("element held at %+v, want drop point %+v", g.view.Rendered(), want)
	}

	g.step(now, func() {})
	if got := g.machine.State().Corner; got != snap.BottomRight {
		t.Fatalf("next frame corner = %v, want BOTTOM_RIGHT", got)
	}
	if want := (snap.Point{X: 384, Y: 224}); g.view.Rendered() != want {
		t.Fatalf("rendered at %+v, want %+v", g.view.Rendered(), want)
	}
}

func TestStepSkipsInputBeforeLayout(t *testing.T) {
	g := newTestGame(t)
	called := false
	g.step(time.Now(), func() { called = true })
	if called {
		t.Fatalf("input handled before the machine was ready")
	}
}
