package main

import (
	"errors"
	"fmt"
	"time"

	"cornersnap/snap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	clipboard "golang.design/x/clipboard"
)

// boundaryOrigin is where the boundary's top-left corner sits on screen.
var boundaryOrigin = snap.Point{X: 24, Y: 24}

// clipboardReady is set by main once clipboard.Init succeeds.
var clipboardReady bool

// Game runs one boundary with one draggable element.
type Game struct {
	sched   *snap.LoopScheduler
	machine *snap.Machine
	view    *elementView
	drag    *dragGesture
	buttons []cornerButton
	pal     palette

	metricsTried bool
}

func newGame(pal palette) *Game {
	sched := snap.NewLoopScheduler(nil)
	g := &Game{
		sched:   sched,
		machine: snap.NewMachine(snapOptions(), sched),
		view:    &elementView{},
		pal:     pal,
	}
	g.machine.AttachRenderer(g.view)
	g.machine.Subscribe(g.onSnapEvent)
	return g
}

// initMetrics hands the boundary and element sizes to the machine. It runs
// once, on the first layout with a real window size.
func (g *Game) initMetrics() {
	g.metricsTried = true
	b, e := boundaryMetrics(), elementMetrics()
	if err := g.machine.Init(b, e); err != nil {
		logError("init metrics: %v", err)
		return
	}
	g.drag = newDragGesture(snap.FreeRange(b, e))
	g.buttons = layoutButtons(boundaryOrigin.X, boundaryOrigin.Y+b.Height+16)
	logDebug("metrics boundary=%vx%v element=%vx%v", b.Width, b.Height, e.Width, e.Height)

	if c, ok := startCorner(); ok && c != snap.TopLeft {
		if err := g.machine.SetCorner(c); err != nil {
			logError("start corner: %v", err)
		}
	}
}

func (g *Game) onSnapEvent(ev snap.Event) {
	switch ev.Type {
	case snap.EventDragRecorded:
		// Hold the element where it was dropped until the snap lands.
		g.view.MoveTo(ev.State.Position)
	case snap.EventSnapped, snap.EventCornerSet:
		logDebug("%v -> %v", ev.Type, ev.State.Corner)
	}
}

func (g *Game) Update() error {
	g.step(time.Now(), g.handleInput)
	return nil
}

// step advances one frame. Work deferred during the previous frame runs
// before this frame's input, so a deferred snap lands one frame after the
// drag ends.
func (g *Game) step(now time.Time, input func()) {
	g.sched.Run(now)
	if g.machine.Ready() {
		input()
	}
}

func (g *Game) handleInput() {
	touch.update(ebiten.AppendTouchIDs(nil), inpututil.AppendJustPressedTouchIDs(nil), ebiten.TouchPosition)
	g.handlePointer()
	g.handleKeys()
}

func (g *Game) handlePointer() {
	x, y := pointerPosition()
	p := snap.Point{X: float64(x), Y: float64(y)}

	switch {
	case pointerJustPressed():
		if b, ok := buttonAt(g.buttons, p.X, p.Y); ok {
			g.setCorner(b.corner)
			return
		}
		if g.elementRect().contains(p.X, p.Y) {
			g.drag.begin(p, g.view.Rendered())
		}
	case g.drag.active && pointerPressed():
		g.drag.move(p)
	case g.drag.active:
		rx, ry := releasePosition()
		ev, ok := g.drag.end(snap.Point{X: float64(rx), Y: float64(ry)})
		if !ok {
			return
		}
		if err := g.machine.OnDragEnd(ev, g.drag); err != nil {
			logError("drag end: %v", err)
		}
	}
}

func (g *Game) handleKeys() {
	if c, ok := pressedCornerKey(g.buttons); ok {
		g.setCorner(c)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.drag.active {
		g.drag.cancel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyState()
	}
}

func (g *Game) setCorner(c snap.CornerID) {
	if g.drag.active {
		g.drag.cancel()
	}
	if err := g.machine.SetCorner(c); err != nil && !errors.Is(err, snap.ErrInvalidCorner) {
		logError("set corner: %v", err)
	}
}

// copyState puts the resting corner and its position on the clipboard.
func (g *Game) copyState() {
	if !clipboardReady {
		return
	}
	st := g.machine.State()
	s := fmt.Sprintf("%v %.0f,%.0f", st.Corner, st.Position.X, st.Position.Y)
	clipboard.Write(clipboard.FmtText, []byte(s))
	logDebug("copied %q", s)
}

// elementPos is the element's position in boundary space for this frame.
func (g *Game) elementPos() snap.Point {
	if g.drag != nil && g.drag.active {
		return g.drag.free
	}
	return g.view.Rendered()
}

func (g *Game) elementRect() screenRect {
	p := g.elementPos().Add(boundaryOrigin)
	return screenRect{X0: p.X, Y0: p.Y, X1: p.X + gs.ElementWidth, Y1: p.Y + gs.ElementHeight}
}

// previewCorner is where the element would rest if released now.
func (g *Game) previewCorner() (snap.CornerID, bool) {
	if g.drag == nil || !g.drag.active {
		return 0, false
	}
	v := g.drag.vector()
	return snap.Predict(snap.PredictInput{
		Current:  g.machine.State().Corner,
		Live:     g.drag.free,
		Vector:   v,
		Distance: v.Sample().Distance,
		Boundary: boundaryMetrics(),
	}, g.machine.Options()), true
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.metricsTried && outsideWidth > 0 && outsideHeight > 0 {
		g.initMetrics()
	}
	return outsideWidth, outsideHeight
}

// close stops deferred snap work before the window goes away.
func (g *Game) close() {
	g.machine.Close()
	g.sched.Close()
}
