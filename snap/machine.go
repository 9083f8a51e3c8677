package snap

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// State is the machine's view of where the element rests.
type State struct {
	// Corner is the authoritative resting corner.
	Corner CornerID
	// LastFree is the free-drag position reported by the last drag end.
	LastFree Point
	// Position is where the element should be drawn.
	Position Point
	// LastDrag is the vector and distance of the last completed drag.
	LastDrag DragSample
}

// DragEnd is what the drag gesture reports on release. Distance holds the raw
// pointer displacement, FreePosition the clamped element origin.
type DragEnd struct {
	Distance     Point
	FreePosition Point
}

// Renderer draws the element. Rendered reports the position currently on
// screen, which may differ from the last MoveTo if something else moved it.
type Renderer interface {
	MoveTo(p Point)
	Rendered() Point
}

// Gesture is the drag source. ResetFreePosition re-anchors it to the origin
// it had before the drag so offsets do not accumulate across gestures.
type Gesture interface {
	ResetFreePosition()
}

// Machine owns the snap state for one boundary and element pair. It is not
// safe for concurrent use; call it from the UI loop that drains its
// Scheduler.
type Machine struct {
	opts   Options
	sched  Scheduler
	render Renderer
	warnf  func(string, ...any)

	ready    bool
	closed   bool
	boundary BoundaryMetrics
	element  ElementMetrics
	corners  CornerSet
	state    State

	subs       subscribers
	taskSeq    uint64
	pending    map[uint64]Cancel
	verifyTask uint64
	driftLog   *rate.Limiter
}

// NewMachine creates an uninitialized machine. Nothing can be snapped until
// Init supplies the metrics.
func NewMachine(opts Options, sched Scheduler) *Machine {
	if sched == nil {
		panic("snap: nil scheduler")
	}
	return &Machine{
		opts:     opts,
		sched:    sched,
		warnf:    opts.warnf(),
		pending:  make(map[uint64]Cancel),
		driftLog: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// AttachRenderer sets the collaborator that draws the element.
func (m *Machine) AttachRenderer(r Renderer) {
	m.render = r
	if m.ready && r != nil {
		r.MoveTo(m.state.Position)
	}
}

// Init captures the metrics, computes the corner set and rests the element
// at the top-left corner. It succeeds at most once.
func (m *Machine) Init(boundary BoundaryMetrics, element ElementMetrics) error {
	if m.closed {
		return ErrClosed
	}
	if m.ready {
		return ErrAlreadyInitialized
	}
	if !validSize(boundary.Width, boundary.Height) || !validSize(element.Width, element.Height) {
		return fmt.Errorf("%w: boundary %vx%v, element %vx%v", ErrInvalidMetrics,
			boundary.Width, boundary.Height, element.Width, element.Height)
	}
	m.boundary = boundary
	m.element = element
	m.corners = ComputeCorners(boundary, element)
	m.ready = true

	origin := m.corners[TopLeft]
	m.state = State{Corner: TopLeft, LastFree: origin, Position: origin}
	if m.render != nil {
		m.render.MoveTo(origin)
	}
	m.emit(EventInit)
	return nil
}

// OnDragEnd records a finished drag and snaps on the next turn of the loop.
// The gesture is reset immediately, before the corner is resolved.
func (m *Machine) OnDragEnd(ev DragEnd, g Gesture) error {
	if m.closed {
		return ErrClosed
	}
	if !m.ready {
		return ErrNotReady
	}
	m.cancelVerify()

	m.state.LastFree = ev.FreePosition
	m.state.Position = ev.FreePosition
	m.state.LastDrag = DragVector{DX: ev.Distance.X, DY: ev.Distance.Y}.Sample()
	if g != nil {
		g.ResetFreePosition()
	}
	m.emit(EventDragRecorded)

	m.schedule(m.sched.Defer, func() {
		id := Predict(PredictInput{
			Current:  m.state.Corner,
			Live:     m.state.LastFree,
			Vector:   m.state.LastDrag.Vector,
			Distance: m.state.LastDrag.Distance,
			Boundary: m.boundary,
		}, m.opts)
		m.apply(id, EventSnapped)
	})
	return nil
}

// SetCorner moves the element straight to id. Invalid ids are logged and
// ignored.
func (m *Machine) SetCorner(id CornerID) error {
	if m.closed {
		return ErrClosed
	}
	if !id.Valid() {
		m.warnf("snap: invalid corner %d", int(id))
		return fmt.Errorf("%w: %d", ErrInvalidCorner, int(id))
	}
	if !m.ready {
		return ErrNotReady
	}
	m.apply(id, EventCornerSet)
	return nil
}

func (m *Machine) apply(id CornerID, typ EventType) {
	target, _ := m.corners.Point(id)
	target = target.Round()
	m.cancelVerify()
	m.state.Corner = id
	m.state.Position = target
	if m.render != nil {
		m.render.MoveTo(target)
	}
	m.emit(typ)

	delay := m.opts.verifyDelay()
	m.verifyTask = m.schedule(func(fn func()) Cancel {
		return m.sched.After(delay, fn)
	}, func() {
		m.verifyTask = 0
		m.verify(id, target)
	})
}

// verify re-applies target if the state or the rendered element moved away
// from it after it was set.
func (m *Machine) verify(id CornerID, target Point) {
	drifted := m.state.Position != target
	if m.render != nil && m.render.Rendered() != target {
		drifted = true
	}
	if !drifted {
		return
	}
	if m.driftLog.Allow() {
		m.warnf("snap: position correction needed for %v", id)
	}
	m.state.Corner = id
	m.state.Position = target
	if m.render != nil {
		m.render.MoveTo(target)
	}
	m.emit(EventDriftCorrected)
}

// schedule queues fn through add and tracks it so Close can cancel it. The
// returned id is zero when fn already ran synchronously.
func (m *Machine) schedule(add func(func()) Cancel, fn func()) uint64 {
	m.taskSeq++
	id := m.taskSeq
	ran := false
	c := add(func() {
		ran = true
		delete(m.pending, id)
		if m.closed {
			return
		}
		fn()
	})
	if ran {
		return 0
	}
	m.pending[id] = c
	return id
}

func (m *Machine) cancelVerify() {
	if m.verifyTask == 0 {
		return
	}
	if c, ok := m.pending[m.verifyTask]; ok {
		c()
		delete(m.pending, m.verifyTask)
	}
	m.verifyTask = 0
}

// Close cancels deferred work. The machine ignores every later call.
func (m *Machine) Close() {
	if m.closed {
		return
	}
	m.closed = true
	for id, c := range m.pending {
		c()
		delete(m.pending, id)
	}
	m.verifyTask = 0
	m.subs.list = nil
}

// Subscribe registers fn for every state change.
func (m *Machine) Subscribe(fn func(Event)) Unsubscribe {
	return m.subs.add(fn)
}

func (m *Machine) emit(typ EventType) {
	m.subs.emit(Event{Type: typ, State: m.state})
}

// State returns a copy of the current state.
func (m *Machine) State() State { return m.state }

// Ready reports whether Init has succeeded.
func (m *Machine) Ready() bool { return m.ready }

// Corners returns the corner set once metrics are known.
func (m *Machine) Corners() (CornerSet, bool) {
	return m.corners, m.ready
}

// Metrics returns the captured boundary and element sizes.
func (m *Machine) Metrics() (BoundaryMetrics, ElementMetrics, bool) {
	return m.boundary, m.element, m.ready
}

// Options returns the options the machine was created with.
func (m *Machine) Options() Options { return m.opts }
