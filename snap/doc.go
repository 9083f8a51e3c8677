// Package snap resolves which corner of a rectangular boundary a dragged
// element should rest in.
//
// ComputeCorners turns the boundary and element sizes into the four target
// points. Predict maps a finished drag to a corner, either by the quadrant the
// element was released in or, when prediction is enabled and the drag was long
// enough, by the drag's direction. Machine holds the resting corner, applies
// Predict after every drag and lets callers jump straight to a corner.
//
// Machine never runs work on its own goroutine. Deferred steps go through a
// Scheduler, normally a LoopScheduler drained once per frame:
//
//	sched := snap.NewLoopScheduler(nil)
//	m := snap.NewMachine(snap.DefaultOptions(), sched)
//	m.Init(snap.BoundaryMetrics{Width: 400, Height: 300}, snap.ElementMetrics{Width: 100, Height: 100})
//	m.OnDragEnd(ev, gesture)
//	sched.Run(time.Now()) // next frame: the element snaps
package snap
