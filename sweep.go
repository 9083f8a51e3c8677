package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"cornersnap/snap"

	"github.com/remeh/sizedwaitgroup"
)

type sweepResult struct {
	Start    snap.CornerID
	Dir      snap.Direction
	Got      snap.CornerID
	Want     snap.CornerID
	Position snap.Point
	Err      error
}

func (r sweepResult) passed() bool {
	return r.Err == nil && r.Got == r.Want
}

// sweepGesture counts resets so a case can check the drag source was
// re-anchored.
type sweepGesture struct{ resets int }

func (g *sweepGesture) ResetFreePosition() { g.resets++ }

// runSweepCase drives a fresh machine from start through one drag in dir.
func runSweepCase(opts snap.Options, b snap.BoundaryMetrics, e snap.ElementMetrics, start snap.CornerID, dir snap.Direction) sweepResult {
	res := sweepResult{Start: start, Dir: dir, Want: snap.Expected(start, dir)}

	now := time.Unix(0, 0)
	sched := snap.NewLoopScheduler(func() time.Time { return now })
	m := snap.NewMachine(opts, sched)
	defer m.Close()
	view := &elementView{}
	m.AttachRenderer(view)

	if err := m.Init(b, e); err != nil {
		res.Err = err
		return res
	}
	if err := m.SetCorner(start); err != nil {
		res.Err = err
		return res
	}
	now = now.Add(time.Second)
	sched.Run(now)

	cs, _ := m.Corners()
	ev := snap.DragFrom(cs, start, dir.Vector(), b, e)
	g := &sweepGesture{}
	if err := m.OnDragEnd(ev, g); err != nil {
		res.Err = err
		return res
	}
	sched.Run(now)

	st := m.State()
	res.Got = st.Corner
	res.Position = view.Rendered()
	switch {
	case g.resets != 1:
		res.Err = fmt.Errorf("gesture reset %d times", g.resets)
	case res.Position != cs[st.Corner].Round():
		res.Err = fmt.Errorf("rendered at %.1f,%.1f, not on %v", res.Position.X, res.Position.Y, st.Corner)
	}
	return res
}

// runSweep checks every start corner and direction of the acceptance table.
// Prediction is forced on; the other options and the metrics come from the
// caller.
func runSweep(opts snap.Options, b snap.BoundaryMetrics, e snap.ElementMetrics) []sweepResult {
	opts.PredictionEnabled = true
	results := make([]sweepResult, 0, len(snap.AllCorners)*len(snap.AllDirections))
	for _, start := range snap.AllCorners {
		for _, dir := range snap.AllDirections {
			results = append(results, sweepResult{Start: start, Dir: dir})
		}
	}

	wg := sizedwaitgroup.New(runtime.NumCPU())
	for i := range results {
		wg.Add()
		go func(i int) {
			defer wg.Done()
			results[i] = runSweepCase(opts, b, e, results[i].Start, results[i].Dir)
		}(i)
	}
	wg.Wait()
	return results
}

// writeSweepReport prints one line per case and a summary. It returns the
// number of failed cases.
func writeSweepReport(w io.Writer, b snap.BoundaryMetrics, e snap.ElementMetrics, results []sweepResult) int {
	fmt.Fprintf(w, "=== CORNER SWEEP ===\n")
	fmt.Fprintf(w, "Boundary: %vx%v\n", b.Width, b.Height)
	fmt.Fprintf(w, "Element: %vx%v\n", e.Width, e.Height)

	failed := 0
	var last snap.CornerID = -1
	for _, r := range results {
		if r.Start != last {
			fmt.Fprintf(w, "\n=== From %v ===\n", r.Start)
			last = r.Start
		}
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(w, "FAIL: %v %v: %v\n", r.Start, r.Dir, r.Err)
		case r.passed():
			fmt.Fprintf(w, "PASS: %v %v -> %v\n", r.Start, r.Dir, r.Got)
		default:
			failed++
			fmt.Fprintf(w, "FAIL: %v %v -> %v (expected %v)\n", r.Start, r.Dir, r.Got, r.Want)
		}
	}

	total := len(results)
	pct := 0
	if total > 0 {
		pct = (total - failed) * 100 / total
	}
	fmt.Fprintf(w, "\nPassed: %d/%d (%d%%)\n", total-failed, total, pct)
	return failed
}
