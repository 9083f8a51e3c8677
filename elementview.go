package main

import "cornersnap/snap"

// elementView is where the element is drawn when no drag is in progress.
type elementView struct {
	pos snap.Point
}

func (v *elementView) MoveTo(p snap.Point) {
	logDebug("element moved to %.0f,%.0f", p.X, p.Y)
	v.pos = p
}

func (v *elementView) Rendered() snap.Point { return v.pos }
