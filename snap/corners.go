package snap

// CornerSet holds the absolute origin the element takes at each corner,
// indexed by CornerID.
type CornerSet [4]Point

// ComputeCorners derives the four corner points from the boundary and element
// sizes. It is a pure function of its arguments.
func ComputeCorners(boundary BoundaryMetrics, element ElementMetrics) CornerSet {
	far := FreeRange(boundary, element)
	var cs CornerSet
	cs[TopLeft] = Point{X: 0, Y: 0}
	cs[TopRight] = Point{X: far.X, Y: 0}
	cs[BottomLeft] = Point{X: 0, Y: far.Y}
	cs[BottomRight] = Point{X: far.X, Y: far.Y}
	return cs
}

// Point returns the origin for id. Invalid ids yield the zero point and false.
func (cs CornerSet) Point(id CornerID) (Point, bool) {
	if !id.Valid() {
		return Point{}, false
	}
	return cs[id], true
}

// CornerAt maps a corner point back to its id. Both the exact point and its
// pixel-rounded form match. Points that match no corner resolve to
// BottomRight with ok set to false.
func (cs CornerSet) CornerAt(p Point) (id CornerID, ok bool) {
	for _, c := range AllCorners {
		if cs[c] == p || cs[c].Round() == p {
			return c, true
		}
	}
	return BottomRight, false
}
