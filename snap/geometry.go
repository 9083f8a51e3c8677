package snap

import "math"

// Point is a pixel offset inside the boundary's local coordinate space.
type Point struct {
	X, Y float64
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height float64
}

// BoundaryMetrics is the size of the confining rectangle.
type BoundaryMetrics Size

// ElementMetrics is the rendered size of the draggable element.
type ElementMetrics Size

// DragVector is the net displacement of one drag gesture.
type DragVector struct {
	DX, DY float64
}

// DragSample is a drag vector together with its length.
type DragSample struct {
	Vector   DragVector
	Distance float64
}

// Sample returns v with its Euclidean length.
func (v DragVector) Sample() DragSample {
	return DragSample{Vector: v, Distance: math.Hypot(v.DX, v.DY)}
}

func (v DragVector) zero() bool { return v.DX == 0 && v.DY == 0 }

func (v DragVector) finite() bool {
	return !math.IsNaN(v.DX) && !math.IsNaN(v.DY) && !math.IsInf(v.DX, 0) && !math.IsInf(v.DY, 0)
}

func pointAdd(a, b Point) Point { return Point{X: a.X + b.X, Y: a.Y + b.Y} }
func pointSub(a, b Point) Point { return Point{X: a.X - b.X, Y: a.Y - b.Y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return pointAdd(p, q) }

// Sub returns p minus q.
func (p Point) Sub(q Point) Point { return pointSub(p, q) }

// Round rounds both coordinates to the nearest integer pixel, halves away
// from zero.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// Clamp limits p to the rectangle [0,limit.X] x [0,limit.Y]. Negative limits
// collapse to zero.
func (p Point) Clamp(limit Point) Point {
	if limit.X < 0 {
		limit.X = 0
	}
	if limit.Y < 0 {
		limit.Y = 0
	}
	p.X = math.Min(math.Max(p.X, 0), limit.X)
	p.Y = math.Min(math.Max(p.Y, 0), limit.Y)
	return p
}

// FreeRange is the furthest point the element's origin can reach while the
// element stays inside the boundary.
func FreeRange(boundary BoundaryMetrics, element ElementMetrics) Point {
	return Point{X: boundary.Width - element.Width, Y: boundary.Height - element.Height}
}

func validSize(w, h float64) bool {
	return w > 0 && h > 0 && !math.IsInf(w, 0) && !math.IsInf(h, 0)
}
