package snap

import "math"

// Movement classifies a drag vector by its dominant direction.
type Movement int

const (
	Still Movement = iota
	Diagonal
	Horizontal
	Vertical
)

func (m Movement) String() string {
	switch m {
	case Diagonal:
		return "diagonal"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "still"
	}
}

// PredictInput is everything the predictor looks at for one drag end.
type PredictInput struct {
	Current  CornerID
	Live     Point
	Vector   DragVector
	Distance float64
	Boundary BoundaryMetrics
}

// halfWedges maps each 45 degree slice, starting at 0 and turning clockwise
// in screen space, to its corner.
var halfWedges = [8]CornerID{
	BottomRight, BottomRight,
	BottomLeft, BottomLeft,
	TopLeft, TopLeft,
	TopRight, TopRight,
}

// Predict picks the corner the element should come to rest in.
//
// The quadrant of the live position decides unless prediction is enabled and
// the drag covered at least the threshold distance. Otherwise the drag vector
// decides: diagonal drags by angle, straight drags by the sign of the
// dominant axis and the half of the boundary the element is in.
func Predict(in PredictInput, opts Options) CornerID {
	v := in.Vector
	if !opts.PredictionEnabled || in.Distance < opts.PredictionThreshold || v.zero() || !v.finite() {
		return QuadrantCorner(in.Live, in.Boundary)
	}

	right := in.Live.X >= in.Boundary.Width/2
	bottom := in.Live.Y >= in.Boundary.Height/2

	switch Classify(v) {
	case Diagonal:
		return CornerForAngle(angleOf(v))
	case Horizontal:
		if v.DX > 0 {
			return cornerFor(true, bottom)
		}
		// Leftward from bottom-left always promotes to top-left.
		if in.Current == BottomLeft {
			return TopLeft
		}
		return cornerFor(false, bottom)
	default:
		if v.DY > 0 {
			return cornerFor(right, true)
		}
		return cornerFor(right, false)
	}
}

// QuadrantCorner returns the corner of the boundary quadrant that contains p.
// Points on a midpoint belong to the right or bottom half.
func QuadrantCorner(p Point, boundary BoundaryMetrics) CornerID {
	return cornerFor(p.X >= boundary.Width/2, p.Y >= boundary.Height/2)
}

// Classify reports whether v is diagonal, mostly horizontal or mostly
// vertical. A ratio |dx|/|dy| within [0.5, 2] counts as diagonal.
func Classify(v DragVector) Movement {
	if v.zero() {
		return Still
	}
	ratio := math.Abs(v.DX) / math.Max(math.Abs(v.DY), ratioEpsilon)
	switch {
	case ratio >= diagonalMinRatio && ratio <= diagonalMaxRatio:
		return Diagonal
	case math.Abs(v.DX) > math.Abs(v.DY):
		return Horizontal
	default:
		return Vertical
	}
}

// CornerForAngle maps an angle in degrees (y grows downward) to a corner
// using the eight half-wedge table. Any angle is accepted and normalized to
// [0, 360) first.
func CornerForAngle(deg float64) CornerID {
	deg = normalizeDegrees(deg)
	i := int(deg / 45)
	if i < 0 || i >= len(halfWedges) {
		i = 0
	}
	return halfWedges[i]
}

func angleOf(v DragVector) float64 {
	return normalizeDegrees(math.Atan2(v.DY, v.DX) * 180 / math.Pi)
}

func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
