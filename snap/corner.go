package snap

import "strings"

// CornerID names one of the four resting positions of the draggable element.
type CornerID int

const (
	TopLeft CornerID = iota
	TopRight
	BottomLeft
	BottomRight
)

// AllCorners lists the corners in declaration order.
var AllCorners = [4]CornerID{TopLeft, TopRight, BottomLeft, BottomRight}

var cornerNames = [4]string{"TOP_LEFT", "TOP_RIGHT", "BOTTOM_LEFT", "BOTTOM_RIGHT"}

// Valid reports whether c is one of the four corners.
func (c CornerID) Valid() bool {
	return c >= TopLeft && c <= BottomRight
}

func (c CornerID) String() string {
	if !c.Valid() {
		return "INVALID"
	}
	return cornerNames[c]
}

// Right reports whether the corner sits on the right edge.
func (c CornerID) Right() bool { return c == TopRight || c == BottomRight }

// Bottom reports whether the corner sits on the bottom edge.
func (c CornerID) Bottom() bool { return c == BottomLeft || c == BottomRight }

// ParseCorner accepts the upper snake case names (TOP_LEFT) as well as
// lower case and space or dash separated forms ("top left", "top-left").
func ParseCorner(s string) (CornerID, bool) {
	n := strings.ToUpper(strings.TrimSpace(s))
	n = strings.NewReplacer(" ", "_", "-", "_").Replace(n)
	for i, name := range cornerNames {
		if name == n {
			return CornerID(i), true
		}
	}
	return -1, false
}

func cornerFor(right, bottom bool) CornerID {
	switch {
	case !right && !bottom:
		return TopLeft
	case right && !bottom:
		return TopRight
	case !right && bottom:
		return BottomLeft
	default:
		return BottomRight
	}
}
