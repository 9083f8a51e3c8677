package snap

// Direction is one of the eight test drags used by the acceptance table.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
	DirDownRight
	DirDownLeft
	DirUpRight
	DirUpLeft
)

// AllDirections lists the directions in table column order.
var AllDirections = [8]Direction{
	DirRight, DirDown, DirLeft, DirUp,
	DirDownRight, DirDownLeft, DirUpRight, DirUpLeft,
}

var directionNames = [8]string{
	"RIGHT", "DOWN", "LEFT", "UP",
	"DOWN_RIGHT", "DOWN_LEFT", "UP_RIGHT", "UP_LEFT",
}

var directionVectors = [8]DragVector{
	{100, 0}, {0, 100}, {-100, 0}, {0, -100},
	{100, 100}, {-100, 100}, {100, -100}, {-100, -100},
}

func (d Direction) String() string {
	if d < DirRight || d > DirUpLeft {
		return "INVALID"
	}
	return directionNames[d]
}

// Vector is the pointer displacement for d.
func (d Direction) Vector() DragVector {
	if d < DirRight || d > DirUpLeft {
		return DragVector{}
	}
	return directionVectors[d]
}

// AcceptanceTable holds the expected resting corner for every start corner
// and direction with prediction enabled and a drag longer than the threshold.
var AcceptanceTable = [4][8]CornerID{
	TopLeft:     {TopRight, BottomLeft, TopLeft, TopLeft, BottomRight, BottomLeft, TopRight, TopLeft},
	TopRight:    {TopRight, BottomRight, TopLeft, TopRight, BottomRight, BottomLeft, TopRight, TopLeft},
	BottomLeft:  {BottomRight, BottomLeft, TopLeft, TopLeft, BottomRight, BottomLeft, TopRight, TopLeft},
	BottomRight: {BottomRight, BottomRight, BottomLeft, TopRight, BottomRight, BottomLeft, TopRight, TopLeft},
}

// Expected returns the table entry for start and d. Invalid input yields an
// invalid CornerID.
func Expected(start CornerID, d Direction) CornerID {
	if !start.Valid() || d < DirRight || d > DirUpLeft {
		return -1
	}
	return AcceptanceTable[start][d]
}

// DragFrom builds the drag end a gesture would report for a drag of v that
// starts with the element resting at start: the free position is the start
// point moved by v and clamped to the boundary.
func DragFrom(cs CornerSet, start CornerID, v DragVector, boundary BoundaryMetrics, element ElementMetrics) DragEnd {
	origin := cs[start]
	free := origin.Add(Point{X: v.DX, Y: v.DY}).Clamp(FreeRange(boundary, element))
	return DragEnd{Distance: Point{X: v.DX, Y: v.DY}, FreePosition: free}
}
