package field

import "fmt"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// offsets lists the 8-neighbourhood of a cell.
var offsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// eachNeighbor calls fn for every neighbour of p that lies on the grid.
// Edges and corners have fewer neighbours; there is no wraparound.
func (f *Field) eachNeighbor(p Point, fn func(Point)) {
	for _, o := range offsets {
		n := Point{p.X + o.X, p.Y + o.Y}
		if f.Contains(n.X, n.Y) {
			fn(n)
		}
	}
}
