package grid

import "fmt"

// Point is a 0-indexed cell coordinate, X across and Y down.
type Point struct {
	X, Y int
}

// Step returns the neighbour of p in direction d. The second result is false
// when the neighbour would fall outside the rectangle [0,0]..limit.
func (p Point) Step(d Direction, limit Point) (Point, bool) {
	switch d {
	case Up:
		if p.Y > 0 {
			return Point{p.X, p.Y - 1}, true
		}
	case Down:
		if p.Y < limit.Y {
			return Point{p.X, p.Y + 1}, true
		}
	case Left:
		if p.X > 0 {
			return Point{p.X - 1, p.Y}, true
		}
	case Right:
		if p.X < limit.X {
			return Point{p.X + 1, p.Y}, true
		}
	}
	return Point{}, false
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
