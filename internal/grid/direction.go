package grid

// Direction is one of the four headings. Each heading owns a distinct bit so a
// set of headings fits in a Tile's mask.
type Direction uint8

const (
	Up    Direction = 1
	Down  Direction = 2
	Left  Direction = 4
	Right Direction = 8
)

// Directions lists every heading in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Turn returns the heading 90 degrees clockwise from d.
func (d Direction) Turn() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	}
	panic("grid: invalid direction " + d.String())
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}
