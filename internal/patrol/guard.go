package patrol

import (
	"fmt"

	"patrol/internal/grid"
)

// Guard is the patrolling agent: where it stands and which way it faces.
type Guard struct {
	Facing   grid.Direction
	Position grid.Point
}

func (g *Guard) Turn() {
	g.Facing = g.Facing.Turn()
}

// Symbol is the character used to draw the guard.
func (g Guard) Symbol() byte {
	switch g.Facing {
	case grid.Down:
		return 'v'
	case grid.Left:
		return '<'
	case grid.Right:
		return '>'
	default:
		return '^'
	}
}

func (g Guard) String() string {
	return fmt.Sprintf("%v facing %s", g.Position, g.Facing)
}
