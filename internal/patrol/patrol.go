package patrol

import "patrol/internal/grid"

// Patrol is one simulation: a private copy of the grid and the guard walking it.
type Patrol struct {
	grid  *grid.Grid
	guard Guard
	steps int
	// turns counts ticks in a row spent turning in place.
	turns int
}

// New starts a patrol on a copy of g. The guard faces up on g.Start and that
// cell is already marked visited.
func New(g *grid.Grid) *Patrol {
	p := &Patrol{
		grid:  g.Clone(),
		guard: Guard{Facing: grid.Up, Position: g.Start},
	}
	p.grid.Visit(g.Start, grid.Up)
	return p
}

func (p *Patrol) Grid() *grid.Grid {
	return p.grid
}

func (p *Patrol) Guard() Guard {
	return p.guard
}

// Steps is the number of ticks taken so far.
func (p *Patrol) Steps() int {
	return p.steps
}

// Ahead returns the cell the guard faces, or false at the edge of the grid.
func (p *Patrol) Ahead() (grid.Point, bool) {
	return p.guard.Position.Step(p.guard.Facing, p.grid.Max())
}

// Step advances one tick. ok is false once the guard walks off the grid.
// Facing an obstruction turns the guard in place; turning never reports a
// repeat. Otherwise the guard moves and repeat tells whether it already
// entered that cell with the same heading.
func (p *Patrol) Step() (pos grid.Point, repeat, ok bool) {
	next, ok := p.Ahead()
	if !ok {
		return p.guard.Position, false, false
	}
	p.steps++

	tile := p.grid.At(next)
	if tile.Blocked() {
		p.turns++
		p.guard.Turn()
		p.grid.Visit(p.guard.Position, p.guard.Facing)
		return p.guard.Position, false, true
	}

	p.turns = 0
	repeat = tile.Has(p.guard.Facing)
	p.guard.Position = next
	p.grid.Visit(next, p.guard.Facing)
	return next, repeat, true
}

// Boxed reports whether the guard has turned through all four headings
// without moving, i.e. every neighbour is blocked.
func (p *Patrol) Boxed() bool {
	return p.turns >= len(grid.Directions)
}

// Clone copies the patrol mid-walk; the copy shares nothing with p.
func (p *Patrol) Clone() *Patrol {
	c := *p
	c.grid = p.grid.Clone()
	return &c
}

// branch clones p for a what-if run whose step count starts at zero.
func (p *Patrol) branch() *Patrol {
	c := p.Clone()
	c.steps = 0
	return c
}
