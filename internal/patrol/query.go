package patrol

import (
	"context"

	"patrol/internal/grid"
)

// CountVisited runs the unmodified patrol off the grid and counts the
// distinct cells the guard stood on.
func CountVisited(g *grid.Grid) (int, error) {
	p := New(g)
	if p.Run() == Looped {
		return 0, ErrNoExit
	}
	return p.grid.CountVisited(), nil
}

// CountLoops counts the obstruction placements that trap the guard.
func CountLoops(ctx context.Context, g *grid.Grid) (int, error) {
	res, err := NewSearcher(0, nil).Search(ctx, g)
	if err != nil {
		return 0, err
	}
	return res.Loops, nil
}
