package patrol

import (
	"bufio"
	"io"

	"patrol/internal/grid"
)

// Render draws g one row per line. Visited cells show the axis the guard
// travelled: '|' vertical, '-' horizontal, '+' both. Inserted obstructions
// and marks are 'O'. The guard is drawn when non-nil.
func Render(w io.Writer, g *grid.Grid, guard *Guard, marks []grid.Point) error {
	marked := make(map[grid.Point]bool, len(marks))
	for _, p := range marks {
		marked[p] = true
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if guard != nil && guard.Position == p {
				bw.WriteByte(guard.Symbol())
				continue
			}
			if marked[p] {
				bw.WriteByte('O')
				continue
			}
			bw.WriteByte(symbol(g.At(p)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func symbol(t grid.Tile) byte {
	switch {
	case t == grid.Obstruction:
		return '#'
	case t == grid.InsertedObstruction:
		return 'O'
	case t.Visited():
		vertical := t.Has(grid.Up) || t.Has(grid.Down)
		horizontal := t.Has(grid.Left) || t.Has(grid.Right)
		switch {
		case vertical && horizontal:
			return '+'
		case horizontal:
			return '-'
		default:
			return '|'
		}
	default:
		return '.'
	}
}
