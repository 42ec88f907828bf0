package grid

import "fmt"

// Grid is a fixed-size rectangle of tiles plus the guard's starting cell.
type Grid struct {
	Width  int
	Height int
	Start  Point
	tiles  []Tile
}

// New returns an empty grid of the given size.
func New(width, height int) *Grid {
	return &Grid{Width: width, Height: height, tiles: make([]Tile, width*height)}
}

// Max is the bottom-right cell.
func (g *Grid) Max() Point {
	return Point{g.Width - 1, g.Height - 1}
}

func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func (g *Grid) index(p Point) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: %v outside %dx%d", p, g.Width, g.Height))
	}
	return p.Y*g.Width + p.X
}

func (g *Grid) At(p Point) Tile {
	return g.tiles[g.index(p)]
}

func (g *Grid) Set(p Point, t Tile) {
	g.tiles[g.index(p)] = t
}

// Visit records heading d on the cell at p. Masks only grow; blocked cells
// are left alone.
func (g *Grid) Visit(p Point, d Direction) {
	i := g.index(p)
	if g.tiles[i].Blocked() {
		return
	}
	g.tiles[i] |= Visited(d)
}

// Clone returns a deep copy that shares no tiles with g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.tiles = make([]Tile, len(g.tiles))
	copy(c.tiles, g.tiles)
	return &c
}

// CountVisited returns the number of visited cells.
func (g *Grid) CountVisited() int {
	n := 0
	for _, t := range g.tiles {
		if t.Visited() {
			n++
		}
	}
	return n
}
