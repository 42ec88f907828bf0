package patrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patrol/internal/grid"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func mustParse(t *testing.T, src string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(src)
	require.NoError(t, err)
	return g
}

// trace walks p to the edge and returns every position Step reported.
func trace(t *testing.T, p *Patrol) []grid.Point {
	t.Helper()
	var path []grid.Point
	for i := 0; ; i++ {
		require.Less(t, i, 100000, "patrol did not exit")
		pos, repeat, ok := p.Step()
		if !ok {
			return path
		}
		require.False(t, repeat, "unexpected repeat at %v", pos)
		path = append(path, pos)
	}
}

func TestNewMarksStart(t *testing.T) {
	g := mustParse(t, sample)
	p := New(g)
	assert.Equal(t, grid.Visited(grid.Up), p.Grid().At(g.Start))
	assert.Equal(t, Guard{Facing: grid.Up, Position: g.Start}, p.Guard())
	assert.Equal(t, grid.Empty, g.At(g.Start), "source grid must stay untouched")
}

func TestStepMovesAndTurns(t *testing.T) {
	g := mustParse(t, "#..\n^..\n")
	p := New(g)

	pos, repeat, ok := p.Step()
	require.True(t, ok)
	assert.False(t, repeat)
	assert.Equal(t, grid.Point{X: 0, Y: 1}, pos, "turning keeps the position")
	assert.Equal(t, grid.Right, p.Guard().Facing)
	assert.True(t, p.Grid().At(pos).Has(grid.Right))

	pos, _, ok = p.Step()
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 1, Y: 1}, pos)
	assert.Equal(t, 2, p.Steps())
}

func TestTurnDoesNotCascade(t *testing.T) {
	// Facing up into '#', then right into another '#'.
	g := mustParse(t, ".#.\n.^#\n...\n")
	p := New(g)

	_, _, ok := p.Step()
	require.True(t, ok)
	assert.Equal(t, grid.Right, p.Guard().Facing)

	_, _, ok = p.Step()
	require.True(t, ok)
	assert.Equal(t, grid.Down, p.Guard().Facing)
	assert.Equal(t, grid.Point{X: 1, Y: 1}, p.Guard().Position)
}

func TestCornerStartExitsImmediately(t *testing.T) {
	g := mustParse(t, "^..\n...\n")
	p := New(g)
	_, _, ok := p.Step()
	assert.False(t, ok)
	assert.Zero(t, p.Steps())

	n, err := CountVisited(g)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCountVisitedSample(t *testing.T) {
	n, err := CountVisited(mustParse(t, sample))
	require.NoError(t, err)
	assert.Equal(t, 41, n)
}

func TestCountVisitedMatchesTrace(t *testing.T) {
	for _, src := range []string{
		sample,
		"..#\n.^.\n...\n",
		".#..\n...#\n.^..\n..#.\n",
		"^\n",
	} {
		g := mustParse(t, src)
		seen := map[grid.Point]bool{g.Start: true}
		for _, pos := range trace(t, New(g)) {
			seen[pos] = true
		}
		n, err := CountVisited(g)
		require.NoError(t, err)
		assert.Equal(t, len(seen), n, "grid:\n%s", src)
	}
}

func TestDeterministic(t *testing.T) {
	g := mustParse(t, sample)
	first, second := New(g), New(g)
	assert.Equal(t, trace(t, first), trace(t, second))
	assert.Equal(t, first.Grid(), second.Grid())
}

func TestRunDetectsLoop(t *testing.T) {
	g := mustParse(t, ".#..\n...#\n#^..\n..#.\n")
	p := New(g)
	assert.Equal(t, Looped, p.Run())

	_, err := CountVisited(g)
	assert.ErrorIs(t, err, ErrNoExit)
}

func TestRunExits(t *testing.T) {
	assert.Equal(t, Exited, New(mustParse(t, sample)).Run())
}

func TestCloneIsIndependent(t *testing.T) {
	p := New(mustParse(t, sample))
	p.Step()
	c := p.Clone()
	c.Step()
	c.Step()
	assert.Equal(t, 1, p.Steps())
	assert.NotEqual(t, p.Guard(), c.Guard())
	assert.NotEqual(t, p.Grid().CountVisited(), c.Grid().CountVisited())
}

func TestRunBoxedGuardLoops(t *testing.T) {
	p := New(mustParse(t, ".#.\n#^#\n.#.\n"))
	assert.Equal(t, Looped, p.Run())
	assert.True(t, p.Boxed())
	assert.Equal(t, 4, p.Steps())
	assert.Equal(t, grid.Up, p.Guard().Facing)
}

func TestBoxedResetsOnMove(t *testing.T) {
	p := New(mustParse(t, ".#.\n#^#\n...\n"))
	for i := 0; i < 3; i++ {
		p.Step()
	}
	assert.False(t, p.Boxed())
	assert.Equal(t, grid.Point{X: 1, Y: 2}, p.Guard().Position)
}
