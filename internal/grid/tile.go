package grid

// Tile is the state of one cell. The low nibble holds the mask of headings the
// guard had while standing on the cell; a non-zero mask means Visited.
type Tile uint8

const (
	Empty               Tile = 0
	Obstruction         Tile = 1 << 4
	InsertedObstruction Tile = 1 << 5

	maskBits    Tile = 0x0f
	blockedBits      = Obstruction | InsertedObstruction
)

// Visited returns a tile visited with the given headings.
func Visited(mask Direction) Tile {
	return Tile(mask) & maskBits
}

// Visited reports whether the guard has stood on the tile.
func (t Tile) Visited() bool {
	return t&maskBits != 0
}

// Blocked reports whether the tile stops movement.
func (t Tile) Blocked() bool {
	return t&blockedBits != 0
}

// Mask returns the headings recorded on a visited tile.
func (t Tile) Mask() Direction {
	return Direction(t & maskBits)
}

// Has reports whether heading d was recorded on the tile.
func (t Tile) Has(d Direction) bool {
	return t.Mask()&d != 0
}
