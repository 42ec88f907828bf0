package grid

import (
	"fmt"
	"io"
	"os"
)

// Load parses the grid stored in the file at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(path, f)
}

// Read parses a grid from r; name is used in error positions.
func Read(name string, r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return ParseNamed(name, string(data))
}
