package grid

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ErrSyntax         = errors.New("unrecognized character")
	ErrEmptyGrid      = errors.New("grid has no rows")
	ErrRaggedRows     = errors.New("rows differ in length")
	ErrNoGuard        = errors.New("no guard marker")
	ErrMultipleGuards = errors.New("more than one guard marker")
)

// ParseError locates a malformed grid. It unwraps to one of the Err* values.
type ParseError struct {
	Pos lexer.Position
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type document struct {
	Lines []*row `parser:"( @@ | EOL )*"`
}

type row struct {
	Pos   lexer.Position
	Cells string `parser:"@Row"`
}

var gridLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Row", Pattern: `[.#^]+`},
	{Name: "EOL", Pattern: `\r?\n`},
})

var parser = participle.MustBuild[document](participle.Lexer(gridLexer))

// Parse reads a grid drawn with '.' for empty cells, '#' for obstructions and
// '^' for the guard. Blank lines are ignored.
func Parse(src string) (*Grid, error) {
	return ParseNamed("input", src)
}

// ParseNamed is Parse with a file name used in error positions.
func ParseNamed(name, src string) (*Grid, error) {
	doc, err := parser.ParseString(name, src)
	if err != nil {
		pos := lexer.Position{Filename: name}
		var perr participle.Error
		if errors.As(err, &perr) {
			pos = perr.Position()
		}
		return nil, &ParseError{Pos: pos, Err: fmt.Errorf("%w: %s", ErrSyntax, errorMessage(err))}
	}
	return build(name, doc.Lines)
}

func errorMessage(err error) string {
	var perr participle.Error
	if errors.As(err, &perr) {
		return perr.Message()
	}
	return err.Error()
}

func build(name string, rows []*row) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &ParseError{Pos: lexer.Position{Filename: name}, Err: ErrEmptyGrid}
	}
	width := len(rows[0].Cells)
	g := New(width, len(rows))
	var guard *lexer.Position
	for y, r := range rows {
		if len(r.Cells) != width {
			return nil, &ParseError{Pos: r.Pos, Err: fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y+1, len(r.Cells), width)}
		}
		for x := 0; x < width; x++ {
			p := Point{x, y}
			switch r.Cells[x] {
			case '#':
				g.Set(p, Obstruction)
			case '^':
				pos := r.Pos
				pos.Column += x
				pos.Offset += x
				if guard != nil {
					return nil, &ParseError{Pos: pos, Err: fmt.Errorf("%w: first at %s", ErrMultipleGuards, guard)}
				}
				guard = &pos
				g.Start = p
			}
		}
	}
	if guard == nil {
		return nil, &ParseError{Pos: rows[len(rows)-1].Pos, Err: ErrNoGuard}
	}
	return g, nil
}
