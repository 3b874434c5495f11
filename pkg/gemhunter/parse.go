package gemhunter

// parse.go: the textual grid notation used by map files.
//
// The format is a header line "rows cols" followed by one line per row of
// comma-separated tokens: "_" for an undetermined cell, "T" for a trap, "G"
// for a gem, or a single digit for a clue.

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGrid parses the textual grid notation and validates the result via
// NewGrid. Malformed text fails with ErrMalformedGrid.
func ParseGrid(s string) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: want a header line and at least one row", ErrMalformedGrid)
	}
	header := strings.Fields(strings.TrimSpace(lines[0]))
	if len(header) != 2 {
		return nil, fmt.Errorf("%w: header %q, want \"rows cols\"", ErrMalformedGrid, lines[0])
	}
	rows, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad row count %q", ErrMalformedGrid, header[0])
	}
	cols, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad column count %q", ErrMalformedGrid, header[1])
	}
	if rows < 1 || cols < 1 || len(lines)-1 != rows {
		return nil, fmt.Errorf("%w: header declares %dx%d but %d rows follow", ErrMalformedGrid, rows, cols, len(lines)-1)
	}

	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		tokens := strings.Split(strings.TrimSpace(lines[r+1]), ",")
		if len(tokens) != cols {
			return nil, fmt.Errorf("%w: row %d has %d tokens, want %d", ErrMalformedGrid, r, len(tokens), cols)
		}
		cells[r] = make([]Cell, cols)
		for c, tok := range tokens {
			cell, err := parseCell(strings.TrimSpace(tok))
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", r, c, err)
			}
			cells[r][c] = cell
		}
	}
	return NewGrid(cells)
}

// MustParseGrid is ParseGrid for known-good literals; it panics on error.
// Intended for tests and examples.
func MustParseGrid(s string) *Grid {
	g, err := ParseGrid(s)
	if err != nil {
		panic(err)
	}
	return g
}

func parseCell(tok string) (Cell, error) {
	switch tok {
	case "_":
		return Empty(), nil
	case "T":
		return Trap(), nil
	case "G":
		return Gem(), nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 || n > 8 {
		return Cell{}, fmt.Errorf("%w: unknown cell token %q", ErrMalformedGrid, tok)
	}
	return Clue(n), nil
}

// String renders the grid in the same notation ParseGrid accepts, so grids
// round-trip through their textual form.
func (g *Grid) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d\n", g.rows, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				b.WriteByte(',')
			}
			b.WriteString(g.at(r, c).token())
		}
		if r < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (cell Cell) token() string {
	switch cell.Kind {
	case CellEmpty:
		return "_"
	case CellClue:
		return strconv.Itoa(cell.Count)
	case CellTrap:
		return "T"
	case CellGem:
		return "G"
	}
	return "?"
}
