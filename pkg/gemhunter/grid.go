// Package gemhunter implements a constraint-satisfaction solver for the
// Gem Hunter grid puzzle.
//
// A puzzle is a rectangular grid in which some cells carry a numeric clue
// counting the traps hidden among that cell's (up to eight) adjacent cells.
// Solving the puzzle means labeling every remaining cell as either a trap or
// a gem so that every clue is satisfied exactly.
//
// The pipeline is: a Grid is translated through a Registry (cell ↔ variable
// bijection) and an Encoder into a ConstraintSet in conjunctive normal form,
// which an Engine searches with unit propagation and chronological
// backtracking. The ConstraintSet can also be exported in DIMACS CNF format
// and handed to an external SAT solver; see the satbackend subpackage.
//
// Example:
//
//	grid := gemhunter.MustParseGrid("1 3\n1,_,1")
//	res, err := gemhunter.Solve(context.Background(), grid)
//	if err != nil || res.Outcome != gemhunter.Satisfiable {
//		// handle
//	}
//	fmt.Println(res.Solution.Grid)
package gemhunter

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookup. Callers match them with
// errors.Is; wrapped forms carry the offending position.
var (
	// ErrOutOfBounds is returned when coordinates fall outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrMalformedGrid is returned when a grid cannot be constructed:
	// ragged rows, empty dimensions, or a clue whose count exceeds the
	// number of in-bounds neighbors.
	ErrMalformedGrid = errors.New("malformed grid")
)

// CellKind discriminates the variants of a Cell.
type CellKind int

const (
	// CellEmpty is an undetermined cell; the solver decides trap or gem.
	CellEmpty CellKind = iota
	// CellClue carries a count of adjacent traps. Clue cells are inputs
	// and never change.
	CellClue
	// CellTrap marks a cell known (or solved) to hide a trap.
	CellTrap
	// CellGem marks a cell known (or solved) to hide a gem.
	CellGem
)

// Cell is a tagged variant: Count is meaningful only when Kind is CellClue.
type Cell struct {
	Kind  CellKind
	Count int
}

// Empty returns an undetermined cell.
func Empty() Cell { return Cell{Kind: CellEmpty} }

// Clue returns a clue cell counting n adjacent traps.
func Clue(n int) Cell { return Cell{Kind: CellClue, Count: n} }

// Trap returns a trap cell.
func Trap() Cell { return Cell{Kind: CellTrap} }

// Gem returns a gem cell.
func Gem() Cell { return Cell{Kind: CellGem} }

// Coord is a grid position. Row and Col are zero-based.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable rectangular puzzle board. Construct one with NewGrid
// or ParseGrid; all methods are read-only, so a Grid may be shared across
// concurrent solves.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid validates and copies cells into a Grid. It fails with
// ErrMalformedGrid if the input is empty, rows have inconsistent lengths, a
// clue count is outside 0..8, or a clue count exceeds the number of in-bounds
// neighbors of its cell (a structurally unsatisfiable clue).
func NewGrid(cells [][]Cell) (*Grid, error) {
	rows := len(cells)
	if rows == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and column", ErrMalformedGrid)
	}
	cols := len(cells[0])
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, 0, rows*cols)}
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, r, len(row), cols)
		}
		g.cells = append(g.cells, row...)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := g.at(r, c)
			if cell.Kind != CellClue {
				continue
			}
			if cell.Count < 0 || cell.Count > 8 {
				return nil, fmt.Errorf("%w: clue at %v has count %d, want 0..8", ErrMalformedGrid, Coord{r, c}, cell.Count)
			}
			if n := len(g.Neighbors(r, c)); cell.Count > n {
				return nil, fmt.Errorf("%w: clue at %v demands %d traps but has only %d neighbors", ErrMalformedGrid, Coord{r, c}, cell.Count, n)
			}
		}
	}
	return g, nil
}

// Rows reports the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols reports the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r, c) lies on the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// CellAt returns the cell at (r, c), or ErrOutOfBounds.
func (g *Grid) CellAt(r, c int) (Cell, error) {
	if !g.InBounds(r, c) {
		return Cell{}, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, Coord{r, c}, g.rows, g.cols)
	}
	return g.at(r, c), nil
}

// at is CellAt without the bounds check, for internal loops over valid
// coordinates.
func (g *Grid) at(r, c int) Cell { return g.cells[r*g.cols+c] }

// Neighbors returns the in-bounds coordinates adjacent to (r, c), including
// diagonals, in row-major order. A cell has at most 8 neighbors; corner and
// edge cells have fewer. There is no wraparound.
func (g *Grid) Neighbors(r, c int) []Coord {
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if g.InBounds(nr, nc) {
				out = append(out, Coord{nr, nc})
			}
		}
	}
	return out
}

// clone returns a deep copy sharing no state with the receiver.
func (g *Grid) clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}
