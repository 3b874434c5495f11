package gemhunter

import (
	"errors"
	"fmt"
)

// ErrNotAVariableCell is returned when a variable is requested for a cell
// that has none: clue, trap, or gem cells, or out-of-bounds coordinates.
// Only undetermined (empty) cells carry propositional variables.
var ErrNotAVariableCell = errors.New("cell has no variable")

// Variable identifies one propositional variable. Variables are positive
// integers numbered 1..Registry.Len(); 0 is never a valid variable.
type Variable int

// Registry is the bijection between the empty cells of one grid and the
// propositional variables of its constraint set. It is built in a single
// deterministic row-major pass, so the numbering is reproducible across runs
// on the same grid; stable DIMACS output and test fixtures depend on that.
//
// A Registry is immutable after construction and valid for the lifetime of
// one solve of its grid.
type Registry struct {
	grid  *Grid
	varOf []Variable // flat row-major grid index -> variable, 0 if none
	coord []Coord    // variable (1-based) -> coordinates; coord[0] unused
}

// NewRegistry numbers the empty cells of g in row-major order.
func NewRegistry(g *Grid) *Registry {
	reg := &Registry{
		grid:  g,
		varOf: make([]Variable, g.rows*g.cols),
		coord: make([]Coord, 1, g.rows*g.cols+1),
	}
	next := Variable(1)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.at(r, c).Kind != CellEmpty {
				continue
			}
			reg.varOf[r*g.cols+c] = next
			reg.coord = append(reg.coord, Coord{r, c})
			next++
		}
	}
	return reg
}

// Grid returns the grid this registry was built for.
func (reg *Registry) Grid() *Grid { return reg.grid }

// Len reports the number of variables, equal to the number of empty cells.
func (reg *Registry) Len() int { return len(reg.coord) - 1 }

// VariableFor returns the variable of the empty cell at (r, c). It fails
// with ErrNotAVariableCell for non-empty cells and for coordinates outside
// the grid.
func (reg *Registry) VariableFor(r, c int) (Variable, error) {
	if !reg.grid.InBounds(r, c) {
		return 0, fmt.Errorf("%w: %v is out of bounds", ErrNotAVariableCell, Coord{r, c})
	}
	v := reg.varOf[r*reg.grid.cols+c]
	if v == 0 {
		return 0, fmt.Errorf("%w: cell at %v is not empty", ErrNotAVariableCell, Coord{r, c})
	}
	return v, nil
}

// CellFor is the inverse of VariableFor, total over 1..Len().
func (reg *Registry) CellFor(v Variable) (Coord, error) {
	if v < 1 || int(v) >= len(reg.coord) {
		return Coord{}, fmt.Errorf("%w: variable %d outside range 1..%d", ErrNotAVariableCell, v, reg.Len())
	}
	return reg.coord[v], nil
}

// Label maps a total model back onto the grid: every empty cell becomes a
// trap where its variable is true and a gem where it is false. The model is
// indexed model[v-1] for variable v and must cover all variables.
func (reg *Registry) Label(model []bool) (*Grid, error) {
	if len(model) != reg.Len() {
		return nil, fmt.Errorf("model has %d values, want %d", len(model), reg.Len())
	}
	g := reg.grid.clone()
	for v := 1; v <= reg.Len(); v++ {
		at := reg.coord[v]
		if model[v-1] {
			g.cells[at.Row*g.cols+at.Col] = Trap()
		} else {
			g.cells[at.Row*g.cols+at.Col] = Gem()
		}
	}
	return g, nil
}
