package gemhunter

import (
	"fmt"
	"math/rand/v2"
)

// Generate produces a random puzzle together with the full labeling it was
// derived from. Pass a seeded *rand.Rand for reproducible output; nil uses
// the global source.
//
// Construction: each cell hides a trap with
// probability trapProb; every non-trap cell adjacent to at least one trap
// becomes a clue carrying its trap-neighbor count; then a fixpoint pass
// labels as gems the remaining cells that touch a clue but no trap. Cells
// that end the fixpoint untouched (no labeled neighbor at all) stay empty in
// the solution as well. The puzzle keeps only the clues.
//
// The generated puzzle is guaranteed to admit the returned solution, but not
// to admit only that solution; uniqueness is a property of the clue layout,
// not of the construction.
func Generate(rng *rand.Rand, rows, cols int, trapProb float64) (puzzle, solution *Grid, err error) {
	if rows < 1 || cols < 1 {
		return nil, nil, fmt.Errorf("%w: %dx%d", ErrMalformedGrid, rows, cols)
	}
	if trapProb < 0 || trapProb > 1 {
		return nil, nil, fmt.Errorf("trap probability %v outside [0, 1]", trapProb)
	}
	random := rand.Float64
	if rng != nil {
		random = rng.Float64
	}

	trap := make([][]bool, rows)
	cells := make([][]Cell, rows)
	for r := range cells {
		trap[r] = make([]bool, cols)
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			if random() < trapProb {
				trap[r][c] = true
				cells[r][c] = Trap()
			} else {
				cells[r][c] = Empty()
			}
		}
	}

	sol, err := NewGrid(cells)
	if err != nil {
		return nil, nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if trap[r][c] {
				continue
			}
			count := 0
			for _, at := range sol.Neighbors(r, c) {
				if trap[at.Row][at.Col] {
					count++
				}
			}
			if count > 0 {
				sol.cells[r*cols+c] = Clue(count)
			}
		}
	}

	// Gem fixpoint: an empty cell with a clue neighbor and no trap
	// neighbor hides a gem. Newly placed gems do not make their own
	// neighbors gems, so iterate until stable.
	for changed := true; changed; {
		changed = false
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if sol.at(r, c).Kind != CellEmpty {
					continue
				}
				hasClue, hasTrap := false, false
				for _, at := range sol.Neighbors(r, c) {
					switch sol.at(at.Row, at.Col).Kind {
					case CellClue:
						hasClue = true
					case CellTrap:
						hasTrap = true
					}
				}
				if hasClue && !hasTrap {
					sol.cells[r*cols+c] = Gem()
					changed = true
				}
			}
		}
	}

	puz := sol.clone()
	for i, cell := range puz.cells {
		if cell.Kind != CellClue {
			puz.cells[i] = Empty()
		}
	}
	return puz, sol, nil
}
