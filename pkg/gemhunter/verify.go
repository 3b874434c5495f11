package gemhunter

import (
	"errors"
	"fmt"
)

// ErrInvalidSolution is returned by Verify when a labeled grid does not
// solve its puzzle.
var ErrInvalidSolution = errors.New("invalid solution")

// Verify checks a labeled grid against its puzzle, independently of any
// solver: dimensions must match, clue and pre-labeled cells must be
// untouched, every empty cell must have been resolved to a trap or a gem,
// and every clue must count exactly its number of trap neighbors in the
// labeling. Zero tolerance; the first violation is reported.
func Verify(puzzle, labeled *Grid) error {
	if puzzle.rows != labeled.rows || puzzle.cols != labeled.cols {
		return fmt.Errorf("%w: %dx%d labeling for %dx%d puzzle", ErrInvalidSolution,
			labeled.rows, labeled.cols, puzzle.rows, puzzle.cols)
	}
	for r := 0; r < puzzle.rows; r++ {
		for c := 0; c < puzzle.cols; c++ {
			p, l := puzzle.at(r, c), labeled.at(r, c)
			switch p.Kind {
			case CellEmpty:
				if l.Kind != CellTrap && l.Kind != CellGem {
					return fmt.Errorf("%w: cell at %v left unresolved", ErrInvalidSolution, Coord{r, c})
				}
			default:
				if l != p {
					return fmt.Errorf("%w: fixed cell at %v was altered", ErrInvalidSolution, Coord{r, c})
				}
			}
		}
	}
	for r := 0; r < puzzle.rows; r++ {
		for c := 0; c < puzzle.cols; c++ {
			cell := puzzle.at(r, c)
			if cell.Kind != CellClue {
				continue
			}
			traps := 0
			for _, at := range labeled.Neighbors(r, c) {
				if labeled.at(at.Row, at.Col).Kind == CellTrap {
					traps++
				}
			}
			if traps != cell.Count {
				return fmt.Errorf("%w: clue at %v wants %d trap neighbors, labeling has %d",
					ErrInvalidSolution, Coord{r, c}, cell.Count, traps)
			}
		}
	}
	return nil
}
