package gemhunter

import (
	"errors"
	"fmt"
)

// ErrUnsatisfiableClue is returned when a clue is structurally impossible to
// satisfy: after substituting already-fixed neighbor values, the clue demands
// more traps than it has undetermined neighbors, or more traps than its fixed
// neighbors allow. Like ErrMalformedGrid this is a construction-time
// rejection, not a search outcome.
var ErrUnsatisfiableClue = errors.New("clue cannot be satisfied")

// Encoder translates the clue cells of a grid into an exact-K CNF constraint
// set over the registry's variables.
//
// For a clue demanding K traps among n undetermined neighbor variables, the
// encoding is the union of two independent clause families:
//
//   - at-most-K: for every (K+1)-subset of the neighbors, the disjunction of
//     their negations ("these K+1 cannot all be traps"). Vacuous when K ≥ n.
//   - at-least-K: for every (n−K+1)-subset, the disjunction of the positive
//     literals ("at least one of these must be a trap"). Vacuous when K = 0.
//
// The boundary cases fall out of the subset sizes: K = 0 yields n negative
// unit clauses and nothing else, and K = n yields n positive unit clauses
// and nothing else.
type Encoder struct {
	grid  *Grid
	reg   *Registry
	fixed map[Variable]bool
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithFixed supplies variable values already deduced by the caller (for
// example from a previous partial solve). Fixed neighbors are substituted
// into each clue before subset generation: a fixed trap decrements K, a
// fixed gem simply leaves the neighbor set. This shrinks the combinatorial
// encodings without changing satisfiability; the fixed values themselves are
// emitted as unit clauses so models remain consistent with them.
func WithFixed(fixed map[Variable]bool) EncoderOption {
	return func(e *Encoder) { e.fixed = fixed }
}

// NewEncoder creates an encoder for g over the variables of reg, which must
// have been built from the same grid.
func NewEncoder(g *Grid, reg *Registry, opts ...EncoderOption) *Encoder {
	e := &Encoder{grid: g, reg: reg}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode walks every clue cell in row-major order and emits its exact-K
// clause families into a fresh ConstraintSet. It fails with
// ErrUnsatisfiableClue only for clues made impossible by fixed values; every
// clue a valid Grid admits is encodable.
func (e *Encoder) Encode() (*ConstraintSet, error) {
	cs := NewConstraintSet(e.reg.Len())

	for v, val := range e.fixed {
		if v < 1 || int(v) > e.reg.Len() {
			return nil, fmt.Errorf("%w: fixed variable %d outside range 1..%d", ErrNotAVariableCell, v, e.reg.Len())
		}
		cs.AddUnit(Lit(v, val))
	}

	for r := 0; r < e.grid.rows; r++ {
		for c := 0; c < e.grid.cols; c++ {
			cell := e.grid.at(r, c)
			if cell.Kind != CellClue {
				continue
			}
			if err := e.encodeClue(cs, r, c, cell.Count); err != nil {
				return nil, err
			}
		}
	}
	return cs, nil
}

// encodeClue emits the exact-K clauses for one clue cell.
func (e *Encoder) encodeClue(cs *ConstraintSet, r, c, count int) error {
	k := count
	var vars []Variable
	for _, at := range e.grid.Neighbors(r, c) {
		switch e.grid.at(at.Row, at.Col).Kind {
		case CellTrap:
			// A neighbor already labeled trap consumes one of the
			// clue's count.
			k--
		case CellEmpty:
			v, err := e.reg.VariableFor(at.Row, at.Col)
			if err != nil {
				return err
			}
			if val, ok := e.fixed[v]; ok {
				if val {
					k--
				}
				continue
			}
			vars = append(vars, v)
		}
	}

	n := len(vars)
	if k < 0 || k > n {
		return fmt.Errorf("%w: clue at %v needs %d traps among %d undetermined neighbors", ErrUnsatisfiableClue, Coord{r, c}, k, n)
	}

	// At-most-k: no (k+1)-subset may be all traps. Vacuous when k >= n.
	combinations(n, k+1, func(idx []int) {
		cl := make(Clause, len(idx))
		for i, j := range idx {
			cl[i] = Lit(vars[j], false)
		}
		cs.Add(cl)
	})

	// At-least-k: every (n-k+1)-subset must contain a trap. Vacuous when
	// k == 0.
	if k > 0 {
		combinations(n, n-k+1, func(idx []int) {
			cl := make(Clause, len(idx))
			for i, j := range idx {
				cl[i] = Lit(vars[j], true)
			}
			cs.Add(cl)
		})
	}
	return nil
}
