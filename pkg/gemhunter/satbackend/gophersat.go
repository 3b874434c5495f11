package satbackend

import (
	"context"

	"github.com/crillab/gophersat/solver"

	"github.com/gitrdm/gemhunter/pkg/gemhunter"
)

// Gophersat solves constraint sets with the crillab/gophersat solver.
type Gophersat struct{}

// Name implements Backend.
func (Gophersat) Name() string { return "gophersat" }

// Solve implements Backend. Gophersat consumes clauses as [][]int in the
// DIMACS signed-literal convention, which Clauses already produces.
func (Gophersat) Solve(ctx context.Context, set *gemhunter.ConstraintSet) ([]bool, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if set.Len() == 0 {
		// ParseSlice rejects an empty problem; with no clauses any
		// labeling satisfies, so report the all-gems model.
		return make([]bool, set.NumVars()), true, nil
	}

	pb := solver.ParseSlice(set.Clauses())
	s := solver.New(pb)
	if s.Solve() != solver.Sat {
		return nil, false, nil
	}

	m := s.Model()
	model := make([]bool, set.NumVars())
	for i := 0; i < len(m) && i < set.NumVars(); i++ {
		model[i] = m[i]
	}
	return model, true, nil
}
