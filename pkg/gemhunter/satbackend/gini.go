package satbackend

import (
	"context"
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/gitrdm/gemhunter/pkg/gemhunter"
)

// Gini solves constraint sets with the go-air/gini CDCL solver.
type Gini struct{}

// Name implements Backend.
func (Gini) Name() string { return "gini" }

// Solve implements Backend. Clauses are loaded literal by literal with the
// zero terminator gini expects; gini's Solve reports 1 for satisfiable and
// -1 for unsatisfiable.
func (Gini) Solve(ctx context.Context, set *gemhunter.ConstraintSet) ([]bool, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if set.Len() == 0 {
		// An empty formula is trivially satisfiable and mentions no
		// variables; report the all-gems model directly.
		return make([]bool, set.NumVars()), true, nil
	}

	g := gini.NewV(set.NumVars())
	for id := 0; id < set.Len(); id++ {
		for _, l := range set.Clause(id) {
			m := z.Var(l.Variable()).Pos()
			if !l.Positive() {
				m = m.Not()
			}
			g.Add(m)
		}
		g.Add(0)
	}

	switch g.Solve() {
	case 1:
		model := make([]bool, set.NumVars())
		for v := 1; v <= set.NumVars(); v++ {
			model[v-1] = g.Value(z.Var(v).Pos())
		}
		return model, true, nil
	case -1:
		return nil, false, nil
	}
	return nil, false, errors.New("gini returned unknown")
}
