// Package satbackend adapts external general-purpose SAT solvers to the
// gemhunter constraint set. A backend consumes the same clauses the native
// engine searches, in the same variable numbering and the DIMACS-style
// signed-integer shape, and returns a model in that numbering, so results
// are interchangeable with the native engine's.
//
// The backends exist as alternative engines for cross-checking and for
// grids where an industrial solver pays off; the core solver never depends
// on them.
package satbackend

import (
	"context"
	"fmt"
	"time"

	"github.com/gitrdm/gemhunter/pkg/gemhunter"
)

// Backend is one external SAT engine. ok is false when the formula is
// proven unsatisfiable; an error means the engine failed or was interrupted,
// not that the formula is unsatisfiable.
type Backend interface {
	Name() string
	Solve(ctx context.Context, set *gemhunter.ConstraintSet) (model []bool, ok bool, err error)
}

// Solver adapts a Backend to the gemhunter.Solver interface: it encodes the
// grid exactly as the native path does, hands the clauses to the backend,
// and maps the model back through the same registry.
type Solver struct {
	backend Backend
}

// NewSolver wraps a backend as a grid solver.
func NewSolver(b Backend) *Solver {
	return &Solver{backend: b}
}

// Name implements gemhunter.Solver.
func (s *Solver) Name() string { return s.backend.Name() }

// Solve implements gemhunter.Solver.
func (s *Solver) Solve(ctx context.Context, g *gemhunter.Grid) (*gemhunter.Result, error) {
	start := time.Now()
	reg := gemhunter.NewRegistry(g)
	set, err := gemhunter.NewEncoder(g, reg).Encode()
	if err != nil {
		return nil, err
	}

	model, ok, err := s.backend.Solve(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("%s backend: %w", s.backend.Name(), err)
	}
	res := &gemhunter.Result{Duration: time.Since(start)}
	if !ok {
		res.Outcome = gemhunter.Unsatisfiable
		return res, nil
	}
	if len(model) != reg.Len() {
		return nil, fmt.Errorf("%s backend: model has %d values, want %d", s.backend.Name(), len(model), reg.Len())
	}

	labeled, err := reg.Label(model)
	if err != nil {
		return nil, err
	}
	res.Outcome = gemhunter.Satisfiable
	res.Solution = &gemhunter.Solution{Grid: labeled, Assignment: model}
	return res, nil
}
