package gemhunter

import (
	"context"
	"fmt"
	"time"
)

// Solution is a fully labeled grid: every formerly empty cell is a trap or a
// gem. Assignment holds the underlying model, indexed Assignment[v-1] for
// variable v in the solve's Registry numbering. Solutions are immutable
// hand-offs; the engine's working assignment is never exposed.
type Solution struct {
	Grid       *Grid
	Assignment []bool
}

// Result is the outcome of one solve. Solution is non-nil exactly when
// Outcome is Satisfiable; a partial grid is never returned.
type Result struct {
	Outcome  Outcome
	Solution *Solution
	Stats    Stats
	Duration time.Duration
}

// Solver is a strategy that solves one grid. Implementations in this module:
// BacktrackingSolver (the native engine), BruteForceSolver (the exhaustive
// oracle), and the external SAT adapters in the satbackend subpackage.
type Solver interface {
	Name() string
	Solve(ctx context.Context, g *Grid) (*Result, error)
}

// Solve encodes g and searches it with the native backtracking engine. It is
// the convenience entry point equivalent to BacktrackingSolver with the same
// options.
func Solve(ctx context.Context, g *Grid, opts ...EngineOption) (*Result, error) {
	return (&BacktrackingSolver{Options: opts}).Solve(ctx, g)
}

// BacktrackingSolver runs the native unit-propagating backtracking engine.
// The zero value is ready to use.
type BacktrackingSolver struct {
	// Options are passed through to the Engine of each solve.
	Options []EngineOption
}

// Name implements Solver.
func (*BacktrackingSolver) Name() string { return "backtracking" }

// Solve implements Solver. Encoding failures (ErrUnsatisfiableClue,
// ErrNotAVariableCell) surface as errors; Unsatisfiable and Timeout are
// outcomes on the Result.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *Grid) (*Result, error) {
	start := time.Now()
	reg := NewRegistry(g)
	set, err := NewEncoder(g, reg).Encode()
	if err != nil {
		return nil, err
	}

	engine := NewEngine(set, s.Options...)
	outcome, model := engine.Solve(ctx)
	res := &Result{
		Outcome:  outcome,
		Stats:    engine.Stats(),
		Duration: time.Since(start),
	}
	if outcome != Satisfiable {
		return res, nil
	}

	labeled, err := reg.Label(model)
	if err != nil {
		return nil, fmt.Errorf("labeling solution: %w", err)
	}
	res.Solution = &Solution{Grid: labeled, Assignment: model}
	return res, nil
}
