package gemhunter

import (
	"context"
	"fmt"
	"time"
)

// DefaultBruteForceCap bounds the number of candidate labelings the
// brute-force solver examines before giving up with Timeout. The cap is a
// pragmatic safety ceiling, not a principled bound; raise it explicitly for
// exhaustive runs on larger grids.
const DefaultBruteForceCap uint64 = 100_000_000

// bruteForceMaxVars is the widest grid the mask enumeration can address.
const bruteForceMaxVars = 63

// BruteForceSolver enumerates every trap/gem labeling of the empty cells and
// checks each against the full constraint set. Exponential in the number of
// empty cells; it exists as an independent oracle for the backtracking
// engine on small grids.
type BruteForceSolver struct {
	// MaxCombinations caps the enumeration; 0 means DefaultBruteForceCap.
	MaxCombinations uint64
}

// Name implements Solver.
func (*BruteForceSolver) Name() string { return "bruteforce" }

// Solve implements Solver. Labelings are enumerated as bit masks over the
// registry's variables, lowest variable in the lowest bit, all-gems first.
// If the cap (or the context) expires before the space is exhausted the
// outcome is Timeout, distinct from a proven Unsatisfiable.
func (s *BruteForceSolver) Solve(ctx context.Context, g *Grid) (*Result, error) {
	start := time.Now()
	reg := NewRegistry(g)
	set, err := NewEncoder(g, reg).Encode()
	if err != nil {
		return nil, err
	}

	n := reg.Len()
	if n > bruteForceMaxVars {
		return nil, fmt.Errorf("grid has %d empty cells; brute force addresses at most %d", n, bruteForceMaxVars)
	}

	budget := s.MaxCombinations
	if budget == 0 {
		budget = DefaultBruteForceCap
	}
	total := uint64(1) << uint(n)
	exhaustive := total <= budget
	limit := total
	if !exhaustive {
		limit = budget
	}

	model := make([]bool, n)
	for mask := uint64(0); mask < limit; mask++ {
		if mask%4096 == 0 && ctx.Err() != nil {
			return &Result{Outcome: Timeout, Duration: time.Since(start)}, nil
		}
		for i := 0; i < n; i++ {
			model[i] = mask>>uint(i)&1 == 1
		}
		if !set.Satisfies(model) {
			continue
		}
		labeled, err := reg.Label(model)
		if err != nil {
			return nil, err
		}
		return &Result{
			Outcome:  Satisfiable,
			Solution: &Solution{Grid: labeled, Assignment: model},
			Duration: time.Since(start),
		}, nil
	}

	outcome := Unsatisfiable
	if !exhaustive {
		outcome = Timeout
	}
	return &Result{Outcome: outcome, Duration: time.Since(start)}, nil
}

// CountSolutions exhaustively counts the satisfying labelings of g, up to
// max (0 means unlimited). Test helper for uniqueness checks; same variable
// limit as the solver.
func CountSolutions(ctx context.Context, g *Grid, max int) (int, error) {
	reg := NewRegistry(g)
	set, err := NewEncoder(g, reg).Encode()
	if err != nil {
		return 0, err
	}
	n := reg.Len()
	if n > bruteForceMaxVars {
		return 0, fmt.Errorf("grid has %d empty cells; exhaustive count addresses at most %d", n, bruteForceMaxVars)
	}
	count := 0
	model := make([]bool, n)
	for mask := uint64(0); mask < uint64(1)<<uint(n); mask++ {
		if mask%4096 == 0 && ctx.Err() != nil {
			return count, ctx.Err()
		}
		for i := 0; i < n; i++ {
			model[i] = mask>>uint(i)&1 == 1
		}
		if set.Satisfies(model) {
			count++
			if max > 0 && count >= max {
				return count, nil
			}
		}
	}
	return count, nil
}
