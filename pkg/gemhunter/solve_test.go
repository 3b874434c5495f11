package gemhunter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_Sample5x5(t *testing.T) {
	grid := MustParseGrid(sampleGrid5)

	res, err := Solve(context.Background(), grid)
	require.NoError(t, err)
	require.Equal(t, Satisfiable, res.Outcome)
	require.NotNil(t, res.Solution)

	// Every clue re-checks exactly against the labeling.
	require.NoError(t, Verify(grid, res.Solution.Grid))

	// All four hidden cells are traps.
	assert.Equal(t, []bool{true, true, true, true}, res.Solution.Assignment)
	assert.Equal(t, "5 5\nT,1,1,1,1\n1,1,1,T,1\n1,1,2,1,1\n1,T,1,1,1\n1,1,1,1,T", res.Solution.Grid.String())

	// The solution is unique: exhaustive enumeration is the oracle.
	count, err := CountSolutions(context.Background(), grid, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The input grid is never mutated.
	assert.Equal(t, sampleGrid5, grid.String())
}

func TestSolve_MatchesBruteForceOracle(t *testing.T) {
	// On small satisfiable grids the backtracking engine and the
	// exhaustive oracle must agree on the outcome, and both labelings
	// must verify. (The labels themselves may differ when a puzzle has
	// several solutions.)
	grids := []string{sampleGrid5, chainRow, "2 2\n1,_\n_,_", "3 3\n_,_,_\n_,2,_\n_,_,_"}
	for _, text := range grids {
		grid := MustParseGrid(text)

		bt, err := Solve(context.Background(), grid)
		require.NoError(t, err)
		bf, err := (&BruteForceSolver{}).Solve(context.Background(), grid)
		require.NoError(t, err)

		require.Equal(t, Satisfiable, bt.Outcome, "grid %q", text)
		require.Equal(t, Satisfiable, bf.Outcome, "grid %q", text)
		assert.NoError(t, Verify(grid, bt.Solution.Grid), "grid %q", text)
		assert.NoError(t, Verify(grid, bf.Solution.Grid), "grid %q", text)
	}
}

func TestSolve_Unsatisfiable(t *testing.T) {
	for _, text := range []string{unsatByUnits, unsatTriangle} {
		grid := MustParseGrid(text)

		res, err := Solve(context.Background(), grid)
		require.NoError(t, err, "unsatisfiability is an outcome, not an error")
		assert.Equal(t, Unsatisfiable, res.Outcome)
		assert.Nil(t, res.Solution, "no partial grid on failure")

		bf, err := (&BruteForceSolver{}).Solve(context.Background(), grid)
		require.NoError(t, err)
		assert.Equal(t, Unsatisfiable, bf.Outcome)
	}
}

func TestSolve_Idempotent(t *testing.T) {
	// Fresh solves of the same grid yield identical labelings thanks to
	// the deterministic decision order.
	grid := MustParseGrid(chainRow)

	first, err := Solve(context.Background(), grid)
	require.NoError(t, err)
	second, err := Solve(context.Background(), grid)
	require.NoError(t, err)

	assert.Equal(t, first.Outcome, second.Outcome)
	assert.Equal(t, first.Solution.Assignment, second.Solution.Assignment)
	assert.Equal(t, first.Solution.Grid.String(), second.Solution.Grid.String())
}

func TestSolve_TimeoutOutcome(t *testing.T) {
	grid := MustParseGrid(freeRow)

	res, err := Solve(context.Background(), grid, WithStepBudget(1))
	require.NoError(t, err)
	assert.Equal(t, Timeout, res.Outcome)
	assert.Nil(t, res.Solution)
}

func TestSolve_EncodingErrorSurfaces(t *testing.T) {
	grid := MustParseGrid("1 4\n_,2,2,_")
	_, err := Solve(context.Background(), grid)
	assert.ErrorIs(t, err, ErrUnsatisfiableClue)
}

func TestSolve_NoEmptyCells(t *testing.T) {
	// A fully determined grid has zero variables; the solve trivially
	// succeeds and returns the grid as-is.
	grid := MustParseGrid("1 3\nT,1,G")
	res, err := Solve(context.Background(), grid)
	require.NoError(t, err)
	require.Equal(t, Satisfiable, res.Outcome)
	assert.Equal(t, grid.String(), res.Solution.Grid.String())
}

func TestVerify(t *testing.T) {
	puzzle := MustParseGrid(chainRow)

	good := MustParseGrid("1 5\nT,1,G,1,T")
	assert.NoError(t, Verify(puzzle, good))

	wrongCount := MustParseGrid("1 5\nT,1,T,1,T")
	assert.ErrorIs(t, Verify(puzzle, wrongCount), ErrInvalidSolution)

	unresolved := MustParseGrid("1 5\nT,1,_,1,T")
	assert.ErrorIs(t, Verify(puzzle, unresolved), ErrInvalidSolution)

	altered := MustParseGrid("1 5\nT,2,G,1,T")
	assert.ErrorIs(t, Verify(puzzle, altered), ErrInvalidSolution)

	wrongShape := MustParseGrid("1 2\nT,G")
	assert.ErrorIs(t, Verify(puzzle, wrongShape), ErrInvalidSolution)
}
