package gemhunter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBruteForce_FindsLowestMaskSolution(t *testing.T) {
	// Masks are enumerated all-gems first, lowest variable in the lowest
	// bit, so the reported solution is the lexicographically smallest.
	grid := MustParseGrid(chainRow)
	res, err := (&BruteForceSolver{}).Solve(context.Background(), grid)
	require.NoError(t, err)
	require.Equal(t, Satisfiable, res.Outcome)
	assert.Equal(t, []bool{false, true, false}, res.Solution.Assignment)
	require.NoError(t, Verify(grid, res.Solution.Grid))
}

func TestBruteForce_CapYieldsTimeout(t *testing.T) {
	// A cap below the solution's mask index must stop with Timeout, not
	// misreport Unsatisfiable.
	grid := MustParseGrid(sampleGrid5) // unique solution is mask 15
	res, err := (&BruteForceSolver{MaxCombinations: 4}).Solve(context.Background(), grid)
	require.NoError(t, err)
	assert.Equal(t, Timeout, res.Outcome)
	assert.Nil(t, res.Solution)
}

func TestBruteForce_ContextCancelled(t *testing.T) {
	grid := MustParseGrid(sampleGrid5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := (&BruteForceSolver{}).Solve(ctx, grid)
	require.NoError(t, err)
	assert.Equal(t, Timeout, res.Outcome)
}

func TestBruteForce_TooManyVariables(t *testing.T) {
	// 8x8 all empty: 64 variables exceed what a 64-bit mask enumeration
	// can address.
	cells := make([][]Cell, 8)
	for r := range cells {
		cells[r] = make([]Cell, 8)
		for c := range cells[r] {
			cells[r][c] = Empty()
		}
	}
	grid, err := NewGrid(cells)
	require.NoError(t, err)

	_, err = (&BruteForceSolver{}).Solve(context.Background(), grid)
	assert.Error(t, err)
}

func TestCountSolutions(t *testing.T) {
	// chainRow admits exactly two labelings: trap-gem-trap and
	// gem-trap-gem.
	n, err := CountSolutions(context.Background(), MustParseGrid(chainRow), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = CountSolutions(context.Background(), MustParseGrid(unsatTriangle), 0)
	require.NoError(t, err)
	assert.Zero(t, n)

	// The max argument short-circuits the enumeration.
	n, err = CountSolutions(context.Background(), MustParseGrid(freeRow), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
