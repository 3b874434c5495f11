package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gemhunter/pkg/gemhunter"
)

func TestRunner_SolvesEveryPair(t *testing.T) {
	jobs := []Job{
		{Name: "solvable", Grid: gemhunter.MustParseGrid("1 5\n_,1,_,1,_")},
		{Name: "contradictory", Grid: gemhunter.MustParseGrid("1 5\n1,_,0,_,_")},
	}
	solvers := []gemhunter.Solver{
		&gemhunter.BacktrackingSolver{},
		&gemhunter.BruteForceSolver{},
	}

	runner := &Runner{Workers: 2}
	runs, err := runner.Run(context.Background(), jobs, solvers)
	require.NoError(t, err)
	require.Len(t, runs, 4)

	// Results come back in job-major, solver-minor order regardless of
	// which worker finished first.
	assert.Equal(t, "solvable", runs[0].Job)
	assert.Equal(t, "backtracking", runs[0].Solver)
	assert.Equal(t, "solvable", runs[1].Job)
	assert.Equal(t, "bruteforce", runs[1].Solver)
	assert.Equal(t, "contradictory", runs[2].Job)

	for _, run := range runs {
		require.NoError(t, run.Err)
		want := gemhunter.Satisfiable
		if run.Job == "contradictory" {
			want = gemhunter.Unsatisfiable
		}
		assert.Equal(t, want, run.Result.Outcome, "%s/%s", run.Job, run.Solver)
	}
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []Job{{Name: "any", Grid: gemhunter.MustParseGrid("1 3\n_,_,_")}}
	runner := &Runner{Workers: 1}

	// Submission may fail outright or the solves may observe the
	// cancelled context; either way Run returns without hanging.
	runs, err := runner.Run(ctx, jobs, []gemhunter.Solver{&gemhunter.BacktrackingSolver{}})
	if err == nil {
		require.Len(t, runs, 1)
	}
}
