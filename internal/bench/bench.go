// Package bench runs batches of puzzles across solver strategies and
// reports per-run outcomes and timings. Each (grid, solver) pair is one
// independent solve with its own registry and constraint store, so the
// batch fans out over a worker pool without any shared mutable state.
package bench

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/gitrdm/gemhunter/internal/parallel"
	"github.com/gitrdm/gemhunter/pkg/gemhunter"
)

// Job is one named puzzle in a batch.
type Job struct {
	Name string
	Grid *gemhunter.Grid
}

// Run is the recorded result of solving one Job with one solver.
type Run struct {
	Job    string
	Solver string
	Result *gemhunter.Result
	Err    error
}

// Runner executes batches.
type Runner struct {
	Workers int            // pool size; 0 means one per CPU core
	Log     *logrus.Logger // nil silences progress logging
}

// Run solves every job with every solver and returns one Run per pair, in
// deterministic (job-major, solver-minor) order regardless of completion
// order. Individual failures are recorded, not fatal; the only error
// returned is context cancellation while submitting work.
func (r *Runner) Run(ctx context.Context, jobs []Job, solvers []gemhunter.Solver) ([]Run, error) {
	pool := parallel.NewWorkerPool(r.Workers)
	defer pool.Shutdown()

	runs := make([]Run, len(jobs)*len(solvers))
	var wg sync.WaitGroup
	for ji, job := range jobs {
		for si, solver := range solvers {
			idx := ji*len(solvers) + si
			job, solver := job, solver
			wg.Add(1)
			err := pool.Submit(ctx, func() {
				defer wg.Done()
				res, err := solver.Solve(ctx, job.Grid)
				runs[idx] = Run{Job: job.Name, Solver: solver.Name(), Result: res, Err: err}
				r.log(runs[idx])
			})
			if err != nil {
				wg.Done()
				wg.Wait()
				return nil, err
			}
		}
	}
	wg.Wait()
	return runs, nil
}

func (r *Runner) log(run Run) {
	if r.Log == nil {
		return
	}
	entry := r.Log.WithFields(logrus.Fields{
		"job":    run.Job,
		"solver": run.Solver,
	})
	if run.Err != nil {
		entry.WithError(run.Err).Warn("solve failed")
		return
	}
	entry.WithFields(logrus.Fields{
		"outcome":   run.Result.Outcome.String(),
		"duration":  run.Result.Duration,
		"decisions": run.Result.Stats.Decisions,
	}).Info("solve finished")
}
