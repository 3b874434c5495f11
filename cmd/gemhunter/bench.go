package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gemhunter/internal/bench"
	"github.com/gitrdm/gemhunter/pkg/gemhunter"
)

func newBenchCmd() *cobra.Command {
	var (
		solverList string
		workers    int
		budget     uint64
		cpuprofile string
	)
	cmd := &cobra.Command{
		Use:   "bench <map-file>...",
		Short: "Solve a batch of puzzles with several strategies and compare timings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuprofile != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(cpuprofile)).Stop()
			}

			var opts []gemhunter.EngineOption
			if budget > 0 {
				opts = append(opts, gemhunter.WithStepBudget(budget))
			}
			var solvers []gemhunter.Solver
			for _, name := range strings.Split(solverList, ",") {
				s, err := solverByName(strings.TrimSpace(name), opts)
				if err != nil {
					return err
				}
				solvers = append(solvers, s)
			}

			var jobs []bench.Job
			for _, path := range args {
				grid, err := loadGridFile(path)
				if err != nil {
					return err
				}
				jobs = append(jobs, bench.Job{Name: filepath.Base(path), Grid: grid})
			}

			runner := &bench.Runner{Workers: workers, Log: log}
			runs, err := runner.Run(cmd.Context(), jobs, solvers)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-24s %-14s %-14s %12s %10s\n", "map", "solver", "outcome", "duration", "decisions")
			for _, run := range runs {
				if run.Err != nil {
					fmt.Fprintf(w, "%-24s %-14s error: %v\n", run.Job, run.Solver, run.Err)
					continue
				}
				fmt.Fprintf(w, "%-24s %-14s %-14s %12s %10d\n",
					run.Job, run.Solver, run.Result.Outcome, run.Result.Duration, run.Result.Stats.Decisions)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&solverList, "solvers", "backtracking,bruteforce", "comma-separated solver names")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel solves (0 = one per CPU core)")
	cmd.Flags().Uint64Var(&budget, "budget", 0, "decision budget for the backtracking engine")
	cmd.Flags().StringVar(&cpuprofile, "cpuprofile", "", "write a CPU profile into this directory")
	return cmd
}
