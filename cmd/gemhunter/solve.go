package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gemhunter/pkg/gemhunter"
	"github.com/gitrdm/gemhunter/pkg/gemhunter/satbackend"
)

func newSolveCmd() *cobra.Command {
	var (
		solverName string
		budget     uint64
		timeout    time.Duration
		output     string
		trace      bool
	)
	cmd := &cobra.Command{
		Use:   "solve <map-file>",
		Short: "Solve one puzzle and write the labeled grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := loadGridFile(args[0])
			if err != nil {
				return err
			}

			var opts []gemhunter.EngineOption
			if budget > 0 {
				opts = append(opts, gemhunter.WithStepBudget(budget))
			}
			if trace {
				opts = append(opts, gemhunter.WithTracer(gemhunter.NewLogTracer(log)))
			}
			solver, err := solverByName(solverName, opts)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			res, err := solver.Solve(ctx, grid)
			if err != nil {
				return err
			}
			log.WithField("solver", solver.Name()).
				WithField("outcome", res.Outcome.String()).
				WithField("duration", res.Duration).
				Info("solve finished")

			switch res.Outcome {
			case gemhunter.Unsatisfiable:
				return fmt.Errorf("puzzle has no consistent labeling")
			case gemhunter.Timeout:
				return fmt.Errorf("search budget exhausted before a result")
			}

			if output == "" {
				output = solutionPath(args[0], solver.Name())
			}
			if err := writeGridFile(output, res.Solution.Grid); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Solution.Grid)
			fmt.Fprintln(cmd.OutOrStdout(), "solution written to", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&solverName, "solver", "s", "backtracking", "backtracking, bruteforce, gini, or gophersat")
	cmd.Flags().Uint64Var(&budget, "budget", 0, "decision budget for the backtracking engine (0 = unbounded)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "wall-clock limit (0 = none)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "solution file (default solution/<map>_<solver>.txt)")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every decision and conflict (backtracking only)")
	return cmd
}

// solverByName maps a CLI name to a solver strategy. The engine options
// apply to the native backtracking engine only.
func solverByName(name string, opts []gemhunter.EngineOption) (gemhunter.Solver, error) {
	switch strings.ToLower(name) {
	case "backtracking":
		return &gemhunter.BacktrackingSolver{Options: opts}, nil
	case "bruteforce":
		return &gemhunter.BruteForceSolver{}, nil
	case "gini":
		return satbackend.NewSolver(satbackend.Gini{}), nil
	case "gophersat":
		return satbackend.NewSolver(satbackend.Gophersat{}), nil
	}
	return nil, fmt.Errorf("unknown solver %q", name)
}

func loadGridFile(path string) (*gemhunter.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	grid, err := gemhunter.ParseGrid(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

func writeGridFile(path string, g *gemhunter.Grid) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(g.String()+"\n"), 0o644)
}

// solutionPath places the solution next to the map, in a solution/
// subdirectory, tagged with the solver that produced it.
func solutionPath(mapPath, solver string) string {
	dir := filepath.Dir(mapPath)
	base := strings.TrimSuffix(filepath.Base(mapPath), filepath.Ext(mapPath))
	return filepath.Join(dir, "solution", fmt.Sprintf("%s_%s.txt", base, solver))
}
