package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gemhunter/pkg/gemhunter"
)

func newCNFCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "cnf <map-file>",
		Short: "Export a puzzle's constraint set in DIMACS CNF format",
		Long: "cnf encodes the clue constraints of a map into conjunctive normal form\n" +
			"and writes them in the DIMACS exchange format, for consumption by any\n" +
			"external SAT solver. Variables are numbered over the empty cells in\n" +
			"row-major order, so a returned model maps straight back onto the grid.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := loadGridFile(args[0])
			if err != nil {
				return err
			}
			reg := gemhunter.NewRegistry(grid)
			set, err := gemhunter.NewEncoder(grid, reg).Encode()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := set.WriteDIMACS(w); err != nil {
				return err
			}
			log.WithField("variables", set.NumVars()).
				WithField("clauses", set.Len()).
				Info("encoded")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
