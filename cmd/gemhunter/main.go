// Command gemhunter solves, generates, benchmarks, and exports Gem Hunter
// puzzles from the command line.
//
// Map files use the textual grid notation: a "rows cols" header line, then
// comma-separated rows of "_" (unknown), "T" (trap), "G" (gem), or a digit
// (clue).
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "gemhunter",
		Short: "Gem Hunter puzzle solver",
		Long: "gemhunter finds the traps and gems hidden in a Gem Hunter grid by\n" +
			"encoding its clues as exact-K CNF constraints and searching them with a\n" +
			"unit-propagating backtracking engine (or an external SAT backend).",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCNFCmd())
	root.AddCommand(newBenchCmd())
	return root
}
