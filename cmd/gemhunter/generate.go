package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gemhunter/pkg/gemhunter"
)

func newGenerateCmd() *cobra.Command {
	var (
		count    int
		minSize  int
		maxSize  int
		trapProb float64
		seed     uint64
		dir      string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random puzzles with their reference labelings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if minSize < 1 || maxSize < minSize {
				return fmt.Errorf("bad size range %d..%d", minSize, maxSize)
			}
			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			for i := 1; i <= count; i++ {
				size := minSize + rng.IntN(maxSize-minSize+1)
				puzzle, solution, err := gemhunter.Generate(rng, size, size, trapProb)
				if err != nil {
					return err
				}

				name := fmt.Sprintf("map_%dx%d_%d.txt", size, size, i)
				mapPath := uniquePath(filepath.Join(dir, name))
				if err := writeGridFile(mapPath, puzzle); err != nil {
					return err
				}
				solPath := filepath.Join(dir, "solution_from_generator", filepath.Base(mapPath))
				if err := writeGridFile(solPath, solution); err != nil {
					return err
				}
				log.WithField("map", mapPath).WithField("size", size).Info("generated")
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of maps to generate")
	cmd.Flags().IntVar(&minSize, "min-size", 4, "minimum grid size")
	cmd.Flags().IntVar(&maxSize, "max-size", 8, "maximum grid size")
	cmd.Flags().Float64Var(&trapProb, "trap-prob", 0.25, "per-cell trap probability")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&dir, "dir", "d", "maps", "output directory")
	return cmd
}

// uniquePath appends a counter rather than overwrite an existing map file.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
