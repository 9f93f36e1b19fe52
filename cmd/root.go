package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phung/nurikabe/cmd/render"
	"github.com/phung/nurikabe/cmd/repair"
	"github.com/phung/nurikabe/cmd/scores"
	"github.com/phung/nurikabe/cmd/solve"
	"github.com/phung/nurikabe/cmd/validate"
	"github.com/phung/nurikabe/pkg/common"
)

var (
	// Global flags
	verbose bool
	workers string

	// Parsed workers value
	WorkersCount int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nurikabe",
	Short: "Nurikabe puzzle solver and archive tool",
	Long: `Nurikabe is a CLI tool for solving, validating, and rendering
Nurikabe puzzles, and for repairing and scoring its puzzle archive.

It provides commands for:
  - Solving archived puzzles with the constraint-propagation/backtracking engine
  - Validating a board's current marks for contradictions
  - Rendering a board as an ASCII/Unicode grid
  - Repairing a puzzle archive's malformed entries
  - Reporting recorded best solve times`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose

		count, err := common.ParseWorkerCount(workers)
		if err != nil {
			return fmt.Errorf("invalid --workers value: %w", err)
		}
		WorkersCount = count
		common.Verbose("Workers: %d (from flag: %s)", WorkersCount, workers)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, solve.ErrInvalidSize):
		os.Exit(1)
	case errors.Is(err, solve.ErrSolveFailed):
		os.Exit(2)
	default:
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workers, "workers", "j", "half", "concurrent repair workers (integer, 'half', or 'full')")

	rootCmd.AddCommand(solve.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(render.Cmd)
	rootCmd.AddCommand(repair.Cmd)
	rootCmd.AddCommand(scores.Cmd)
}
