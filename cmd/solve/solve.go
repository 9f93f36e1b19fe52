// Package solve implements the CLI's required entry point: load an archived
// board by size and try to solve it.
package solve

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/phung/nurikabe/pkg/common"
	"github.com/phung/nurikabe/pkg/engine"
	"github.com/phung/nurikabe/pkg/model"
	"github.com/phung/nurikabe/pkg/puzzle"
	"github.com/phung/nurikabe/pkg/render"
	"github.com/phung/nurikabe/pkg/ui"
)

var (
	archiveDir  string
	scoresFile  string
	renderStyle string
)

// ErrInvalidSize is returned for exit code 1: the size argument is not one
// of the puzzle archive's supported sizes.
var ErrInvalidSize = errors.New("size must be one of 5, 7, 10, 12, 15, 20")

// ErrSolveFailed is returned for exit code 2: the engine reported a
// contradiction, or stopped without reaching a terminal verdict.
var ErrSolveFailed = errors.New("solve did not succeed")

// Cmd is the `solve` command.
var Cmd = &cobra.Command{
	Use:   "solve <size> [index]",
	Short: "Solve an archived puzzle by size",
	Long: `Load a puzzle from the archive by its square size and run the
solver against it.

size must be one of 5, 7, 10, 12, 15, 20. index selects which archived board
of that size to load (1-based); omit it, or pass 0, to pick one at random.

Exit codes: 0 on a solved board, 1 on an invalid size, 2 if the engine
reports a contradiction.

Examples:
  nurikabe solve 5
  nurikabe solve 10 3 --verbose`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSolve,
}

func init() {
	Cmd.Flags().StringVar(&archiveDir, "archive", "assets/puzzles", "directory holding the NDJSON board archives")
	Cmd.Flags().StringVar(&scoresFile, "scores", "assets/scores.json", "path to the high-score file")
	Cmd.Flags().StringVarP(&renderStyle, "style", "s", "unicode", "render style for the solved board: ascii or unicode")
}

func runSolve(cmd *cobra.Command, args []string) error {
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", args[0], ErrInvalidSize)
	}
	if !validSize(size) {
		return ErrInvalidSize
	}

	index := 0
	if len(args) == 2 {
		index, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}
	}

	src := puzzle.NewArchiveSource(archiveDir)
	board, picked, err := src.LoadBoard(size, size, index)
	if err != nil {
		return fmt.Errorf("loading %dx%d puzzle: %w", size, size, err)
	}
	common.Info("Solving %dx%d puzzle #%d", size, size, picked)

	g := model.NewGrid(board, nil)
	metrics := &engine.Metrics{}

	spin := ui.NewSpinner(fmt.Sprintf("solving %dx%d #%d", size, size, picked))
	spin.Start()
	start := time.Now()
	verdict := engine.Solve(g, nil, nil, metrics)
	elapsed := time.Since(start)
	spin.Stop()

	common.Verbose("loops=%d grouped=%d processed=%d guessed=%d elapsed=%s",
		metrics.Loops, metrics.Grouped, metrics.Processed, metrics.Guessed, elapsed)

	render.Grid(cmd.OutOrStdout(), g, render.ParseStyle(renderStyle), true)

	switch verdict {
	case engine.Solved:
		common.Info("Solved in %s", elapsed)
		recordScore(size, picked, elapsed)
		return nil
	case engine.ErrorState:
		common.Error("solver reached a contradiction")
		return ErrSolveFailed
	default:
		common.Warning("solver stopped without a verdict")
		return ErrSolveFailed
	}
}

func recordScore(size, picked int, elapsed time.Duration) {
	sb, err := puzzle.LoadScoreboard(scoresFile)
	if err != nil {
		common.Warning("could not load scoreboard: %v", err)
		return
	}
	improved, err := sb.Record(size, size, puzzle.Score{
		BestTime:   int(elapsed.Milliseconds()),
		PlayerName: "cli",
		Epoch:      0,
	})
	if err != nil {
		common.Warning("could not record score: %v", err)
		return
	}
	if improved {
		common.Info("New best time for %dx%d puzzle #%d: %s", size, size, picked, elapsed)
	}
}

func validSize(n int) bool {
	for _, s := range common.DefaultPuzzleSizes {
		if s == n {
			return true
		}
	}
	return false
}
