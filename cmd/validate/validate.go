// Package validate implements the `validate` CLI command: check a board's
// current marks for contradictions without running the solver.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phung/nurikabe/pkg/common"
	"github.com/phung/nurikabe/pkg/engine"
	"github.com/phung/nurikabe/pkg/model"
	"github.com/phung/nurikabe/pkg/puzzle"
)

// Cmd is the `validate` command.
var Cmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a board file for contradictions",
	Long: `Load a board (and its current island/water marks, if any) from a
JSON file and run the group analyzer's SOLVED/OKAY/ERROR classification over
it, without running the solver's search.

Examples:
  nurikabe validate board.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	f, err := puzzle.LoadFile(args[0])
	if err != nil {
		return err
	}
	g := f.Grid()

	var flagged []model.Point
	verdict := engine.Check(g, func(x, y int, s model.State) {
		flagged = append(flagged, model.Point{X: x, Y: y})
	})

	common.Info("Verdict: %s", verdict)
	for _, p := range flagged {
		common.Info("  flagged cell (%d, %d)", p.X, p.Y)
	}

	if verdict == engine.ErrorState {
		return fmt.Errorf("board is contradictory")
	}
	return nil
}
