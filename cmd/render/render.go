// Package render implements the `render` CLI command: draw a board (with
// its current marks, if any) as an ASCII/Unicode grid.
package render

import (
	"github.com/spf13/cobra"

	"github.com/phung/nurikabe/pkg/puzzle"
	gridrender "github.com/phung/nurikabe/pkg/render"
)

var (
	styleFlag  string
	coordsFlag bool
)

// Cmd is the `render` command.
var Cmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a board file to the terminal (ASCII/Unicode)",
	Long: `Render a board's current marks to the terminal for quick visual
inspection.

Examples:
  nurikabe render board.json
  nurikabe render board.json --style ascii --coords`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	Cmd.Flags().StringVarP(&styleFlag, "style", "s", "unicode", "render style: ascii or unicode")
	Cmd.Flags().BoolVarP(&coordsFlag, "coords", "c", false, "show axis coordinates")
}

func runRender(cmd *cobra.Command, args []string) error {
	f, err := puzzle.LoadFile(args[0])
	if err != nil {
		return err
	}
	gridrender.Grid(cmd.OutOrStdout(), f.Grid(), gridrender.ParseStyle(styleFlag), coordsFlag)
	return nil
}
