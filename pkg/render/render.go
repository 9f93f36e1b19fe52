// Package render draws a Nurikabe grid to a terminal writer using an
// ASCII/Unicode glyph table.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/phung/nurikabe/pkg/model"
)

// Style selects the glyph set used to draw a grid.
type Style int

const (
	Unicode Style = iota
	ASCII
)

func ParseStyle(s string) Style {
	if strings.EqualFold(s, "ascii") {
		return ASCII
	}
	return Unicode
}

func glyphs(style Style) (water, island, blank string) {
	if style == ASCII {
		return "#", "o", "."
	}
	return "█", "●", "·"
}

// Grid writes an ASCII/Unicode visualization of g to w. showCoords adds row
// and column rulers around the border.
func Grid(w io.Writer, g *model.Grid, style Style, showCoords bool) {
	water, island, blank := glyphs(style)

	if showCoords {
		fmt.Fprint(w, "   ")
		for x := 0; x < g.Cols; x++ {
			fmt.Fprintf(w, "%2d ", x%100)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, "   +")
	for x := 0; x < g.Cols; x++ {
		fmt.Fprint(w, "---")
	}
	fmt.Fprintln(w, "+")

	for y := 0; y < g.Rows; y++ {
		if showCoords {
			fmt.Fprintf(w, "%2d ", y)
		} else {
			fmt.Fprint(w, "   ")
		}
		fmt.Fprint(w, "|")
		for x := 0; x < g.Cols; x++ {
			fmt.Fprintf(w, " %2s", glyph(g, g.Index(x, y), water, island, blank))
		}
		fmt.Fprintln(w, " |")
	}

	fmt.Fprint(w, "   +")
	for x := 0; x < g.Cols; x++ {
		fmt.Fprint(w, "---")
	}
	fmt.Fprintln(w, "+")

	fmt.Fprintf(w, "\nLegend: a number is a seed clue, %q is water, %q is island, %q is blank.\n", water, island, blank)
}

func glyph(g *model.Grid, idx int, water, island, blank string) string {
	c := &g.Cells[idx]
	switch {
	case c.IsSeed():
		return fmt.Sprintf("%d", c.State.SeedValue())
	case c.State == model.Water:
		return water
	case c.State == model.Island || c.State == model.Infer:
		return island
	default:
		return blank
	}
}
