package render

import (
	"strings"
	"testing"

	"github.com/phung/nurikabe/pkg/model"
)

func TestParseStyle(t *testing.T) {
	if ParseStyle("ASCII") != ASCII {
		t.Fatalf("want ASCII style, case-insensitive")
	}
	if ParseStyle("") != Unicode {
		t.Fatalf("want Unicode as the default style")
	}
}

func TestGridRendersSeedAndBorder(t *testing.T) {
	b := [][]int{
		{1, 0},
		{0, 0},
	}
	g := model.NewGrid(b, nil)
	g.Cells[g.Index(1, 0)].State = model.Water

	var sb strings.Builder
	Grid(&sb, g, ASCII, true)
	out := sb.String()

	if !strings.Contains(out, "1") {
		t.Errorf("expected the seed's clue value to appear, got:\n%s", out)
	}
	if !strings.Contains(out, "#") {
		t.Errorf("expected the water glyph to appear, got:\n%s", out)
	}
	if !strings.Contains(out, "+---") {
		t.Errorf("expected a drawn border, got:\n%s", out)
	}
}

func TestGridUnicodeStyleUsesDistinctGlyphs(t *testing.T) {
	b := [][]int{{0, 0}}
	g := model.NewGrid(b, nil)
	g.Cells[g.Index(0, 0)].State = model.Island

	var sb strings.Builder
	Grid(&sb, g, Unicode, false)
	out := sb.String()

	if !strings.Contains(out, "●") {
		t.Errorf("expected the unicode island glyph, got:\n%s", out)
	}
}
