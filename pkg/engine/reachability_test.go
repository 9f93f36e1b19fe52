package engine

import (
	"testing"

	"github.com/phung/nurikabe/pkg/model"
)

func TestReachabilitySingleFragmentBudget(t *testing.T) {
	// A seed of 2 needs exactly one more cell; only its immediate dof is
	// within reach, the cells further down the row are not.
	b := [][]int{
		{2, 0, 0, 0, 0},
	}
	g := model.NewGrid(b, nil)

	forced := Reachability(g)
	if len(forced) != 0 {
		t.Fatalf("a single unsplit island has no chaining deduction, got %v", forced)
	}

	near := g.Index(1, 0)
	if reachers := g.Cells[near].Reachers; len(reachers) != 1 || reachers[0] != g.Seeds[0] {
		t.Fatalf("want (1,0) reached by the seed alone, got %v", reachers)
	}
	for _, x := range []int{2, 3, 4} {
		idx := g.Index(x, 0)
		if len(g.Cells[idx].Reachers) != 0 {
			t.Errorf("cell (%d,0) is out of the seed's remaining budget, got reachers %v", x, g.Cells[idx].Reachers)
		}
	}
}
