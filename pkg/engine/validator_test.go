package engine

import (
	"testing"

	"github.com/phung/nurikabe/pkg/model"
)

func TestStatusOkayOnUnfinishedBoard(t *testing.T) {
	b := [][]int{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	g := model.NewGrid(b, nil)
	if v := Status(g); v != Okay {
		t.Fatalf("want Okay on a freshly loaded board, got %v", v)
	}
}

func TestStatusSolvedSingleSeed(t *testing.T) {
	b := [][]int{{1, 0}}
	g := model.NewGrid(b, nil)
	blank := g.Index(1, 0)
	if _, err := g.SetState(1, 0, model.Water); err != nil {
		t.Fatal(err)
	}
	g.SetOwner(blank, blank)

	if v := Status(g); v != Solved {
		t.Fatalf("want Solved, got %v", v)
	}
}

func TestStatusErrorOnOversizedIsland(t *testing.T) {
	b := [][]int{{1, 0, 0}}
	g := model.NewGrid(b, nil)
	g.Cells[g.Index(1, 0)].State = model.Island
	g.Cells[g.Index(2, 0)].State = model.Island

	if v := Status(g); v != ErrorState {
		t.Fatalf("want ErrorState for an island bigger than its clue, got %v", v)
	}
}
