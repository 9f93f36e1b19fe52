package engine

import (
	"testing"

	"github.com/phung/nurikabe/pkg/model"
)

func board(rows, cols int) [][]int {
	b := make([][]int, rows)
	for y := range b {
		b[y] = make([]int, cols)
	}
	return b
}

func TestSolveTrivialSingleSeed(t *testing.T) {
	b := board(5, 5)
	b[2][2] = 1
	g := model.NewGrid(b, nil)

	verdict := Solve(g, nil, nil, nil)
	if verdict != Solved {
		t.Fatalf("want Solved, got %v", verdict)
	}

	waterCount := 0
	for _, c := range g.Cells {
		if c.State == model.Water {
			waterCount++
		}
	}
	if waterCount != 24 {
		t.Fatalf("want 24 water cells, got %d", waterCount)
	}
	seed := g.Cells[g.Seeds[0]]
	for _, n := range seed.Neighbors() {
		if g.Cells[n].State != model.Water {
			t.Errorf("seed neighbor %v not water", g.Cells[n])
		}
	}
}

func TestSolveTwoCornerSeeds(t *testing.T) {
	b := board(5, 5)
	b[0][0] = 5
	b[4][4] = 5
	g := model.NewGrid(b, nil)

	verdict := Solve(g, nil, nil, nil)
	if verdict != Solved {
		t.Fatalf("want Solved, got %v", verdict)
	}
	for _, seedIdx := range g.Seeds {
		group := g.FindGroup(seedIdx, false, true)
		if len(group.Spaces) != 5 {
			t.Errorf("seed at index %d has island of size %d, want 5", seedIdx, len(group.Spaces))
		}
	}
}

func TestCheckContradictionTwoAdjacentSeeds(t *testing.T) {
	b := [][]int{
		{1, 1, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	g := model.NewGrid(b, nil)

	var flagged []model.Point
	verdict := Check(g, func(x, y int, s model.State) {
		flagged = append(flagged, model.Point{X: x, Y: y})
	})
	if verdict != ErrorState {
		t.Fatalf("want ErrorState, got %v", verdict)
	}
	if len(flagged) == 0 {
		t.Fatalf("expected at least one flagged cell")
	}
}

func TestChangeStreamEmitsInOrder(t *testing.T) {
	b := board(5, 5)
	b[2][2] = 1
	g := model.NewGrid(b, nil)
	cs := NewChangeStream()

	verdict := Solve(g, cs, nil, nil)
	if verdict != Solved {
		t.Fatalf("want Solved, got %v", verdict)
	}
	cs.Close()

	count := 0
	for {
		_, ok := cs.Recv()
		if !ok {
			break
		}
		count++
	}
	if count == 0 {
		t.Fatalf("expected change events to have been emitted")
	}
}

func TestCancelStopsSolve(t *testing.T) {
	b := board(7, 7)
	b[3][3] = 4
	g := model.NewGrid(b, nil)
	cancel := NewCancelFlag()
	cancel.Stop()

	verdict := Solve(g, nil, cancel, nil)
	if verdict == Solved {
		t.Fatalf("solve should not have completed once cancelled before it started")
	}
}
