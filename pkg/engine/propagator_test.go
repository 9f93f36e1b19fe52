package engine

import (
	"testing"

	"github.com/phung/nurikabe/pkg/model"
)

func TestProcessGrowsSingleDofIsland(t *testing.T) {
	b := [][]int{
		{3, 0, 0},
	}
	g := model.NewGrid(b, nil)
	p := NewPropagator(g, nil, nil, nil)

	seed := g.Seeds[0]
	p.Enqueue(seed)
	p.Process()

	for x := 0; x < 3; x++ {
		idx := g.Index(x, 0)
		if g.Cells[idx].State.IsIslandLike() == false && !g.Cells[idx].IsSeed() {
			t.Errorf("cell (%d,0) should be part of the forced island, got %v", x, g.Cells[idx].State)
		}
	}
}

func TestProcessCompletesIslandAndFloodsDofs(t *testing.T) {
	b := [][]int{
		{2, 0, 0},
	}
	g := model.NewGrid(b, nil)
	p := NewPropagator(g, nil, nil, nil)

	mid := g.Index(1, 0)
	p.Alter(mid, model.Island, nil)
	p.Process()

	last := g.Index(2, 0)
	if g.Cells[last].State != model.Water {
		t.Fatalf("want completed island to flood its last dof with water, got %v", g.Cells[last].State)
	}
}

func TestCommonBlanksSharedFork(t *testing.T) {
	b := [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	g := model.NewGrid(b, nil)
	topLeft := g.Index(0, 0)
	bottomRight := g.Index(2, 2)

	shared := commonBlanks(g, []int{topLeft, bottomRight})
	if len(shared) != 0 {
		t.Fatalf("opposite corners of a 3x3 grid share no neighbor, got %v", shared)
	}

	adjacent := commonBlanks(g, []int{g.Index(0, 0), g.Index(2, 0)})
	want := g.Index(1, 0)
	found := false
	for _, idx := range adjacent {
		if idx == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("(1,0) should be the common blank neighbor of (0,0) and (2,0), got %v", adjacent)
	}
}

func TestGoodPairRequiresOppositeWaterCorners(t *testing.T) {
	b := [][]int{
		{0, 0},
		{0, 0},
	}
	g := model.NewGrid(b, nil)
	// All four cells blank: not a good pair (needs exactly two waters).
	if _, _, ok := goodPair(g, 0, 0); ok {
		t.Fatalf("an all-blank 2x2 should not be a good pair")
	}

	g.Cells[g.Index(0, 0)].State = model.Water
	g.Cells[g.Index(1, 0)].State = model.Water
	// The remaining (aligned) blanks have no reachers set, so still not a good pair.
	if _, _, ok := goodPair(g, 0, 0); ok {
		t.Fatalf("blanks without a shared single reacher should not be a good pair")
	}

	b1, b2 := g.Index(0, 1), g.Index(1, 1)
	seedIdx := 99
	g.Cells[b1].Reachers = []int{seedIdx}
	g.Cells[b2].Reachers = []int{seedIdx}
	gotB1, gotB2, ok := goodPair(g, 0, 0)
	if !ok {
		t.Fatalf("aligned waters with a shared single reacher should be a good pair")
	}
	if (gotB1 != b1 || gotB2 != b2) && (gotB1 != b2 || gotB2 != b1) {
		t.Fatalf("unexpected blank pair: got (%d,%d), want (%d,%d)", gotB1, gotB2, b1, b2)
	}
}

func TestAlterIsIdempotentNoop(t *testing.T) {
	// An unowned anonymous island mark, far from any seed, stays unowned; an
	// unowned Alter to the same state is a no-op that must not re-emit.
	b := [][]int{
		{0, 0},
		{0, 0},
	}
	g := model.NewGrid(b, nil)
	cs := NewChangeStream()
	p := NewPropagator(g, cs, nil, nil)

	idx := g.Index(0, 0)
	p.Alter(idx, model.Island, nil)
	if g.Cells[idx].Owner != -1 {
		t.Fatalf("a lone island mark with no nearby seed should remain unowned")
	}
	cs.Drain()
	p.Alter(idx, model.Island, nil)
	if events := cs.Drain(); len(events) != 0 {
		t.Fatalf("re-altering an unowned cell to the same state should not emit, got %d events", len(events))
	}
}
