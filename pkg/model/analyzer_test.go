package model

import "testing"

func TestFindGroupLoneIsland(t *testing.T) {
	board := [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	g := NewGrid(board, nil)
	center := g.Index(1, 1)
	g.Cells[center].State = Island

	group := g.FindGroup(center, false, true)
	if group.Type != TypeLoneIsland {
		t.Fatalf("want LoneIsland, got %v", group.Type)
	}
	if len(group.Spaces) != 1 {
		t.Fatalf("want 1 space, got %d", len(group.Spaces))
	}
}

func TestFindGroupIslandComplete(t *testing.T) {
	board := [][]int{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	g := NewGrid(board, nil)
	seed := g.Index(0, 0)
	g.Cells[g.Index(1, 0)].State = Island

	group := g.FindGroup(seed, false, true)
	if group.Type != TypeIsland {
		t.Fatalf("want Island, got %v", group.Type)
	}
	if len(group.Spaces) != 2 {
		t.Fatalf("want 2 spaces, got %d", len(group.Spaces))
	}
	for _, s := range group.Spaces {
		if g.Cells[s].Owner != seed {
			t.Errorf("cell %d not owned by seed", s)
		}
	}
}

func TestFindGroupInvalidIslandTooBig(t *testing.T) {
	board := [][]int{
		{1, 0, 0},
	}
	g := NewGrid(board, nil)
	seed := g.Index(0, 0)
	g.Cells[g.Index(1, 0)].State = Island

	group := g.FindGroup(seed, false, true)
	if group.Type != TypeInvalidIsland {
		t.Fatalf("want InvalidIsland, got %v", group.Type)
	}
}

func TestFindGroupWaterClosed(t *testing.T) {
	// A plus-shaped water region connected only through the center, with
	// every arm's other neighbors pinned down by corner seeds, so the
	// region has no dofs at all.
	board := [][]int{
		{1, 0, 1},
		{0, 0, 0},
		{1, 0, 1},
	}
	g := NewGrid(board, nil)
	for _, p := range []Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}} {
		g.Cells[g.Index(p.X, p.Y)].State = Water
	}
	group := g.FindGroup(g.Index(1, 1), false, true)
	if group.Type != TypeClosedWater {
		t.Fatalf("want ClosedWater, got %v", group.Type)
	}
	if len(group.Spaces) != 5 {
		t.Fatalf("want 5 water spaces, got %d", len(group.Spaces))
	}
}

func TestFindGroupCachesUntilInvalidated(t *testing.T) {
	board := [][]int{{2, 0}}
	g := NewGrid(board, nil)
	seed := g.Index(0, 0)
	first := g.FindGroup(seed, false, true)
	second := g.FindGroup(seed, false, true)
	if first != second {
		t.Fatalf("expected cached group to be returned")
	}

	g.ForgetGroup(seed)
	dof := g.Index(1, 0)
	g.Cells[dof].State = Island
	third := g.FindGroup(seed, false, true)
	if third == first {
		t.Fatalf("expected a fresh group after mutation+forget")
	}
	if third.Type != TypeIsland {
		t.Fatalf("want Island after completing, got %v", third.Type)
	}
}

func TestFindGroupInferredPromotesDofs(t *testing.T) {
	board := [][]int{{2, 0}}
	g := NewGrid(board, nil)
	seed := g.Index(0, 0)
	group := g.FindGroup(seed, true, true)
	if group.Type != TypeIsland {
		t.Fatalf("want Island, got %v", group.Type)
	}
	if g.Cells[g.Index(1, 0)].State != Infer {
		t.Fatalf("expected dof promoted to Infer")
	}
}
