package engine

import (
	"github.com/phung/nurikabe/pkg/common"
	"github.com/phung/nurikabe/pkg/model"
)

// ForcedIsland is a deduction made while chaining multi-fragment seeds: the
// cell at Cell must belong to Owner's island no matter which chain turns
// out to be the true one.
type ForcedIsland struct {
	Cell  int
	Owner int
}

// Reachability recomputes the reacher set of every unowned cell and returns
// any forced-island deductions discovered while chaining seeds whose island
// has split into disconnected fragments.
func Reachability(g *model.Grid) []ForcedIsland {
	for i := range g.Cells {
		g.FindGroup(i, false, true)
	}

	for i := range g.Cells {
		if g.Cells[i].Owner == -1 {
			g.Cells[i].Reachers = nil
		}
	}

	chainerOrder := []int{}
	chainerGroups := map[int][]*model.Group{}

	for i := range g.Cells {
		c := &g.Cells[i]
		grp := g.FindGroup(i, false, true)
		if grp == nil || grp.Type != model.TypeLoneIsland {
			continue
		}
		if c.Owner == -1 || !g.Cells[c.Owner].IsSeed() {
			continue
		}
		grp.Numbers = []int{c.Owner}
		if _, exists := chainerGroups[c.Owner]; !exists {
			ownerGroup := g.FindGroup(c.Owner, false, true)
			chainerGroups[c.Owner] = []*model.Group{ownerGroup}
			chainerOrder = append(chainerOrder, c.Owner)
		}
		dup := false
		for _, existing := range chainerGroups[c.Owner] {
			if existing == grp {
				dup = true
				break
			}
		}
		if !dup {
			chainerGroups[c.Owner] = append(chainerGroups[c.Owner], grp)
		}
	}

	hasChainers := make(map[int]bool, len(chainerOrder))
	for _, s := range chainerOrder {
		hasChainers[s] = true
	}

	var forced []ForcedIsland

	singleFragmentReach := func(seedIdx int) {
		seedGroup := g.FindGroup(seedIdx, false, true)
		num := g.Cells[seedIdx].State.SeedValue()
		canReach := reaches(g, seedGroup, num-len(seedGroup.Spaces))
		for _, r := range canReach {
			g.Cells[r].Reachers = append(g.Cells[r].Reachers, seedIdx)
		}
	}

	for _, seedIdx := range g.Seeds {
		if !hasChainers[seedIdx] {
			singleFragmentReach(seedIdx)
		}
	}

	for _, seedIdx := range chainerOrder {
		groups := chainerGroups[seedIdx]
		num := g.Cells[seedIdx].State.SeedValue()
		left := num - len(groups[0].Spaces) - len(groups[1].Spaces) + 1

		if len(groups) > common.MaxChainFragments || left > common.ChainDepthLimit {
			singleFragmentReach(seedIdx)
			continue
		}

		owns := append([]int(nil), g.Cells[seedIdx].Owns...)
		for _, s := range owns {
			g.Cells[s].State = model.Infer
		}

		var chains [][]int
		for _, origin := range groups[0].Spaces {
			for _, target := range groups[1].Spaces {
				chain(g, origin, target, left, nil, &chains)
			}
		}

		for _, s := range owns {
			g.Cells[s].State = model.Island
		}
		g.Cells[seedIdx].State = model.State(num)

		if len(chains) == 0 {
			singleFragmentReach(seedIdx)
			continue
		}

		var canReaches [][]int
		for _, c := range chains {
			for _, s := range c {
				g.Cells[s].State = model.Island
			}
			grp := g.FindGroup(seedIdx, false, false)
			canReach := reaches(g, grp, num-len(grp.Spaces))
			canReaches = append(canReaches, canReach)
			for _, s := range c {
				g.Cells[s].State = model.Blank
				g.ForgetReachers(s)
				g.ForgetGroup(s)
			}
		}

		union := map[int]bool{}
		for _, c := range chains {
			for _, s := range c {
				union[s] = true
			}
		}
		for _, cr := range canReaches {
			for _, s := range cr {
				union[s] = true
			}
		}
		for s := range union {
			g.Cells[s].Reachers = append(g.Cells[s].Reachers, seedIdx)
		}

		membership := map[int]int{}
		for _, c := range chains {
			seenInThis := map[int]bool{}
			for _, s := range c {
				seenInThis[s] = true
			}
			for s := range seenInThis {
				membership[s]++
			}
		}
		for s, cnt := range membership {
			if cnt == len(chains) {
				forced = append(forced, ForcedIsland{Cell: s, Owner: seedIdx})
			}
		}
	}

	return forced
}

// reaches runs a budgeted breadth-first search from a group's dofs,
// returning every unowned blank it can visit without crossing a cell
// bordering another seed's island. Visited membership is marked at enqueue
// time rather than at dequeue time, so a cell is never processed twice
// regardless of how many paths reach it, avoiding a duplicate-reacher
// artifact a tag-on-dequeue ordering would be prone to.
func reaches(g *model.Grid, group *model.Group, startDepth int) []int {
	type item struct{ idx, depth int }
	visited := make([]bool, len(g.Cells))
	var canReach []int
	var queue []item

	owner := -1
	if len(group.Numbers) > 0 {
		owner = group.Numbers[0]
	}

	for _, d := range group.Dofs {
		if !visited[d] {
			visited[d] = true
			queue = append(queue, item{d, startDepth})
		}
	}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		c := &g.Cells[it.idx]

		if it.depth <= 0 {
			continue
		}
		if c.Owner != -1 && c.Owner != owner {
			continue
		}

		clash := false
		for _, n := range c.Neighbors() {
			nc := &g.Cells[n]
			if nc.IsIslandLike() && nc.Owner != -1 && nc.Owner != owner {
				clash = true
			} else if !visited[n] {
				visited[n] = true
				queue = append(queue, item{n, it.depth - 1})
			}
		}
		if !clash && c.Owner == -1 {
			canReach = append(canReach, it.idx)
		}
	}
	return canReach
}

// chain enumerates every walk from `this` to `goal` through blank/Infer
// cells, budgeted by `left` steps and pruned by Manhattan distance, that
// never borders a foreign island. Each discovered walk (its blank cells,
// in order) is appended to *chains.
func chain(g *model.Grid, thisIdx, goalIdx, left int, used []int, chains *[][]int) {
	if thisIdx == goalIdx {
		*chains = append(*chains, append([]int(nil), used...))
		return
	}
	if left < g.Manhattan(thisIdx, goalIdx) {
		return
	}

	thisCell := &g.Cells[thisIdx]
	for _, n := range thisCell.Neighbors() {
		nc := &g.Cells[n]
		if nc.State == model.Island || nc.State.IsSeed() {
			return
		}
	}

	for _, n := range thisCell.Neighbors() {
		nc := &g.Cells[n]
		if nc.State != model.Blank && nc.State != model.Infer {
			continue
		}
		if thisCell.State == model.Blank {
			next := append(append([]int(nil), used...), thisIdx)
			chain(g, n, goalIdx, left-1, next, chains)
		} else {
			chain(g, n, goalIdx, left-1, used, chains)
		}
	}
}
