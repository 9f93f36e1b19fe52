package engine

import (
	"github.com/phung/nurikabe/pkg/common"
	"github.com/phung/nurikabe/pkg/model"
)

// Propagator drains a work queue of touched cells, applying the cheap local
// deduction rules until the grid reaches a fixed point. Every state change
// flows through Alter, which is the sole place that mutates a cell, emits
// its change event, and re-enqueues its neighborhood.
type Propagator struct {
	Grid    *model.Grid
	Changes *ChangeStream
	Cancel  *CancelFlag
	Metrics *Metrics

	queue  []int
	queued []bool
}

// NewPropagator builds a Propagator over g. changes, cancel, and metrics
// may be nil; a nil ChangeStream means events are simply not emitted, a
// nil CancelFlag means the propagator always runs to completion.
func NewPropagator(g *model.Grid, changes *ChangeStream, cancel *CancelFlag, metrics *Metrics) *Propagator {
	return &Propagator{
		Grid:    g,
		Changes: changes,
		Cancel:  cancel,
		Metrics: metrics,
		queued:  make([]bool, len(g.Cells)),
	}
}

func (p *Propagator) enqueue(idx int) {
	if !p.queued[idx] {
		p.queued[idx] = true
		p.queue = append(p.queue, idx)
	}
}

// Enqueue seeds the work queue with idx, for callers priming a solve.
func (p *Propagator) Enqueue(idx int) { p.enqueue(idx) }

func (p *Propagator) pop() int {
	idx := p.queue[0]
	p.queue = p.queue[1:]
	p.queued[idx] = false
	return idx
}

func (p *Propagator) solving() bool {
	return p.Cancel == nil || p.Cancel.Solving()
}

// Restore reverts the grid to snap, emitting a change event for every cell
// that actually moved, in the order they changed, and drops any
// queued-but-unprocessed work: a restored grid has no relationship to
// whatever the queue was accumulating before it.
func (p *Propagator) Restore(snap []model.State) {
	changed := p.Grid.Restore(snap)
	if p.Changes != nil {
		for _, idx := range changed {
			c := &p.Grid.Cells[idx]
			p.Changes.Emit(c.X, c.Y, c.State)
		}
	}
	for _, idx := range p.queue {
		p.queued[idx] = false
	}
	p.queue = p.queue[:0]
}

// Alter sets a cell's state, forgets the groups it and its neighbors
// belonged to, emits one change event, re-enqueues the neighborhood, and
// resolves ownership: knownOwner pins it explicitly, water owns itself,
// and an anonymous island either inherits its group's seed or, lacking
// one, its sole reacher.
func (p *Propagator) Alter(idx int, state model.State, knownOwner *int) bool {
	g := p.Grid
	c := &g.Cells[idx]

	for _, n := range c.Neighbors() {
		p.enqueue(n)
	}
	p.enqueue(idx)

	noop := c.State == state
	if noop {
		if knownOwner == nil {
			noop = c.Owner == -1
		} else {
			noop = *knownOwner == c.Owner
		}
	}
	if noop {
		return true
	}

	if c.State != state {
		c.State = state
	}
	g.ForgetGroup(idx)
	for _, n := range c.Neighbors() {
		g.ForgetGroup(n)
	}
	if p.Changes != nil {
		p.Changes.Emit(c.X, c.Y, state)
	}

	switch {
	case knownOwner != nil:
		g.SetOwner(idx, *knownOwner)
	case state == model.Water:
		g.SetOwner(idx, idx)
	case state == model.Island:
		if c.Owner == -1 {
			group := g.FindGroup(idx, false, true)
			if group != nil && len(group.Numbers) > 0 {
				owner := group.Numbers[0]
				for _, s := range group.Spaces {
					g.SetOwner(s, owner)
				}
			} else if len(c.Reachers) == 1 {
				g.SetOwner(idx, c.Reachers[0])
			}
		}
	}
	return true
}

// Process drains the work queue applying only the cheap local rules: a
// water group with one dof continues there if short of target, a
// not-yet-full island with one dof continues there (or, if full, floods
// its dofs with water), and a blank bordered by two different islands
// becomes water.
func (p *Propagator) Process() {
	g := p.Grid
	for len(p.queue) > 0 {
		if !p.solving() {
			return
		}
		idx := p.pop()
		if p.Metrics != nil {
			p.Metrics.Processed++
		}
		c := &g.Cells[idx]

		switch {
		case c.State == model.Water:
			group := g.FindGroup(idx, false, true)
			if len(group.Dofs) == 1 && len(group.Spaces) < g.Target {
				p.Alter(group.Dofs[0], model.Water, nil)
			}

		case c.IsIslandLike():
			group := g.FindGroup(idx, false, true)
			var left int
			if group.Type == model.TypeLoneIsland {
				left = 1
			} else {
				left = g.Cells[group.Numbers[0]].State.SeedValue() - len(group.Spaces)
			}
			if left == 0 {
				for _, d := range group.Dofs {
					p.Alter(d, model.Water, nil)
				}
			} else if len(group.Dofs) == 1 {
				p.Alter(group.Dofs[0], model.Island, nil)
			}

		case c.State == model.Blank:
			var shores []int
			for _, n := range c.Neighbors() {
				nc := &g.Cells[n]
				if nc.IsIslandLike() && nc.Owner != -1 && !containsInt(shores, nc.Owner) {
					shores = append(shores, nc.Owner)
				}
			}
			if len(shores) >= 2 {
				p.Alter(idx, model.Water, nil)
			}
		}
	}
}

// ProcessAll runs the fixed-point outer loop: promote
// stray Infer marks, recompute reachers and chase chaining deductions,
// starve unreachable blanks into water, resolve single-reacher islands,
// drain Process to quiescence, then apply the anti-puddle, good-pair, and
// fork rules before looping again. It stops when a pass makes no changes
// or the validator reports an error.
func (p *Propagator) ProcessAll() {
	g := p.Grid
	changed := true
	for changed && Status(g) != ErrorState {
		if !p.solving() {
			return
		}
		changed = false
		if p.Metrics != nil {
			p.Metrics.Loops++
		}

		for i := range g.Cells {
			if g.Cells[i].State == model.Infer {
				p.Alter(i, model.Island, nil)
				changed = true
			}
		}

		for _, f := range Reachability(g) {
			owner := f.Owner
			p.Alter(f.Cell, model.Island, &owner)
			changed = true
		}

		for i := range g.Cells {
			c := &g.Cells[i]
			switch {
			case c.State == model.Blank && c.Owner == -1 && len(c.Reachers) == 0:
				p.Alter(i, model.Water, nil)
				changed = true
			case c.State == model.Island && c.Owner == -1 && len(c.Reachers) == 1:
				if reacher := c.Reachers[0]; reacher != i {
					p.Alter(i, model.Island, &reacher)
					changed = true
				}
			}
		}

		p.Process()

		var antipuddles []int
		for y := 0; y < g.Rows; y++ {
			for x := 0; x < g.Cols; x++ {
				idx := g.Index(x, y)
				if g.Cells[idx].State != model.Blank {
					continue
				}
				g.Cells[idx].State = model.Water
				if g.IsPuddle(x, y) || g.IsPuddle(x, y-1) || g.IsPuddle(x-1, y) || g.IsPuddle(x-1, y-1) {
					antipuddles = append(antipuddles, idx)
				}
				g.Cells[idx].State = model.Blank
			}
		}
		for _, idx := range antipuddles {
			p.Alter(idx, model.Island, nil)
			changed = true
		}

		for _, f := range p.goodPairForcedIslands() {
			owner := f.Owner
			p.Alter(f.Cell, model.Island, &owner)
			changed = true
		}

		for _, seedIdx := range g.Seeds {
			group := g.FindGroup(seedIdx, false, true)
			num := g.Cells[seedIdx].State.SeedValue()
			if num-len(group.Spaces) == 1 && len(group.Dofs) == 2 {
				for _, fork := range commonBlanks(g, group.Dofs) {
					p.Alter(fork, model.Water, nil)
					changed = true
				}
			}
		}

		p.Process()
	}
}

// commonBlanks returns the blank neighbors shared by exactly two cells: the
// "fork tip" a completed island's last two dofs might both border.
func commonBlanks(g *model.Grid, spaces []int) []int {
	if len(spaces) != 2 {
		return nil
	}
	set1 := map[int]bool{}
	for _, n := range g.Cells[spaces[0]].Neighbors() {
		if g.Cells[n].State == model.Blank {
			set1[n] = true
		}
	}
	var out []int
	for _, n := range g.Cells[spaces[1]].Neighbors() {
		if g.Cells[n].State == model.Blank && set1[n] {
			out = append(out, n)
		}
	}
	return out
}

// goodPairForcedIslands implements the good-pair rule: every 2x2 of two
// waters and two blanks whose sole (shared) reacher is the same seed is a
// candidate to chain from that seed to both blanks.
func (p *Propagator) goodPairForcedIslands() []ForcedIsland {
	g := p.Grid
	var forced []ForcedIsland

	for y := 0; y < g.Rows-1; y++ {
		for x := 0; x < g.Cols-1; x++ {
			b1, b2, ok := goodPair(g, x, y)
			if !ok {
				continue
			}
			seedIdx := g.Cells[b1].Reachers[0]
			group := g.FindGroup(seedIdx, false, true)
			num := g.Cells[seedIdx].State.SeedValue()
			left := num - len(group.Spaces) + 1
			if left >= common.ChainDepthLimit {
				continue
			}

			owns := append([]int(nil), g.Cells[seedIdx].Owns...)
			for _, s := range owns {
				g.Cells[s].State = model.Infer
			}

			targets := [2]int{b1, b2}
			var chainsFor [2][][]int
			for ti, target := range targets {
				var chains [][]int
				chain(g, seedIdx, target, left, nil, &chains)
				chainsFor[ti] = chains
			}

			for _, s := range owns {
				g.Cells[s].State = model.Island
			}
			g.Cells[seedIdx].State = model.State(num)

			overlap0 := intersectAll(chainsFor[0])
			overlap1 := intersectAll(chainsFor[1])

			necessary := map[int]bool{}
			for s := range overlap0 {
				if overlap1[s] {
					necessary[s] = true
				}
			}
			if overlap1[b1] {
				necessary[b1] = true
			}
			if overlap0[b2] {
				necessary[b2] = true
			}
			for s := range necessary {
				forced = append(forced, ForcedIsland{Cell: s, Owner: seedIdx})
			}
		}
	}
	return forced
}

func goodPair(g *model.Grid, x, y int) (b1, b2 int, ok bool) {
	idxs := [4]int{g.Index(x, y), g.Index(x+1, y), g.Index(x, y+1), g.Index(x+1, y+1)}
	var waters, blanks []int
	for _, idx := range idxs {
		switch g.Cells[idx].State {
		case model.Water:
			waters = append(waters, idx)
		case model.Blank:
			blanks = append(blanks, idx)
		default:
			return 0, 0, false
		}
	}
	if len(waters) != 2 || len(blanks) != 2 {
		return 0, 0, false
	}
	c1, c2 := &g.Cells[blanks[0]], &g.Cells[blanks[1]]
	if len(c1.Reachers) != 1 || len(c2.Reachers) != 1 || c1.Reachers[0] != c2.Reachers[0] {
		return 0, 0, false
	}
	if c1.X == c2.X || c1.Y == c2.Y {
		return blanks[0], blanks[1], true
	}
	return 0, 0, false
}

func intersectAll(lists [][]int) map[int]bool {
	out := map[int]bool{}
	if len(lists) == 0 {
		return out
	}
	counts := map[int]int{}
	for _, l := range lists {
		seen := map[int]bool{}
		for _, v := range l {
			seen[v] = true
		}
		for v := range seen {
			counts[v]++
		}
	}
	for v, c := range counts {
		if c == len(lists) {
			out[v] = true
		}
	}
	return out
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
