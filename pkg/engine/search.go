package engine

import (
	"container/heap"
	"math"
	"sort"

	"github.com/phung/nurikabe/pkg/model"
)

// Guess classifies the outcome of trying one value for a single blank cell.
type Guess int

const (
	Inconclusive Guess = iota
	Conclusive
	Deadend
	Victory
	Skipped
)

// guessItem and guessHeap order blanks for the search driver's guessing
// passes, highest guess-score first. This reuses the container/heap
// priority-queue shape this codebase already uses for its A*-style search
// elsewhere, generalized from a min-heap over state cost to a max-heap
// over guess informativeness.
type guessItem struct {
	idx   int
	score float64
	index int
}

type guessHeap []*guessItem

func (h guessHeap) Len() int            { return len(h) }
func (h guessHeap) Less(i, j int) bool  { return h[i].score > h[j].score }
func (h guessHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *guessHeap) Push(x interface{}) {
	item := x.(*guessItem)
	item.index = len(*h)
	*h = append(*h, item)
}
func (h *guessHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// guessScore ranks a blank by how informative guessing it is likely to be:
// dense neighborhoods of other blanks score low (little new information),
// proximity to nearly-complete islands scores high, and the board
// periphery is mildly preferred since its constraints tend to be tighter.
func guessScore(g *model.Grid, idx int) float64 {
	c := &g.Cells[idx]
	score := 0.0
	for _, n := range c.Neighbors() {
		if g.Cells[n].State == model.Blank {
			score -= 5
		}
	}
	for _, reacherIdx := range c.Reachers {
		group := g.FindGroup(reacherIdx, false, false)
		left := g.Cells[reacherIdx].State.SeedValue() - len(group.Spaces)
		if left < 1 {
			left = 1
		}
		score += 10 / float64(left)
		score -= float64(g.Manhattan(idx, reacherIdx)) * 3
	}
	score += math.Abs(float64(c.X)-float64(g.Cols)/2) * 0.5
	score += math.Abs(float64(c.Y)-float64(g.Rows)/2) * 0.5
	return score
}

func orderedBlanks(g *model.Grid) []int {
	blanks := g.GetBlanks()
	h := make(guessHeap, 0, len(blanks))
	heap.Init(&h)
	for _, b := range blanks {
		heap.Push(&h, &guessItem{idx: b, score: guessScore(g, b)})
	}
	out := make([]int, 0, len(blanks))
	for h.Len() > 0 {
		out = append(out, heap.Pop(&h).(*guessItem).idx)
	}
	return out
}

// tryOrder returns the two states to attempt for a blank, in order, honoring
// its guess-order hint. Island-first is the default tie-break.
func tryOrder(c *model.Cell) (first, second model.State) {
	switch c.Flag {
	case model.Water:
		return model.Island, model.Water
	case model.Island:
		return model.Water, model.Island
	default:
		return model.Island, model.Water
	}
}

// Searcher runs the depth-1 refutation sweep and recursive backtracking
// search on top of a Propagator.
type Searcher struct {
	Prop *Propagator
}

func NewSearcher(p *Propagator) *Searcher { return &Searcher{Prop: p} }

func (s *Searcher) grid() *model.Grid { return s.Prop.Grid }

// guessSingle tries both states for one blank and reports what the pair of
// outcomes proves. It never leaves a winning (SOLVED) assignment reverted.
func (s *Searcher) guessSingle(idx int, metrics *Metrics) Guess {
	g := s.grid()
	if !s.Prop.solving() {
		return Deadend
	}
	c := &g.Cells[idx]
	if c.State != model.Blank {
		return Skipped
	}

	save := g.Snapshot()
	try1, try2 := tryOrder(c)
	var byElimination model.State
	haveByElimination := false

	if metrics != nil {
		metrics.Guessed++
	}
	s.Prop.Restore(save)
	s.Prop.Alter(idx, try1, nil)
	s.Prop.ProcessAll()
	status := Status(g)

	var other []model.State
	switch status {
	case Solved:
		return Victory
	case ErrorState:
		byElimination, haveByElimination = try2, true
	default:
		other = g.Snapshot()
	}

	if metrics != nil {
		metrics.Guessed++
	}
	s.Prop.Restore(save)
	s.Prop.Alter(idx, try2, nil)
	s.Prop.ProcessAll()
	status = Status(g)

	switch status {
	case Solved:
		return Victory
	case ErrorState:
		if haveByElimination {
			s.Prop.Restore(save)
			return Deadend
		}
		s.Prop.Restore(other)
		return Conclusive
	default:
		if haveByElimination {
			return Conclusive
		}
		s.Prop.Restore(save)
		return Inconclusive
	}
}

// guessRecur walks the guess queue from index, recursing on an OKAY
// outcome and backtracking on ERROR, until it finds SOLVED or exhausts
// every branch.
func (s *Searcher) guessRecur(queue []int, index int, metrics *Metrics) bool {
	g := s.grid()
	if !s.Prop.solving() {
		return false
	}
	if len(queue) == 0 {
		return false
	}
	for index < len(queue) && g.Cells[queue[index]].State != model.Blank {
		index++
	}
	if index >= len(queue) {
		return false
	}
	guessing := queue[index]
	save := g.Snapshot()
	c := &g.Cells[guessing]
	try1, try2 := tryOrder(c)

	if metrics != nil {
		metrics.Guessed++
	}
	s.Prop.Restore(save)
	s.Prop.Alter(guessing, try1, nil)
	s.Prop.ProcessAll()
	switch Status(g) {
	case Solved:
		return true
	case Okay:
		if s.guessRecur(queue, index+1, metrics) {
			return true
		}
	}

	if !s.Prop.solving() {
		return false
	}

	if metrics != nil {
		metrics.Guessed++
	}
	s.Prop.Restore(save)
	s.Prop.Alter(guessing, try2, nil)
	s.Prop.ProcessAll()
	switch Status(g) {
	case Solved:
		return true
	case Okay:
		return s.guessRecur(queue, index+1, metrics)
	}
	return false
}

// Solve runs the full pipeline: seed the board, drain the cheap local
// rules, then alternate depth-1 refutation sweeps with recursive guessing
// until the grid is solved, proven contradictory, or cancelled.
func Solve(g *model.Grid, changes *ChangeStream, cancel *CancelFlag, metrics *Metrics) Verdict {
	p := NewPropagator(g, changes, cancel, metrics)
	s := NewSearcher(p)
	if metrics != nil {
		defer func() { metrics.Grouped = g.GroupedCount }()
	}

	for i := range g.Cells {
		c := &g.Cells[i]
		if !c.IsSeed() {
			c.State = model.Blank
		}
		g.ForgetReachers(i)
		g.ForgetGroup(i)
	}
	if changes != nil {
		for i := range g.Cells {
			c := &g.Cells[i]
			changes.Emit(c.X, c.Y, c.State)
		}
	}

	seeds := append([]int(nil), g.Seeds...)
	sort.Slice(seeds, func(i, j int) bool {
		return g.Cells[seeds[i]].State.SeedValue() > g.Cells[seeds[j]].State.SeedValue()
	})
	for _, seedIdx := range seeds {
		sc := &g.Cells[seedIdx]
		if sc.State.SeedValue() == 1 {
			for _, n := range sc.Neighbors() {
				p.Alter(n, model.Water, nil)
			}
		} else {
			p.Enqueue(seedIdx)
		}
	}

	for i := range g.Cells {
		count := 0
		for _, n := range g.Cells[i].Neighbors() {
			if g.Cells[n].IsSeed() {
				count++
			}
		}
		if count >= 2 {
			p.Alter(i, model.Water, nil)
		}
	}

	p.Process()
	p.ProcessAll()

	changedCount := 1
	for changedCount > 0 {
		if !p.solving() {
			return Status(g)
		}
		changedCount = 0
		for _, guessing := range orderedBlanks(g) {
			res := s.guessSingle(guessing, metrics)
			switch res {
			case Conclusive:
				changedCount++
			case Victory:
				return Solved
			case Deadend:
				return Status(g)
			}
		}
	}

	finalQueue := orderedBlanks(g)
	if len(finalQueue) > 0 {
		s.guessRecur(finalQueue, 0, metrics)
	}

	return Status(g)
}
