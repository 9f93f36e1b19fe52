package engine

import (
	"sort"

	"github.com/phung/nurikabe/pkg/model"
)

// Verdict is the terminal classification of a grid's current state.
type Verdict int

const (
	Okay Verdict = iota
	Solved
	ErrorState
)

func (v Verdict) String() string {
	switch v {
	case Solved:
		return "Solved"
	case Okay:
		return "Okay"
	default:
		return "Error"
	}
}

// FlagFunc receives a coordinate and its current state when Check finds a
// cell responsible for an ERROR verdict.
type FlagFunc func(x, y int, state model.State)

// Check runs inferred-mode group analysis over the whole grid, classifying
// every connected component and deciding SOLVED/OKAY/ERROR, including the
// "all but the largest closed-water group" flagging rule. When the verdict
// is ERROR and flag is non-nil, it is called once per cell judged
// responsible.
func Check(g *model.Grid, flag FlagFunc) Verdict {
	var crowded []*model.Group
	buckets := make(map[model.GroupType][]*model.Group)

	for _, seedIdx := range g.Seeds {
		reg := g.FindGroup(seedIdx, false, true)
		if reg.Type == model.TypeInvalidIsland {
			crowded = append(crowded, reg)
		}
	}

	seen := make([]bool, len(g.Cells))
	for i := range g.Cells {
		if g.Cells[i].State == model.Water || seen[i] {
			continue
		}
		group := g.FindGroup(i, true, false)
		for _, s := range group.Spaces {
			seen[s] = true
		}
		for _, d := range group.Dofs {
			seen[d] = true
		}
		buckets[group.Type] = append(buckets[group.Type], group)
	}

	waterCount := 0
	targetAcquired := false
	for i := range g.Cells {
		if g.Cells[i].State != model.Water || seen[i] {
			continue
		}
		group := g.FindGroup(i, true, false)
		for _, s := range group.Spaces {
			seen[s] = true
		}
		buckets[group.Type] = append(buckets[group.Type], group)
		waterCount++
		if group.Type == model.TypeClosedWater && len(group.Spaces) == g.Target {
			targetAcquired = true
		}
	}

	islandError := len(buckets[model.TypeInvalidIsland]) > 0 || len(crowded) > 0
	incomplete := len(buckets[model.TypeIncomplete]) > 0 || len(buckets[model.TypeLoneBlank]) > 0
	waterError := len(buckets[model.TypeClosedWater]) > 0 || len(buckets[model.TypeInvalidWater]) > 0

	switch {
	case !islandError && targetAcquired && waterCount == 1:
		return Solved
	case !islandError && !waterError && incomplete:
		return Okay
	}

	if flag != nil {
		flagErrors(g, flag, crowded, buckets, waterCount)
	}
	return ErrorState
}

func flagErrors(g *model.Grid, flag FlagFunc, crowded []*model.Group, buckets map[model.GroupType][]*model.Group, waterCount int) {
	dedup := func(idx int) {
		c := &g.Cells[idx]
		flag(c.X, c.Y, c.State)
	}

	seenCrowded := make(map[*model.Group]bool)
	for _, grp := range crowded {
		if seenCrowded[grp] {
			continue
		}
		seenCrowded[grp] = true
		for _, s := range grp.Spaces {
			dedup(s)
		}
	}

	for _, grp := range buckets[model.TypeInvalidIsland] {
		for _, s := range grp.Spaces {
			dedup(s)
		}
		for _, d := range grp.Dofs {
			dedup(d)
		}
	}

	seenPuddleCells := make(map[int]bool)
	for _, grp := range buckets[model.TypeInvalidWater] {
		for _, s := range grp.Spaces {
			c := &g.Cells[s]
			if !g.IsPuddle(c.X, c.Y) {
				continue
			}
			corners := []int{
				g.Index(c.X, c.Y),
				g.Index(c.X+1, c.Y),
				g.Index(c.X, c.Y+1),
				g.Index(c.X+1, c.Y+1),
			}
			for _, idx := range corners {
				seenPuddleCells[idx] = true
			}
		}
	}
	for idx := range seenPuddleCells {
		dedup(idx)
	}

	apart := append([]*model.Group(nil), buckets[model.TypeClosedWater]...)
	sort.Slice(apart, func(i, j int) bool { return len(apart[i].Spaces) < len(apart[j].Spaces) })
	if waterCount > 0 && waterCount == len(buckets[model.TypeClosedWater]) && len(apart) > 0 {
		apart = apart[:len(apart)-1]
	}
	for _, grp := range apart {
		for _, s := range grp.Spaces {
			dedup(s)
		}
	}
}

// Status is Check's cheaper sibling: it short-circuits on the first
// disqualifying group instead of collecting flags, for use inside the
// solver's hot loop.
func Status(g *model.Grid) Verdict {
	for _, seedIdx := range g.Seeds {
		if g.FindGroup(seedIdx, false, true).Type == model.TypeInvalidIsland {
			return ErrorState
		}
	}

	seen := make([]bool, len(g.Cells))
	incomplete := false
	for i := range g.Cells {
		if g.Cells[i].State == model.Water || seen[i] {
			continue
		}
		group := g.FindGroup(i, true, false)
		switch group.Type {
		case model.TypeInvalidIsland:
			return ErrorState
		case model.TypeIncomplete, model.TypeLoneBlank:
			incomplete = true
		}
		for _, s := range group.Spaces {
			seen[s] = true
		}
		for _, d := range group.Dofs {
			seen[d] = true
		}
	}

	targetAcquired := false
	waterCount := 0
	for i := range g.Cells {
		if g.Cells[i].State != model.Water || seen[i] {
			continue
		}
		group := g.FindGroup(i, true, false)
		waterCount++
		switch group.Type {
		case model.TypeInvalidWater:
			return ErrorState
		case model.TypeClosedWater:
			if len(group.Spaces) == g.Target {
				targetAcquired = true
			} else {
				return ErrorState
			}
		}
		for _, s := range group.Spaces {
			seen[s] = true
		}
	}

	switch {
	case targetAcquired && waterCount == 1:
		return Solved
	case !targetAcquired && incomplete:
		return Okay
	default:
		return ErrorState
	}
}
