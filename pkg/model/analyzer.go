package model

// FindGroup performs the group analyzer's breadth-first flood fill from the
// given cell. inferred selects strict mode (only
// same-colour neighbors) vs inferred mode (blanks count as tentatively
// island, used for validation). remember controls whether the resulting
// Group is cached on its member cells for reuse until invalidated.
//
// The visited marking used during the flood is a bitset local to this call
// (not a persistent field on Cell), so FindGroup is safe to call
// re-entrantly and leaves nothing to clean up if the caller is cancelled
// mid-search.
func (g *Grid) FindGroup(idx int, inferred, remember bool) *Group {
	c := &g.Cells[idx]
	if remember {
		if cached, ok := c.cachedGroup(inferred); ok {
			return cached
		}
	}
	// In strict mode a blank has no group of its own.
	if !inferred && c.State == Blank {
		return nil
	}

	g.GroupedCount++
	visited := make([]bool, len(g.Cells))
	group := &Group{Inferred: inferred}
	var queue []int

	if c.State == Water {
		g.floodWater(idx, visited, group, &queue)
	} else {
		g.floodIsland(idx, inferred, visited, group, &queue)
		g.classifyIsland(group, inferred)
		if !inferred && remember {
			g.propagateOwnership(group)
		}
	}

	if remember {
		for _, s := range group.Spaces {
			g.Cells[s].setCachedGroup(group, inferred)
		}
		if inferred && c.State != Water {
			for _, d := range group.Dofs {
				g.Cells[d].setCachedGroup(group, inferred)
			}
		}
	}
	return group
}

func (g *Grid) floodWater(start int, visited []bool, group *Group, queue *[]int) {
	group.Spaces = append(group.Spaces, start)
	visited[start] = true
	*queue = append(*queue, start)

	for len(*queue) > 0 {
		cur := (*queue)[0]
		*queue = (*queue)[1:]
		for _, n := range g.Cells[cur].neighbors {
			if visited[n] {
				continue
			}
			visited[n] = true
			switch g.Cells[n].State {
			case Water:
				group.Spaces = append(group.Spaces, n)
				*queue = append(*queue, n)
			case Blank:
				group.Dofs = append(group.Dofs, n)
			default:
				group.Walls = append(group.Walls, n)
			}
		}
	}

	group.Type = TypeWater
	if len(group.Dofs) == 0 {
		group.Type = TypeClosedWater
	}
	for _, s := range group.Spaces {
		cell := &g.Cells[s]
		if g.IsPuddle(cell.X, cell.Y) {
			group.Type = TypeInvalidWater
			break
		}
	}
}

func (g *Grid) floodIsland(start int, inferred bool, visited []bool, group *Group, queue *[]int) {
	c := &g.Cells[start]
	if c.IsSeed() {
		group.Numbers = append(group.Numbers, start)
	}
	if c.State == Blank {
		group.Dofs = append(group.Dofs, start)
	} else {
		group.Spaces = append(group.Spaces, start)
	}
	visited[start] = true
	*queue = append(*queue, start)

	for len(*queue) > 0 {
		cur := (*queue)[0]
		*queue = (*queue)[1:]
		for _, n := range g.Cells[cur].neighbors {
			if visited[n] {
				continue
			}
			visited[n] = true
			nc := &g.Cells[n]
			switch {
			case nc.State == Water:
				group.Walls = append(group.Walls, n)
			case nc.IsSeed():
				group.Spaces = append(group.Spaces, n)
				group.Numbers = append(group.Numbers, n)
				*queue = append(*queue, n)
			case nc.State == Island || nc.State == Infer:
				group.Spaces = append(group.Spaces, n)
				*queue = append(*queue, n)
			default: // Blank
				group.Dofs = append(group.Dofs, n)
				if inferred {
					*queue = append(*queue, n)
				}
			}
		}
	}
}

// classifyIsland derives group.Type from the island-mode derivation table
// below.
func (g *Grid) classifyIsland(group *Group, inferred bool) {
	size := len(group.Spaces)
	if inferred {
		size = len(group.Spaces) + len(group.Dofs)
	}
	seedNum := len(group.Numbers)

	switch {
	case seedNum == 0:
		if len(group.Spaces) > 0 {
			if inferred {
				group.Type = TypeInvalidIsland
			} else {
				group.Type = TypeLoneIsland
			}
		} else {
			group.Type = TypeLoneBlank
		}

	case seedNum > 1:
		if !inferred {
			group.Type = TypeInvalidIsland
			return
		}
		sum := 0
		for _, n := range group.Numbers {
			sum += g.Cells[n].State.SeedValue()
		}
		if sum+1 > size {
			group.Type = TypeInvalidIsland
		} else {
			group.Type = TypeIncomplete
		}

	default:
		num := g.Cells[group.Numbers[0]].State.SeedValue()
		switch {
		case len(group.Spaces) > num:
			group.Type = TypeInvalidIsland
		case size == num:
			if inferred {
				for _, d := range group.Dofs {
					g.Cells[d].State = Infer
				}
				group.Spaces = append(group.Spaces, group.Dofs...)
				group.Dofs = nil
			}
			group.Type = TypeIsland
		case size > num:
			group.Type = TypeIncomplete
		default:
			if inferred {
				group.Type = TypeInvalidIsland
			} else {
				group.Type = TypeIncomplete
			}
		}
	}
}

// propagateOwnership sets every member's owner to the seed found inside the
// component, once, following the rule: "In strict mode, when a seed is found
// inside the component, every member has its owner set to that seed."
func (g *Grid) propagateOwnership(group *Group) {
	for _, s := range group.Spaces {
		owner := g.Cells[s].Owner
		if owner != -1 && g.Cells[owner].IsSeed() {
			for _, s2 := range group.Spaces {
				if g.Cells[s2].Owner != owner {
					g.SetOwner(s2, owner)
				}
			}
			return
		}
	}
}

// SetOwner attributes cellIdx to ownerIdx (a seed, or a water cell owning
// itself), clearing its reacher set.
func (g *Grid) SetOwner(cellIdx, ownerIdx int) {
	c := &g.Cells[cellIdx]
	c.Owner = ownerIdx
	c.Reachers = nil
	if cellIdx != ownerIdx {
		g.Cells[ownerIdx].Owns = append(g.Cells[ownerIdx].Owns, cellIdx)
	}
}

// ForgetGroup invalidates the cached group rooted at idx, if any, clearing
// the cache pointer on every member (and, for non-water groups, every dof).
func (g *Grid) ForgetGroup(idx int) {
	c := &g.Cells[idx]
	if !c.groupValid || c.group == nil {
		return
	}
	grp := c.group
	for _, s := range grp.Spaces {
		g.Cells[s].invalidateGroup()
	}
	if grp.Type != TypeWater && grp.Type != TypeInvalidWater {
		for _, d := range grp.Dofs {
			g.Cells[d].invalidateGroup()
		}
	}
}
