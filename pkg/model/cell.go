package model

// Cell is one grid square, stored by value inside Grid.Cells. Neighbors,
// Owner, and Owns reference other cells by index into that same slice
// rather than by pointer, eliminating the owner<->owns and
// cell<->neighbor reference cycles a pointer-based graph would otherwise
// have at the type level.
type Cell struct {
	X, Y  int
	State State

	neighbors []int // indices into Grid.Cells, 2-4 entries

	// Owner is the index of the seed cell this cell has been attributed to,
	// or -1 if unowned. Water cells own themselves by convention; seed cells
	// own themselves.
	Owner int

	// Owns lists the indices of cells attributed to this seed (including
	// itself). Empty/unused for non-seed cells.
	Owns []int

	// Reachers lists the seed indices that might still claim this cell. Only
	// meaningful for blank cells and anonymous island marks lacking an
	// owner; nil for owned cells and for seeds themselves.
	Reachers []int

	// Flag is a guess-order hint set by the search driver: Water or Island
	// biases which alternative is tried first when guessing this cell,
	// Blank means no preference.
	Flag State

	group         *Group
	groupInferred bool
	groupValid    bool
}

// Neighbors returns the indices of this cell's orthogonal neighbors (2-4,
// fewer at grid edges/corners).
func (c *Cell) Neighbors() []int { return c.neighbors }

// IsSeed reports whether this cell is a seed clue.
func (c *Cell) IsSeed() bool { return c.State.IsSeed() }

// IsIslandLike reports whether this cell currently counts as part of an
// island: a seed, an anonymous island mark, or an inferred island mark.
func (c *Cell) IsIslandLike() bool { return c.State.IsIslandLike() }

// cachedGroup returns the cached group for this cell if it is still valid
// for the requested mode, else (nil, false).
func (c *Cell) cachedGroup(inferred bool) (*Group, bool) {
	if c.groupValid && c.group != nil && c.groupInferred == inferred {
		return c.group, true
	}
	return nil, false
}

func (c *Cell) setCachedGroup(g *Group, inferred bool) {
	c.group = g
	c.groupInferred = inferred
	c.groupValid = true
}

func (c *Cell) invalidateGroup() {
	c.group = nil
	c.groupValid = false
}
