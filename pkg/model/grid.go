package model

// Grid owns every cell of a puzzle in row-major order, the seed list, and
// the target water-cell count. All cells live in one contiguous slice,
// indexed by Index(x, y) = y*Cols + x.
type Grid struct {
	Rows, Cols int
	Cells      []Cell
	Seeds      []int // indices into Cells, in board scan order
	Target     int   // rows*cols - sum(seed values)

	// GroupedCount counts fresh (non-cached) group computations. The
	// original kept this as a process-wide grouped_count global; here it
	// lives on the Grid so a caller can thread it into its own metrics.
	GroupedCount int
}

// NewGrid builds a Grid from an initial board: a rows x cols matrix where a
// positive value is a seed of that clue value and 0 is blank. marks, if
// non-nil, overlays pre-placed Island/Water marks onto non-seed cells
// (e.g. a partially-solved puzzle loaded from a save); it must have the
// same dimensions as board when provided.
func NewGrid(board [][]int, marks [][]State) *Grid {
	rows := len(board)
	cols := 0
	if rows > 0 {
		cols = len(board[0])
	}

	g := &Grid{
		Rows: rows,
		Cols: cols,
	}
	g.Cells = make([]Cell, rows*cols)

	seedSum := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			idx := g.Index(x, y)
			state := Blank
			if v := board[y][x]; v > 0 {
				state = State(v)
				seedSum += v
			} else if marks != nil {
				state = marks[y][x]
			}
			g.Cells[idx] = Cell{
				X:      x,
				Y:      y,
				State:  state,
				Owner:  -1,
				Flag:   Blank,
			}
			if state.IsSeed() {
				g.Cells[idx].Owner = idx
				g.Cells[idx].Owns = []int{idx}
				g.Seeds = append(g.Seeds, idx)
			} else if state == Water {
				g.Cells[idx].Owner = idx
				g.Cells[idx].Owns = []int{idx}
			}
		}
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			idx := g.Index(x, y)
			var neighbors []int
			if x > 0 {
				neighbors = append(neighbors, g.Index(x-1, y))
			}
			if x < cols-1 {
				neighbors = append(neighbors, g.Index(x+1, y))
			}
			if y > 0 {
				neighbors = append(neighbors, g.Index(x, y-1))
			}
			if y < rows-1 {
				neighbors = append(neighbors, g.Index(x, y+1))
			}
			g.Cells[idx].neighbors = neighbors
		}
	}

	g.Target = rows*cols - seedSum
	return g
}

// Index returns the arena index for coordinate (x, y). Callers must ensure
// the coordinate is in bounds; use InBounds to check first.
func (g *Grid) Index(x, y int) int { return y*g.Cols + x }

// InBounds reports whether (x, y) is a valid grid coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// GetState returns the state at (x, y).
func (g *Grid) GetState(x, y int) (State, error) {
	if !g.InBounds(x, y) {
		return Blank, ErrOutOfBounds
	}
	return g.Cells[g.Index(x, y)].State, nil
}

// SetState sets the state at (x, y), rejecting mutation of seed cells. It
// reports whether a change actually occurred.
func (g *Grid) SetState(x, y int, s State) (bool, error) {
	if !g.InBounds(x, y) {
		return false, ErrOutOfBounds
	}
	c := &g.Cells[g.Index(x, y)]
	if c.IsSeed() {
		if c.State == s {
			return false, nil
		}
		return false, ErrSeedImmutable
	}
	if c.State == s {
		return false, nil
	}
	c.State = s
	return true, nil
}

// IsPuddle reports whether (x, y) is the top-left corner of a 2x2 block of
// four water cells.
func (g *Grid) IsPuddle(x, y int) bool {
	if x < 0 || x >= g.Cols-1 || y < 0 || y >= g.Rows-1 {
		return false
	}
	return g.Cells[g.Index(x, y)].State == Water &&
		g.Cells[g.Index(x+1, y)].State == Water &&
		g.Cells[g.Index(x, y+1)].State == Water &&
		g.Cells[g.Index(x+1, y+1)].State == Water
}

// Manhattan returns the grid (taxicab) distance between two cells.
func (g *Grid) Manhattan(a, b int) int {
	ca, cb := &g.Cells[a], &g.Cells[b]
	return abs(ca.X-cb.X) + abs(ca.Y-cb.Y)
}

// ForgetReachers clears a cell's ownership/reacher bookkeeping before
// reachability recomputation. A seed reverts to owning only itself; anything
// else loses its owner and reacher set (and, if it had been made to own
// cells, they are released).
func (g *Grid) ForgetReachers(idx int) {
	c := &g.Cells[idx]
	if c.IsSeed() {
		for _, o := range c.Owns {
			if o == idx {
				continue
			}
			oc := &g.Cells[o]
			oc.Owner = -1
			oc.Reachers = nil
		}
		c.Reachers = nil
		c.Owner = idx
		c.Owns = []int{idx}
		return
	}
	c.Reachers = nil
	c.Owner = -1
	for _, o := range c.Owns {
		oc := &g.Cells[o]
		oc.Owner = -1
		oc.Reachers = nil
	}
	c.Owns = nil
}

// GetBlanks returns the indices of every blank cell.
func (g *Grid) GetBlanks() []int {
	var blanks []int
	for i := range g.Cells {
		if g.Cells[i].State == Blank {
			blanks = append(blanks, i)
		}
	}
	return blanks
}

// Snapshot copies every cell's current state, for later Restore.
func (g *Grid) Snapshot() []State {
	snap := make([]State, len(g.Cells))
	for i := range g.Cells {
		snap[i] = g.Cells[i].State
	}
	return snap
}

// Restore reverts every cell whose state differs from snap back to it,
// invalidating caches and clearing ownership/reacher bookkeeping so the
// grid is internally consistent afterward. It returns the indices that
// actually changed, in cell order, so the caller can emit change events for
// a faithful undo.
func (g *Grid) Restore(snap []State) []int {
	var changed []int
	for i := range g.Cells {
		c := &g.Cells[i]
		if c.State == snap[i] {
			continue
		}
		c.State = snap[i]
		c.invalidateGroup()
		if c.IsSeed() {
			c.Owner = i
			c.Owns = []int{i}
			c.Reachers = nil
		} else if c.State == Water {
			c.Owner = i
			c.Owns = []int{i}
			c.Reachers = nil
		} else {
			c.Owner = -1
			c.Owns = nil
			c.Reachers = []int{}
		}
		changed = append(changed, i)
	}
	for _, i := range changed {
		for _, n := range g.Cells[i].neighbors {
			g.Cells[n].invalidateGroup()
		}
	}
	return changed
}
