// Package model holds the Nurikabe grid's data model: cell state, the cell
// arena, and the derived Group descriptor.
package model

import "strconv"

// State is a cell's state. Non-positive values are the fixed sentinels
// below; a positive value stands for Seed(n), a seed of that clue value.
//
// Uses the same BLANK/ISLAND/WATER/INFER sentinel encoding as a reference
// Nurikabe solver, expressed as typed constants instead of bare ints.
type State int

const (
	// Blank is an unmarked cell: not yet known to be island or water.
	Blank State = 0
	// Island is an anonymous island mark not yet (or no longer) owned by a seed.
	Island State = -1
	// Water is a cell committed to the single water region.
	Water State = -2
	// Infer is a transient island mark introduced by inferred-mode group analysis.
	Infer State = -3
)

// IsSeed reports whether the state represents a seed clue.
func (s State) IsSeed() bool { return s > 0 }

// IsIslandLike reports whether the state belongs to an island: a seed or an
// island mark (anonymous or inferred).
func (s State) IsIslandLike() bool { return s > 0 || s == Island || s == Infer }

// SeedValue returns the clue value if the state is a seed, else 0.
func (s State) SeedValue() int {
	if s > 0 {
		return int(s)
	}
	return 0
}

func (s State) String() string {
	switch s {
	case Blank:
		return "."
	case Island:
		return "o"
	case Water:
		return "#"
	case Infer:
		return "x"
	default:
		if s > 0 {
			return strconv.Itoa(int(s))
		}
		return "?"
	}
}

// Point is a 2D grid coordinate.
type Point struct {
	X, Y int
}

func (p Point) Distance(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
