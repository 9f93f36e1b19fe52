package model

// GroupType classifies a connected component produced by the group analyzer.
// See the type derivation table in analyzer.go.
type GroupType int

const (
	TypeIncomplete GroupType = iota
	TypeWater
	TypeClosedWater
	TypeInvalidWater
	TypeIsland
	TypeInvalidIsland
	TypeLoneIsland
	TypeLoneBlank
)

func (t GroupType) String() string {
	switch t {
	case TypeWater:
		return "Water"
	case TypeClosedWater:
		return "ClosedWater"
	case TypeInvalidWater:
		return "InvalidWater"
	case TypeIsland:
		return "Island"
	case TypeIncomplete:
		return "Incomplete"
	case TypeInvalidIsland:
		return "InvalidIsland"
	case TypeLoneIsland:
		return "LoneIsland"
	case TypeLoneBlank:
		return "LoneBlank"
	default:
		return "Unknown"
	}
}

// Group is a connected component plus its frontier, derived on demand by
// FindGroup. Cell indices (not pointers) are used throughout so a Group can
// be discarded freely without leaving dangling references.
type Group struct {
	Spaces   []int // member cell indices
	Dofs     []int // blank frontier cell indices (degrees of freedom)
	Walls    []int // opposite-colour frontier cell indices
	Numbers  []int // seed cell indices contained in the group
	Type     GroupType
	Inferred bool
}

// Size returns the group's reachable size: spaces plus dofs in inferred
// mode (since blanks are tentatively same-colour), else just spaces.
func (g *Group) Size() int {
	if g.Inferred {
		return len(g.Spaces) + len(g.Dofs)
	}
	return len(g.Spaces)
}
