package common

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// ChainDepthLimit bounds how many steps the reachability engine's chain walk
// will take when linking a seed's two disconnected island fragments back
// together. Past this many remaining cells the number of candidate walks
// grows too fast to be worth enumerating, and the seed falls back to
// single-fragment reachability instead.
const ChainDepthLimit = 6

// MaxChainFragments is the most island fragments a single seed's chaining
// pass will attempt to reconcile; a seed split into more pieces than this
// also falls back to single-fragment reachability.
const MaxChainFragments = 2

// DefaultPuzzleSizes lists the board sizes the archive and scoreboard
// commands enumerate by default, smallest first.
var DefaultPuzzleSizes = []int{5, 7, 10, 12, 15, 20}

// ParseWorkerCount parses the --workers flag value shared by the root
// command and any subcommand that runs its own worker pool (repair).
// Accepts "full" -> NumCPU(), "half" -> NumCPU()/2, or an integer string.
func ParseWorkerCount(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	switch value {
	case "full":
		return runtime.NumCPU(), nil
	case "half":
		count := runtime.NumCPU() / 2
		if count < 1 {
			count = 1
		}
		return count, nil
	default:
		count, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("must be 'full', 'half', or a positive integer (got: %s)", value)
		}
		if count < 1 {
			return 0, fmt.Errorf("must be at least 1 (got: %d)", count)
		}
		return count, nil
	}
}
