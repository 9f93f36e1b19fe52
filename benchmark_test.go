package main

import (
	"strconv"
	"testing"

	"github.com/phung/nurikabe/pkg/common"
	"github.com/phung/nurikabe/pkg/engine"
	"github.com/phung/nurikabe/pkg/model"
)

// singleSeedBoard returns a size x size board with one seed of value 1,
// placed off center. Its island is complete on placement, so the remaining
// cells are forced entirely to water, leaving one closed water region of
// size size*size-1 and a Target > 0. It exercises the solver's warm start
// and propagation passes without needing an archived puzzle on disk.
func singleSeedBoard(size int) [][]int {
	b := make([][]int, size)
	for y := range b {
		b[y] = make([]int, size)
	}
	b[size/2][size/2] = 1
	return b
}

// BenchmarkSolveBySize measures Solve across every archive size the CLI
// supports, from the smallest to the largest.
func BenchmarkSolveBySize(b *testing.B) {
	for _, size := range common.DefaultPuzzleSizes {
		board := singleSeedBoard(size)
		b.Run(sizeLabel(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				g := model.NewGrid(board, nil)
				if verdict := engine.Solve(g, nil, nil, nil); verdict != engine.Solved {
					b.Fatalf("size %d: want Solved, got %v", size, verdict)
				}
			}
		})
	}
}

func sizeLabel(size int) string {
	s := strconv.Itoa(size)
	return s + "x" + s
}
