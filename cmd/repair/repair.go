// Package repair implements the `repair` CLI command: scan a puzzle
// archive's NDJSON files and drop any line that fails to parse or fails
// Board.Validate.
package repair

import (
	"sync"

	"github.com/spf13/cobra"

	"github.com/phung/nurikabe/pkg/common"
	"github.com/phung/nurikabe/pkg/puzzle"
)

var (
	archiveDir string
	workers    string
)

// Cmd is the `repair` command.
var Cmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair a puzzle archive's malformed entries",
	Long: `Scan every size's NDJSON board archive, drop any line that fails
to parse or fails Board.Validate, and rewrite the archive in place.

Sizes are repaired concurrently, bounded by --workers.

Examples:
  nurikabe repair
  nurikabe repair --archive assets/puzzles --workers full`,
	RunE: runRepair,
}

func init() {
	Cmd.Flags().StringVar(&archiveDir, "archive", "assets/puzzles", "directory holding the NDJSON board archives")
	Cmd.Flags().StringVarP(&workers, "workers", "j", "half", "concurrent repair workers (integer, 'half', or 'full')")
}

// result is one size's repair outcome, reported back over a channel so the
// worker pool's goroutines never touch shared state directly.
type result struct {
	size    int
	kept    int
	dropped int
	err     error
}

func runRepair(cmd *cobra.Command, args []string) error {
	n, err := common.ParseWorkerCount(workers)
	if err != nil {
		return err
	}

	src := puzzle.NewArchiveSource(archiveDir)
	sizes := common.DefaultPuzzleSizes

	sem := make(chan struct{}, n)
	results := make(chan result, len(sizes))
	var wg sync.WaitGroup

	for _, size := range sizes {
		wg.Add(1)
		go func(size int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			kept, dropped, err := src.Repair(size, size)
			results <- result{size: size, kept: kept, dropped: dropped, err: err}
		}(size)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	failed := 0
	for r := range results {
		if r.err != nil {
			common.Warning("%dx%d: repair failed: %v", r.size, r.size, r.err)
			failed++
			continue
		}
		common.Info("%dx%d: kept=%d dropped=%d", r.size, r.size, r.kept, r.dropped)
	}

	if failed > 0 {
		common.Warning("repair finished with %d size(s) failing (likely no archive file present)", failed)
	}
	return nil
}
