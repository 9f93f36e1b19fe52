// Package puzzle holds the persistence collaborators external to the
// solving engine: a board archive and a high-score table.
package puzzle

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/phung/nurikabe/pkg/model"
)

// Board is a raw puzzle definition: a rows x cols matrix where a positive
// value is a seed clue and 0 is blank. It is the on-disk and in-memory
// representation handed to model.NewGrid.
type Board [][]int

// ErrNotFound is returned by a Source when no board exists for the
// requested size, or by Scoreboard lookups with no recorded best.
var ErrNotFound = errors.New("puzzle: not found")

// ErrInvalidPuzzle is returned by Board.Validate when a board fails its
// well-formedness checks: not rectangular, a negative cell, or no seeds.
var ErrInvalidPuzzle = errors.New("puzzle: invalid board")

// Validate reports whether the board is well-formed: rectangular, every
// cell non-negative, and carrying at least one seed.
func (b Board) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("%w: board has no rows", ErrInvalidPuzzle)
	}
	cols := len(b[0])
	if cols == 0 {
		return fmt.Errorf("%w: board has no columns", ErrInvalidPuzzle)
	}
	seeds := 0
	for _, row := range b {
		if len(row) != cols {
			return fmt.Errorf("%w: board rows have inconsistent length", ErrInvalidPuzzle)
		}
		for _, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: board contains a negative cell", ErrInvalidPuzzle)
			}
			if v > 0 {
				seeds++
			}
		}
	}
	if seeds == 0 {
		return fmt.Errorf("%w: board has no seeds", ErrInvalidPuzzle)
	}
	return nil
}

// Dims returns the board's row and column counts.
func (b Board) Dims() (rows, cols int) {
	rows = len(b)
	if rows > 0 {
		cols = len(b[0])
	}
	return
}

// Source loads a puzzle board of the given dimensions. index selects which
// board within the size's archive: index<=0 picks one at random, and any
// other value is taken modulo the archive length, 1-based ((index-1) %
// count).
type Source interface {
	LoadBoard(rows, cols, index int) (board Board, picked int, err error)
}

// File is the on-disk shape the validate and render CLI commands read: a
// board's seed clues plus whatever island/water marks have already been
// placed on it.
type File struct {
	Board Board           `json:"board"`
	Marks [][]model.State `json:"marks,omitempty"`
}

// LoadFile reads and parses a File from path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}

// Grid builds a model.Grid from the file's board and marks.
func (f *File) Grid() *model.Grid {
	return model.NewGrid(f.Board, f.Marks)
}
