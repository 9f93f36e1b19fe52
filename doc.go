// Package main provides the nurikabe CLI tool.
//
// # Overview
//
// nurikabe is a command-line tool for solving, validating, and rendering
// Nurikabe puzzles, and for maintaining the puzzle archive and high-score
// table that back its `solve` command.
//
// # Key Features
//
//   - Constraint-propagation + recursive backtracking solver (pkg/engine)
//   - Board/contradiction validation independent of solving
//   - ASCII/Unicode board rendering for debugging
//   - Archive repair for corrupted NDJSON puzzle files
//   - Per-size high-score tracking
//
// # Installation & Building
//
//	go build
//	./nurikabe --help
//
// # Commands
//
// ## solve
//
// Load an archived puzzle by size and run the solver.
//
//	nurikabe solve 5
//	nurikabe solve 10 3 --verbose
//
// Exit codes: 0 solved, 1 invalid size, 2 the engine reported a
// contradiction.
//
// ## validate
//
// Run the group analyzer's SOLVED/OKAY/ERROR classification over a board
// file without running the solver.
//
//	nurikabe validate board.json
//
// ## render
//
// Draw a board file as an ASCII/Unicode grid.
//
//	nurikabe render board.json --style ascii --coords
//
// ## repair
//
// Scan the puzzle archive's NDJSON files per size and drop malformed
// entries, with concurrency controlled by --workers/-j.
//
//	nurikabe repair --workers full
//
// ## scores
//
// Print the recorded best solve time for each puzzle size.
//
//	nurikabe scores
//
// # Board file format
//
// validate and render read a JSON object with a "board" matrix (0 for
// blank, a positive integer for a seed clue) and an optional "marks"
// matrix overlaying Island/Water/Infer state onto non-seed cells:
//
//	{
//	  "board": [[1, 0], [0, 0]],
//	  "marks": [[0, -2], [-2, -2]]
//	}
//
// # Glyphs
//
// render's "ascii" style uses '#' for water, 'o' for an island mark, and
// '.' for blank; "unicode" uses '█', '●', and '·' respectively. A seed
// cell always shows its numeric clue.
package main
