package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phung/nurikabe/pkg/model"
)

func TestBoardValidate(t *testing.T) {
	tests := []struct {
		name    string
		board   Board
		wantErr bool
	}{
		{"valid", Board{{1, 0}, {0, 0}}, false},
		{"empty", Board{}, true},
		{"ragged", Board{{1, 0}, {0}}, true},
		{"negative", Board{{1, -1}}, true},
		{"no seeds", Board{{0, 0}, {0, 0}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.board.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestArchiveAppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	src := NewArchiveSource(dir)

	board := Board{{2, 0}, {0, 0}}
	if err := src.Append(board); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, picked, err := src.LoadBoard(2, 2, 1)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if picked != 1 {
		t.Fatalf("want picked=1, got %d", picked)
	}
	if len(got) != 2 || len(got[0]) != 2 || got[0][0] != 2 {
		t.Fatalf("unexpected board round-trip: %v", got)
	}
}

func TestArchiveLoadMissingSizeIsNotFound(t *testing.T) {
	src := NewArchiveSource(t.TempDir())
	if _, _, err := src.LoadBoard(9, 9, 1); err == nil {
		t.Fatalf("want an error for a missing archive")
	}
}

func TestArchiveRepairDropsInvalidLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boards_2x2.ndjson")
	content := "[[1,0],[0,0]]\n" + "not json\n" + "[[0,0]]\n" + "[[1,0],[0,0]]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	src := &ArchiveSource{Dir: dir}
	kept, dropped, err := src.Repair(2, 2)
	if err != nil {
		t.Fatalf("Repair: %v", err)
	}
	if kept != 2 || dropped != 2 {
		t.Fatalf("want kept=2 dropped=2, got kept=%d dropped=%d", kept, dropped)
	}

	boards, err := src.ReadAll(2, 2)
	if err != nil {
		t.Fatalf("ReadAll after repair: %v", err)
	}
	if len(boards) != 2 {
		t.Fatalf("want 2 surviving boards, got %d", len(boards))
	}
}

func TestLoadFileBuildsGridWithMarks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	content := `{"board":[[1,0],[0,0]],"marks":[[0,-2],[-2,-2]]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	g := f.Grid()

	if g.Rows != 2 || g.Cols != 2 {
		t.Fatalf("unexpected grid dimensions: %dx%d", g.Rows, g.Cols)
	}
	if g.Cells[g.Index(1, 0)].State != model.Water {
		t.Fatalf("want (1,0) to be water from the overlaid marks, got %v", g.Cells[g.Index(1, 0)].State)
	}
	if !g.Cells[g.Index(0, 0)].IsSeed() {
		t.Fatalf("want (0,0) to remain the seed clue")
	}
}

func TestScoreboardRecordsOnlyImprovement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	sb, err := LoadScoreboard(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := sb.Best(5, 5); err != ErrNotFound {
		t.Fatalf("want ErrNotFound for an empty scoreboard, got %v", err)
	}

	improved, err := sb.Record(5, 5, Score{BestTime: 120, PlayerName: "a", Epoch: 1})
	if err != nil || !improved {
		t.Fatalf("first record should improve: improved=%v err=%v", improved, err)
	}

	improved, err = sb.Record(5, 5, Score{BestTime: 150, PlayerName: "b", Epoch: 2})
	if err != nil || improved {
		t.Fatalf("a slower time should not improve: improved=%v err=%v", improved, err)
	}

	improved, err = sb.Record(5, 5, Score{BestTime: 90, PlayerName: "c", Epoch: 3})
	if err != nil || !improved {
		t.Fatalf("a faster time should improve: improved=%v err=%v", improved, err)
	}

	best, err := sb.Best(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if best.BestTime != 90 || best.PlayerName != "c" {
		t.Fatalf("unexpected best score: %+v", best)
	}
}
