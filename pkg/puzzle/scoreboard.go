package puzzle

import (
	"encoding/json"
	"fmt"
	"os"
)

// Score is one size's best recorded solve. BestTime of -1 means no record.
type Score struct {
	BestTime   int    `json:"best_time"`
	PlayerName string `json:"player_name"`
	Epoch      int64  `json:"epoch"`
}

// Scoreboard is a JSON-file-backed high-score table keyed by puzzle size
// (e.g. "5x5").
type Scoreboard struct {
	path   string
	scores map[string]Score
}

// LoadScoreboard reads the scoreboard at path, returning an empty one if the
// file does not yet exist.
func LoadScoreboard(path string) (*Scoreboard, error) {
	sb := &Scoreboard{path: path, scores: map[string]Score{}}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sb, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return sb, nil
	}
	if err := json.Unmarshal(data, &sb.scores); err != nil {
		return nil, fmt.Errorf("puzzle: malformed scoreboard %s: %w", path, err)
	}
	return sb, nil
}

func sizeKey(rows, cols int) string { return fmt.Sprintf("%dx%d", rows, cols) }

// Best returns the recorded score for a size, or a -1-BestTime Score and
// ErrNotFound if none exists yet.
func (sb *Scoreboard) Best(rows, cols int) (Score, error) {
	s, ok := sb.scores[sizeKey(rows, cols)]
	if !ok {
		return Score{BestTime: -1}, ErrNotFound
	}
	return s, nil
}

// Record saves s as the size's best score if it beats (or there is no)
// existing record, persisting the scoreboard to disk when it does.
func (sb *Scoreboard) Record(rows, cols int, s Score) (bool, error) {
	key := sizeKey(rows, cols)
	existing, ok := sb.scores[key]
	if ok && existing.BestTime >= 0 && existing.BestTime <= s.BestTime {
		return false, nil
	}
	sb.scores[key] = s
	return true, sb.save()
}

func (sb *Scoreboard) save() error {
	data, err := json.MarshalIndent(sb.scores, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(sb.path, data, 0o644)
}

// All returns a copy of every recorded size-to-score entry.
func (sb *Scoreboard) All() map[string]Score {
	out := make(map[string]Score, len(sb.scores))
	for k, v := range sb.scores {
		out[k] = v
	}
	return out
}
