// Package scores implements the `scores` CLI command: print the recorded
// best solve time per puzzle size.
package scores

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/phung/nurikabe/pkg/puzzle"
)

var scoresFile string

// Cmd is the `scores` command.
var Cmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the recorded best solve time for each puzzle size",
	RunE:  runScores,
}

func init() {
	Cmd.Flags().StringVar(&scoresFile, "scores", "assets/scores.json", "path to the high-score file")
}

func runScores(cmd *cobra.Command, args []string) error {
	sb, err := puzzle.LoadScoreboard(scoresFile)
	if err != nil {
		return fmt.Errorf("loading scoreboard: %w", err)
	}

	all := sb.All()
	if len(all) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded scores yet.")
		return nil
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		s := all[k]
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s best=%dms player=%s\n", k, s.BestTime, s.PlayerName)
	}
	return nil
}
