package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	flagRunsPlayer string
	flagRunsLimit  int
	flagRunsDelete []string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List journaled runs",
	Long: `List the most recently started runs, newest first.

Every started game is journaled with its inputs so it can be replayed.
Runs cut short by a reset or by quitting are listed as abandoned.

Examples:
  brickbreaker runs
  brickbreaker runs --player Ada --limit 5
  brickbreaker runs --delete 3f2b9c4e-...`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsPlayer, "player", "", "Only show runs by this player")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
	runsCmd.Flags().StringSliceVar(&flagRunsDelete, "delete", nil, "Delete runs by ID instead of listing")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(flagRunsDelete) > 0 {
		if err := deleteRuns(store, flagRunsDelete); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d run(s).\n", len(flagRunsDelete))
		return
	}

	runs, err := store.RecentRuns(flagRunsPlayer, flagRunsLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickbreaker play' to record the first one!")
		return
	}

	fmt.Printf("  %-36s  %-20s  %-4s  %-11s  %-6s  %-6s  %s\n", "ID", "Player", "Rows", "Status", "Score", "Ticks", "Started")
	fmt.Printf("  %-36s  %-20s  %-4s  %-11s  %-6s  %-6s  %s\n", "--", "------", "----", "------", "-----", "-----", "-------")

	for _, r := range runs {
		fmt.Printf("  %-36s  %-20s  %-4d  %-11s  %-6d  %-6d  %s\n",
			r.ID, truncate(r.Player, 20), r.Rows, r.Status, r.Score, r.Ticks,
			r.StartedAt.Format("2006-01-02 15:04"))
	}
}

// deleteRuns removes the given runs and their inputs. It stops at the
// first ID that cannot be deleted.
func deleteRuns(store *storage.Store, ids []string) error {
	for _, id := range ids {
		if err := store.DeleteRun(id); err != nil {
			return err
		}
	}
	return nil
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
