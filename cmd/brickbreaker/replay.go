package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/bricks"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a journaled run",
	Long: `Replay a journaled run headlessly and compare the outcome with the
recorded result. The game is deterministic, so a run replayed with the
configuration it was played with reproduces its status, score and ticks.

Examples:
  brickbreaker runs
  brickbreaker replay 3f2b9c4e-...`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

// replayFromJournal converts a journaled run into replay input.
func replayFromJournal(run storage.Run, inputs []storage.RunInput) (bricks.ReplayRun, error) {
	rr := bricks.ReplayRun{
		Rows:   run.Rows,
		Width:  run.Width,
		Height: run.Height,
		Ticks:  bricks.UnknownTicks,
		Inputs: make([]bricks.Event, 0, len(inputs)),
	}
	if run.Finished() {
		rr.Ticks = run.Ticks
	}

	for _, in := range inputs {
		switch in.Kind {
		case storage.InputCommand:
			cmd, err := core.ParseCommand(in.Command)
			if err != nil {
				return bricks.ReplayRun{}, fmt.Errorf("input %d: %w", in.Seq, err)
			}
			rr.Inputs = append(rr.Inputs, bricks.RecordedCommand(in.Tick, cmd))
		case storage.InputResize:
			rr.Inputs = append(rr.Inputs, bricks.RecordedResize(in.Tick, in.Width, in.Height))
		default:
			return bricks.ReplayRun{}, fmt.Errorf("input %d: unknown kind %q", in.Seq, in.Kind)
		}
	}
	return rr, nil
}

// replayMatches reports whether a replay reproduced the journaled result.
// Abandoned runs stop mid-game, so only their score and ticks are compared.
func replayMatches(run storage.Run, res bricks.ReplayResult) bool {
	if res.Score != run.Score || res.Ticks != run.Ticks {
		return false
	}
	if run.Status == storage.StatusAbandoned {
		return res.Status == bricks.StatusInProgress
	}
	recorded, err := bricks.ParseStatus(run.Status)
	if err != nil {
		return false
	}
	return res.Status == recorded
}

func runReplay(_ *cobra.Command, args []string) {
	bricksCfg, err := config.LoadBricks(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	run, err := store.Run(args[0])
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	inputs, err := store.RunInputs(run.ID)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving inputs: %v\n", err)
		os.Exit(1)
	}

	rr, err := replayFromJournal(run, inputs)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: run %s: %v\n", run.ID, err)
		os.Exit(1)
	}

	res := bricks.Replay(bricksCfg, rr)

	fmt.Printf("Run %s by %s (%d rows, %d inputs)\n", run.ID, run.Player, run.Rows, len(inputs))
	fmt.Println()
	fmt.Printf("  %-10s  %-11s  %-6s  %s\n", "", "Status", "Score", "Ticks")
	fmt.Printf("  %-10s  %-11s  %-6d  %d\n", "Recorded", run.Status, run.Score, run.Ticks)
	fmt.Printf("  %-10s  %-11s  %-6d  %d\n", "Replayed", res.Status, res.Score, res.Ticks)
	fmt.Println()

	switch {
	case !run.Finished():
		fmt.Println("Run has no recorded result; replayed to the end.")
	case replayMatches(run, res):
		fmt.Println("Replay matches the recorded result.")
	default:
		fmt.Println("Replay differs from the recorded result (was the config changed?).")
		store.Close()
		os.Exit(1)
	}
}
