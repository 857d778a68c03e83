package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [name] [rows]",
	Short: "Play a game",
	Long: `Start a game. The field starts Ready; press Space to launch the ball.

Arguments:
  name  - Player name shown with the score (default: "Sammy the Spartan")
  rows  - Brick rows, clamped to 0..7 (default: 4)

Controls:
  Left/A, Right/D  - Move paddle
  Space/Enter      - Start
  R                - Reset (any time)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  brickbreaker play
  brickbreaker play Ada
  brickbreaker play Ada 7
  brickbreaker play --config ./my-bricks.yaml`,
	Args: cobra.MaximumNArgs(2),
	Run:  runPlay,
}

// parsePlayArgs reads the optional positional name and row count.
func parsePlayArgs(args []string, defaultRows int) (string, int, error) {
	name := core.DefaultPlayerName
	rows := defaultRows

	if len(args) > 0 && args[0] != "" {
		name = args[0]
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return "", 0, fmt.Errorf("rows must be an integer, got %q", args[1])
		}
		rows = n
	}
	return name, rows, nil
}

func runPlay(_ *cobra.Command, args []string) {
	bricksCfg, err := config.LoadBricks(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	name, rows, err := parsePlayArgs(args, bricksCfg.Grid.DefaultRows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := newLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	runtime := core.DefaultConfig()
	runtime.PlayerName = name
	runtime.Rows = rows
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	opts := tui.Options{
		Bricks:  bricksCfg,
		Runtime: runtime,
		Logger:  logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		// Continue without storage - game still works
	} else {
		opts.Journal = store
	}

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
