// brickbreaker is a single-screen brick breaker for the terminal.
//
// Usage:
//
//	brickbreaker play [name] [rows]  - Play a game
//	brickbreaker serve               - Start SSH server for remote play
//	brickbreaker runs                - List journaled runs
//	brickbreaker replay <run-id>     - Re-simulate a journaled run
//
// Global flags:
//
//	--db <path>        - Set run journal path (default: ~/.brickbreaker/runs.db)
//	--config <path>    - Use a custom bricks.yaml
//	--log-file <path>  - Write logs to a file (default: discard)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick breaker - Clear the wall in your terminal",
	Long: `Brick breaker is a single-screen paddle and ball game for the terminal.

Available commands:
  play     - Play a game
  serve    - Start SSH server for remote play
  runs     - List journaled runs
  replay   - Re-simulate a journaled run

Examples:
  brickbreaker play
  brickbreaker play "Ada" 6
  brickbreaker serve --ssh :2222
  brickbreaker runs --player Ada
  brickbreaker replay 3f2b...`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickbreaker/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bricks config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger creates the logger for local commands. Without --log-file logs
// are discarded so they never draw over the game.
func newLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbreaker",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
