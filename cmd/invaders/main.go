// invaders is a terminal space shooter: steer the ship, shoot the
// descending formation, keep it off your row.
//
// Usage:
//
//	invaders play            - Start a round directly
//	invaders menu            - Interactive menu with difficulty picker
//	invaders scores          - Show the top recorded scores
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 25)
//	--db <path>         - Set database path (default: ~/.invaders/scores.db)
//	--debug-log <path>  - Write debug logs to a file (default: off)
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
	flagFPS      int
	flagDBPath   string
	flagDebugLog string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Terminal space shooter",
	Long: `Invaders is a fixed-grid space shooter played right in the terminal.

Available commands:
  play     - Start a round directly
  menu     - Interactive menu with difficulty picker
  scores   - View the high score table

Examples:
  invaders play
  invaders play --difficulty hard
  invaders menu
  invaders scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 25, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagDebugLog, "debug-log", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the debug logger. The terminal is owned by the game
// while a round runs, so logs go to a file or nowhere.
func newLogger() *log.Logger {
	if flagDebugLog == "" {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(flagDebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		return log.New(io.Discard)
	}
	logger := log.New(f)
	logger.SetLevel(log.DebugLevel)
	return logger
}
