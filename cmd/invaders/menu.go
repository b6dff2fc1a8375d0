package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/velebak/tui-invaders/internal/config"
	"github.com/velebak/tui-invaders/internal/platform/tui"
	"github.com/velebak/tui-invaders/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right, then select Play. After a round ends
you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Cycle difficulty
  Enter/Space  - Select
  Q            - Quit

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	difficulty := config.PresetNormal

	for {
		result, err := tui.RunMenu(store, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		difficulty = result.Difficulty

		if result.Quit {
			break
		}

		switch result.Item {
		case tui.MenuItemPlay:
			cfg, err := loadGameConfig(difficulty)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}

			score, err := playRound(cfg, logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running round: %v\n", err)
				continue
			}

			if store != nil {
				if _, err := store.SaveScore(score, string(difficulty)); err != nil {
					logger.Warn("could not save score", "err", err)
				}
			}

		case tui.MenuItemScores:
			width, height := 80, 24
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width = w
				height = h
			}
			goBack, err := tui.RunScoreboard(store, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				if store != nil {
					store.Close()
				}
				return
			}
		}
	}

	if store != nil {
		store.Close()
	}
}
