package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/velebak/tui-invaders/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top 10 recorded scores.

Examples:
  invaders scores
  invaders scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-----", "----------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n", i+1, entry.Score, entry.Difficulty, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
