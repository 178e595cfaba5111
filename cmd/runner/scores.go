package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m-orlov/tui-runner/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 leaderboard entries.

Examples:
  runner scores
  runner scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.SeedDefaults(); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding leaderboard: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'runner play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-24s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-24s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-24s  %-10d  %s\n", i+1, entry.PlayerName, entry.Score, dateStr)
	}

	if best, err := store.HighScore(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
