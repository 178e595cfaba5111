// runner is a terminal endless-runner: dodge obstacles, chase the
// leaderboard.
//
// Usage:
//
//	runner play              - Play in the current terminal
//	runner scores            - Show the leaderboard
//	runner serve             - Start SSH server for remote play
//	runner api               - Start the leaderboard HTTP API
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.runner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the runner game
	_ "github.com/m-orlov/tui-runner/internal/games/runner"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Terminal endless runner",
	Long: `runner is a terminal endless-runner game. Jump over obstacles,
survive as long as you can, and climb the shared leaderboard.

Available commands:
  play     - Play in the current terminal
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  api      - Start the leaderboard HTTP API

Examples:
  runner play
  runner play --difficulty hard
  runner scores
  runner serve --ssh :2222
  runner api --http :8080`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}
