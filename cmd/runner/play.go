package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/m-orlov/tui-runner/internal/core"
	runnergame "github.com/m-orlov/tui-runner/internal/games/runner"
	"github.com/m-orlov/tui-runner/internal/platform/tui"
	"github.com/m-orlov/tui-runner/internal/registry"
	"github.com/m-orlov/tui-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W - Jump (press again mid-air for double jump)
  P          - Pause
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Gentler speed-up, sparser obstacles
  normal - Default pacing
  hard   - Faster speed-up, denser obstacles
  fixed  - No progression, constant pace

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runnergame.SetConfigPath(flagConfig)
	runnergame.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create("runner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Game still works, scores just won't persist.
		store = nil
	} else if seedErr := store.SeedDefaults(); seedErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not seed leaderboard: %v\n", seedErr)
	}

	runErr := tui.Run(game, store, cfg, localUsername())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// localUsername prefills the leaderboard submission form.
func localUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
