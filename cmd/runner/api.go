package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m-orlov/tui-runner/internal/platform/api"
)

var flagHTTPAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the leaderboard HTTP API",
	Long: `Start an HTTP server exposing the leaderboard.

Endpoints:
  GET  /scores   - Leaderboard, highest score first
  POST /scores   - Submit a score: {"playerName": "...", "score": N}
  GET  /health   - Liveness check

Examples:
  runner api                    # Listen on :8080
  runner api --http :9090       # Listen on port 9090
  runner api --db ./scores.db   # Use specific database`,
	Args: cobra.NoArgs,
	Run:  runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP server address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) {
	server, err := api.NewServer(api.ServerConfig{
		Address: flagHTTPAddr,
		DBPath:  flagDBPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting leaderboard API on %s\n", flagHTTPAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
