package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/m-orlov/tui-runner/internal/storage"
)

// ServerConfig holds configuration for the HTTP API server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// DBPath is the path to the scores database.
	DBPath string
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address: ":8080",
		DBPath:  "~/.runner/scores.db",
	}
}

// Server is the leaderboard HTTP API server.
type Server struct {
	config ServerConfig
	server *http.Server
	store  *storage.Store
	logger *log.Logger
}

// NewServer opens the score store and builds the HTTP server.
func NewServer(cfg ServerConfig) (*Server, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-api",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := store.SeedDefaults(); err != nil {
		store.Close()
		return nil, err
	}

	srv := &Server{
		config: cfg,
		store:  store,
		logger: logger,
	}

	srv.server = &http.Server{
		Addr:              cfg.Address,
		Handler:           NewMux(store, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return srv, nil
}

// NewMux builds the API route table.
func NewMux(store *storage.Store, logger *log.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /scores", ListScores(store, logger))
	mux.HandleFunc("POST /scores", SubmitScore(store, logger))
	mux.HandleFunc("GET /health", Health())
	return mux
}

// ListenAndServe starts the API server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting API server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server and closes the store.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if closeErr := s.store.Close(); err == nil {
		err = closeErr
	}
	return err
}
