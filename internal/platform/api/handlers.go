// Package api exposes the leaderboard over HTTP so companion clients
// (web builds, bots) can read and submit scores.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/m-orlov/tui-runner/internal/storage"
)

const maxRequestBody = 1 << 16 // 64 KB

type scoreResponse struct {
	ID         int64  `json:"id"`
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
	CreatedAt  string `json:"createdAt"`
}

type submitRequest struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *log.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode error", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, logger *log.Logger) {
	writeJSON(w, status, errorResponse{Message: msg}, logger)
}

// ListScores returns the leaderboard, highest score first.
func ListScores(store *storage.Store, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.TopScores(scoreLimit(r))
		if err != nil {
			logger.Error("list scores failed", "error", err)
			writeError(w, http.StatusInternalServerError, "could not load scores", logger)
			return
		}

		// Empty boards serialize as [], not null.
		out := make([]scoreResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, scoreResponse{
				ID:         e.ID,
				PlayerName: e.PlayerName,
				Score:      e.Score,
				CreatedAt:  e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			})
		}

		writeJSON(w, http.StatusOK, out, logger)
	}
}

// scoreLimit reads an optional ?limit= parameter, defaulting to the
// full board.
func scoreLimit(r *http.Request) int {
	limit := 100
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n < limit {
			limit = n
		}
	}
	return limit
}

// SubmitScore validates and persists a score submission.
func SubmitScore(store *storage.Store, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json", logger)
			return
		}

		entry, err := store.SaveScore(req.PlayerName, req.Score)
		switch {
		case errors.Is(err, storage.ErrEmptyName),
			errors.Is(err, storage.ErrNameTooLong),
			errors.Is(err, storage.ErrNegativeScore):
			writeError(w, http.StatusBadRequest, err.Error(), logger)
			return
		case err != nil:
			logger.Error("save score failed", "error", err)
			writeError(w, http.StatusInternalServerError, "could not save score", logger)
			return
		}

		logger.Info("score submitted", "player", entry.PlayerName, "score", entry.Score)

		writeJSON(w, http.StatusCreated, scoreResponse{
			ID:         entry.ID,
			PlayerName: entry.PlayerName,
			Score:      entry.Score,
			CreatedAt:  entry.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}, logger)
	}
}

// Health reports liveness.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
