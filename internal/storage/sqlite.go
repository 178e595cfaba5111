// Package storage provides SQLite-based persistence for the leaderboard
// and local settings. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MaxNameLength is the longest accepted player name, in runes.
const MaxNameLength = 24

// Validation errors surfaced to users on score submission.
var (
	ErrEmptyName     = errors.New("player name must not be empty")
	ErrNameTooLong   = fmt.Errorf("player name must be at most %d characters", MaxNameLength)
	ErrNegativeScore = errors.New("score must not be negative")
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single leaderboard record.
type ScoreEntry struct {
	ID         int64
	PlayerName string
	Score      int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ValidateScore checks a submission without persisting it.
func ValidateScore(playerName string, score int) error {
	if strings.TrimSpace(playerName) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(playerName) > MaxNameLength {
		return ErrNameTooLong
	}
	if score < 0 {
		return ErrNegativeScore
	}
	return nil
}

// SaveScore validates and records a new score, returning the stored entry.
func (s *Store) SaveScore(playerName string, score int) (ScoreEntry, error) {
	playerName = strings.TrimSpace(playerName)
	if err := ValidateScore(playerName, score); err != nil {
		return ScoreEntry{}, err
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (player_name, score) VALUES (?, ?)",
		playerName, score,
	)
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return ScoreEntry{ID: id, PlayerName: playerName, Score: score, CreatedAt: time.Now()}, nil
}

// TopScores retrieves the top N leaderboard entries, ordered by score
// descending; ties rank the older submission first.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player_name, score, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PlayerName, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all leaderboard entries.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SeedDefaults inserts placeholder leaderboard entries if, and only if,
// the table is empty. Purely a demo-environment convenience so a fresh
// install shows a populated board.
func (s *Store) SeedDefaults() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM scores").Scan(&count); err != nil {
		return fmt.Errorf("storage: cannot count scores: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := []ScoreEntry{
		{PlayerName: "ACE", Score: 500},
		{PlayerName: "BOLT", Score: 400},
		{PlayerName: "CLIFF", Score: 300},
		{PlayerName: "DART", Score: 200},
		{PlayerName: "ECHO", Score: 100},
	}
	for _, e := range seed {
		if _, err := s.SaveScore(e.PlayerName, e.Score); err != nil {
			return err
		}
	}
	return nil
}

// Setting returns a stored key/value setting, or fallback if unset.
// Used for the mute flag, volume and best-score-seen.
func (s *Store) Setting(key, fallback string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return fallback, fmt.Errorf("storage: cannot query setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting stores a key/value setting, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set setting %q: %w", key, err)
	}
	return nil
}

// parseCreatedAt handles the driver returning either time.Time or a
// DATETIME string.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
