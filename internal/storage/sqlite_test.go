package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []struct {
		name  string
		score int
	}{
		{"AAA", 100},
		{"BBB", 50},
		{"CCC", 200},
	} {
		if _, err := store.SaveScore(e.name, e.score); err != nil {
			t.Fatalf("SaveScore(%q) failed: %v", e.name, err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending by score
	if scores[0].Score != 200 || scores[0].PlayerName != "CCC" {
		t.Errorf("rank 1 = %+v, expected CCC/200", scores[0])
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("ranks 2,3 = %d,%d, expected 100,50", scores[1].Score, scores[2].Score)
	}
}

func TestStoreRankInsertion(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("LOW", 10)
	store.SaveScore("HIGH", 1000)

	// A mid score must land between them.
	if _, err := store.SaveScore("MID", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	want := []string{"HIGH", "MID", "LOW"}
	for i, name := range want {
		if scores[i].PlayerName != name {
			t.Errorf("rank %d = %q, expected %q", i+1, scores[i].PlayerName, name)
		}
	}
}

func TestStoreValidation(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name    string
		player  string
		score   int
		wantErr error
	}{
		{"empty name", "", 5, ErrEmptyName},
		{"whitespace name", "   ", 5, ErrEmptyName},
		{"name too long", strings.Repeat("x", MaxNameLength+1), 5, ErrNameTooLong},
		{"negative score", "AAA", -1, ErrNegativeScore},
		{"valid", "AAA", 5, nil},
		{"zero score ok", "ZZZ", 0, nil},
		{"name at limit", strings.Repeat("y", MaxNameLength), 5, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.SaveScore(tc.player, tc.score)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("SaveScore(%q, %d) error = %v, expected %v", tc.player, tc.score, err, tc.wantErr)
			}
		})
	}

	// Rejected submissions must not be stored.
	scores, _ := store.TopScores(10)
	if len(scores) != 3 {
		t.Errorf("expected only the 3 valid entries stored, got %d", len(scores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("P", (i+1)*100)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	store.SaveScore("A", 100)
	store.SaveScore("B", 300)
	store.SaveScore("C", 200)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSeedDefaults(t *testing.T) {
	store := openTestStore(t)

	if err := store.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("expected 5 seeded entries, got %d", len(scores))
	}
	if scores[0].Score != 500 {
		t.Errorf("top seed = %d, expected 500", scores[0].Score)
	}

	// Seeding again must be a no-op.
	if err := store.SeedDefaults(); err != nil {
		t.Fatalf("second SeedDefaults() failed: %v", err)
	}
	scores, _ = store.TopScores(10)
	if len(scores) != 5 {
		t.Errorf("seeding a non-empty board duplicated entries: %d", len(scores))
	}

	// A board with real entries is never seeded.
	store.ClearScores()
	store.SaveScore("REAL", 1)
	store.SeedDefaults()
	scores, _ = store.TopScores(10)
	if len(scores) != 1 {
		t.Errorf("non-empty board must not be seeded, got %d entries", len(scores))
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("A", 100)
	store.SaveScore("B", 200)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	// Unset key returns the fallback.
	v, err := store.Setting("muted", "false")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if v != "false" {
		t.Errorf("unset setting = %q, expected fallback", v)
	}

	if err := store.SetSetting("muted", "true"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if v, _ = store.Setting("muted", "false"); v != "true" {
		t.Errorf("setting = %q, expected true", v)
	}

	// Overwrite
	store.SetSetting("muted", "false")
	if v, _ = store.Setting("muted", "true"); v != "false" {
		t.Errorf("overwritten setting = %q, expected false", v)
	}

	// Independent keys
	store.SetSetting("best_score_seen", "740")
	if v, _ = store.Setting("best_score_seen", "0"); v != "740" {
		t.Errorf("best_score_seen = %q, expected 740", v)
	}
}
