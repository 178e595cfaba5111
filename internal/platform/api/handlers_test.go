package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/m-orlov/tui-runner/internal/storage"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewMux(store, log.New(io.Discard))
}

func postScore(t *testing.T, mux *http.ServeMux, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/scores", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func getScores(t *testing.T, mux *http.ServeMux, path string) []scoreResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s status = %d, want %d", path, rec.Code, http.StatusOK)
	}
	var out []scoreResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestListScoresEmptyBoardIsArray(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/scores", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestSubmitAndList(t *testing.T) {
	mux := newTestMux(t)

	rec := postScore(t, mux, `{"playerName":"AAA","score":5}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var created scoreResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.PlayerName != "AAA" || created.Score != 5 {
		t.Errorf("created = %+v, want AAA/5", created)
	}
	if created.ID == 0 {
		t.Error("created entry has no ID")
	}

	scores := getScores(t, mux, "/scores")
	if len(scores) != 1 {
		t.Fatalf("len(scores) = %d, want 1", len(scores))
	}
	if scores[0].PlayerName != "AAA" {
		t.Errorf("scores[0].PlayerName = %q", scores[0].PlayerName)
	}
}

func TestListOrderedByScoreDescending(t *testing.T) {
	mux := newTestMux(t)

	for _, s := range []string{
		`{"playerName":"LOW","score":10}`,
		`{"playerName":"HIGH","score":300}`,
		`{"playerName":"MID","score":50}`,
	} {
		if rec := postScore(t, mux, s); rec.Code != http.StatusCreated {
			t.Fatalf("submit %s: status = %d", s, rec.Code)
		}
	}

	scores := getScores(t, mux, "/scores")
	want := []string{"HIGH", "MID", "LOW"}
	if len(scores) != len(want) {
		t.Fatalf("len(scores) = %d, want %d", len(scores), len(want))
	}
	for i, name := range want {
		if scores[i].PlayerName != name {
			t.Errorf("scores[%d] = %q, want %q", i, scores[i].PlayerName, name)
		}
	}
}

func TestSubmitValidation(t *testing.T) {
	mux := newTestMux(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty name", `{"playerName":"","score":5}`},
		{"whitespace name", `{"playerName":"   ","score":5}`},
		{"name too long", `{"playerName":"` + strings.Repeat("X", storage.MaxNameLength+1) + `","score":5}`},
		{"negative score", `{"playerName":"AAA","score":-1}`},
		{"malformed json", `{"playerName":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postScore(t, mux, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			var resp errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if resp.Message == "" {
				t.Error("error response has no message")
			}
		})
	}

	// Rejected submissions must not appear on the board.
	if scores := getScores(t, mux, "/scores"); len(scores) != 0 {
		t.Errorf("board has %d entries after rejected submissions", len(scores))
	}
}

func TestListLimitParameter(t *testing.T) {
	mux := newTestMux(t)

	for _, s := range []string{
		`{"playerName":"A","score":100}`,
		`{"playerName":"B","score":200}`,
		`{"playerName":"C","score":300}`,
	} {
		postScore(t, mux, s)
	}

	scores := getScores(t, mux, "/scores?limit=2")
	if len(scores) != 2 {
		t.Fatalf("len(scores) = %d, want 2", len(scores))
	}
	if scores[0].PlayerName != "C" {
		t.Errorf("scores[0] = %q, want C", scores[0].PlayerName)
	}
}

func TestScoreZeroIsAccepted(t *testing.T) {
	mux := newTestMux(t)

	rec := postScore(t, mux, `{"playerName":"ZERO","score":0}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
}

func TestHealth(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
