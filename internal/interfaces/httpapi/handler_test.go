package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/hoopsight/stintline/internal/domain/archive"
	"github.com/hoopsight/stintline/internal/domain/boxscore"
	"github.com/hoopsight/stintline/internal/domain/game"
	"github.com/hoopsight/stintline/internal/domain/gameflow"
	"github.com/hoopsight/stintline/internal/platform/logging"
)

type stubStore struct {
	index  archive.Index
	scores map[string][]game.Summary
	boxes  map[string]boxscore.Record
	flows  map[string]gameflow.Record
}

func (s *stubStore) WriteScores(context.Context, string, []game.Summary) error {
	return nil
}

func (s *stubStore) WriteGame(context.Context, string, boxscore.Record, gameflow.Record) error {
	return nil
}

func (s *stubStore) MergeIndex(context.Context, []archive.IndexEntry) error {
	return nil
}

func (s *stubStore) Cleanup(context.Context, string) ([]string, error) {
	return nil, nil
}

func (s *stubStore) Index(context.Context) (archive.Index, error) {
	return s.index, nil
}

func (s *stubStore) Scores(_ context.Context, date string) ([]game.Summary, error) {
	scores, ok := s.scores[date]
	if !ok {
		return nil, archive.ErrNotFound
	}
	return scores, nil
}

func (s *stubStore) Boxscore(_ context.Context, gameID string) (boxscore.Record, error) {
	rec, ok := s.boxes[gameID]
	if !ok {
		return boxscore.Record{}, archive.ErrNotFound
	}
	return rec, nil
}

func (s *stubStore) Gameflow(_ context.Context, gameID string) (gameflow.Record, error) {
	rec, ok := s.flows[gameID]
	if !ok {
		return gameflow.Record{}, archive.ErrNotFound
	}
	return rec, nil
}

func newTestRouter(store *stubStore) http.Handler {
	handler := NewHandler(store, nil, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), false, []string{"*"}, "secret")
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestHandler_GetIndex(t *testing.T) {
	store := &stubStore{
		index: archive.Index{Dates: []archive.IndexEntry{
			{Date: "2024-01-15", Games: []archive.IndexGame{{GameID: "0022300001", Home: "BOS", Away: "NYK"}}},
		}},
	}
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/index", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	dates, ok := data["dates"].([]any)
	if !ok || len(dates) != 1 {
		t.Fatalf("expected one index date, got %v", data)
	}
}

func TestHandler_GetScores(t *testing.T) {
	store := &stubStore{
		scores: map[string][]game.Summary{
			"2024-01-15": {{
				GameID:   "0022300001",
				Date:     "2024-01-15",
				HomeTeam: game.TeamScore{TeamRef: game.TeamRef{Tricode: "BOS", Name: "Celtics"}, Score: 112},
				AwayTeam: game.TeamScore{TeamRef: game.TeamRef{Tricode: "NYK", Name: "Knicks"}, Score: 105},
				Status:   "Final",
			}},
		},
	}
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scores/2024-01-15", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scores/2024-01-16", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing date, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scores/not-a-date", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", rec.Code)
	}
}

func TestHandler_GetBoxscoreAndGameflow(t *testing.T) {
	store := &stubStore{
		boxes: map[string]boxscore.Record{
			"0022300001": {GameID: "0022300001", Date: "2024-01-15"},
		},
		flows: map[string]gameflow.Record{
			"0022300001": {GameID: "0022300001"},
		},
	}
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/games/0022300001/boxscore", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["gameId"].(string); got != "0022300001" {
		t.Fatalf("unexpected boxscore payload: %v", data)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/games/0022300001/gameflow", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/games/nope/boxscore", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing game, got %d", rec.Code)
	}
}

func TestRequireInternalJobToken(t *testing.T) {
	router := newTestRouter(&stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/run-pipeline", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/run-pipeline", strings.NewReader("{}"))
	req.Header.Set("X-Internal-Job-Token", "wrong")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", rec.Code)
	}

	// Correct token reaches the handler, which reports the missing pipeline.
	req = httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/run-pipeline", strings.NewReader("{}"))
	req.Header.Set("X-Internal-Job-Token", "secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 with unconfigured pipeline, got %d", rec.Code)
	}
}
