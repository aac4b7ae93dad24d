package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/cricverse/cricstats/internal/domain/player"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	"github.com/cricverse/cricstats/internal/platform/logging"
	"github.com/cricverse/cricstats/internal/usecase"
)

type memoryPlayerRepo struct {
	players map[string]player.Player
}

func newMemoryPlayerRepo() *memoryPlayerRepo {
	return &memoryPlayerRepo{players: make(map[string]player.Player)}
}

func (r *memoryPlayerRepo) Create(_ context.Context, p player.Player) error {
	if _, exists := r.players[p.ID]; exists {
		return fmt.Errorf("%w: players", storage.ErrDuplicateKey)
	}
	r.players[p.ID] = p
	return nil
}

func (r *memoryPlayerRepo) Get(_ context.Context, playerID string) (player.Player, error) {
	p, ok := r.players[playerID]
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player", storage.ErrNotFound)
	}
	return p, nil
}

func (r *memoryPlayerRepo) Update(_ context.Context, p player.Player) error {
	if _, ok := r.players[p.ID]; !ok {
		return fmt.Errorf("%w: player", storage.ErrNotFound)
	}
	r.players[p.ID] = p
	return nil
}

func (r *memoryPlayerRepo) Delete(_ context.Context, playerID string) error {
	if _, ok := r.players[playerID]; !ok {
		return fmt.Errorf("%w: player", storage.ErrNotFound)
	}
	delete(r.players, playerID)
	return nil
}

func (r *memoryPlayerRepo) List(_ context.Context, limit, offset int) ([]player.Player, error) {
	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryPlayerRepo) Upsert(_ context.Context, p player.Player) error {
	r.players[p.ID] = p
	return nil
}

func (r *memoryPlayerRepo) EnsureStub(_ context.Context, playerID, name, country string) error {
	if _, ok := r.players[playerID]; !ok {
		r.players[playerID] = player.Player{ID: playerID, Name: name, Country: country}
	}
	return nil
}

func newTestRouter(t *testing.T) (http.Handler, *memoryPlayerRepo) {
	t.Helper()

	repo := newMemoryPlayerRepo()
	handler := NewHandler(
		usecase.NewPlayerService(repo, nil),
		nil,
		nil,
		nil,
		nil,
		logging.NewNop(),
	)
	return NewRouter(handler, logging.NewNop(), []string{"*"}, "test-job-token"), repo
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestCreatePlayerEndpoint(t *testing.T) {
	router, repo := newTestRouter(t)

	payload := `{"name":"Virat Kohli","country":"India","totalRuns":13906}`
	req := httptest.NewRequest(http.MethodPost, "/v1/players", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object in response")
	}
	id, _ := data["id"].(string)
	if id == "" {
		t.Fatalf("expected generated player id")
	}
	if _, stored := repo.players[id]; !stored {
		t.Fatalf("player not persisted")
	}
}

func TestCreatePlayerEndpointRejectsUnknownFields(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := `{"name":"Virat Kohli","country":"India","jersey":18}`
	req := httptest.NewRequest(http.MethodPost, "/v1/players", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestGetPlayerEndpointNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players/ghost", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND status, got %v", errorObj["status"])
	}
}

func TestCreatePlayerEndpointDuplicate(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.players["1413"] = player.Player{ID: "1413", Name: "Virat Kohli", Country: "India"}

	payload := `{"id":"1413","name":"Virat Kohli","country":"India"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/players", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestIngestionRoutesRequireJobToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/ingestion/players", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/ingestion/players", nil)
	req.Header.Set("X-Internal-Job-Token", "wrong-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 with wrong token, got %d", rec.Code)
	}
}
