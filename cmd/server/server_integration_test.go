package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jorge-castellon-jr/chess-tcg/internal/config"
	"github.com/jorge-castellon-jr/chess-tcg/internal/serverapp"
)

type testApp struct {
	handler http.Handler
	exports string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{Env: config.EnvDevelopment}
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.ExportsRoot = t.TempDir()
	cfg.Paths.LogsRoot = t.TempDir()
	cfg.ApplyDefaults()

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Logger: log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	return &testApp{handler: handler, exports: cfg.Paths.ExportsRoot}
}

func (app *testApp) request(t *testing.T, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_HealthAndReady(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		res := app.request(t, http.MethodGet, path, "")
		if res.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, res.Code)
		}
		if rid := res.Header().Get("X-Request-Id"); rid == "" {
			t.Fatalf("expected request id header on %s", path)
		}
	}
}

func TestServer_ImportThenBrowseCards(t *testing.T) {
	app := newTestApp(t)

	setDir := filepath.Join(app.exports, "Alpha")
	if err := os.MkdirAll(setDir, 0o755); err != nil {
		t.Fatalf("mkdir set folder: %v", err)
	}
	csv := "Name,Type,PieceType,Class,Cost\n" +
		"Ada the King,Piece,King,Hearts,\n" +
		"Pawn of Hearts,Piece,,,1\n"
	if err := os.WriteFile(filepath.Join(setDir, "cards.csv"), []byte(csv), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	res := app.request(t, http.MethodPost, "/api/import-cards", `{"setName":"Alpha"}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 from import, got %d: %s", res.Code, res.Body.String())
	}
	var out struct {
		Success bool `json:"success"`
		Stats   struct {
			CardsProcessed int `json:"cardsProcessed"`
			Skipped        int `json:"skipped"`
		} `json:"stats"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode import response: %v", err)
	}
	if !out.Success || out.Stats.CardsProcessed != 2 {
		t.Fatalf("unexpected import outcome: %+v", out)
	}

	res = app.request(t, http.MethodPost, "/api/import-cards", `{"setName":"Alpha"}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 from re-import, got %d", res.Code)
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode re-import response: %v", err)
	}
	if out.Stats.CardsProcessed != 0 || out.Stats.Skipped != 2 {
		t.Fatalf("expected re-import to skip everything, got %+v", out)
	}

	res = app.request(t, http.MethodGet, "/api/cards?class=Hearts&pieceType=King", "")
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 listing cards, got %d", res.Code)
	}
	var cards []map[string]any
	if err := json.NewDecoder(res.Body).Decode(&cards); err != nil {
		t.Fatalf("decode cards: %v", err)
	}
	if len(cards) != 1 || cards[0]["name"] != "Ada the King" {
		t.Fatalf("expected the imported king, got %v", cards)
	}
}

func TestServer_ImportDisabledOutsideDevelopment(t *testing.T) {
	cfg := &config.Config{Env: config.EnvProduction}
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.ExportsRoot = t.TempDir()
	cfg.Paths.LogsRoot = t.TempDir()
	cfg.ApplyDefaults()

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Logger: log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/import-cards", strings.NewReader(`{"setName":"Alpha"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 in production, got %d", rec.Code)
	}
}

func TestServer_BuilderCommandRoundTrip(t *testing.T) {
	app := newTestApp(t)

	setDir := filepath.Join(app.exports, "Alpha")
	if err := os.MkdirAll(setDir, 0o755); err != nil {
		t.Fatalf("mkdir set folder: %v", err)
	}
	csv := "Name,Type,PieceType,Class\nAda the King,Piece,King,Hearts\n"
	if err := os.WriteFile(filepath.Join(setDir, "cards.csv"), []byte(csv), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if res := app.request(t, http.MethodPost, "/api/import-cards", `{"setName":"Alpha"}`); res.Code != http.StatusOK {
		t.Fatalf("import failed: %d", res.Code)
	}

	res := app.request(t, http.MethodGet, "/api/cards", "")
	var cards []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&cards); err != nil {
		t.Fatalf("decode cards: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected one card, got %d", len(cards))
	}

	cmd := `{"op":"add","deck":{"name":"","cards":[]},"cardId":"` + cards[0].ID + `"}`
	res = app.request(t, http.MethodPost, "/api/builder/cmd", cmd)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 from builder cmd, got %d: %s", res.Code, res.Body.String())
	}
	var result struct {
		Deck struct {
			Cards []json.RawMessage `json:"cards"`
			King  *json.RawMessage  `json:"king"`
		} `json:"deck"`
		Errors []string `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		t.Fatalf("decode builder result: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected builder errors: %v", result.Errors)
	}
	if len(result.Deck.Cards) != 1 || result.Deck.King == nil {
		t.Fatalf("expected king added and derived, got %s", mustJSON(result.Deck))
	}
}

func TestServer_PagesAndStatic(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/", "/cards", "/builder"} {
		res := app.request(t, http.MethodGet, path, "")
		if res.Code != http.StatusOK {
			t.Fatalf("expected 200 for page %s, got %d", path, res.Code)
		}
		if ct := res.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
			t.Fatalf("expected html content type for %s, got %q", path, ct)
		}
	}

	res := app.request(t, http.MethodGet, "/static/css/app.css", "")
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 for embedded stylesheet, got %d", res.Code)
	}

	res = app.request(t, http.MethodGet, "/nope", "")
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown page, got %d", res.Code)
	}
}

func mustJSON(v any) string {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(v)
	return buf.String()
}
