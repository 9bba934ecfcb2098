package tournament

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

func TestCreateAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	h := NewHandler(repo)

	body := `{"name":"  Spring Open ","results":[
		{"rank":2,"playerName":"Bea","deck":"deck_02"},
		{"rank":1,"playerName":"Ada","deck":"deck_01"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/tournaments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Root(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.Tournament
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "Spring Open", created.Name)
	assert.False(t, created.Date.IsZero(), "missing date defaults to now")
	require.Len(t, created.Results, 2)
	assert.Equal(t, "Ada", created.Results[0].PlayerName, "results sorted by rank")
	require.NotNil(t, created.Results[0].Deck)
	assert.Equal(t, model.DeckID("deck_01"), created.Results[0].Deck.ID())

	req = httptest.NewRequest(http.MethodGet, "/api/tournaments/"+string(created.ID), nil)
	rec = httptest.NewRecorder()
	h.Sub(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateRejectsBadInput(t *testing.T) {
	h := NewHandler(NewMemoryRepo())

	for name, body := range map[string]string{
		"blank name": `{"name":"  "}`,
		"zero rank":  `{"name":"Open","results":[{"rank":0,"playerName":"Ada"}]}`,
		"bad json":   `{`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/tournaments", strings.NewReader(body))
			rec := httptest.NewRecorder()
			h.Root(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	older := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, model.Tournament{Name: "March", Date: older})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.Tournament{Name: "June", Date: newer})
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "June", items[0].Name)
}

func TestGetUnknownIs404(t *testing.T) {
	h := NewHandler(NewMemoryRepo())
	req := httptest.NewRequest(http.MethodGet, "/api/tournaments/trn_missing", nil)
	rec := httptest.NewRecorder()
	h.Sub(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
