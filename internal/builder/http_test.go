package builder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-castellon-jr/chess-tcg/internal/card"
	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

type deckGetterFunc func(ctx context.Context, id model.DeckID) (model.Deck, error)

func (f deckGetterFunc) Get(ctx context.Context, id model.DeckID) (model.Deck, error) {
	return f(ctx, id)
}

func newCmdHandler(t *testing.T, decks DeckGetter) (*Handler, *card.MemoryRepo) {
	t.Helper()
	cards := card.NewMemoryRepo()
	require.NoError(t, cards.Seed(context.Background(), []model.Card{
		{Name: "Ada the King", Class: model.ClassHearts, Type: model.TypePiece, PieceType: model.PieceKing},
		{Name: "Sharp the King", Class: model.ClassSpades, Type: model.TypePiece, PieceType: model.PieceKing},
		{Name: "Hearts Pawn", Class: model.ClassHearts, Type: model.TypePiece, PieceType: model.PieceBasic},
		{Name: "Fork", Class: model.ClassNeutral, Type: model.TypeTactic},
	}))
	return NewHandler(NewValidator(DefaultRules()), cards, decks), cards
}

func postCmd(t *testing.T, h *Handler, body string) (int, commandResult) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/builder/cmd", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Command(rec, req)

	var out commandResult
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	}
	return rec.Code, out
}

func TestCommand_AddKingDerivesKing(t *testing.T) {
	h, cards := newCmdHandler(t, nil)
	king, err := cards.GetByName(context.Background(), "Ada the King")
	require.NoError(t, err)

	code, out := postCmd(t, h, `{"op":"add","deck":{"name":"","cards":[]},"cardId":"`+string(king.ID)+`"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, out.Errors)
	require.NotNil(t, out.Deck.King)
	assert.Equal(t, king.ID, out.Deck.King.ID)
	assert.Len(t, out.Deck.Cards, 1)
}

func TestCommand_ErrorsReportedWithoutMutation(t *testing.T) {
	h, cards := newCmdHandler(t, nil)
	ctx := context.Background()
	pawn, err := cards.GetByName(ctx, "Hearts Pawn")
	require.NoError(t, err)

	code, out := postCmd(t, h, `{"op":"add","deck":{"name":"","cards":[]},"cardId":"`+string(pawn.ID)+`"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"Select a king before adding other cards"}, out.Errors)
	assert.Empty(t, out.Deck.Cards)
}

func TestCommand_KingRemovalNeedsConfirmation(t *testing.T) {
	h, cards := newCmdHandler(t, nil)
	ctx := context.Background()
	king, err := cards.GetByName(ctx, "Ada the King")
	require.NoError(t, err)
	pawn, err := cards.GetByName(ctx, "Hearts Pawn")
	require.NoError(t, err)

	deckJSON, err := json.Marshal(Deck{Cards: []Entry{
		{Card: king, Quantity: 1},
		{Card: pawn, Quantity: 2},
	}})
	require.NoError(t, err)

	code, out := postCmd(t, h, `{"op":"remove","deck":`+string(deckJSON)+`,"index":0}`)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, out.Errors, 1)
	assert.Len(t, out.Deck.Cards, 2, "deck untouched without confirmation")

	code, out = postCmd(t, h, `{"op":"remove","deck":`+string(deckJSON)+`,"index":0,"confirmed":true}`)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, out.Errors)
	assert.Empty(t, out.Deck.Cards, "confirmed king removal resets the deck")
	assert.Nil(t, out.Deck.King)
}

func TestAvailable_NoKingMeansKingsOnly(t *testing.T) {
	h, _ := newCmdHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/builder/available", strings.NewReader(`{"deck":{"cards":[]},"filters":{}}`))
	rec := httptest.NewRecorder()
	h.Available(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var pool []model.Card
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&pool))
	require.Len(t, pool, 2)
	for _, c := range pool {
		assert.True(t, c.IsKing())
	}
}

func TestClone_RebuildsDeckFromStore(t *testing.T) {
	var saved model.Deck
	decks := deckGetterFunc(func(_ context.Context, id model.DeckID) (model.Deck, error) {
		if id != saved.ID {
			return model.Deck{}, assert.AnError
		}
		return saved, nil
	})
	h, cards := newCmdHandler(t, decks)

	ctx := context.Background()
	king, err := cards.GetByName(ctx, "Ada the King")
	require.NoError(t, err)
	pawn, err := cards.GetByName(ctx, "Hearts Pawn")
	require.NoError(t, err)

	saved = model.Deck{
		ID:   "deck_clone",
		Name: "Hearts Rush",
		DeckCards: []model.DeckCard{
			{Card: model.NewCardRef(king.ID), Quantity: 1},
			{Card: model.NewCardRef(pawn.ID), Quantity: 2},
			{Card: model.NewCardRef("card_gone"), Quantity: 1},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/builder/clone?deck=deck_clone", nil)
	rec := httptest.NewRecorder()
	h.Clone(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var clone Deck
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&clone))
	assert.Len(t, clone.Cards, 2, "missing catalog cards are dropped")
	require.NotNil(t, clone.King)
	assert.Equal(t, king.ID, clone.King.ID)

	req = httptest.NewRequest(http.MethodGet, "/api/builder/clone?deck=deck_missing", nil)
	rec = httptest.NewRecorder()
	h.Clone(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
