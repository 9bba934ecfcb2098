package builder

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/card"
	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

// DeckGetter is the slice of the deck store the clone flow needs.
type DeckGetter interface {
	Get(ctx context.Context, id model.DeckID) (model.Deck, error)
}

// Handler exposes the rule engine over HTTP for clients that keep their
// in-progress deck state and post it back with each command.
type Handler struct {
	validator *Validator
	cards     card.Repo
	decks     DeckGetter
}

func NewHandler(v *Validator, cards card.Repo, decks DeckGetter) *Handler {
	return &Handler{validator: v, cards: cards, decks: decks}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

type command struct {
	Op        string       `json:"op"` // "add" | "remove" | "validate"
	Deck      Deck         `json:"deck"`
	CardID    model.CardID `json:"cardId,omitempty"`
	Index     int          `json:"index,omitempty"`
	Confirmed bool         `json:"confirmed,omitempty"`
}

type commandResult struct {
	Deck   Deck     `json:"deck"`
	Errors []string `json:"errors,omitempty"`
}

// Command handles POST /api/builder/cmd. Errors are reported in the result
// payload, never by mutating the posted deck.
func (h *Handler) Command(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var cmd command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}
	if cmd.Deck.Cards == nil {
		cmd.Deck.Cards = []Entry{}
	}
	// the king pointer travels with the payload but contents win
	cmd.Deck.King = DeriveKing(cmd.Deck.Cards)

	res := commandResult{Deck: cmd.Deck}
	switch cmd.Op {
	case "add":
		c, err := h.cards.Get(r.Context(), cmd.CardID)
		if err == card.ErrNotFound {
			writeErr(w, http.StatusBadRequest, "unknown card: "+string(cmd.CardID))
			return
		}
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		if err := h.validator.Add(&res.Deck, c); err != nil {
			res.Errors = splitJoined(err)
		}
	case "remove":
		if err := h.validator.Remove(&res.Deck, cmd.Index, cmd.Confirmed); err != nil {
			res.Errors = splitJoined(err)
		}
	case "validate":
		res.Errors = res.Deck.ValidateForSave()
	default:
		writeErr(w, http.StatusBadRequest, "unknown op: "+cmd.Op)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type availableRequest struct {
	Deck    Deck    `json:"deck"`
	Filters Filters `json:"filters"`
}

// Available handles POST /api/builder/available: the addable slice of the
// catalog given the posted deck state.
func (h *Handler) Available(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in availableRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}
	catalog, err := h.cards.List(r.Context(), card.ListFilter{})
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	king := DeriveKing(in.Deck.Cards)
	writeJSON(w, http.StatusOK, h.validator.AvailableCards(catalog, king, in.Filters))
}

// Clone handles GET /api/builder/clone?deck=<id>: rebuild an in-progress
// deck from a saved one against the current catalog.
func (h *Handler) Clone(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimSpace(r.URL.Query().Get("deck"))
	if id == "" {
		writeErr(w, http.StatusBadRequest, "deck query parameter is required")
		return
	}
	src, err := h.decks.Get(r.Context(), model.DeckID(id))
	if err != nil {
		writeErr(w, http.StatusNotFound, "deck not found")
		return
	}
	catalog, err := h.cards.List(r.Context(), card.ListFilter{})
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, CloneFromDeck(src, catalog))
}

// splitJoined flattens an errors.Join result into displayable lines.
func splitJoined(err error) []string {
	if err == nil {
		return nil
	}
	return strings.Split(err.Error(), "\n")
}
