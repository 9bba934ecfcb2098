package deck

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/builder"
	"github.com/jorge-castellon-jr/chess-tcg/internal/card"
	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

type Handler struct {
	repo  Repo
	cards card.Repo
	rules builder.Rules
}

func NewHandler(repo Repo, cards card.Repo, rules builder.Rules) *Handler {
	return &Handler{repo: repo, cards: cards, rules: rules}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

type createRequest struct {
	Name      string       `json:"name"`
	DeckCards []deckCardIn `json:"deckCards"`
	IsPublic  bool         `json:"isPublic"`
	User      string       `json:"user,omitempty"`
}

type deckCardIn struct {
	Card     model.CardID `json:"card"`
	Quantity int          `json:"quantity"`
}

// /api/decks
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		f := ListFilter{PublicOnly: true}
		if r.URL.Query().Get("all") != "" {
			f.PublicOnly = false
		}
		if u := strings.TrimSpace(r.URL.Query().Get("user")); u != "" {
			f.User = model.UserID(u)
		}
		items, err := h.repo.List(r.Context(), f)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, items)
	case http.MethodPost:
		h.create(w, r)
	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// create persists a finished in-progress deck. The same legality contract the
// builder enforces interactively is re-checked here so a direct API call
// cannot save an illegal deck.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var in createRequest
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}

	v := builder.NewValidator(h.rules)
	draft := builder.NewDeck()
	draft.Name = in.Name
	draft.IsPublic = in.IsPublic

	// Re-play the deck through the validator: king first, then the rest.
	resolved := make([]model.Card, 0, len(in.DeckCards))
	quantities := make([]int, 0, len(in.DeckCards))
	for _, dc := range in.DeckCards {
		c, err := h.cards.Get(r.Context(), dc.Card)
		if err == card.ErrNotFound {
			writeErr(w, http.StatusBadRequest, "unknown card: "+string(dc.Card))
			return
		}
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		qty := dc.Quantity
		if qty < 1 {
			qty = 1
		}
		resolved = append(resolved, c)
		quantities = append(quantities, qty)
	}
	for _, c := range resolved {
		if !c.IsKing() {
			continue
		}
		if err := v.Add(draft, c); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": []string{err.Error()}})
			return
		}
	}
	for i, c := range resolved {
		count := quantities[i]
		if c.IsKing() {
			continue
		}
		for n := 0; n < count; n++ {
			if err := v.Add(draft, c); err != nil {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": []string{err.Error()}})
				return
			}
		}
	}

	if problems := draft.ValidateForSave(); len(problems) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": problems})
		return
	}

	out := model.Deck{
		Name:     draft.Name,
		IsPublic: draft.IsPublic,
	}
	for _, e := range draft.Cards {
		out.DeckCards = append(out.DeckCards, model.DeckCard{
			Card:     model.NewCardRef(e.Card.ID),
			Quantity: e.Quantity,
		})
	}
	if u := strings.TrimSpace(in.User); u != "" {
		uid := model.UserID(u)
		out.User = &uid
	}

	created, err := h.repo.Create(r.Context(), out)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// /api/decks/{id}
func (h *Handler) Sub(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/decks/"), "/")
	if id == "" {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}
	d, err := h.repo.Get(r.Context(), model.DeckID(id))
	if err == ErrNotFound {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.expand(r, d))
}

// expand widens bare card refs into full card documents for detail views.
// Cards that have left the catalog stay as bare refs.
func (h *Handler) expand(r *http.Request, d model.Deck) model.Deck {
	d.DeckCards = append([]model.DeckCard(nil), d.DeckCards...)
	for i, dc := range d.DeckCards {
		if _, ok := dc.Card.Doc(); ok {
			continue
		}
		c, err := h.cards.Get(r.Context(), dc.Card.ID())
		if err != nil {
			continue
		}
		d.DeckCards[i].Card = model.ExpandedCardRef(c)
	}
	return d
}
