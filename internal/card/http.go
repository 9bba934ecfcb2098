package card

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
	"github.com/jorge-castellon-jr/chess-tcg/internal/set"
)

type Handler struct {
	repo Repo
	sets set.Repo
}

func NewHandler(repo Repo, sets set.Repo) *Handler {
	return &Handler{repo: repo, sets: sets}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

// previewSetIDs lists sets whose cards stay off public pages. A set-repo
// failure downgrades to "hide nothing" rather than failing the listing.
func (h *Handler) previewSetIDs(r *http.Request) []model.SetID {
	if h.sets == nil {
		return nil
	}
	all, err := h.sets.List(r.Context())
	if err != nil {
		return nil
	}
	var ids []model.SetID
	for _, s := range all {
		if s.Preview {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// /api/cards
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	q := r.URL.Query()
	f := ListFilter{
		Search:    strings.TrimSpace(q.Get("search")),
		Class:     model.Class(q.Get("class")),
		Type:      model.CardType(q.Get("type")),
		PieceType: model.PieceType(q.Get("pieceType")),
		Set:       model.SetID(q.Get("set")),
	}
	if q.Get("preview") == "" {
		f.ExcludeSets = h.previewSetIDs(r)
	}

	items, err := h.repo.List(r.Context(), f)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// /api/cards/{id}
func (h *Handler) Sub(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/cards/"), "/")
	if id == "" {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}
	c, err := h.repo.Get(r.Context(), model.CardID(id))
	if err == ErrNotFound {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}
