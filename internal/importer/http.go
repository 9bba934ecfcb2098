package importer

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/config"
)

type Handler struct {
	importer *Importer
	cfg      *config.Config
}

func NewHandler(im *Importer, cfg *config.Config) *Handler {
	return &Handler{importer: im, cfg: cfg}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

// GetSets handles GET /api/get-sets: the importable folder names under the
// exports root.
func (h *Handler) GetSets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	folders, failure := ListSetFolders(h.cfg.Paths.ExportsRoot)
	if failure != nil {
		writeJSON(w, http.StatusInternalServerError, failure)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sets":  folders,
		"count": len(folders),
	})
}

type importRequest struct {
	SetName string `json:"setName"`
}

// ImportCards handles POST /api/import-cards. Bulk imports are a development
// tool; outside development mode the route pretends not to exist.
func (h *Handler) ImportCards(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.IsDevelopment() {
		writeErr(w, http.StatusNotFound, "This endpoint is only available in development mode")
		return
	}
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var in importRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}
	if strings.TrimSpace(in.SetName) == "" {
		writeErr(w, http.StatusBadRequest, "setName is required and must be a string")
		return
	}

	report, failure := h.importer.ImportSet(r.Context(), in.SetName, h.cfg.Paths.ExportsRoot, h.cfg.Paths.LogsRoot)
	if failure != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   failure.Message,
			"details": failure.Details,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Import completed for set \"" + report.SetName + "\"",
		"stats": map[string]any{
			"filesProcessed": report.FilesProcessed,
			"cardsProcessed": report.CardsProcessed,
			"errors":         report.Errors,
			"skipped":        report.Skipped,
		},
	})
}
