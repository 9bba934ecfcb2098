// Package serverapp assembles the HTTP surface: stores, handlers, routes,
// pages, and the middleware chain.
package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jorge-castellon-jr/chess-tcg/internal/builder"
	"github.com/jorge-castellon-jr/chess-tcg/internal/card"
	"github.com/jorge-castellon-jr/chess-tcg/internal/config"
	"github.com/jorge-castellon-jr/chess-tcg/internal/deck"
	"github.com/jorge-castellon-jr/chess-tcg/internal/httpmw"
	"github.com/jorge-castellon-jr/chess-tcg/internal/importer"
	"github.com/jorge-castellon-jr/chess-tcg/internal/keyword"
	"github.com/jorge-castellon-jr/chess-tcg/internal/set"
	"github.com/jorge-castellon-jr/chess-tcg/internal/tournament"
	"github.com/jorge-castellon-jr/chess-tcg/internal/user"
	staticfiles "github.com/jorge-castellon-jr/chess-tcg/static"
)

type Options struct {
	Config        *config.Config
	DataDir       string
	StaticDir     string
	UseDiskStatic bool
	Logger        *log.Logger
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.DataDir) == "" {
		opts.DataDir = opts.Config.Paths.DataDir
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = opts.Config.Paths.StaticDir
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	mux := http.NewServeMux()

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "chess-tcg",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	cardRepo, err := card.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, err
	}
	setRepo, err := set.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, err
	}
	keywordRepo, err := keyword.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, err
	}
	deckRepo, err := deck.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, err
	}
	tournamentRepo, err := tournament.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, err
	}
	userRepo, err := user.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, err
	}

	rr := &routeRegistry{}

	cardHandler := card.NewHandler(cardRepo, setRepo)
	handle(mux, rr, "GET /api/cards", "list cards with search/class/type/pieceType/set filters", cardHandler.Root)
	handle(mux, rr, "GET /api/cards/", "fetch a card by id", cardHandler.Sub)

	setHandler := set.NewHandler(setRepo)
	handle(mux, rr, "GET /api/sets", "list sets, newest release first", setHandler.Root)
	handle(mux, rr, "GET /api/sets/", "fetch a set by id", setHandler.Sub)

	keywordHandler := keyword.NewHandler(keywordRepo)
	handle(mux, rr, "GET /api/keywords", "keyword glossary", keywordHandler.Root)

	rules := builder.Rules{
		PieceCopyLimit:  opts.Config.Rules.PieceCopyLimit,
		TacticCopyLimit: opts.Config.Rules.TacticCopyLimit,
	}
	deckHandler := deck.NewHandler(deckRepo, cardRepo, rules)
	handle(mux, rr, "GET,POST /api/decks", "list public decks; save a validated deck", deckHandler.Root)
	handle(mux, rr, "GET /api/decks/", "fetch a deck by id with expanded cards", deckHandler.Sub)

	userHandler := user.NewHandler(userRepo)
	handle(mux, rr, "GET,POST /api/users", "list or create deck owners", userHandler.Root)
	handle(mux, rr, "GET /api/users/", "fetch a user by id", userHandler.Sub)

	tournamentHandler := tournament.NewHandler(tournamentRepo)
	handle(mux, rr, "GET,POST /api/tournaments", "list or record tournaments", tournamentHandler.Root)
	handle(mux, rr, "GET /api/tournaments/", "fetch a tournament by id", tournamentHandler.Sub)

	builderHandler := builder.NewHandler(builder.NewValidator(rules), cardRepo, deckRepo)
	handle(mux, rr, "POST /api/builder/cmd", "apply an add/remove/validate command to a deck", builderHandler.Command)
	handle(mux, rr, "POST /api/builder/available", "addable catalog slice for the posted deck", builderHandler.Available)
	handle(mux, rr, "GET /api/builder/clone", "rebuild a saved deck for editing (?deck=<id>)", builderHandler.Clone)

	imp := importer.New(cardRepo, setRepo, keywordRepo, opts.Logger)
	importHandler := importer.NewHandler(imp, opts.Config)
	handle(mux, rr, "GET /api/get-sets", "importable export folders", importHandler.GetSets)
	handle(mux, rr, "POST /api/import-cards", "run a CSV import (development only)", importHandler.ImportCards)

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(opts.Config); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if _, err := cardRepo.List(r.Context(), card.ListFilter{}); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "card storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "chess-tcg",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	registerPages(mux)
	registerAdmin(mux, rr)

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

func UseDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("CHESS_TCG_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
