package serverapp

import (
	"net/http"
	"strings"
)

// RouteDoc is one entry on the admin routes page.
type RouteDoc struct {
	Method      string `json:"method"`
	Pattern     string `json:"pattern"`
	Summary     string `json:"summary,omitempty"`
	ExampleBody string `json:"example_body,omitempty"`
}

type routeRegistry struct {
	routes []RouteDoc
}

func (rr *routeRegistry) add(doc RouteDoc) {
	rr.routes = append(rr.routes, doc)
}

func (rr *routeRegistry) list() []RouteDoc {
	out := make([]RouteDoc, len(rr.routes))
	copy(out, rr.routes)
	return out
}

// handle registers a route on the mux and records it for the admin page.
// methodAndPattern is "METHOD /path"; the method part is documentation only,
// handlers still enforce their own.
func handle(mux *http.ServeMux, rr *routeRegistry, methodAndPattern, summary string, h http.HandlerFunc) {
	parts := strings.SplitN(methodAndPattern, " ", 2)
	method, pattern := parts[0], ""
	if len(parts) == 2 {
		pattern = parts[1]
	}
	rr.add(RouteDoc{Method: method, Pattern: pattern, Summary: summary})
	mux.HandleFunc(pattern, h)
}

type adminPageData struct {
	Title  string
	Routes []RouteDoc
}

func registerAdmin(mux *http.ServeMux, rr *routeRegistry) {
	// JSON list (handy for tooling)
	mux.HandleFunc("/_/admin/routes.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rr.list())
	})

	mux.HandleFunc("/_/admin", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := adminPageData{Title: "API Routes", Routes: rr.list()}
		if err := pageTmpl.ExecuteTemplate(w, "admin.html", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
