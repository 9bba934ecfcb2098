package serverapp

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var pageTemplatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(pageTemplatesFS, "templates/*.html"))

type pageData struct {
	Title string
}

func renderPage(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTmpl.ExecuteTemplate(w, name, pageData{Title: title}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func registerPages(mux *http.ServeMux) {
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		renderPage("home.html", "Chess TCG")(w, r)
	})
	mux.HandleFunc("/cards", renderPage("cards.html", "Card Catalog"))
	mux.HandleFunc("/builder", renderPage("builder.html", "Deck Builder"))
}
