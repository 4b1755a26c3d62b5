package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
	"github.com/dsjohal14/cocktailstack/internal/catalog/search"
	"github.com/dsjohal14/cocktailstack/internal/libs/obs"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type indexPage struct {
	Title    string
	Types    []search.Type
	Type     string
	Query    string
	Error    string
	Searched bool
	Results  []DrinkResult
	Featured []DrinkResult
}

type drinkPage struct {
	Title string
	Drink *DrinkResult
}

// HandleIndex renders the search form. Without a q parameter it shows the featured drinks.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page := indexPage{
		Title: "Cocktail Search",
		Types: search.Types,
		Type:  params.Get("type"),
		Query: params.Get("q"),
	}
	if page.Type == "" {
		page.Type = string(search.TypeName)
	}

	status := http.StatusOK
	if !params.Has("q") {
		page.Featured = NewDrinkResults(h.catalog.Featured(db.DefaultFeatured))
		h.render(w, r, status, "index", page)
		return
	}

	page.Searched = true
	t, query, err := search.Request{Type: page.Type, Query: page.Query}.Validate()
	if err != nil {
		h.render(w, r, http.StatusBadRequest, "index", withError(page, err))
		return
	}

	recipes, err := h.lookup(t, query)
	if err != nil {
		logger := obs.WithRequest(r.Context(), h.logger)
		logger.Error().Err(err).Msg("page search failed")
		h.render(w, r, http.StatusInternalServerError, "index", withError(page, err))
		return
	}

	page.Query = query
	page.Results = NewDrinkResults(recipes)
	searchResults.WithLabelValues(string(t)).Observe(float64(len(page.Results)))

	h.render(w, r, status, "index", page)
}

// HandleDrinkPage renders the detail view of one drink
func (h *Handler) HandleDrinkPage(w http.ResponseWriter, r *http.Request) {
	recipe, ok := h.catalog.GetByID(chi.URLParam(r, "id"))
	if !ok {
		h.render(w, r, http.StatusNotFound, "drink", drinkPage{Title: "Cocktail not found"})
		return
	}

	drink := NewDrinkResult(recipe)
	h.render(w, r, http.StatusOK, "drink", drinkPage{Title: drink.Name, Drink: &drink})
}

func withError(page indexPage, err error) indexPage {
	page.Error = err.Error()
	return page
}

// render buffers the page so a template error can still produce a clean 500
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger := obs.WithRequest(r.Context(), h.logger)
		logger.Error().Err(err).Str("page", name).Msg("failed to render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
