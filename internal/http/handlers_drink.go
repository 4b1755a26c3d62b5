package httpapi

import (
	"net/http"
	"strconv"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
	"github.com/go-chi/chi/v5"
)

// MaxFeatured caps the featured list size
const MaxFeatured = 50

// HandleGetDrink returns a single drink by id
func (h *Handler) HandleGetDrink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	recipe, ok := h.catalog.GetByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "drink not found", "NOT_FOUND")
		return
	}

	writeJSON(w, http.StatusOK, NewDrinkResult(recipe))
}

// HandleFeatured returns the first drinks of the catalog in load order
func (h *Handler) HandleFeatured(w http.ResponseWriter, r *http.Request) {
	limit := db.DefaultFeatured
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer", "INVALID_LIMIT")
			return
		}
		limit = n
	}
	if limit > MaxFeatured {
		limit = MaxFeatured
	}

	results := NewDrinkResults(h.catalog.Featured(limit))
	writeJSON(w, http.StatusOK, FeaturedResponse{
		Results: results,
		Count:   len(results),
	})
}
