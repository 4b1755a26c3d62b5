package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
	"github.com/dsjohal14/cocktailstack/internal/catalog/search"
	"github.com/dsjohal14/cocktailstack/internal/libs/obs"
)

// HandleSearch runs a name, ingredient or category search.
// Rejected requests get 400; lookup failures get 500 and the server keeps serving.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	logger := obs.WithRequest(r.Context(), h.logger)

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("invalid search request")
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return
	}

	t, query, err := search.Request{Type: req.Type, Query: req.Query}.Validate()
	if err != nil {
		var verr *search.ValidationError
		if errors.As(err, &verr) {
			logger.Warn().Str("type", req.Type).Str("code", verr.Code).Msg("search rejected")
			writeError(w, http.StatusBadRequest, verr.Message, verr.Code)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error(), "SEARCH_ERROR")
		return
	}

	recipes, err := h.lookup(t, query)
	if err != nil {
		logger.Error().Err(err).Str("type", string(t)).Str("query", query).Msg("search failed")
		writeError(w, http.StatusInternalServerError, err.Error(), "SEARCH_ERROR")
		return
	}

	results := NewDrinkResults(recipes)
	searchResults.WithLabelValues(string(t)).Observe(float64(len(results)))

	logger.Info().
		Str("type", string(t)).
		Str("query", query).
		Int("results", len(results)).
		Msg("search completed")

	writeJSON(w, http.StatusOK, SearchResponse{
		Results: results,
		Count:   len(results),
	})
}

// lookup runs the search, turning a panic in the catalog into an error
func (h *Handler) lookup(t search.Type, query string) (recipes []db.Recipe, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			searchFailures.Inc()
			err = fmt.Errorf("search failed: %v", rec)
		}
	}()

	recipes, err = h.catalog.Search(t, query, false)
	if err != nil {
		searchFailures.Inc()
	}
	return recipes, err
}
