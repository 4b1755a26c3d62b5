// Package httpapi provides HTTP handlers, pages and data transfer objects for the cocktail API.
package httpapi

import "github.com/dsjohal14/cocktailstack/internal/catalog/db"

// Display defaults for absent recipe fields
const (
	DefaultName         = "Unnamed Cocktail"
	DefaultLabel        = "N/A"
	DefaultInstructions = "No instructions available"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string `json:"status"`
	DrinkCount int    `json:"drink_count"`
}

// SearchRequest represents a search submitted by the web form
type SearchRequest struct {
	Type  string `json:"type"`
	Query string `json:"query"`
}

// DrinkResult is a recipe as rendered to clients
type DrinkResult struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Glass        string          `json:"glass"`
	Alcoholic    string          `json:"alcoholic"`
	Instructions string          `json:"instructions"`
	Image        string          `json:"image"`
	IBA          string          `json:"iba,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	Ingredients  []db.Ingredient `json:"ingredients"`
}

// SearchResponse represents search results
type SearchResponse struct {
	Results []DrinkResult `json:"results"`
	Count   int           `json:"count"`
}

// FeaturedResponse lists the first drinks of the catalog
type FeaturedResponse struct {
	Results []DrinkResult `json:"results"`
	Count   int           `json:"count"`
}

// ErrorResponse represents API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// NewDrinkResult converts a recipe, filling display defaults for absent fields
func NewDrinkResult(r db.Recipe) DrinkResult {
	return DrinkResult{
		ID:           r.ID,
		Name:         orDefault(r.Name, DefaultName),
		Category:     orDefault(r.Category, DefaultLabel),
		Glass:        orDefault(r.Glass, DefaultLabel),
		Alcoholic:    orDefault(r.Alcoholic, DefaultLabel),
		Instructions: orDefault(r.Instructions, DefaultInstructions),
		Image:        r.ImageURL,
		IBA:          r.IBA,
		Tags:         r.TagList(),
		Ingredients:  r.Ingredients(),
	}
}

// NewDrinkResults converts a result list; the output is never nil
func NewDrinkResults(recipes []db.Recipe) []DrinkResult {
	out := make([]DrinkResult, len(recipes))
	for i, r := range recipes {
		out[i] = NewDrinkResult(r)
	}
	return out
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
