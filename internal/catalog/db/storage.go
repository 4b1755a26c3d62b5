package db

import "github.com/dsjohal14/cocktailstack/internal/catalog/search"

// Catalog is the read-only view of the recipe store used by the API and CLI
type Catalog interface {
	// Search runs a substring search of the given type
	Search(t search.Type, query string, caseSensitive bool) ([]Recipe, error)

	// GetByID finds a recipe by exact id
	GetByID(id string) (Recipe, bool)

	// Featured returns the first n recipes in load order
	Featured(n int) []Recipe

	// Count returns the number of recipes
	Count() int
}

// Ensure Store implements Catalog
var _ Catalog = (*Store)(nil)
