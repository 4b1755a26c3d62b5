// Package db provides the cocktail recipe store and its Postgres connection helper.
package db

import (
	"context"
	"fmt"

	"github.com/dsjohal14/cocktailstack/internal/catalog/search"
)

// DefaultFeatured is the size of the featured list shown when no search is active
const DefaultFeatured = 6

// Source supplies the bulk records a Store is built from
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]Record, error)
}

// Records is an in-memory Source
type Records []Record

// Name identifies the source in load errors
func (r Records) Name() string { return "records" }

// Fetch returns the records unchanged
func (r Records) Fetch(context.Context) ([]Record, error) { return r, nil }

// LoadError reports a bulk source that is missing, unreadable or malformed
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Store holds the recipe collection in load order.
// It is never mutated after Load, so concurrent reads need no locking.
type Store struct {
	source  string
	recipes []Recipe
}

// Load builds a Store from src. It is the only way to construct one.
func Load(ctx context.Context, src Source) (*Store, error) {
	records, err := src.Fetch(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.Name(), Err: err}
	}

	recipes := make([]Recipe, 0, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, &LoadError{Source: src.Name(), Err: fmt.Errorf("record %d is not an object", i)}
		}
		recipes = append(recipes, FromRecord(rec))
	}

	return &Store{source: src.Name(), recipes: recipes}, nil
}

// Source returns the name of the source the store was loaded from
func (s *Store) Source() string {
	return s.source
}

// Count returns the number of recipes
func (s *Store) Count() int {
	return len(s.recipes)
}

// All returns the full collection in load order
func (s *Store) All() []Recipe {
	out := make([]Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// SearchByName returns every recipe whose name contains query.
// A missing name compares as "", so an empty query matches everything.
func (s *Store) SearchByName(query string, caseSensitive bool) []Recipe {
	m := search.NewMatcher(query, caseSensitive)
	return s.filter(func(r *Recipe) bool {
		return m.Match(r.Name)
	})
}

// SearchByIngredient returns every recipe with at least one present slot
// whose ingredient contains query. Each recipe appears at most once.
func (s *Store) SearchByIngredient(query string, caseSensitive bool) []Recipe {
	m := search.NewMatcher(query, caseSensitive)
	return s.filter(func(r *Recipe) bool {
		for _, slot := range r.Slots {
			if !slot.Present() {
				continue
			}
			if m.Match(slot.Ingredient) {
				return true
			}
		}
		return false
	})
}

// SearchByCategory returns every recipe with a non-empty category containing query.
// Recipes without a category never match, not even an empty query.
func (s *Store) SearchByCategory(query string, caseSensitive bool) []Recipe {
	m := search.NewMatcher(query, caseSensitive)
	return s.filter(func(r *Recipe) bool {
		return r.Category != "" && m.Match(r.Category)
	})
}

// Search dispatches to the search for t
func (s *Store) Search(t search.Type, query string, caseSensitive bool) ([]Recipe, error) {
	switch t {
	case search.TypeName:
		return s.SearchByName(query, caseSensitive), nil
	case search.TypeIngredient:
		return s.SearchByIngredient(query, caseSensitive), nil
	case search.TypeCategory:
		return s.SearchByCategory(query, caseSensitive), nil
	}
	return nil, search.ErrInvalidType
}

// Featured returns the first n recipes of an empty name search
func (s *Store) Featured(n int) []Recipe {
	if n <= 0 {
		n = DefaultFeatured
	}
	all := s.SearchByName("", false)
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// GetByID returns the recipe with the given id, or false when there is none
func (s *Store) GetByID(id string) (Recipe, bool) {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			return s.recipes[i], true
		}
	}
	return Recipe{}, false
}

func (s *Store) filter(keep func(r *Recipe) bool) []Recipe {
	results := make([]Recipe, 0)
	for i := range s.recipes {
		if keep(&s.recipes[i]) {
			results = append(results, s.recipes[i])
		}
	}
	return results
}
