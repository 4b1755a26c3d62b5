// Package search provides substring matching and search request validation for the cocktail catalog.
package search

import (
	"errors"
	"strings"
)

// Type selects which recipe field a search runs against
type Type string

const (
	TypeName       Type = "name"
	TypeIngredient Type = "ingredient"
	TypeCategory   Type = "category"
)

// Types lists the supported search types in display order
var Types = []Type{TypeName, TypeIngredient, TypeCategory}

// ParseType maps a request value onto a search type.
// Matching is exact; "Name" is not accepted.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeName, TypeIngredient, TypeCategory:
		return Type(s), nil
	}
	return "", ErrInvalidType
}

// ValidationError is a rejected search request.
// The process keeps serving after returning one.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Sentinel validation errors
var (
	ErrEmptyQuery  = &ValidationError{Code: "EMPTY_QUERY", Message: "Search query cannot be empty"}
	ErrInvalidType = &ValidationError{Code: "INVALID_SEARCH_TYPE", Message: "Invalid search type"}
)

// IsValidation reports whether err is a rejected request rather than a failure
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// Request is a search as submitted by a caller
type Request struct {
	Type  string
	Query string
}

// Validate trims the query and checks both fields.
// The empty-query check runs first so it does not depend on the type.
func (r Request) Validate() (Type, string, error) {
	query := strings.TrimSpace(r.Query)
	if query == "" {
		return "", "", ErrEmptyQuery
	}
	t, err := ParseType(r.Type)
	if err != nil {
		return "", "", err
	}
	return t, query, nil
}

// Matcher tests fields for containment of a prepared query
type Matcher struct {
	query         string
	caseSensitive bool
}

// NewMatcher folds the query once up front
func NewMatcher(query string, caseSensitive bool) Matcher {
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	return Matcher{query: query, caseSensitive: caseSensitive}
}

// Match performs a substring test; an empty query matches any field
func (m Matcher) Match(field string) bool {
	if !m.caseSensitive {
		field = strings.ToLower(field)
	}
	return strings.Contains(field, m.query)
}
