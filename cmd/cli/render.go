package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
	"github.com/dsjohal14/cocktailstack/internal/catalog/search"
)

var (
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
)

const notAvailable = "N/A"

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// resultsHeading words the count line per search type
func resultsHeading(t search.Type, query string, n int) string {
	switch t {
	case search.TypeIngredient:
		return fmt.Sprintf("Found %d cocktails with '%s':", n, query)
	case search.TypeCategory:
		return fmt.Sprintf("Found %d cocktails in category '%s':", n, query)
	default:
		return fmt.Sprintf("Found %d cocktails matching '%s':", n, query)
	}
}

func printResults(w io.Writer, t search.Type, query string, results []db.Recipe) {
	fmt.Fprintln(w, resultsHeading(t, query, len(results)))
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	printList(w, results)
}

func printList(w io.Writer, recipes []db.Recipe) {
	for i, r := range recipes {
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, orNA(r.Name), r.ID)
	}
}

// ingredientLines renders "- measure ingredient", or "- ingredient" when the measure is blank
func ingredientLines(r db.Recipe) []string {
	var lines []string
	for _, ing := range r.Ingredients() {
		if ing.Measure != "" {
			lines = append(lines, fmt.Sprintf("- %s %s", ing.Measure, ing.Ingredient))
		} else {
			lines = append(lines, "- "+ing.Ingredient)
		}
	}
	return lines
}

func printDrink(w io.Writer, r db.Recipe) {
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("=", 50)))
	fmt.Fprintln(w, titleStyle.Render("Name: "+orNA(r.Name)))
	fmt.Fprintf(w, "Category: %s\n", orNA(r.Category))
	fmt.Fprintf(w, "Glass: %s\n", orNA(r.Glass))
	fmt.Fprintf(w, "Alcoholic: %s\n", orNA(r.Alcoholic))
	if r.IBA != "" {
		fmt.Fprintf(w, "IBA: %s\n", r.IBA)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("Ingredients:"))
	for _, line := range ingredientLines(r) {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("Instructions:"))
	if r.Instructions == "" {
		fmt.Fprintln(w, "No instructions available")
	} else {
		fmt.Fprintln(w, r.Instructions)
	}

	if tags := r.TagList(); len(tags) > 0 {
		fmt.Fprintf(w, "\nTags: %s\n", strings.Join(tags, ", "))
	}
	if r.ImageURL != "" {
		fmt.Fprintf(w, "\nImage: %s\n", r.ImageURL)
	}
}
