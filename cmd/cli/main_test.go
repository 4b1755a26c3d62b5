package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
	"github.com/dsjohal14/cocktailstack/internal/catalog/search"
)

const catalogJSON = `[
	{"idDrink": "11007", "strDrink": "Margarita", "strCategory": "Ordinary Drink",
	 "strGlass": "Cocktail glass", "strAlcoholic": "Alcoholic",
	 "strInstructions": "Shake with ice.", "strDrinkThumb": "https://example.com/m.jpg",
	 "strIngredient1": "Tequila", "strMeasure1": "1 1/2 oz ",
	 "strIngredient2": "Salt", "strMeasure2": "  "},
	{"idDrink": "11000", "strDrink": "Mojito", "strCategory": "Cocktail",
	 "strIngredient1": "Light rum", "strIngredient2": "Lime"},
	{"idDrink": "17222", "strDrink": "A1", "strCategory": "Cocktail",
	 "strIngredient1": "Gin", "strIngredient2": "Lemon Juice"}
]`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cocktaildb_dump.json")
	if err := os.WriteFile(path, []byte(catalogJSON), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CATALOG_SOURCE", "file")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	path := writeCatalog(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "by name",
			args:     []string{"search", "MARG"},
			contains: []string{"Found 1 cocktails matching 'MARG':", "1. Margarita (11007)"},
		},
		{
			name:     "by ingredient",
			args:     []string{"search", "--by", "ingredient", "li"},
			contains: []string{"Found 1 cocktails with 'li':", "1. Mojito (11000)"},
		},
		{
			name:     "by category",
			args:     []string{"search", "-b", "category", "cocktail"},
			contains: []string{"Found 2 cocktails in category 'cocktail':", "1. Mojito", "2. A1"},
			excludes: []string{"Margarita"},
		},
		{
			name:     "case sensitive",
			args:     []string{"search", "--case-sensitive", "marg"},
			contains: []string{"Found 0 cocktails", "No results found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--catalog", path}, tt.args...)...)
			if err != nil {
				t.Fatalf("command failed: %v\n%s", err, out)
			}
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("expected output to contain %q, got:\n%s", s, out)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(out, s) {
					t.Errorf("expected output not to contain %q, got:\n%s", s, out)
				}
			}
		})
	}
}

func TestSearchCommandRejected(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"blank query", []string{"search", "  "}, search.ErrEmptyQuery},
		{"invalid type", []string{"search", "--by", "glass", "coupe"}, search.ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the catalog is never read, so a missing file does not matter
			_, err := run(t, append([]string{"--catalog", "missing.json"}, tt.args...)...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestShowCommand(t *testing.T) {
	path := writeCatalog(t)

	out, err := run(t, "--catalog", path, "show", "11007")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	for _, s := range []string{
		"Name: Margarita",
		"Category: Ordinary Drink",
		"Glass: Cocktail glass",
		"- 1 1/2 oz Tequila\n",
		"- Salt\n",
		"Shake with ice.",
		"Image: https://example.com/m.jpg",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("expected output to contain %q, got:\n%s", s, out)
		}
	}

	if _, err := run(t, "--catalog", path, "show", "0"); err == nil {
		t.Error("expected error for unknown drink")
	}
}

func TestFeaturedCommand(t *testing.T) {
	path := writeCatalog(t)

	out, err := run(t, "--catalog", path, "featured", "-n", "2")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	expected := "1. Margarita (11007)\n2. Mojito (11000)\n"
	if out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}

func TestMissingCatalog(t *testing.T) {
	_, err := run(t, "--catalog", filepath.Join(t.TempDir(), "nope.json"), "featured")
	if err == nil {
		t.Fatal("expected load error")
	}
	if !strings.Contains(err.Error(), "failed to load catalog") {
		t.Errorf("expected load error, got %v", err)
	}
}

func TestSourceFlagCaseInsensitive(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "file")

	a := &app{source: "SQLite", catalog: "drinks.db"}
	cfg, err := a.config()
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if cfg.CatalogSource != "sqlite" {
		t.Errorf("expected sqlite source, got %s", cfg.CatalogSource)
	}

	path := writeCatalog(t)
	out, err := run(t, "--source", "FILE", "--catalog", path, "featured", "-n", "1")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if out != "1. Margarita (11007)\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestImportRequiresTarget(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	path := writeCatalog(t)

	_, err := run(t, "--catalog", path, "import")
	if err == nil || !strings.Contains(err.Error(), "no target database") {
		t.Errorf("expected missing target error, got %v", err)
	}
}

func TestIngredientLines(t *testing.T) {
	r := db.FromRecord(db.Record{
		"strIngredient1": "Gin",
		"strMeasure1":    "2 oz",
		"strIngredient2": "Tonic",
		"strMeasure2":    " ",
		"strIngredient4": "Lime",
	})

	expected := []string{"- 2 oz Gin", "- Tonic", "- Lime"}
	if got := ingredientLines(r); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestPrintDrinkDefaults(t *testing.T) {
	var buf bytes.Buffer
	printDrink(&buf, db.Recipe{ID: "x"})

	out := buf.String()
	for _, s := range []string{"Name: N/A", "Category: N/A", "No instructions available"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected output to contain %q, got:\n%s", s, out)
		}
	}
	if strings.Contains(out, "Image:") {
		t.Error("image line should be omitted")
	}
}
