package streamlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
)

func TestNewBaseConnector(t *testing.T) {
	name := "test-connector"
	connector := NewBaseConnector(name)

	if connector.Name() != name {
		t.Errorf("expected name %s, got %s", name, connector.Name())
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantType any
		wantErr  bool
	}{
		{"file", Options{Kind: KindFile, Path: "drinks.json"}, &FileConnector{}, false},
		{"default is file", Options{Path: "drinks.json"}, &FileConnector{}, false},
		{"sqlite", Options{Kind: KindSQLite, Path: "drinks.db"}, &SQLiteConnector{}, false},
		{"postgres", Options{Kind: KindPostgres, DatabaseURL: "postgres://localhost/x"}, &PostgresConnector{}, false},
		{"file without path", Options{Kind: KindFile}, nil, true},
		{"sqlite without path", Options{Kind: KindSQLite}, nil, true},
		{"postgres without url", Options{Kind: KindPostgres}, nil, true},
		{"unknown", Options{Kind: "s3", Path: "x"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Open(tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() failed: %v", err)
			}
			switch tt.wantType.(type) {
			case *FileConnector:
				if _, ok := conn.(*FileConnector); !ok {
					t.Errorf("expected *FileConnector, got %T", conn)
				}
			case *SQLiteConnector:
				if _, ok := conn.(*SQLiteConnector); !ok {
					t.Errorf("expected *SQLiteConnector, got %T", conn)
				}
			case *PostgresConnector:
				if _, ok := conn.(*PostgresConnector); !ok {
					t.Errorf("expected *PostgresConnector, got %T", conn)
				}
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cocktaildb_dump.json")
	data := `[
		{"idDrink": "11007", "strDrink": "Margarita", "strCategory": "Ordinary Drink",
		 "strIngredient1": "Tequila", "strMeasure1": "1 1/2 oz", "strIngredient2": null},
		{"idDrink": "11000", "strDrink": "Mojito", "strCategory": "Cocktail",
		 "strIngredient1": "Light rum"}
	]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	store, err := Load(context.Background(), Options{Kind: KindFile, Path: path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if store.Count() != 2 {
		t.Fatalf("expected 2 drinks, got %d", store.Count())
	}
	if got := store.SearchByIngredient("tequila", false); len(got) != 1 || got[0].ID != "11007" {
		t.Errorf("unexpected ingredient search result: %+v", got)
	}
}

func TestLoadUnknownSource(t *testing.T) {
	_, err := Load(context.Background(), Options{Kind: "ftp"})

	var loadErr *db.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
}
