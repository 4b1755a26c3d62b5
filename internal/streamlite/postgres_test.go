package streamlite

import (
	"context"
	"os"
	"testing"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
)

func TestPostgresConnectorInvalidURL(t *testing.T) {
	if _, err := NewPostgresConnector("invalid://connection").Fetch(context.Background()); err == nil {
		t.Error("expected error with invalid connection string, got nil")
	}
}

func TestPostgresImportRoundTrip(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()

	conn, err := db.New(ctx, url)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close()

	records := []db.Record{
		{"idDrink": "1", "strDrink": "Margarita", "strIngredient1": "Tequila"},
		{"idDrink": "2", "strDrink": "Mojito"},
		{"strDrink": "No id"},
	}

	n, err := Import(ctx, conn.Pool(), records, 2)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 imported, got %d", n)
	}

	got, err := FetchPostgres(ctx, conn.Pool())
	if err != nil {
		t.Fatalf("FetchPostgres failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[0]["strDrink"] != "Margarita" || got[2]["strDrink"] != "No id" {
		t.Errorf("order not preserved: %v", got)
	}
}
