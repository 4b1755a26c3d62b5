package streamlite

import (
	"context"
	"fmt"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
	"github.com/dsjohal14/cocktailstack/internal/libs/accel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ db.Source = (*PostgresConnector)(nil)

const (
	createDrinks = `CREATE TABLE IF NOT EXISTS ` + DrinksTable + ` (
	position integer PRIMARY KEY,
	id_drink text,
	payload  jsonb NOT NULL
)`
	truncateDrinks = `TRUNCATE ` + DrinksTable
	insertDrink    = `INSERT INTO ` + DrinksTable + ` (position, id_drink, payload) VALUES ($1, $2, $3)`
)

// PostgresConnector reads drink records stored as jsonb rows
type PostgresConnector struct {
	BaseConnector
	connString string
}

// NewPostgresConnector creates a connector for the given database url
func NewPostgresConnector(connString string) *PostgresConnector {
	return &PostgresConnector{BaseConnector: NewBaseConnector("postgres"), connString: connString}
}

// Fetch opens a short-lived pool and reads every row in position order
func (c *PostgresConnector) Fetch(ctx context.Context) ([]db.Record, error) {
	conn, err := db.New(ctx, c.connString)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return FetchPostgres(ctx, conn.Pool())
}

// FetchPostgres reads the drinks table through an existing pool
func FetchPostgres(ctx context.Context, pool *pgxpool.Pool) ([]db.Record, error) {
	rows, err := pool.Query(ctx, selectDrinks)
	if err != nil {
		return nil, fmt.Errorf("failed to query drinks: %w", err)
	}

	payloads, err := pgx.CollectRows(rows, pgx.RowTo[map[string]any])
	if err != nil {
		return nil, fmt.Errorf("failed to read drinks: %w", err)
	}

	records := make([]db.Record, len(payloads))
	for i, p := range payloads {
		records[i] = db.Record(p)
	}
	return records, nil
}

// Import replaces the drinks table with records, keeping their order in position.
// Rows are sent in pgx batches of batchSize inside one transaction.
func Import(ctx context.Context, pool *pgxpool.Pool, records []db.Record, batchSize int) (int, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, createDrinks); err != nil {
		return 0, fmt.Errorf("failed to create drinks table: %w", err)
	}
	if _, err := tx.Exec(ctx, truncateDrinks); err != nil {
		return 0, fmt.Errorf("failed to truncate drinks table: %w", err)
	}

	err = accel.NewBatch(batchSize).Each(len(records), func(start, end int) error {
		batch := &pgx.Batch{}
		for i := start; i < end; i++ {
			batch.Queue(insertDrink, i, idDrink(records[i]), map[string]any(records[i]))
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert drinks %d-%d: %w", start, end, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return len(records), nil
}

func idDrink(rec db.Record) any {
	if id, ok := rec["idDrink"].(string); ok {
		return id
	}
	return nil
}
