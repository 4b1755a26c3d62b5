package streamlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"

	_ "modernc.org/sqlite"
)

var _ db.Source = (*SQLiteConnector)(nil)

// SQLiteConnector reads drink records stored as JSON text in a SQLite file
type SQLiteConnector struct {
	BaseConnector
	path string
}

// NewSQLiteConnector creates a connector for the database file at path
func NewSQLiteConnector(path string) *SQLiteConnector {
	return &SQLiteConnector{BaseConnector: NewBaseConnector(path), path: path}
}

// Fetch reads every row in position order
func (c *SQLiteConnector) Fetch(ctx context.Context) ([]db.Record, error) {
	// sql.Open would otherwise create an empty database
	if _, err := os.Stat(c.path); err != nil {
		return nil, fmt.Errorf("failed to open sqlite catalog: %w", err)
	}

	conn, err := sql.Open("sqlite", c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite catalog: %w", err)
	}
	defer func() { _ = conn.Close() }()

	rows, err := conn.QueryContext(ctx, selectDrinks)
	if err != nil {
		return nil, fmt.Errorf("failed to query drinks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []db.Record
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan drink %d: %w", len(records), err)
		}
		var rec db.Record
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode drink %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read drinks: %w", err)
	}

	return records, nil
}
