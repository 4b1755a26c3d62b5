// Package streamlite provides the bulk-source connectors the recipe catalog is loaded from.
package streamlite

import (
	"context"
	"fmt"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
)

// Kind names a connector implementation
type Kind string

const (
	KindFile     Kind = "file"
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
)

// DrinksTable is the table SQL sources read from and Import writes to
const DrinksTable = "drinks"

const selectDrinks = `SELECT payload FROM ` + DrinksTable + ` ORDER BY position`

// Connector is a named bulk source of drink records
type Connector interface {
	Name() string
	Fetch(ctx context.Context) ([]db.Record, error)
}

// BaseConnector provides the name shared by all connectors
type BaseConnector struct {
	name string
}

// NewBaseConnector creates a new base connector
func NewBaseConnector(name string) BaseConnector {
	return BaseConnector{name: name}
}

// Name returns the connector name
func (c BaseConnector) Name() string {
	return c.name
}

// Options selects and configures a connector
type Options struct {
	Kind        Kind
	Path        string
	DatabaseURL string
}

// Open returns the connector described by opts
func Open(opts Options) (Connector, error) {
	switch opts.Kind {
	case KindFile, "":
		if opts.Path == "" {
			return nil, fmt.Errorf("file source requires a path")
		}
		return NewFileConnector(opts.Path), nil
	case KindSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite source requires a path")
		}
		return NewSQLiteConnector(opts.Path), nil
	case KindPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres source requires a database url")
		}
		return NewPostgresConnector(opts.DatabaseURL), nil
	}
	return nil, fmt.Errorf("unknown catalog source %q", opts.Kind)
}

// Load opens the configured connector and builds the store from it
func Load(ctx context.Context, opts Options) (*db.Store, error) {
	conn, err := Open(opts)
	if err != nil {
		return nil, &db.LoadError{Source: string(opts.Kind), Err: err}
	}
	return db.Load(ctx, conn)
}
