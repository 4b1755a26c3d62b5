// Package main implements the cocktail catalog CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
	"github.com/dsjohal14/cocktailstack/internal/libs/config"
	"github.com/dsjohal14/cocktailstack/internal/libs/obs"
	"github.com/dsjohal14/cocktailstack/internal/streamlite"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app holds the persistent flags shared by every subcommand
type app struct {
	source      string
	catalog     string
	databaseURL string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "cocktails",
		Short:        "Search the cocktail catalog",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			obs.InitLogger(a.logLevel)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.source, "source", "", "catalog source: file, sqlite or postgres (default $CATALOG_SOURCE)")
	flags.StringVar(&a.catalog, "catalog", "", "catalog file for file and sqlite sources (default $CATALOG_PATH)")
	flags.StringVar(&a.databaseURL, "database-url", "", "postgres url for the postgres source (default $DATABASE_URL)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level")

	root.AddCommand(
		newSearchCmd(a),
		newShowCmd(a),
		newFeaturedCmd(a),
		newImportCmd(a),
	)

	return root
}

// config reads the environment and applies flag overrides
func (a *app) config() (*config.Config, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, err
	}
	if a.source != "" {
		cfg.CatalogSource = strings.ToLower(a.source)
	}
	if a.catalog != "" {
		cfg.CatalogPath = a.catalog
	}
	if a.databaseURL != "" {
		cfg.DatabaseURL = a.databaseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) options() (streamlite.Options, error) {
	cfg, err := a.config()
	if err != nil {
		return streamlite.Options{}, err
	}
	return streamlite.Options{
		Kind:        streamlite.Kind(cfg.CatalogSource),
		Path:        cfg.CatalogPath,
		DatabaseURL: cfg.DatabaseURL,
	}, nil
}

func (a *app) loadStore(ctx context.Context) (*db.Store, error) {
	opts, err := a.options()
	if err != nil {
		return nil, err
	}

	store, err := streamlite.Load(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger := obs.Logger("cli")
	logger.Debug().
		Str("source", store.Source()).
		Int("drink_count", store.Count()).
		Msg("catalog loaded")
	return store, nil
}
