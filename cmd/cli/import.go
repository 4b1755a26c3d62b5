package main

import (
	"errors"
	"fmt"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
	"github.com/dsjohal14/cocktailstack/internal/libs/accel"
	"github.com/dsjohal14/cocktailstack/internal/libs/obs"
	"github.com/dsjohal14/cocktailstack/internal/streamlite"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		target    string
		batchSize int
	)

	cmd := &cobra.Command{
		Use:     "import",
		Short:   "Copy the configured catalog into a Postgres drinks table",
		Example: `  cocktails import --catalog cocktaildb_dump.json --to postgres://localhost/cocktails`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := obs.Logger("import")

			opts, err := a.options()
			if err != nil {
				return err
			}
			if target == "" {
				target = opts.DatabaseURL
			}
			if target == "" {
				return errors.New("no target database: pass --to or set DATABASE_URL")
			}

			conn, err := streamlite.Open(opts)
			if err != nil {
				return err
			}
			records, err := conn.Fetch(ctx)
			if err != nil {
				return &db.LoadError{Source: conn.Name(), Err: err}
			}

			// Reject anything the store itself would refuse to load
			if _, err := db.Load(ctx, db.Records(records)); err != nil {
				return err
			}

			pg, err := db.New(ctx, target)
			if err != nil {
				return err
			}
			defer pg.Close()

			n, err := streamlite.Import(ctx, pg.Pool(), records, batchSize)
			if err != nil {
				return err
			}

			logger.Info().Int("drinks", n).Str("source", conn.Name()).Msg("import completed")
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d drinks into %s\n", n, streamlite.DrinksTable)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "target postgres url (default $DATABASE_URL)")
	cmd.Flags().IntVar(&batchSize, "batch-size", accel.DefaultSize, "rows per insert batch")

	return cmd
}
