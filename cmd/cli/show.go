package main

import (
	"fmt"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print the full recipe of one drink",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			recipe, ok := store.GetByID(args[0])
			if !ok {
				return fmt.Errorf("drink %q not found", args[0])
			}

			printDrink(cmd.OutOrStdout(), recipe)
			return nil
		},
	}
}

func newFeaturedCmd(a *app) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "List the first drinks of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			printList(cmd.OutOrStdout(), store.Featured(n))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", db.DefaultFeatured, "number of drinks")

	return cmd
}
