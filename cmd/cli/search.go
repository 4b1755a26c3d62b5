package main

import (
	"github.com/dsjohal14/cocktailstack/internal/catalog/search"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		by            string
		caseSensitive bool
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search drinks by name, ingredient or category",
		Example: `  cocktails search margarita
  cocktails search --by ingredient tequila
  cocktails search --by category "ordinary drink"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, query, err := search.Request{Type: by, Query: args[0]}.Validate()
			if err != nil {
				return err
			}

			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			results, err := store.Search(t, query, caseSensitive)
			if err != nil {
				return err
			}

			printResults(cmd.OutOrStdout(), t, query, results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&by, "by", "b", string(search.TypeName), "search type: name, ingredient or category")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match case exactly")

	return cmd
}
