// Search command: find clients by name.
package main

import (
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search clients by name",
	Long: `Search finds clients whose name contains the query, ignoring case.
An empty query returns nothing without contacting the backend.

Example:
  salonsms search mar
  salonsms search "Marie D" --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, store, err := openBackend()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := operationContext("search")
		clients, err := b.SearchClients(ctx, args[0])
		if err != nil {
			return err
		}

		return printClients(clients, false)
	},
}
