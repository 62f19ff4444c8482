// No-shows command: list the clients who missed their appointment.
package main

import (
	"github.com/spf13/cobra"
)

var noShowsDate string

var noShowsCmd = &cobra.Command{
	Use:   "noshows",
	Short: "List the no-shows for a day",
	Long: `Noshows lists the clients whose appointment status on the given day
matches the configured no-show status, ordered by appointment time.

Example:
  salonsms noshows
  salonsms noshows --date 2026-09-15`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDay(noShowsDate)
		if err != nil {
			return err
		}

		b, _, store, err := openBackend()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := operationContext("noshows")
		clients, err := b.ListNoShowsOn(ctx, day)
		if err != nil {
			return err
		}

		return printClients(clients, true)
	},
}

func init() {
	noShowsCmd.Flags().StringVar(&noShowsDate, "date", "", "day to list, YYYY-MM-DD (default: today)")
}
