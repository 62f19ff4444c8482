// Appointments command: list a day's appointments ordered by time.
package main

import (
	"github.com/spf13/cobra"
)

var appointmentsDate string

var appointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "List the appointments for a day",
	Long: `Appointments lists the clients with an appointment on the given day,
ordered by appointment time. Entries without a resolvable time sort last.

Example:
  salonsms appointments
  salonsms appointments --date 2026-09-15`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDay(appointmentsDate)
		if err != nil {
			return err
		}

		b, _, store, err := openBackend()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := operationContext("appointments")
		clients, err := b.ListAppointmentsOn(ctx, day)
		if err != nil {
			return err
		}

		return printClients(clients, true)
	},
}

func init() {
	appointmentsCmd.Flags().StringVar(&appointmentsDate, "date", "", "day to list, YYYY-MM-DD (default: today)")
}
