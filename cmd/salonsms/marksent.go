// Mark-sent command: flip the sent flag on an appointment record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var markSentNoShow bool

var markSentCmd = &cobra.Command{
	Use:   "mark-sent <record-id>",
	Short: "Mark an appointment's SMS as sent",
	Long: `Mark-sent sets the SMS-sent flag on one appointment record, so the
appointment and no-show lists show who was already contacted. With --no-show
the no-show flag is set instead.

The record id comes from the --json output of the appointments or noshows
command.

Example:
  salonsms mark-sent rec123
  salonsms mark-sent rec123 --no-show`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, snap, store, err := openBackend()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := snap.RequireMarkSent(markSentNoShow); err != nil {
			return err
		}
		field := snap.Appointments.SentFlag
		if markSentNoShow {
			field = snap.Appointments.NoShowFlag
		}

		ctx := operationContext("mark-sent")
		if err := b.SetBooleanField(ctx, args[0], field, true); err != nil {
			return err
		}

		fmt.Println("marked", args[0])
		return nil
	},
}

func init() {
	markSentCmd.Flags().BoolVar(&markSentNoShow, "no-show", false, "set the no-show SMS flag instead of the reminder flag")
}
