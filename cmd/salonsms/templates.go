// Templates command: list the stored message templates.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List message templates",
	Long: `Templates lists every stored message template. The body may contain
the {clientName} placeholder, substituted when composing a message.

Example:
  salonsms templates
  salonsms templates --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, store, err := openBackend()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := operationContext("templates")
		templates, err := b.ListTemplates(ctx)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(templates)
		}
		if len(templates) == 0 {
			fmt.Println("no templates found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCONTENT")
		for _, t := range templates {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Title, t.Content)
		}
		return w.Flush()
	},
}
