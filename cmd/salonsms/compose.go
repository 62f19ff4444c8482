// Compose command: render a template for a client, optionally copying the
// message to the clipboard.
package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/rouxdev/salonsms/pkg/types"
)

var (
	composeTemplate string
	composeClient   string
	composeCopy     bool
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose an SMS message from a template",
	Long: `Compose renders a stored template for a client, replacing the
{clientName} placeholder with the client's name. The template is selected by
record id or by title (case-insensitive).

Example:
  salonsms compose --template "Rappel RDV" --client "Marie Dupont"
  salonsms compose --template rec123 --client "Marie Dupont" --copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, store, err := openBackend()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := operationContext("compose")
		templates, err := b.ListTemplates(ctx)
		if err != nil {
			return err
		}

		tmpl, ok := findTemplate(templates, composeTemplate)
		if !ok {
			return fmt.Errorf("no template with id or title %q", composeTemplate)
		}

		message := tmpl.Render(composeClient)

		if composeCopy {
			if err := clipboard.WriteAll(message); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
		}

		if flagJSON {
			return printJSON(map[string]string{
				"templateId": tmpl.ID,
				"template":   tmpl.Title,
				"message":    message,
			})
		}
		fmt.Println(message)
		return nil
	},
}

func init() {
	composeCmd.Flags().StringVar(&composeTemplate, "template", "", "template record id or title")
	composeCmd.Flags().StringVar(&composeClient, "client", "", "client name substituted into the template")
	composeCmd.Flags().BoolVar(&composeCopy, "copy", false, "copy the rendered message to the clipboard")
	composeCmd.MarkFlagRequired("template")
	composeCmd.MarkFlagRequired("client")
}

// findTemplate matches by record id first, then by title ignoring case.
func findTemplate(templates []types.Template, selector string) (types.Template, bool) {
	for _, t := range templates {
		if t.ID == selector {
			return t, true
		}
	}
	for _, t := range templates {
		if strings.EqualFold(t.Title, selector) {
			return t, true
		}
	}
	return types.Template{}, false
}
