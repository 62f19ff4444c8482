// Config command family: inspect and edit the settings database.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rouxdev/salonsms/internal/settings"
	"github.com/rouxdev/salonsms/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the settings",
	Long: `Config manages the settings database: the active data source, API
credentials, and the collection and column aliases each source needs.

Keys are namespaced by source, e.g. notion.token or
airtable.appointments.hour. Run "salonsms config list" to see them all.`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every settings key and its value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := settings.Open(settingsDBPath)
		if err != nil {
			return fmt.Errorf("open settings: %w", err)
		}
		defer store.Close()

		all, err := store.All()
		if err != nil {
			return err
		}

		values := make(map[string]string)
		for _, key := range settings.KnownKeys() {
			value := all[key]
			if value != "" && settings.IsSecret(key) {
				value = "(set)"
			}
			values[key] = value
		}

		if flagJSON {
			return printJSON(values)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tVALUE")
		for _, key := range settings.KnownKeys() {
			fmt.Fprintf(w, "%s\t%s\n", key, orDash(values[key]))
		}
		return w.Flush()
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one settings value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if err := settings.ValidateKey(key); err != nil {
			return err
		}

		store, err := settings.Open(settingsDBPath)
		if err != nil {
			return fmt.Errorf("open settings: %w", err)
		}
		defer store.Close()

		value, ok, err := store.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s is not set", key)
		}

		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one settings value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := settings.ValidateKey(key); err != nil {
			return err
		}
		if key == settings.KeyDataSource {
			if err := types.ValidateSource(value); err != nil {
				return err
			}
		}

		store, err := settings.Open(settingsDBPath)
		if err != nil {
			return fmt.Errorf("open settings: %w", err)
		}
		defer store.Close()

		if err := store.Set(key, value); err != nil {
			return err
		}

		fmt.Println("set", key)
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove one settings value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if err := settings.ValidateKey(key); err != nil {
			return err
		}

		store, err := settings.Open(settingsDBPath)
		if err != nil {
			return fmt.Errorf("open settings: %w", err)
		}
		defer store.Close()

		if err := store.Unset(key); err != nil {
			return err
		}

		fmt.Println("unset", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
}
