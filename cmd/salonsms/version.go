// Version command for the salonsms CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rouxdev/salonsms/pkg/salonsms"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the salonsms version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("salonsms", salonsms.Version)
	},
}
