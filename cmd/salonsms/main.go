// Package main provides the salonsms CLI, a keyboard-driven assistant for
// sending appointment reminders from a Notion or Airtable client base.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rouxdev/salonsms/pkg/types"
)

// Exit codes: 0 success, 1 user error (flags, settings, empty credentials),
// 2 system error (the backend rejected or failed the request).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "salonsms:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error from a command. Backend failures are system
// errors; everything else is something the user can fix locally.
func exitCode(err error) int {
	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		return exitSysError
	}
	return exitUserError
}
