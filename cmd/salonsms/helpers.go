// Shared helpers for salonsms CLI commands.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rouxdev/salonsms/internal/settings"
	"github.com/rouxdev/salonsms/pkg/backend"
	"github.com/rouxdev/salonsms/pkg/logx"
	"github.com/rouxdev/salonsms/pkg/types"
)

// openBackend opens the settings store, loads a configuration snapshot and
// builds the adapter for the active source. The caller must close the
// returned store.
func openBackend() (backend.Backend, settings.Snapshot, *settings.Store, error) {
	store, err := settings.Open(settingsDBPath)
	if err != nil {
		return nil, settings.Snapshot{}, nil, fmt.Errorf("open settings: %w", err)
	}

	snap, err := settings.Load(store)
	if err != nil {
		store.Close()
		return nil, settings.Snapshot{}, nil, err
	}

	b, err := backend.New(snap)
	if err != nil {
		store.Close()
		return nil, settings.Snapshot{}, nil, err
	}

	return b, snap, store, nil
}

// operationContext returns a context carrying an operation-scoped logger.
func operationContext(op string) context.Context {
	return logx.WithOperation(context.Background(), op)
}

// parseDay parses a --date value, defaulting to today in local time.
func parseDay(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	day, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return day, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printClients renders clients as JSON or as an aligned table, depending on
// the --json flag. withTime adds the appointment columns.
func printClients(clients []types.Client, withTime bool) error {
	if flagJSON {
		return printJSON(clients)
	}
	if len(clients) == 0 {
		fmt.Println("no clients found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if withTime {
		fmt.Fprintln(w, "TIME\tNAME\tPHONE\tPETS\tSENT")
		for _, c := range clients {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				orDash(c.AppointmentTime), c.Name, c.Phone, orDash(c.Pets), sentMark(c))
		}
	} else {
		fmt.Fprintln(w, "NAME\tPHONE")
		for _, c := range clients {
			fmt.Fprintf(w, "%s\t%s\n", c.Name, c.Phone)
		}
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// sentMark summarizes the per-record SMS flags for table output.
func sentMark(c types.Client) string {
	switch {
	case c.SMSSent && c.NoShowSMSSent:
		return "sms+noshow"
	case c.SMSSent:
		return "sms"
	case c.NoShowSMSSent:
		return "noshow"
	default:
		return "-"
	}
}
