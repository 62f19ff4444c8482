// Package backend defines the uniform contract every data source adapter
// satisfies, and selects the active adapter from the operation's
// configuration snapshot.
package backend

import (
	"context"
	"time"

	"github.com/rouxdev/salonsms/internal/airtable"
	"github.com/rouxdev/salonsms/internal/notion"
	"github.com/rouxdev/salonsms/internal/settings"
	"github.com/rouxdev/salonsms/pkg/types"
)

// Backend is the capability set shared by every data source: search
// clients, list templates, list a day's appointments and no-shows, and
// flip one boolean field on one record.
type Backend interface {
	// SearchClients returns the clients whose name contains query,
	// case-insensitively. An empty query returns an empty result without
	// touching the network.
	SearchClients(ctx context.Context, query string) ([]types.Client, error)

	// ListTemplates returns every message template.
	ListTemplates(ctx context.Context) ([]types.Template, error)

	// ListAppointmentsOn returns the clients with an appointment on the
	// given day, ordered by appointment time, timeless entries last.
	ListAppointmentsOn(ctx context.Context, day time.Time) ([]types.Client, error)

	// ListNoShowsOn returns the clients whose appointment status on the
	// given day equals the configured no-show literal, ordered like
	// ListAppointmentsOn.
	ListNoShowsOn(ctx context.Context, day time.Time) ([]types.Client, error)

	// SetBooleanField sets one boolean field on one record.
	SetBooleanField(ctx context.Context, recordID, field string, value bool) error
}

// Conforming adapters.
var (
	_ Backend = (*notion.Adapter)(nil)
	_ Backend = (*airtable.Adapter)(nil)
)

// New returns the adapter for the snapshot's active source.
func New(cfg settings.Snapshot) (Backend, error) {
	if err := types.ValidateSource(cfg.Source); err != nil {
		return nil, err
	}
	switch cfg.Source {
	case types.SourceAirtable:
		return airtable.New(cfg), nil
	default:
		return notion.New(cfg), nil
	}
}
