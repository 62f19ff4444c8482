package airtable

import (
	"context"
	"strings"
	"time"

	"github.com/rouxdev/salonsms/internal/pager"
	"github.com/rouxdev/salonsms/internal/record"
	"github.com/rouxdev/salonsms/internal/settings"
	"github.com/rouxdev/salonsms/pkg/types"
)

// Adapter composes the Airtable client, field decoding and the page loop
// behind the uniform backend contract.
type Adapter struct {
	client *Client
	cfg    settings.Snapshot
}

// New builds an adapter for one operation's configuration snapshot.
func New(cfg settings.Snapshot) *Adapter {
	return &Adapter{client: NewClient(cfg.Token), cfg: cfg}
}

// SearchClients lists the client table with a server-side case-insensitive
// name-contains formula. An empty query returns no results without a
// network call.
func (a *Adapter) SearchClients(ctx context.Context, query string) ([]types.Client, error) {
	if strings.TrimSpace(query) == "" {
		return []types.Client{}, nil
	}
	if err := a.cfg.RequireClients(); err != nil {
		return nil, err
	}

	src := &listSource{
		client:  a.client,
		base:    a.cfg.Base,
		table:   a.cfg.Clients.Collection,
		formula: nameContains(a.cfg.Clients.Name, query),
	}
	mapper := record.ClientMapper{NameField: a.cfg.Clients.Name, PhoneField: a.cfg.Clients.Phone}
	return pager.Collect(ctx, src, mapper.Map)
}

// ListTemplates fetches the whole template table.
func (a *Adapter) ListTemplates(ctx context.Context) ([]types.Template, error) {
	if err := a.cfg.RequireTemplates(); err != nil {
		return nil, err
	}

	src := &listSource{client: a.client, base: a.cfg.Base, table: a.cfg.Templates.Collection}
	mapper := record.TemplateMapper{TitleField: a.cfg.Templates.Title, ContentField: a.cfg.Templates.Content}
	return pager.Collect(ctx, src, mapper.Map)
}

// ListAppointmentsOn fetches the appointments of one day, sorted by
// normalized time with timeless entries last.
func (a *Adapter) ListAppointmentsOn(ctx context.Context, day time.Time) ([]types.Client, error) {
	if err := a.cfg.RequireAppointments(); err != nil {
		return nil, err
	}

	formula := dateEquals(a.cfg.Appointments.Date, day.Format("2006-01-02"))
	appointments, err := a.fetchAppointments(ctx, formula)
	if err != nil {
		return nil, err
	}
	clients := record.Clients(appointments)
	types.SortClientsByTime(clients)
	return clients, nil
}

// ListNoShowsOn fetches the no-shows of one day. Airtable formulas can
// reference computed fields, so the status filter joins the date filter
// server-side.
func (a *Adapter) ListNoShowsOn(ctx context.Context, day time.Time) ([]types.Client, error) {
	if err := a.cfg.RequireNoShows(); err != nil {
		return nil, err
	}

	formula := and(
		dateEquals(a.cfg.Appointments.Date, day.Format("2006-01-02")),
		equals(a.cfg.Appointments.Status, a.cfg.Appointments.NoShowStatus),
	)
	appointments, err := a.fetchAppointments(ctx, formula)
	if err != nil {
		return nil, err
	}
	clients := record.Clients(appointments)
	types.SortClientsByTime(clients)
	return clients, nil
}

// SetBooleanField sets one field on one record. Failures are surfaced to
// the caller, never retried.
func (a *Adapter) SetBooleanField(ctx context.Context, recordID, field string, value bool) error {
	return a.client.updateField(ctx, a.cfg.Base, a.cfg.Appointments.Collection, recordID, field, value)
}

func (a *Adapter) fetchAppointments(ctx context.Context, formula string) ([]record.Appointment, error) {
	src := &listSource{
		client:  a.client,
		base:    a.cfg.Base,
		table:   a.cfg.Appointments.Collection,
		formula: formula,
	}
	mapper := record.AppointmentMapper{
		Clients:         record.ClientMapper{NameField: a.cfg.Appointments.Name, PhoneField: a.cfg.Appointments.Phone},
		HourField:       a.cfg.Appointments.Hour,
		DateField:       a.cfg.Appointments.Date,
		PetsField:       a.cfg.Appointments.Pets,
		StatusField:     a.cfg.Appointments.Status,
		SentField:       a.cfg.Appointments.SentFlag,
		NoShowSentField: a.cfg.Appointments.NoShowFlag,
	}
	return pager.Collect(ctx, src, mapper.Map)
}
