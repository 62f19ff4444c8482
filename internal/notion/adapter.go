package notion

import (
	"context"
	"strings"
	"time"

	"github.com/rouxdev/salonsms/internal/pager"
	"github.com/rouxdev/salonsms/internal/record"
	"github.com/rouxdev/salonsms/internal/settings"
	"github.com/rouxdev/salonsms/pkg/types"
)

// Adapter composes the Notion client, property decoding and the page loop
// behind the uniform backend contract.
type Adapter struct {
	client *Client
	cfg    settings.Snapshot
}

// New builds an adapter for one operation's configuration snapshot.
func New(cfg settings.Snapshot) *Adapter {
	return &Adapter{client: NewClient(cfg.Token), cfg: cfg}
}

// SearchClients queries the client database with a server-side
// name-contains filter. An empty query returns no results without a
// network call.
func (a *Adapter) SearchClients(ctx context.Context, query string) ([]types.Client, error) {
	if strings.TrimSpace(query) == "" {
		return []types.Client{}, nil
	}
	if err := a.cfg.RequireClients(); err != nil {
		return nil, err
	}

	src := &querySource{
		client:     a.client,
		databaseID: a.cfg.Clients.Collection,
		filter:     titleContains(a.cfg.Clients.Name, query),
	}
	mapper := record.ClientMapper{NameField: a.cfg.Clients.Name, PhoneField: a.cfg.Clients.Phone}
	return pager.Collect(ctx, src, mapper.Map)
}

// ListTemplates fetches the whole template database.
func (a *Adapter) ListTemplates(ctx context.Context) ([]types.Template, error) {
	if err := a.cfg.RequireTemplates(); err != nil {
		return nil, err
	}

	src := &querySource{client: a.client, databaseID: a.cfg.Templates.Collection}
	mapper := record.TemplateMapper{TitleField: a.cfg.Templates.Title, ContentField: a.cfg.Templates.Content}
	return pager.Collect(ctx, src, mapper.Map)
}

// ListAppointmentsOn fetches the appointments of one day, sorted by
// normalized time with timeless entries last.
func (a *Adapter) ListAppointmentsOn(ctx context.Context, day time.Time) ([]types.Client, error) {
	if err := a.cfg.RequireAppointments(); err != nil {
		return nil, err
	}

	appointments, err := a.fetchAppointments(ctx, day)
	if err != nil {
		return nil, err
	}
	clients := record.Clients(appointments)
	types.SortClientsByTime(clients)
	return clients, nil
}

// ListNoShowsOn fetches the appointments of one day and keeps those whose
// status text equals the configured no-show literal. The date filter runs
// server-side; status filtering happens after mapping because the status
// column may be computed.
func (a *Adapter) ListNoShowsOn(ctx context.Context, day time.Time) ([]types.Client, error) {
	if err := a.cfg.RequireNoShows(); err != nil {
		return nil, err
	}

	appointments, err := a.fetchAppointments(ctx, day)
	if err != nil {
		return nil, err
	}

	noShows := appointments[:0:0]
	for _, appt := range appointments {
		if appt.Status == a.cfg.Appointments.NoShowStatus {
			noShows = append(noShows, appt)
		}
	}
	clients := record.Clients(noShows)
	types.SortClientsByTime(clients)
	return clients, nil
}

// SetBooleanField sets one checkbox property on one record. Failures are
// surfaced to the caller, never retried.
func (a *Adapter) SetBooleanField(ctx context.Context, recordID, field string, value bool) error {
	return a.client.updateCheckbox(ctx, recordID, field, value)
}

func (a *Adapter) fetchAppointments(ctx context.Context, day time.Time) ([]record.Appointment, error) {
	src := &querySource{
		client:     a.client,
		databaseID: a.cfg.Appointments.Collection,
		filter:     dateEquals(a.cfg.Appointments.Date, day.Format("2006-01-02")),
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
