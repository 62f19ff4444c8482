package settings

import (
	"os"
	"sort"
	"strings"

	"github.com/rouxdev/salonsms/pkg/types"
)

// Environment variables overriding the stored credential, so tokens can
// live in a .env file instead of the settings database.
const (
	EnvNotionToken   = "SALONSMS_NOTION_TOKEN"
	EnvAirtableToken = "SALONSMS_AIRTABLE_TOKEN"
)

// ClientsConfig aliases the client collection and its columns.
type ClientsConfig struct {
	Collection string
	Name       string
	Phone      string
}

// TemplatesConfig aliases the template collection and its columns.
type TemplatesConfig struct {
	Collection string
	Title      string
	Content    string
}

// AppointmentsConfig aliases the appointment collection and its columns.
// Hour, Pets and the two flag columns are optional; NoShowStatus is the
// literal status value marking a no-show.
type AppointmentsConfig struct {
	Collection   string
	Name         string
	Phone        string
	Date         string
	Hour         string
	Pets         string
	Status       string
	SentFlag     string
	NoShowFlag   string
	NoShowStatus string
}

// Snapshot is the configuration of one operation: the active source plus
// every alias it needs, loaded by value so concurrent settings edits only
// affect later operations.
type Snapshot struct {
	Source       string
	Token        string
	Base         string // Airtable base id; empty for Notion
	Clients      ClientsConfig
	Templates    TemplatesConfig
	Appointments AppointmentsConfig
}

// Load reads the active source and its keys from the store and applies the
// credential environment override.
func Load(store *Store) (Snapshot, error) {
	all, err := store.All()
	if err != nil {
		return Snapshot{}, err
	}

	source := all[KeyDataSource]
	if source == "" {
		source = types.SourceNotion
	}
	if err := types.ValidateSource(source); err != nil {
		return Snapshot{}, err
	}

	get := func(suffix string) string {
		return strings.TrimSpace(all[Key(source, suffix)])
	}

	snap := Snapshot{
		Source: source,
		Token:  get(suffixToken),
		Base:   get(suffixBase),
		Clients: ClientsConfig{
			Collection: get(suffixClientsCollection),
			Name:       get(suffixClientsName),
			Phone:      get(suffixClientsPhone),
		},
		Templates: TemplatesConfig{
			Collection: get(suffixTemplatesCollection),
			Title:      get(suffixTemplatesTitle),
			Content:    get(suffixTemplatesContent),
		},
		Appointments: AppointmentsConfig{
			Collection:   get(suffixAppointmentsCollection),
			Name:         get(suffixAppointmentsName),
			Phone:        get(suffixAppointmentsPhone),
			Date:         get(suffixAppointmentsDate),
			Hour:         get(suffixAppointmentsHour),
			Pets:         get(suffixAppointmentsPets),
			Status:       get(suffixAppointmentsStatus),
			SentFlag:     get(suffixAppointmentsSent),
			NoShowFlag:   get(suffixAppointmentsNoShowSent),
			NoShowStatus: get(suffixAppointmentsNoShow),
		},
	}

	switch source {
	case types.SourceNotion:
		if env := os.Getenv(EnvNotionToken); env != "" {
			snap.Token = env
		}
	case types.SourceAirtable:
		if env := os.Getenv(EnvAirtableToken); env != "" {
			snap.Token = env
		}
	}

	return snap, nil
}

// requireKeys builds a ConfigError for the feature when any value is empty.
// values maps the full settings key to its loaded value.
func (s Snapshot) requireKeys(feature string, values map[string]string) error {
	var missing []string
	for key, value := range values {
		if value == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &types.ConfigError{Feature: feature, Missing: missing}
}

// base returns the keys every operation needs for the active source.
func (s Snapshot) base() map[string]string {
	values := map[string]string{
		Key(s.Source, suffixToken): s.Token,
	}
	if s.Source == types.SourceAirtable {
		values[Key(s.Source, suffixBase)] = s.Base
	}
	return values
}

// RequireClients validates the settings needed for client search.
func (s Snapshot) RequireClients() error {
	values := s.base()
	values[Key(s.Source, suffixClientsCollection)] = s.Clients.Collection
	values[Key(s.Source, suffixClientsName)] = s.Clients.Name
	values[Key(s.Source, suffixClientsPhone)] = s.Clients.Phone
	return s.requireKeys("client search", values)
}

// RequireTemplates validates the settings needed for template listing.
func (s Snapshot) RequireTemplates() error {
	values := s.base()
	values[Key(s.Source, suffixTemplatesCollection)] = s.Templates.Collection
	values[Key(s.Source, suffixTemplatesTitle)] = s.Templates.Title
	values[Key(s.Source, suffixTemplatesContent)] = s.Templates.Content
	return s.requireKeys("template listing", values)
}

// RequireAppointments validates the settings needed for the appointment
// list. The hour, pets and flag columns stay optional.
func (s Snapshot) RequireAppointments() error {
	values := s.base()
	values[Key(s.Source, suffixAppointmentsCollection)] = s.Appointments.Collection
	values[Key(s.Source, suffixAppointmentsName)] = s.Appointments.Name
	values[Key(s.Source, suffixAppointmentsPhone)] = s.Appointments.Phone
	values[Key(s.Source, suffixAppointmentsDate)] = s.Appointments.Date
	return s.requireKeys("appointment listing", values)
}

// RequireMarkSent validates the settings needed to flip a sent flag on an
// appointment record. The flag columns are optional for listing, so they are
// only demanded here.
func (s Snapshot) RequireMarkSent(noShow bool) error {
	values := s.base()
	values[Key(s.Source, suffixAppointmentsCollection)] = s.Appointments.Collection
	if noShow {
		values[Key(s.Source, suffixAppointmentsNoShowSent)] = s.Appointments.NoShowFlag
	} else {
		values[Key(s.Source, suffixAppointmentsSent)] = s.Appointments.SentFlag
	}
	return s.requireKeys("mark-sent", values)
}

// RequireNoShows validates the settings needed for the no-show list: the
// appointment keys plus the status column and the no-show status literal.
func (s Snapshot) RequireNoShows() error {
	values := s.base()
	values[Key(s.Source, suffixAppointmentsCollection)] = s.Appointments.Collection
	values[Key(s.Source, suffixAppointmentsName)] = s.Appointments.Name
	values[Key(s.Source, suffixAppointmentsPhone)] = s.Appointments.Phone
	values[Key(s.Source, suffixAppointmentsDate)] = s.Appointments.Date
	values[Key(s.Source, suffixAppointmentsStatus)] = s.Appointments.Status
	values[Key(s.Source, suffixAppointmentsNoShow)] = s.Appointments.NoShowStatus
	return s.requireKeys("no-show listing", values)
}
