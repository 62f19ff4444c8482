package settings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rouxdev/salonsms/pkg/types"
)

// KeyDataSource selects the active backend ("notion" or "airtable").
const KeyDataSource = "data_source"

// Per-source key suffixes. Full keys are "<source>.<suffix>", e.g.
// "notion.token" or "airtable.appointments.hour". One alias per logical
// column keeps the store flat, mirroring the original per-column settings.
const (
	suffixToken = "token"
	suffixBase  = "base" // Airtable only: the base identifier

	suffixClientsCollection = "clients.collection"
	suffixClientsName       = "clients.name"
	suffixClientsPhone      = "clients.phone"

	suffixTemplatesCollection = "templates.collection"
	suffixTemplatesTitle      = "templates.title"
	suffixTemplatesContent    = "templates.content"

	suffixAppointmentsCollection = "appointments.collection"
	suffixAppointmentsName       = "appointments.name"
	suffixAppointmentsPhone      = "appointments.phone"
	suffixAppointmentsDate       = "appointments.date"
	suffixAppointmentsHour       = "appointments.hour"
	suffixAppointmentsPets       = "appointments.pets"
	suffixAppointmentsStatus     = "appointments.status"
	suffixAppointmentsSent       = "appointments.sms_sent"
	suffixAppointmentsNoShowSent = "appointments.no_show_sms_sent"
	suffixAppointmentsNoShow     = "appointments.no_show_status"
)

// allSuffixes lists every per-source suffix, for key validation and listing.
var allSuffixes = []string{
	suffixToken,
	suffixBase,
	suffixClientsCollection,
	suffixClientsName,
	suffixClientsPhone,
	suffixTemplatesCollection,
	suffixTemplatesTitle,
	suffixTemplatesContent,
	suffixAppointmentsCollection,
	suffixAppointmentsName,
	suffixAppointmentsPhone,
	suffixAppointmentsDate,
	suffixAppointmentsHour,
	suffixAppointmentsPets,
	suffixAppointmentsStatus,
	suffixAppointmentsSent,
	suffixAppointmentsNoShowSent,
	suffixAppointmentsNoShow,
}

// Key builds the full settings key for a source and suffix.
func Key(source, suffix string) string {
	return source + "." + suffix
}

// KnownKeys returns every recognized settings key, sorted.
func KnownKeys() []string {
	keys := []string{KeyDataSource}
	for _, source := range []string{types.SourceNotion, types.SourceAirtable} {
		for _, suffix := range allSuffixes {
			if source == types.SourceNotion && suffix == suffixBase {
				continue
			}
			keys = append(keys, Key(source, suffix))
		}
	}
	sort.Strings(keys)
	return keys
}

// ValidateKey checks that key is a recognized settings key.
func ValidateKey(key string) error {
	for _, k := range KnownKeys() {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("unknown settings key %q", key)
}

// IsSecret reports whether a key holds a credential, so listings can redact
// it.
func IsSecret(key string) bool {
	return strings.HasSuffix(key, "."+suffixToken)
}
