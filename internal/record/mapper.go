package record

import (
	"context"

	"github.com/rouxdev/salonsms/pkg/logx"
	"github.com/rouxdev/salonsms/pkg/types"
)

// ClientMapper builds a Client from a record. Name and phone are the
// minimum-field contract: a record missing either is skipped, not an error.
type ClientMapper struct {
	NameField  string
	PhoneField string
}

// Map returns the mapped client, or false when the record does not satisfy
// the contract. Skips are logged with the record id and raw values so a
// misconfigured column can be diagnosed, but never surfaced to the caller.
func (m ClientMapper) Map(ctx context.Context, r Record) (types.Client, bool) {
	name, nameOK := r.Field(m.NameField).Text()
	phone, phoneOK := r.Field(m.PhoneField).Text()
	if !nameOK || !phoneOK {
		logx.FromContext(ctx).Debug("record skipped: missing name or phone",
			"record_id", r.ID, "name", name, "phone", phone)
		return types.Client{}, false
	}
	return types.Client{ID: r.ID, Name: name, Phone: phone}, true
}

// Appointment is a Client enriched with the raw status text, kept so
// adapters can filter no-shows client-side when the backend cannot filter
// on a computed status field.
type Appointment struct {
	Client types.Client
	Status string
}

// AppointmentMapper builds an Appointment from a record. On top of the
// client contract it extracts the optional appointment time, pets summary,
// status text and the two notified flags; each defaults to absent/false
// when its field alias is unconfigured.
type AppointmentMapper struct {
	Clients         ClientMapper
	HourField       string // dedicated time field, e.g. "9h30"
	DateField       string // combined datetime field, fallback time source
	PetsField       string
	StatusField     string
	SentField       string
	NoShowSentField string
}

// Map returns the mapped appointment, or false for records failing the
// client contract.
func (m AppointmentMapper) Map(ctx context.Context, r Record) (Appointment, bool) {
	c, ok := m.Clients.Map(ctx, r)
	if !ok {
		return Appointment{}, false
	}

	c.AppointmentTime = m.appointmentTime(r)
	if pets, ok := r.Field(m.PetsField).JoinText(", "); ok {
		c.Pets = pets
	}
	c.SMSSent = r.Field(m.SentField).Bool()
	c.NoShowSMSSent = r.Field(m.NoShowSentField).Bool()

	status, _ := r.Field(m.StatusField).Text()
	return Appointment{Client: c, Status: status}, true
}

// appointmentTime resolves the appointment time: the dedicated hour field
// wins, then the time component of the combined date field. Returns "" when
// neither resolves.
func (m AppointmentMapper) appointmentTime(r Record) string {
	if raw, ok := r.Field(m.HourField).Text(); ok {
		if clock, ok := types.NormalizeClock(raw); ok {
			return clock
		}
	}
	if clock, ok := r.Field(m.DateField).Clock(); ok {
		return clock
	}
	return ""
}

// Clients projects the mapped appointments back to their clients.
func Clients(appointments []Appointment) []types.Client {
	out := make([]types.Client, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, a.Client)
	}
	return out
}

// TemplateMapper builds a Template from a record. Title and content are the
// minimum-field contract.
type TemplateMapper struct {
	TitleField   string
	ContentField string
}

// Map returns the mapped template, or false when title or content is
// missing.
func (m TemplateMapper) Map(ctx context.Context, r Record) (types.Template, bool) {
	title, titleOK := r.Field(m.TitleField).Text()
	content, contentOK := r.Field(m.ContentField).Text()
	if !titleOK || !contentOK {
		logx.FromContext(ctx).Debug("record skipped: missing title or content",
			"record_id", r.ID, "title", title)
		return types.Template{}, false
	}
	return types.Template{ID: r.ID, Title: title, Content: content}, true
}
