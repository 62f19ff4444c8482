package notion

import (
	"encoding/json"
	"time"

	"github.com/rouxdev/salonsms/internal/record"
	"github.com/rouxdev/salonsms/pkg/extval"
)

// property is the wire shape of one Notion page property. Only the payload
// matching Type is populated.
type property struct {
	Type        string            `json:"type"`
	Title       []richText        `json:"title"`
	RichText    []richText        `json:"rich_text"`
	PhoneNumber *string           `json:"phone_number"`
	Email       *string           `json:"email"`
	URL         *string           `json:"url"`
	Number      *float64          `json:"number"`
	Checkbox    *bool             `json:"checkbox"`
	Select      *selectOption     `json:"select"`
	Status      *selectOption     `json:"status"`
	MultiSelect []selectOption    `json:"multi_select"`
	Date        *dateValue        `json:"date"`
	Formula     *formulaValue     `json:"formula"`
	Rollup      *rollupValue      `json:"rollup"`
}

type richText struct {
	PlainText string `json:"plain_text"`
}

type selectOption struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
}

type formulaValue struct {
	Type    string     `json:"type"`
	String  *string    `json:"string"`
	Number  *float64   `json:"number"`
	Boolean *bool      `json:"boolean"`
	Date    *dateValue `json:"date"`
}

type rollupValue struct {
	Type   string            `json:"type"`
	Number *float64          `json:"number"`
	Date   *dateValue        `json:"date"`
	Array  []json.RawMessage `json:"array"`
}

// decodeRecord normalizes one Notion page into a record.
func decodeRecord(id string, properties map[string]json.RawMessage) record.Record {
	fields := make(map[string]extval.Value, len(properties))
	for name, raw := range properties {
		fields[name] = decodeProperty(raw)
	}
	return record.Record{ID: id, Fields: fields}
}

// decodeProperty converts one property payload into a canonical value.
// Unrecognized shapes decode to the empty value, never an error.
func decodeProperty(raw json.RawMessage) extval.Value {
	var p property
	if err := json.Unmarshal(raw, &p); err != nil {
		return extval.EmptyValue()
	}

	switch p.Type {
	case "title":
		return extval.StringValue(joinRichText(p.Title))
	case "rich_text":
		return extval.StringValue(joinRichText(p.RichText))
	case "phone_number":
		return stringOrEmpty(p.PhoneNumber)
	case "email":
		return stringOrEmpty(p.Email)
	case "url":
		return stringOrEmpty(p.URL)
	case "number":
		if p.Number == nil {
			return extval.EmptyValue()
		}
		return extval.NumberValue(*p.Number)
	case "checkbox":
		if p.Checkbox == nil {
			return extval.EmptyValue()
		}
		return extval.BoolValue(*p.Checkbox)
	case "select":
		return selectOrEmpty(p.Select)
	case "status":
		return selectOrEmpty(p.Status)
	case "multi_select":
		items := make([]extval.Value, 0, len(p.MultiSelect))
		for _, opt := range p.MultiSelect {
			items = append(items, extval.StringValue(opt.Name))
		}
		return extval.ListValue(items...)
	case "date":
		return decodeDate(p.Date)
	case "formula":
		return decodeFormula(p.Formula)
	case "rollup":
		return decodeRollup(p.Rollup)
	default:
		return extval.EmptyValue()
	}
}

// decodeFormula unwraps a formula result to the canonical kind of its
// payload.
func decodeFormula(f *formulaValue) extval.Value {
	if f == nil {
		return extval.EmptyValue()
	}
	switch f.Type {
	case "string":
		return stringOrEmpty(f.String)
	case "number":
		if f.Number == nil {
			return extval.EmptyValue()
		}
		return extval.NumberValue(*f.Number)
	case "boolean":
		if f.Boolean == nil {
			return extval.EmptyValue()
		}
		return extval.BoolValue(*f.Boolean)
	case "date":
		return decodeDate(f.Date)
	default:
		return extval.EmptyValue()
	}
}

// decodeRollup unwraps a rollup result. Array rollups become lists of their
// element properties.
func decodeRollup(r *rollupValue) extval.Value {
	if r == nil {
		return extval.EmptyValue()
	}
	switch r.Type {
	case "number":
		if r.Number == nil {
			return extval.EmptyValue()
		}
		return extval.NumberValue(*r.Number)
	case "date":
		return decodeDate(r.Date)
	case "array":
		items := make([]extval.Value, 0, len(r.Array))
		for _, raw := range r.Array {
			items = append(items, decodeProperty(raw))
		}
		return extval.ListValue(items...)
	default:
		return extval.EmptyValue()
	}
}

// decodeDate parses a Notion date payload. Date-only starts have no clock
// component; datetime starts do.
func decodeDate(d *dateValue) extval.Value {
	if d == nil || d.Start == "" {
		return extval.EmptyValue()
	}
	if len(d.Start) == len("2006-01-02") {
		t, err := time.ParseInLocation("2006-01-02", d.Start, time.Local)
		if err != nil {
			return extval.EmptyValue()
		}
		return extval.DateValue(t, false)
	}
	t, err := time.Parse(time.RFC3339, d.Start)
	if err != nil {
		return extval.EmptyValue()
	}
	return extval.DateValue(t, true)
}

func joinRichText(segments []richText) string {
	var out string
	for _, s := range segments {
		out += s.PlainText
	}
	return out
}

func stringOrEmpty(s *string) extval.Value {
	if s == nil || *s == "" {
		return extval.EmptyValue()
	}
	return extval.StringValue(*s)
}

func selectOrEmpty(opt *selectOption) extval.Value {
	if opt == nil || opt.Name == "" {
		return extval.EmptyValue()
	}
	return extval.StringValue(opt.Name)
}
