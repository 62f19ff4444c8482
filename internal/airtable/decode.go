package airtable

import (
	"encoding/json"

	"github.com/rouxdev/salonsms/internal/record"
	"github.com/rouxdev/salonsms/pkg/extval"
)

// decodeRecord normalizes one Airtable record into a record. Airtable
// fields arrive as bare JSON scalars or arrays (lookup/rollup emulation);
// dates are ISO strings and stay strings here, the extractor parses them
// on demand.
func decodeRecord(id string, fields map[string]json.RawMessage) record.Record {
	out := make(map[string]extval.Value, len(fields))
	for name, raw := range fields {
		out[name] = decodeField(raw)
	}
	return record.Record{ID: id, Fields: out}
}

// decodeField converts one field payload into a canonical value.
// Unrecognized shapes decode to the empty value, never an error.
func decodeField(raw json.RawMessage) extval.Value {
	if string(raw) == "null" {
		return extval.EmptyValue()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return extval.StringValue(s)
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return extval.BoolValue(b)
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return extval.NumberValue(f)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		list := make([]extval.Value, 0, len(items))
		for _, item := range items {
			list = append(list, decodeField(item))
		}
		return extval.ListValue(list...)
	}

	// Objects (attachments, collaborators) have no scalar reading.
	return extval.EmptyValue()
}
