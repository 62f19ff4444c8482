// Package record defines the normalized external record and the mappers
// that turn records into domain entities. Each backend adapter decodes its
// own wire shape into a Record; the mapping rules are shared.
package record

import (
	"github.com/rouxdev/salonsms/pkg/extval"
)

// Record is one row of an external collection after field decoding.
type Record struct {
	ID     string
	Fields map[string]extval.Value
}

// Field returns the decoded value for the given field name. Unknown names
// and an unset name both yield the empty value.
func (r Record) Field(name string) extval.Value {
	if name == "" || r.Fields == nil {
		return extval.EmptyValue()
	}
	v, ok := r.Fields[name]
	if !ok {
		return extval.EmptyValue()
	}
	return v
}
