// Package extval models the loosely-typed field values returned by external
// record stores as a tagged union, with a single extractor shared by every
// backend. Adapters decode their wire shapes (plain scalars, array-wrapped
// lookups, formula and rollup results) into Values; everything downstream
// works on the canonical kinds.
package extval

import (
	"strconv"
	"strings"
	"time"
)

// Kind enumerates the canonical value shapes.
type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
	KindList
)

// Value is one decoded external field value. The zero Value is Empty.
type Value struct {
	kind     Kind
	str      string
	num      float64
	boolean  bool
	date     time.Time
	hasClock bool
	list     []Value
}

// EmptyValue represents an absent or unrecognized field.
func EmptyValue() Value { return Value{} }

// StringValue wraps a plain text payload.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue wraps a numeric payload.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// BoolValue wraps a checkbox-like payload.
func BoolValue(b bool) Value { return Value{kind: KindBool, boolean: b} }

// DateValue wraps a date payload. hasClock records whether the payload
// carried a time-of-day component.
func DateValue(t time.Time, hasClock bool) Value {
	return Value{kind: KindDate, date: t, hasClock: hasClock}
}

// ListValue wraps an array-wrapped payload (lookup or rollup emulation).
func ListValue(items ...Value) Value { return Value{kind: KindList, list: items} }

// Kind returns the canonical shape of the value.
func (v Value) Kind() Kind { return v.kind }

// Text extracts the value as a scalar string. Numbers are stringified
// locale-free, booleans as "true"/"false", dates in RFC 3339. Lists yield
// their first element. Empty values and empty strings are not ok.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, v.str != ""
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64), true
	case KindBool:
		return strconv.FormatBool(v.boolean), true
	case KindDate:
		if v.hasClock {
			return v.date.Format(time.RFC3339), true
		}
		return v.date.Format("2006-01-02"), true
	case KindList:
		if len(v.list) == 0 {
			return "", false
		}
		return v.list[0].Text()
	default:
		return "", false
	}
}

// JoinText extracts a list as all its elements' texts joined with sep,
// skipping elements with no text. Non-list values fall back to Text.
func (v Value) JoinText(sep string) (string, bool) {
	if v.kind != KindList {
		return v.Text()
	}
	parts := make([]string, 0, len(v.list))
	for _, item := range v.list {
		if s, ok := item.Text(); ok {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, sep), true
}

// Bool reads the value as a boolean. Anything but an explicit Bool is false.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.boolean
}

// Date returns the date payload when the value is a Date.
func (v Value) Date() (time.Time, bool) {
	if v.kind != KindDate {
		return time.Time{}, false
	}
	return v.date, true
}

// dateLayouts are the wire formats accepted when a string value is read as a
// clock. The Airtable API returns dates as bare ISO strings.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
}

// Clock extracts the time-of-day component as zero-padded 24-hour "HH:MM"
// in the operator's local time zone. Date values without a clock component
// and strings that do not parse as timestamps are not ok.
func (v Value) Clock() (string, bool) {
	switch v.kind {
	case KindDate:
		if !v.hasClock {
			return "", false
		}
		return v.date.In(time.Local).Format("15:04"), true
	case KindString:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v.str); err == nil {
				return t.In(time.Local).Format("15:04"), true
			}
		}
		return "", false
	case KindList:
		if len(v.list) == 0 {
			return "", false
		}
		return v.list[0].Clock()
	default:
		return "", false
	}
}
