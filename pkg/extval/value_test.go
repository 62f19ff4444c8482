package extval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueText(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   string
		wantOK bool
	}{
		{name: "plain string", value: StringValue("Alice"), want: "Alice", wantOK: true},
		{name: "empty string is absent", value: StringValue(""), wantOK: false},
		{name: "array-wrapped lookup takes first", value: ListValue(StringValue("Alice")), want: "Alice", wantOK: true},
		{name: "empty list is absent", value: ListValue(), wantOK: false},
		{name: "number stringified locale-free", value: NumberValue(33.5), want: "33.5", wantOK: true},
		{name: "integer number has no fraction", value: NumberValue(7), want: "7", wantOK: true},
		{name: "bool as text", value: BoolValue(true), want: "true", wantOK: true},
		{name: "empty value", value: EmptyValue(), wantOK: false},
		{name: "zero value is empty", value: Value{}, wantOK: false},
		{name: "date without clock", value: DateValue(time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), false), want: "2026-09-01", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Text()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValueJoinText(t *testing.T) {
	v := ListValue(StringValue("Caramel"), StringValue("Noisette"))
	got, ok := v.JoinText(", ")
	assert.True(t, ok)
	assert.Equal(t, "Caramel, Noisette", got)

	// Non-list falls back to Text.
	got, ok = StringValue("Caramel").JoinText(", ")
	assert.True(t, ok)
	assert.Equal(t, "Caramel", got)

	_, ok = ListValue().JoinText(", ")
	assert.False(t, ok)
}

func TestValueBool(t *testing.T) {
	assert.True(t, BoolValue(true).Bool())
	assert.False(t, BoolValue(false).Bool())
	assert.False(t, StringValue("true").Bool())
	assert.False(t, EmptyValue().Bool())
}

func TestValueClock(t *testing.T) {
	withClock := DateValue(time.Date(2026, 9, 1, 9, 30, 0, 0, time.Local), true)
	got, ok := withClock.Clock()
	assert.True(t, ok)
	assert.Equal(t, "09:30", got)

	dateOnly := DateValue(time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), false)
	_, ok = dateOnly.Clock()
	assert.False(t, ok)

	iso := time.Date(2026, 9, 1, 14, 5, 0, 0, time.Local).Format(time.RFC3339)
	got, ok = StringValue(iso).Clock()
	assert.True(t, ok)
	assert.Equal(t, "14:05", got)

	_, ok = StringValue("not a timestamp").Clock()
	assert.False(t, ok)
}
