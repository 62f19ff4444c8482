package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rouxdev/salonsms/pkg/extval"
)

func decodeRaw(t *testing.T, payload string) extval.Value {
	t.Helper()
	return decodeProperty(json.RawMessage(payload))
}

func TestDecodeProperty(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
		wantOK  bool
	}{
		{
			name:    "title",
			payload: `{"type":"title","title":[{"plain_text":"Marie Dubois"}]}`,
			want:    "Marie Dubois", wantOK: true,
		},
		{
			name:    "empty title",
			payload: `{"type":"title","title":[]}`,
			wantOK:  false,
		},
		{
			name:    "rich text segments concatenated",
			payload: `{"type":"rich_text","rich_text":[{"plain_text":"Bonjour "},{"plain_text":"{clientName}"}]}`,
			want:    "Bonjour {clientName}", wantOK: true,
		},
		{
			name:    "phone number",
			payload: `{"type":"phone_number","phone_number":"+33612345678"}`,
			want:    "+33612345678", wantOK: true,
		},
		{
			name:    "null phone number",
			payload: `{"type":"phone_number","phone_number":null}`,
			wantOK:  false,
		},
		{
			name:    "number stringified",
			payload: `{"type":"number","number":2}`,
			want:    "2", wantOK: true,
		},
		{
			name:    "select option name",
			payload: `{"type":"select","select":{"name":"Absent"}}`,
			want:    "Absent", wantOK: true,
		},
		{
			name:    "status option name",
			payload: `{"type":"status","status":{"name":"Absent"}}`,
			want:    "Absent", wantOK: true,
		},
		{
			name:    "formula string",
			payload: `{"type":"formula","formula":{"type":"string","string":"Absent"}}`,
			want:    "Absent", wantOK: true,
		},
		{
			name:    "formula number",
			payload: `{"type":"formula","formula":{"type":"number","number":9.5}}`,
			want:    "9.5", wantOK: true,
		},
		{
			name:    "rollup array takes first",
			payload: `{"type":"rollup","rollup":{"type":"array","array":[{"type":"rich_text","rich_text":[{"plain_text":"Alice"}]}]}}`,
			want:    "Alice", wantOK: true,
		},
		{
			name:    "empty rollup array",
			payload: `{"type":"rollup","rollup":{"type":"array","array":[]}}`,
			wantOK:  false,
		},
		{
			name:    "unknown type",
			payload: `{"type":"people","people":[]}`,
			wantOK:  false,
		},
		{
			name:    "garbage",
			payload: `"oops"`,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeRaw(t, tt.payload).Text()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDecodePropertyCheckbox(t *testing.T) {
	assert.True(t, decodeRaw(t, `{"type":"checkbox","checkbox":true}`).Bool())
	assert.False(t, decodeRaw(t, `{"type":"checkbox","checkbox":false}`).Bool())
}

func TestDecodePropertyMultiSelectJoins(t *testing.T) {
	v := decodeRaw(t, `{"type":"multi_select","multi_select":[{"name":"Caramel"},{"name":"Noisette"}]}`)
	got, ok := v.JoinText(", ")
	require.True(t, ok)
	assert.Equal(t, "Caramel, Noisette", got)
}

func TestDecodePropertyDate(t *testing.T) {
	dateOnly := decodeRaw(t, `{"type":"date","date":{"start":"2026-09-01"}}`)
	_, ok := dateOnly.Clock()
	assert.False(t, ok, "date without time has no clock")

	withTime := decodeRaw(t, `{"type":"date","date":{"start":"2026-09-01T09:30:00.000+00:00"}}`)
	clock, ok := withTime.Clock()
	require.True(t, ok)
	assert.NotEmpty(t, clock)
}
