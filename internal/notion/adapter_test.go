package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rouxdev/salonsms/internal/settings"
	"github.com/rouxdev/salonsms/pkg/types"
)

func testSnapshot() settings.Snapshot {
	return settings.Snapshot{
		Source: types.SourceNotion,
		Token:  "secret_test",
		Clients: settings.ClientsConfig{
			Collection: "db-clients",
			Name:       "Nom",
			Phone:      "Téléphone",
		},
		Templates: settings.TemplatesConfig{
			Collection: "db-templates",
			Title:      "Titre",
			Content:    "Contenu",
		},
		Appointments: settings.AppointmentsConfig{
			Collection:   "db-appointments",
			Name:         "Nom",
			Phone:        "Téléphone",
			Date:         "Date",
			Hour:         "Heure",
			Status:       "Statut",
			NoShowStatus: "Absent",
		},
	}
}

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	a := New(testSnapshot())
	a.client.BaseURL = server.URL
	return a
}

func clientPage(id, name, phone string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"properties": {
			"Nom": {"type":"title","title":[{"plain_text":%q}]},
			"Téléphone": {"type":"phone_number","phone_number":%q}
		}
	}`, id, name, phone)
}

func TestSearchClients(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/databases/db-clients/query", r.URL.Path)
		assert.Equal(t, "Bearer secret_test", r.Header.Get("Authorization"))
		assert.Equal(t, apiVersion, r.Header.Get("Notion-Version"))

		var body queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, pageSize, body.PageSize)
		assert.Equal(t, "Nom", body.Filter["property"])

		// The server applies the name-contains filter: only Marie matches "Mar".
		fmt.Fprintf(w, `{"results":[%s],"has_more":false,"next_cursor":null}`,
			clientPage("p1", "Marie Dubois", "+33612345678"))
	})

	got, err := a.SearchClients(context.Background(), "Mar")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, types.Client{ID: "p1", Name: "Marie Dubois", Phone: "+33612345678"}, got[0])
}

func TestSearchClientsEmptyQuerySkipsNetwork(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty query")
	})

	got, err := a.SearchClients(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchClientsMissingConfig(t *testing.T) {
	cfg := testSnapshot()
	cfg.Clients.Phone = ""
	a := New(cfg)

	_, err := a.SearchClients(context.Background(), "Mar")
	var cfgErr *types.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Missing, "notion.clients.phone")
}

func TestSearchClientsPagination(t *testing.T) {
	var cursors []string
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		var body queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		cursors = append(cursors, body.StartCursor)

		if body.StartCursor == "" {
			fmt.Fprintf(w, `{"results":[%s],"has_more":true,"next_cursor":"c2"}`,
				clientPage("p1", "Marie Dubois", "+33612345678"))
			return
		}
		fmt.Fprintf(w, `{"results":[%s],"has_more":false,"next_cursor":null}`,
			clientPage("p2", "Pierre Martin", "+33687654321"))
	})

	got, err := a.SearchClients(context.Background(), "Mar")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)
	assert.Equal(t, []string{"", "c2"}, cursors)
}

func TestSearchClientsUnauthorized(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"API token is invalid."}`)
	})

	_, err := a.SearchClients(context.Background(), "Mar")
	var apiErr *types.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "credentials")
	assert.Equal(t, "API token is invalid.", apiErr.ServerMessage)
}

func TestListTemplates(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/databases/db-templates/query", r.URL.Path)
		fmt.Fprint(w, `{"results":[{
			"id": "t1",
			"properties": {
				"Titre": {"type":"title","title":[{"plain_text":"Rappel"}]},
				"Contenu": {"type":"rich_text","rich_text":[{"plain_text":"Bonjour "},{"plain_text":"{clientName}"}]}
			}
		}],"has_more":false,"next_cursor":null}`)
	})

	got, err := a.ListTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rappel", got[0].Title)
	assert.Equal(t, "Bonjour Léa", got[0].Render("Léa"))
}

func appointmentPage(id, name, hour, status string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"properties": {
			"Nom": {"type":"title","title":[{"plain_text":%q}]},
			"Téléphone": {"type":"phone_number","phone_number":"+33600000000"},
			"Heure": {"type":"rich_text","rich_text":[{"plain_text":%q}]},
			"Statut": {"type":"formula","formula":{"type":"string","string":%q}}
		}
	}`, id, name, hour, status)
}

func TestListAppointmentsOnSortsByTime(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		var body queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Date", body.Filter["property"])
		dateFilter, ok := body.Filter["date"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "2026-09-01", dateFilter["equals"])

		pages := []string{
			appointmentPage("a1", "Julien Petit", "14h", "Venu"),
			appointmentPage("a2", "Marie Dubois", "9h", "Venu"),
			appointmentPage("a3", "Léa Robert", "9:30", "Venu"),
		}
		fmt.Fprintf(w, `{"results":[%s],"has_more":false,"next_cursor":null}`, strings.Join(pages, ","))
	})

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	got, err := a.ListAppointmentsOn(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"09:00", "09:30", "14:00"}, []string{
		got[0].AppointmentTime, got[1].AppointmentTime, got[2].AppointmentTime,
	})
}

func TestListNoShowsFiltersStatusClientSide(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		pages := []string{
			appointmentPage("a1", "Julien Petit", "14h", "Venu"),
			appointmentPage("a2", "Marie Dubois", "9h", "Absent"),
		}
		fmt.Fprintf(w, `{"results":[%s],"has_more":false,"next_cursor":null}`, strings.Join(pages, ","))
	})

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	got, err := a.ListNoShowsOn(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Marie Dubois", got[0].Name)
}

func TestListAppointmentsAllRecordsMalformed(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		// Three records whose properties match none of the configured columns.
		malformed := `{"id":"m%d","properties":{"Autre":{"type":"rich_text","rich_text":[]}}}`
		fmt.Fprintf(w, `{"results":[%s,%s,%s],"has_more":false,"next_cursor":null}`,
			fmt.Sprintf(malformed, 1), fmt.Sprintf(malformed, 2), fmt.Sprintf(malformed, 3))
	})

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	_, err := a.ListAppointmentsOn(context.Background(), day)
	assert.ErrorIs(t, err, types.ErrAllRecordsSkipped)
}

func TestSetBooleanField(t *testing.T) {
	var gotBody updateRequest
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/pages/p1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"id":"p1"}`)
	})

	err := a.SetBooleanField(context.Background(), "p1", "SMS envoyé", true)
	require.NoError(t, err)
	assert.True(t, gotBody.Properties["SMS envoyé"].Checkbox)
}

func TestSetBooleanFieldFailureSurfaces(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Could not find page."}`)
	})

	err := a.SetBooleanField(context.Background(), "gone", "SMS envoyé", true)
	var apiErr *types.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
