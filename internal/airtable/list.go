package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rouxdev/salonsms/internal/pager"
	"github.com/rouxdev/salonsms/internal/record"
)

// listResponse is the offset-paginated record list result.
type listResponse struct {
	Records []listRecord `json:"records"`
	Offset  string       `json:"offset"`
}

type listRecord struct {
	ID     string                     `json:"id"`
	Fields map[string]json.RawMessage `json:"fields"`
}

// listSource exposes one table listing as a page sequence. The offset token
// plays the continuation-cursor role.
type listSource struct {
	client  *Client
	base    string
	table   string
	formula string
}

func (l *listSource) FetchPage(ctx context.Context, cursor string) (pager.Page, error) {
	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(pageSize))
	if l.formula != "" {
		query.Set("filterByFormula", l.formula)
	}
	if cursor != "" {
		query.Set("offset", cursor)
	}

	path := "/v0/" + l.base + "/" + url.PathEscape(l.table)
	raw, err := l.client.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return pager.Page{}, err
	}

	var resp listResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return pager.Page{}, fmt.Errorf("decoding list response: %w", err)
	}

	page := pager.Page{NextCursor: resp.Offset, Records: make([]record.Record, 0, len(resp.Records))}
	for _, rec := range resp.Records {
		page.Records = append(page.Records, decodeRecord(rec.ID, rec.Fields))
	}
	return page, nil
}

// updateRequest is the body of PATCH /v0/{base}/{table}/{record}.
type updateRequest struct {
	Fields map[string]any `json:"fields"`
}

// updateField sets one field on one record.
func (c *Client) updateField(ctx context.Context, base, table, recordID, field string, value any) error {
	path := "/v0/" + base + "/" + url.PathEscape(table) + "/" + recordID
	body := updateRequest{Fields: map[string]any{field: value}}
	_, err := c.do(ctx, http.MethodPatch, path, nil, body)
	return err
}
