package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rouxdev/salonsms/internal/pager"
	"github.com/rouxdev/salonsms/internal/record"
)

// queryRequest is the body of POST /v1/databases/{id}/query.
type queryRequest struct {
	PageSize    int            `json:"page_size"`
	StartCursor string         `json:"start_cursor,omitempty"`
	Filter      map[string]any `json:"filter,omitempty"`
}

// queryResponse is the cursor-paginated query result.
type queryResponse struct {
	Results    []queryPage `json:"results"`
	HasMore    bool        `json:"has_more"`
	NextCursor *string     `json:"next_cursor"`
}

type queryPage struct {
	ID         string                     `json:"id"`
	Properties map[string]json.RawMessage `json:"properties"`
}

// querySource exposes one database query as a page sequence.
type querySource struct {
	client     *Client
	databaseID string
	filter     map[string]any
}

func (q *querySource) FetchPage(ctx context.Context, cursor string) (pager.Page, error) {
	body := queryRequest{PageSize: pageSize, StartCursor: cursor, Filter: q.filter}
	raw, err := q.client.do(ctx, http.MethodPost, "/v1/databases/"+q.databaseID+"/query", body)
	if err != nil {
		return pager.Page{}, err
	}

	var resp queryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return pager.Page{}, fmt.Errorf("decoding query response: %w", err)
	}

	page := pager.Page{Records: make([]record.Record, 0, len(resp.Results))}
	for _, result := range resp.Results {
		page.Records = append(page.Records, decodeRecord(result.ID, result.Properties))
	}
	if resp.HasMore && resp.NextCursor != nil {
		page.NextCursor = *resp.NextCursor
	}
	return page, nil
}

// updateRequest is the body of PATCH /v1/pages/{id} for a checkbox update.
type updateRequest struct {
	Properties map[string]checkboxProperty `json:"properties"`
}

type checkboxProperty struct {
	Checkbox bool `json:"checkbox"`
}

// updateCheckbox sets one checkbox property on one page.
func (c *Client) updateCheckbox(ctx context.Context, pageID, field string, value bool) error {
	body := updateRequest{Properties: map[string]checkboxProperty{
		field: {Checkbox: value},
	}}
	_, err := c.do(ctx, http.MethodPatch, "/v1/pages/"+pageID, body)
	return err
}
