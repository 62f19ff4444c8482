// Package airtable implements the Airtable-shaped backend adapter: a
// JSON-over-HTTP client for the record list and update endpoints, field
// decoding into canonical values, formula filter building, and the adapter
// composing them behind the uniform backend contract.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rouxdev/salonsms/pkg/types"
)

const (
	defaultBaseURL = "https://api.airtable.com"
	pageSize       = 100
)

// Client is the low-level Airtable API client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

// NewClient creates a client for the public Airtable API, authenticated
// with a personal access token.
func NewClient(token string) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Token:      token,
	}
}

// do performs one request and returns the response body. Non-2xx statuses
// are translated into a *types.APIError carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := strings.TrimSuffix(c.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, types.NewAPIError(types.SourceAirtable, resp.StatusCode, serverMessage(respBody, resp.Status))
	}
	return respBody, nil
}

// serverMessage extracts the error message from an Airtable error body.
// The API returns either {"error": {"type", "message"}} or a bare string
// under "error"; fall back to the HTTP status line.
func serverMessage(body []byte, status string) string {
	var structured struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && structured.Error.Message != "" {
		return structured.Error.Message
	}
	var bare struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &bare); err == nil && bare.Error != "" {
		return bare.Error
	}
	return status
}
