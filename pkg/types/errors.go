package types

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Source selection errors.
var (
	ErrSourceEmpty   = errors.New("data source must not be empty")
	ErrSourceUnknown = errors.New("unknown data source")
)

// ErrAllRecordsSkipped signals that a fetch returned records but none of
// them could be mapped to an entity. This almost always means the configured
// field names do not match the collection, so it is raised as an error
// rather than returned as an empty result.
var ErrAllRecordsSkipped = errors.New("no record matched the configured field names; check the column settings")

// ConfigError reports settings that are missing for a feature. It is raised
// before any network call is made.
type ConfigError struct {
	Feature string   // the operation that cannot proceed, e.g. "client search"
	Missing []string // settings keys that have no value
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is not configured: missing %s", e.Feature, strings.Join(e.Missing, ", "))
}

// APIError is a transport or authorization failure translated into a
// user-facing message. Message is keyed by status code; ServerMessage keeps
// whatever the backend said for diagnostics.
type APIError struct {
	Source        string
	StatusCode    int
	Message       string
	ServerMessage string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

// NewAPIError translates an HTTP failure status into an APIError with a
// human-readable message. Unknown statuses fall back to the status code plus
// the server's own message.
func NewAPIError(source string, status int, serverMessage string) *APIError {
	var msg string
	switch status {
	case http.StatusUnauthorized:
		msg = "invalid or expired credentials; check the API token"
	case http.StatusForbidden:
		msg = "access not granted; share the collection with the integration"
	case http.StatusNotFound:
		msg = "collection not found; check the database or table identifier"
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		msg = "the request was rejected; check the column names in the settings"
	case http.StatusTooManyRequests:
		msg = "rate limited by the server; retry later"
	default:
		msg = fmt.Sprintf("HTTP %d: %s", status, serverMessage)
	}
	return &APIError{
		Source:        source,
		StatusCode:    status,
		Message:       msg,
		ServerMessage: serverMessage,
	}
}
