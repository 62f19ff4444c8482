package types

import "strings"

// PlaceholderClientName is the literal token substituted when a template is
// rendered for a client.
const PlaceholderClientName = "{clientName}"

// Template is a reusable message body. Content carries the client-name
// placeholder token. Immutable once mapped from a backend record.
type Template struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Render substitutes the client-name placeholder and returns the final
// message text.
func (t Template) Render(clientName string) string {
	return strings.ReplaceAll(t.Content, PlaceholderClientName, clientName)
}
