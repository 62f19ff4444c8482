package airtable

import (
	"fmt"
	"strings"
)

// filterByFormula expressions for the record list endpoint. Airtable
// formulas can reference computed fields, so both date and status filters
// run server-side.

// escape backslash-escapes double quotes inside a formula string literal.
func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// nameContains matches records whose column contains the query,
// case-insensitively.
func nameContains(column, query string) string {
	return fmt.Sprintf(`SEARCH(LOWER("%s"), LOWER({%s}))`, escape(query), column)
}

// dateEquals matches records whose column falls on the given ISO day.
func dateEquals(column, day string) string {
	return fmt.Sprintf(`IS_SAME({%s}, "%s", "day")`, column, day)
}

// equals matches records whose column renders exactly as value.
func equals(column, value string) string {
	return fmt.Sprintf(`{%s} = "%s"`, column, escape(value))
}

// and combines formula parts.
func and(parts ...string) string {
	return "AND(" + strings.Join(parts, ", ") + ")"
}
