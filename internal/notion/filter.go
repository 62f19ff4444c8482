package notion

// Server-side filter expressions for the database query endpoint. The
// status column may be a formula or rollup, which the query API cannot
// filter uniformly; no-show filtering therefore stays client-side.

// titleContains filters on a case-insensitive substring of a title
// property.
func titleContains(property, query string) map[string]any {
	return map[string]any{
		"property": property,
		"title":    map[string]any{"contains": query},
	}
}

// dateEquals filters on date equality against an ISO day.
func dateEquals(property, day string) map[string]any {
	return map[string]any{
		"property": property,
		"date":     map[string]any{"equals": day},
	}
}
