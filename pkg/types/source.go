package types

// Supported data source names.
const (
	SourceNotion   = "notion"
	SourceAirtable = "airtable"
)

// knownSources is the set of data sources Validate accepts.
var knownSources = map[string]bool{
	SourceNotion:   true,
	SourceAirtable: true,
}

// ValidateSource checks that name is a recognized data source.
// Returns ErrSourceEmpty or ErrSourceUnknown on failure.
func ValidateSource(name string) error {
	if name == "" {
		return ErrSourceEmpty
	}
	if !knownSources[name] {
		return ErrSourceUnknown
	}
	return nil
}
