package grader

import "context"

// Document is a parsed HTML page that can be queried with selectors.
type Document interface {
	// Count returns the number of elements matching selector.
	// Returns ESELECTOR if the selector cannot be parsed.
	Count(selector string) (int, error)
}

// Source identifies where the document under test comes from.
// URL takes precedence over Path when both are set.
type Source struct {
	Path string
	URL  string
}

// Remote reports whether the document must be fetched over the network.
func (s Source) Remote() bool {
	return s.URL != ""
}

// String returns the URL for remote sources and the path otherwise.
func (s Source) String() string {
	if s.Remote() {
		return s.URL
	}
	return s.Path
}

// ResultWriter persists a serialized report.
type ResultWriter interface {
	// WriteResults replaces any previously written results with data.
	WriteResults(ctx context.Context, data []byte) error
}
