package proddesc

import "context"

// TextExtractor converts an HTML page into cleaned plain text.
type TextExtractor interface {
	// ExtractText parses raw HTML and returns its visible text with
	// boilerplate (scripts, navigation, headers, footers) removed and
	// whitespace collapsed.
	ExtractText(html string) (string, error)
}

// ContentExtractor turns a URL into usable evidence text.
type ContentExtractor interface {
	// ExtractContent fetches the page and returns its cleaned text,
	// or "" when the page cannot be retrieved or is too sparse.
	ExtractContent(ctx context.Context, url string) string
}

// EvidenceCollector gathers text snippets about a subject from the web.
type EvidenceCollector interface {
	// Collect returns up to maxPages non-empty snippets in search order.
	// An empty result means no evidence was found; it is not an error.
	Collect(ctx context.Context, query string, maxPages int) []string
}
