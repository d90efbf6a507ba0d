package proddesc

import "context"

// SearchResult is a single hit returned by a search provider.
type SearchResult struct {
	URL     string
	Title   string
	Snippet string
}

// SearchOptions configures a provider query.
type SearchOptions struct {
	// Region is a provider-specific locale hint (e.g., "ru-ru").
	Region string

	// MaxResults caps the number of results returned.
	MaxResults int
}

// SearchProvider queries a web search engine.
type SearchProvider interface {
	// Search returns raw results for the query in ranking order.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// Searcher returns filtered candidate URLs for a query.
type Searcher interface {
	// Search returns at most limit deduplicated URLs. Provider failures are
	// absorbed and reported as an empty result.
	Search(ctx context.Context, query string, limit int) []string
}
