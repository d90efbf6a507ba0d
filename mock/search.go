package mock

import (
	"context"

	"github.com/fwojciec/proddesc"
)

var _ proddesc.SearchProvider = (*SearchProvider)(nil)

// SearchProvider is a mock implementation of proddesc.SearchProvider.
type SearchProvider struct {
	SearchFn func(ctx context.Context, query string, opts proddesc.SearchOptions) ([]proddesc.SearchResult, error)
}

func (p *SearchProvider) Search(ctx context.Context, query string, opts proddesc.SearchOptions) ([]proddesc.SearchResult, error) {
	return p.SearchFn(ctx, query, opts)
}

var _ proddesc.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of proddesc.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, limit int) []string
}

func (s *Searcher) Search(ctx context.Context, query string, limit int) []string {
	return s.SearchFn(ctx, query, limit)
}
