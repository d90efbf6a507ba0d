package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/proddesc"
)

// Ensure LoggingSearchProvider implements proddesc.SearchProvider.
var _ proddesc.SearchProvider = (*LoggingSearchProvider)(nil)

// LoggingSearchProvider wraps a SearchProvider with debug logging.
type LoggingSearchProvider struct {
	next   proddesc.SearchProvider
	logger *slog.Logger
}

// NewLoggingSearchProvider creates a new LoggingSearchProvider.
func NewLoggingSearchProvider(next proddesc.SearchProvider, logger *slog.Logger) *LoggingSearchProvider {
	return &LoggingSearchProvider{next: next, logger: logger}
}

// Search delegates to the wrapped provider and logs the query.
func (p *LoggingSearchProvider) Search(ctx context.Context, query string, opts proddesc.SearchOptions) (results []proddesc.SearchResult, err error) {
	defer func(begin time.Time) {
		p.logger.DebugContext(ctx, "web search",
			"query", query,
			"region", opts.Region,
			"requested", opts.MaxResults,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Search(ctx, query, opts)
}
