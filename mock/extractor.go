package mock

import (
	"context"

	"github.com/fwojciec/proddesc"
)

var _ proddesc.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of proddesc.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ proddesc.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of proddesc.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(ctx context.Context, url string) string
}

func (e *ContentExtractor) ExtractContent(ctx context.Context, url string) string {
	return e.ExtractContentFn(ctx, url)
}

var _ proddesc.EvidenceCollector = (*EvidenceCollector)(nil)

// EvidenceCollector is a mock implementation of proddesc.EvidenceCollector.
type EvidenceCollector struct {
	CollectFn func(ctx context.Context, query string, maxPages int) []string
}

func (c *EvidenceCollector) Collect(ctx context.Context, query string, maxPages int) []string {
	return c.CollectFn(ctx, query, maxPages)
}
