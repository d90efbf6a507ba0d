package enrich

import (
	"context"
	"log/slog"

	"github.com/fwojciec/proddesc"
)

// DefaultMaxPages is the number of snippets collected per subject.
const DefaultMaxPages = 5

var _ proddesc.EvidenceCollector = (*Collector)(nil)

// Collector searches for a subject and extracts text from the result pages.
type Collector struct {
	Searcher  proddesc.Searcher
	Extractor proddesc.ContentExtractor

	// Pacer is awaited between successive page fetches. Nil disables pacing.
	Pacer proddesc.Pacer

	Logger *slog.Logger
}

// Collect returns up to maxPages snippets in search order. It never fails:
// an empty result signals that no web evidence is available.
func (c *Collector) Collect(ctx context.Context, query string, maxPages int) []string {
	logger := loggerOrDiscard(c.Logger)
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	links := c.Searcher.Search(ctx, query, maxPages)
	if len(links) == 0 {
		logger.Warn("search returned no links", "query", query)
		return nil
	}
	logger.Info("search", "query", query, "links", len(links))

	var evidence []string
	for i, link := range links {
		if len(evidence) >= maxPages {
			break
		}
		if i > 0 && c.Pacer != nil {
			if err := c.Pacer.Wait(ctx); err != nil {
				break
			}
		}

		text := c.Extractor.ExtractContent(ctx, link)
		if text == "" {
			logger.Warn("no text extracted", "page", i+1, "of", len(links), "url", link)
			continue
		}
		logger.Info("page extracted", "page", i+1, "of", len(links), "url", link, "chars", len([]rune(text)))
		evidence = append(evidence, text)
	}

	if len(evidence) == 0 {
		logger.Warn("no page yielded text", "query", query)
	}
	return evidence
}
