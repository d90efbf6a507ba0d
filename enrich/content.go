package enrich

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/fwojciec/proddesc"
)

// Content length bounds, in characters.
const (
	// DefaultMinContentLength rejects near-empty pages, which are almost
	// always error pages or cookie walls.
	DefaultMinContentLength = 100

	// DefaultMaxContentLength bounds the prompt size per snippet.
	DefaultMaxContentLength = 5000
)

var _ proddesc.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor fetches a page once and returns its cleaned text.
type ContentExtractor struct {
	Fetcher   proddesc.Fetcher
	Extractor proddesc.TextExtractor

	// MinLength and MaxLength default to DefaultMinContentLength and
	// DefaultMaxContentLength when zero.
	MinLength int
	MaxLength int

	Logger *slog.Logger
}

// ExtractContent returns the page text truncated to MaxLength, or "" when the
// page cannot be fetched, cannot be parsed, or is shorter than MinLength.
// Failures are not retried; callers move on to the next URL.
func (e *ContentExtractor) ExtractContent(ctx context.Context, url string) string {
	logger := loggerOrDiscard(e.Logger).With("url", url)

	minLen := e.MinLength
	if minLen <= 0 {
		minLen = DefaultMinContentLength
	}
	maxLen := e.MaxLength
	if maxLen <= 0 {
		maxLen = DefaultMaxContentLength
	}

	html, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Debug("fetch failed", "err", err)
		return ""
	}

	text, err := e.Extractor.ExtractText(html)
	if err != nil {
		logger.Debug("extract failed", "err", err)
		return ""
	}

	if n := utf8.RuneCountInString(text); n < minLen {
		logger.Debug("too little text", "chars", n, "preview", truncate(text, 200))
		return ""
	}

	text = truncate(text, maxLen)
	logger.Debug("extracted", "chars", utf8.RuneCountInString(text))
	return text
}
