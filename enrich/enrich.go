// Package enrich implements the catalog enrichment pipeline: web search,
// content extraction, evidence collection, description generation and the
// row-by-row processor that persists results.
//
// Every stage is sequential. Network failures are absorbed at the lowest
// stage that can handle them so that a single row never aborts a run.
package enrich

import (
	"log/slog"
	"unicode/utf8"
)

// loggerOrDiscard returns l, or a logger that drops everything when l is nil.
func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

// truncate returns at most n characters of s.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
