package enrich

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/fwojciec/proddesc"
)

// DefaultOverfetch is how many provider results are requested per wanted link.
// Filtering and failed extractions discard many candidates.
const DefaultOverfetch = 3

// DefaultRegion biases results towards Russian-language supplier sites.
const DefaultRegion = "ru-ru"

// DefaultDenylist matches reference sites that yield generic rather than
// product-specific text.
var DefaultDenylist = []string{"wikipedia.org", "wiktionary.org", "wiki"}

var _ proddesc.Searcher = (*Searcher)(nil)

// Searcher turns provider results into a short list of candidate page URLs.
type Searcher struct {
	Provider proddesc.SearchProvider

	// Region is passed to the provider. Empty means DefaultRegion.
	Region string

	// Overfetch multiplies the requested result count. Zero means DefaultOverfetch.
	Overfetch int

	// Denylist holds substrings matched against host and path.
	// Nil means DefaultDenylist; an empty non-nil slice disables filtering.
	Denylist []string

	Logger *slog.Logger
}

// Search queries the provider and returns at most limit filtered, deduplicated URLs.
// Provider errors are logged and reported as an empty result.
func (s *Searcher) Search(ctx context.Context, query string, limit int) []string {
	logger := loggerOrDiscard(s.Logger)

	overfetch := s.Overfetch
	if overfetch <= 0 {
		overfetch = DefaultOverfetch
	}
	region := s.Region
	if region == "" {
		region = DefaultRegion
	}
	denylist := s.Denylist
	if denylist == nil {
		denylist = DefaultDenylist
	}

	results, err := s.Provider.Search(ctx, query, proddesc.SearchOptions{
		Region:     region,
		MaxResults: limit * overfetch,
	})
	if err != nil {
		logger.Warn("search failed", "query", query, "err", err)
		return nil
	}

	links := make([]string, 0, len(results))
	for _, r := range results {
		links = append(links, r.URL)
	}

	filtered := FilterLinks(links, denylist, limit)
	logger.Debug("search results",
		"query", query,
		"found", len(links),
		"kept", len(filtered),
	)
	for i, link := range filtered {
		logger.Debug("search link", "n", i+1, "url", link)
	}
	return filtered
}

// FilterLinks drops non-HTTP links and links whose host or path contains a
// denylist entry, removes duplicates keeping first-seen order, and returns at
// most limit links. A non-positive limit keeps every link.
func FilterLinks(links []string, denylist []string, limit int) []string {
	seen := make(map[string]bool, len(links))
	var out []string
	for _, link := range links {
		if limit > 0 && len(out) >= limit {
			break
		}

		u, err := url.Parse(strings.TrimSpace(link))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			continue
		}
		if denied(u, denylist) {
			continue
		}

		// Strip fragment for deduplication
		u.Fragment = ""
		key := u.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}

func denied(u *url.URL, denylist []string) bool {
	target := strings.ToLower(u.Host + u.Path)
	for _, entry := range denylist {
		if entry != "" && strings.Contains(target, strings.ToLower(entry)) {
			return true
		}
	}
	return false
}
