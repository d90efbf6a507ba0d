// Package duckduckgo implements proddesc.SearchProvider on top of the
// DuckDuckGo HTML endpoint.
package duckduckgo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/proddesc"
)

// DefaultBaseURL is the JavaScript-free DuckDuckGo endpoint.
const DefaultBaseURL = "https://html.duckduckgo.com/html/"

// DefaultTimeout bounds a single search request.
const DefaultTimeout = 15 * time.Second

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Provider implements proddesc.SearchProvider at compile time.
var _ proddesc.SearchProvider = (*Provider)(nil)

// Provider queries DuckDuckGo and parses the result page.
type Provider struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL overrides the search endpoint.
func WithBaseURL(u string) Option {
	return func(p *Provider) {
		p.baseURL = u
	}
}

// WithHTTPClient sets the HTTP client used for searches.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) {
		p.client = c
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(p *Provider) {
		p.userAgent = ua
	}
}

// NewProvider creates a new Provider.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		client:    &http.Client{Timeout: DefaultTimeout},
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Search returns organic results for query in ranking order.
// DuckDuckGo answers throttled clients with 202, which is reported as an error.
func (p *Provider) Search(ctx context.Context, query string, opts proddesc.SearchOptions) ([]proddesc.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, proddesc.Errorf(proddesc.EINVALID, "search query required")
	}

	params := url.Values{}
	params.Set("q", query)
	if opts.Region != "" {
		params.Set("kl", opts.Region)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo: HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: parse results: %w", err)
	}

	return parseResults(doc, opts.MaxResults), nil
}

// parseResults extracts organic results from a result page. A non-positive limit returns every result.
func parseResults(doc *goquery.Document, limit int) []proddesc.SearchResult {
	var results []proddesc.SearchResult
	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.HasClass("result--ad") {
			return true
		}
		a := sel.Find("a.result__a").First()
		href, ok := a.Attr("href")
		if !ok {
			return true
		}
		target := unwrapRedirect(href)
		if target == "" {
			return true
		}
		results = append(results, proddesc.SearchResult{
			URL:     target,
			Title:   strings.TrimSpace(a.Text()),
			Snippet: strings.TrimSpace(sel.Find(".result__snippet").Text()),
		})
		return limit <= 0 || len(results) < limit
	})
	return results
}

// unwrapRedirect resolves DuckDuckGo's "/l/?uddg=" tracking links to their target.
func unwrapRedirect(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if strings.HasSuffix(u.Host, "duckduckgo.com") && strings.HasPrefix(u.Path, "/l/") {
		return u.Query().Get("uddg")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}
