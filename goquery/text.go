// Package goquery provides goquery-based HTML text extraction.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/proddesc"
	"golang.org/x/net/html"
)

// boilerplateSelector matches elements whose text never describes the product.
const boilerplateSelector = "script, style, noscript, template, nav, footer, header"

// contentSelector matches block- and inline-level elements that carry visible text.
const contentSelector = "p, div, span, article, section, h1, h2, h3, li"

// Ensure TextExtractor implements proddesc.TextExtractor at compile time.
var _ proddesc.TextExtractor = (*TextExtractor)(nil)

// TextExtractor extracts visible text from content elements of a page.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText removes boilerplate elements and returns the text of the
// outermost content elements joined by single spaces.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", proddesc.Errorf(proddesc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", proddesc.Errorf(proddesc.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(boilerplateSelector).Remove()

	var parts []string
	doc.Find(contentSelector).Each(func(_ int, sel *goquery.Selection) {
		// Nested matches are covered by their outermost ancestor.
		if sel.ParentsFiltered(contentSelector).Length() > 0 {
			return
		}
		for _, n := range sel.Nodes {
			parts = appendText(parts, n)
		}
	})

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " "), nil
}

// appendText appends the non-blank text nodes under n in document order.
func appendText(parts []string, n *html.Node) []string {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			parts = append(parts, s)
		}
		return parts
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parts = appendText(parts, c)
	}
	return parts
}
