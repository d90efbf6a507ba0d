// Package readability provides article text extraction using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/proddesc"
	"github.com/go-shiori/go-readability"
)

// Ensure TextExtractor implements proddesc.TextExtractor at compile time.
var _ proddesc.TextExtractor = (*TextExtractor)(nil)

// TextExtractor wraps go-readability to extract the readable text of a page.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the article text with whitespace collapsed.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", proddesc.Errorf(proddesc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return strings.Join(strings.Fields(article.TextContent), " "), nil
}
