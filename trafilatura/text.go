// Package trafilatura provides main-content text extraction using go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/proddesc"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure TextExtractor implements proddesc.TextExtractor at compile time.
var _ proddesc.TextExtractor = (*TextExtractor)(nil)

// TextExtractor wraps go-trafilatura to extract the main text of a page.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the main content as plain text with whitespace collapsed.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", proddesc.Errorf(proddesc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return strings.Join(strings.Fields(result.ContentText), " "), nil
}
