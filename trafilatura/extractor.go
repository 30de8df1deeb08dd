// Package trafilatura provides a newslingo.Extractor backed by
// go-trafilatura's boilerplate-removal algorithm.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/tanawatp/newslingo"
)

// Ensure Extractor implements newslingo.Extractor at compile time.
var _ newslingo.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract article text from HTML.
// It removes navigation, ads, and other boilerplate more reliably than the
// tag heuristic in the goquery package, at the cost of a heavier dependency.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article text.
func (e *Extractor) Extract(html string) (*newslingo.ExtractResult, error) {
	if html == "" {
		return nil, newslingo.Errorf(newslingo.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(html), opts)
	if err != nil {
		return nil, newslingo.Errorf(newslingo.EUNAVAILABLE, "extract content: %v", err)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return nil, newslingo.Errorf(newslingo.EUNAVAILABLE, "no extractable content")
	}

	return &newslingo.ExtractResult{
		Title: result.Metadata.Title,
		Text:  text,
	}, nil
}
