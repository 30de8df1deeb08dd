// Package goquery provides a tag-heuristic implementation of
// newslingo.Extractor: article text is collected from heading and paragraph
// elements, with whole-body text as a fallback.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tanawatp/newslingo"
)

// articleSelector matches the elements that usually carry article text.
const articleSelector = "p, h1, h2, h3"

// Ensure Extractor implements newslingo.Extractor at compile time.
var _ newslingo.Extractor = (*Extractor)(nil)

// Extractor extracts article text by joining the trimmed text of heading
// and paragraph elements in document order. When the result is shorter
// than newslingo.MinExtractLen the whole body text is used instead.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article text.
// Returns EUNAVAILABLE when no text can be extracted at all.
func (e *Extractor) Extract(html string) (*newslingo.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newslingo.Errorf(newslingo.EINVALID, "failed to parse HTML: %v", err)
	}

	var fragments []string
	doc.Find(articleSelector).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			fragments = append(fragments, text)
		}
	})
	text := strings.Join(fragments, "\n")

	// Pages that don't mark up their article with the usual tags still
	// often have usable body text.
	if len(text) < newslingo.MinExtractLen {
		text = bodyText(doc)
	}

	if text == "" {
		return nil, newslingo.Errorf(newslingo.EUNAVAILABLE, "no extractable content")
	}

	return &newslingo.ExtractResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Text:  text,
	}, nil
}

// bodyText returns all body text with lines trimmed and blanks dropped.
func bodyText(doc *goquery.Document) string {
	raw := doc.Find("body").Text()

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
