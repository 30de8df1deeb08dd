package newslingo

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET for the URL and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// ExtractResult holds the text extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, when the extractor can determine one.
	Title string

	// Text is the article text with boilerplate removed as far as the
	// extractor's heuristic allows.
	Text string
}

// Extractor extracts article text from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the main textual content.
	// Returns EUNAVAILABLE when no content can be extracted.
	Extract(html string) (*ExtractResult, error)
}

// ArticleFetcher is the single fetch contract of the pipeline: URL in,
// article text out. The scrape implementation composes a Fetcher and an
// Extractor; the delegated implementation asks the model to fetch and clean
// in one call and returns text marked Clean.
type ArticleFetcher interface {
	FetchArticle(ctx context.Context, url string) (*RawArticle, error)
}
