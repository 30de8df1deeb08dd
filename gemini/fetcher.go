package gemini

import (
	"context"

	"github.com/tanawatp/newslingo"
)

// Ensure Fetcher implements newslingo.ArticleFetcher at compile time.
var _ newslingo.ArticleFetcher = (*Fetcher)(nil)

// Fetcher is the delegated ArticleFetcher variant: one generation call asks
// the model to retrieve and clean the article directly from its URL. The
// returned text is marked Clean, so the pipeline skips its Clean stage.
//
// Compared to the scrape fetcher this costs a model call and depends on the
// model's ability to reach the URL, but handles pages the plain HTTP
// fetcher cannot extract.
type Fetcher struct {
	client *Client
}

// NewFetcher creates a delegated Fetcher sharing the given Client.
func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{client: client}
}

// FetchArticle asks the model for the cleaned article text at url.
func (f *Fetcher) FetchArticle(ctx context.Context, url string) (*newslingo.RawArticle, error) {
	if err := (newslingo.Source{URL: url}).Validate(); err != nil {
		return nil, err
	}

	text, err := f.client.generate(ctx, BuildFetchPrompt(url), FetchConfig())
	if err != nil {
		return nil, err
	}

	text, truncated := newslingo.Truncate(text)

	return &newslingo.RawArticle{
		Text:      text,
		Truncated: truncated,
		Clean:     true,
	}, nil
}
