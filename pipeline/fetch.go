package pipeline

import (
	"context"

	"github.com/tanawatp/newslingo"
)

// Ensure ScrapeFetcher implements newslingo.ArticleFetcher at compile time.
var _ newslingo.ArticleFetcher = (*ScrapeFetcher)(nil)

// ScrapeFetcher is the local ArticleFetcher variant: it fetches the page
// over HTTP and extracts its text locally, leaving boilerplate removal to
// the pipeline's Clean stage.
type ScrapeFetcher struct {
	Fetcher   newslingo.Fetcher
	Extractor newslingo.Extractor
}

// FetchArticle fetches and extracts the article text, applying the length
// cap. Fetch and extraction failures propagate unchanged; there are no
// retries at this layer.
func (s *ScrapeFetcher) FetchArticle(ctx context.Context, url string) (*newslingo.RawArticle, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	text, truncated := newslingo.Truncate(extracted.Text)

	return &newslingo.RawArticle{
		Text:      text,
		Truncated: truncated,
	}, nil
}
