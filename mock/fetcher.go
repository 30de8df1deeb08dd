package mock

import (
	"context"

	"github.com/tanawatp/newslingo"
)

var _ newslingo.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newslingo.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ newslingo.ArticleFetcher = (*ArticleFetcher)(nil)

// ArticleFetcher is a mock implementation of newslingo.ArticleFetcher.
type ArticleFetcher struct {
	FetchArticleFn func(ctx context.Context, url string) (*newslingo.RawArticle, error)
}

func (f *ArticleFetcher) FetchArticle(ctx context.Context, url string) (*newslingo.RawArticle, error) {
	return f.FetchArticleFn(ctx, url)
}
