// Package slog provides log/slog decorators for newslingo interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tanawatp/newslingo"
)

// Ensure LoggingArticleFetcher implements newslingo.ArticleFetcher at compile time.
var _ newslingo.ArticleFetcher = (*LoggingArticleFetcher)(nil)

// LoggingArticleFetcher wraps an ArticleFetcher with logging.
type LoggingArticleFetcher struct {
	next   newslingo.ArticleFetcher
	logger *slog.Logger
}

// NewLoggingArticleFetcher creates a new LoggingArticleFetcher.
func NewLoggingArticleFetcher(next newslingo.ArticleFetcher, logger *slog.Logger) *LoggingArticleFetcher {
	return &LoggingArticleFetcher{next: next, logger: logger}
}

// FetchArticle delegates to the wrapped fetcher, logging size, truncation,
// and duration.
func (f *LoggingArticleFetcher) FetchArticle(ctx context.Context, url string) (*newslingo.RawArticle, error) {
	begin := time.Now()
	raw, err := f.next.FetchArticle(ctx, url)
	if err != nil {
		f.logger.Error("fetch article",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	f.logger.Info("fetch article",
		"url", url,
		"chars", len(raw.Text),
		"truncated", raw.Truncated,
		"clean", raw.Clean,
		"duration", time.Since(begin),
	)
	return raw, nil
}
