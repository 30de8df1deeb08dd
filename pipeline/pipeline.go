// Package pipeline orchestrates one article run: fetch, clean, and the two
// sibling generation stages (summary, vocabulary), with retry-with-backoff
// on transient service failures and graceful degradation when cleaning
// fails.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tanawatp/newslingo"
	"golang.org/x/sync/errgroup"
)

// Pipeline runs the stages of one article. The zero value is not usable;
// Fetcher and Generator are required, Detector and Logger are optional.
//
// A Pipeline holds no per-run state and may be reused for sequential runs.
// Concurrent runs should each use their own Pipeline, since the underlying
// clients are not assumed to be thread-safe.
type Pipeline struct {
	Fetcher   newslingo.ArticleFetcher
	Generator newslingo.Generator

	// Detector, when set, adds an advisory warning for articles that do
	// not appear to be in English. Never fails a run.
	Detector newslingo.LanguageDetector

	// Logger receives stage progress and warnings. Defaults to discard.
	Logger *slog.Logger

	// RetryDelays overrides the backoff schedule; nil means
	// DefaultRetryDelays(). Tests use short delays.
	RetryDelays []time.Duration
}

// Run processes one article URL and returns its Result.
//
// Failure policy: invalid URL, fetch failure, and sub-minimum article text
// are fatal (error return, no Result). A Clean failure degrades to the raw
// text. Summary and vocabulary failures are recorded on the Result without
// affecting each other.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*newslingo.Result, error) {
	src := newslingo.Source{URL: rawURL}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if p.Fetcher == nil || p.Generator == nil {
		return nil, newslingo.Errorf(newslingo.EINTERNAL, "pipeline requires a fetcher and a generator")
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	result := &newslingo.Result{URL: src.URL}

	var mu sync.Mutex
	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		logger.Warn(msg, "url", src.URL)
		mu.Lock()
		result.Warnings = append(result.Warnings, msg)
		mu.Unlock()
	}

	// Fetch. Fatal on failure: nothing downstream can run. Transient model
	// errors from the delegated fetcher are retried; scrape failures carry
	// non-transient codes and abort on the first attempt.
	raw, err := Retry(ctx, "fetch", func(ctx context.Context) (*newslingo.RawArticle, error) {
		return p.Fetcher.FetchArticle(ctx, src.URL)
	}, warn, delays)
	if err != nil {
		return nil, err
	}

	// Validate. Text below the minimum is deemed meaningless; abort before
	// any generation stage runs.
	if len(raw.Text) < newslingo.MinArticleLen {
		return nil, newslingo.Errorf(newslingo.EUNAVAILABLE,
			"article text too short to process (%d chars); try another URL", len(raw.Text))
	}

	result.RawText = raw.Text
	result.Truncated = raw.Truncated
	if raw.Truncated {
		warn("article text was truncated to %d characters", newslingo.MaxArticleLen)
	}

	if p.Detector != nil {
		if lang, ok := p.Detector.Detect(raw.Text); ok && lang != "English" {
			warn("article appears to be in %s rather than English", lang)
		}
	}

	// Clean. The delegated fetcher already returns clean text. Otherwise a
	// failure here is non-fatal: continue with the unfiltered text.
	if raw.Clean {
		result.CleanText = raw.Text
	} else {
		logger.Info("cleaning article text", "url", src.URL, "chars", len(raw.Text))
		clean, err := Retry(ctx, "clean", func(ctx context.Context) (string, error) {
			return p.Generator.CleanArticle(ctx, raw.Text)
		}, warn, delays)
		switch {
		case err == nil:
			result.CleanText = clean
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			result.CleanText = raw.Text
			result.CleanFallback = true
			warn("cleaning failed (%s); continuing with unfiltered text", newslingo.ErrorMessage(err))
		}
	}

	// Summary and vocabulary are independent siblings over the same clean
	// text; each records its own outcome.
	var g errgroup.Group

	g.Go(func() error {
		summary, err := Retry(ctx, "summarize", func(ctx context.Context) (string, error) {
			return p.Generator.Summarize(ctx, result.CleanText)
		}, warn, delays)
		if err != nil {
			result.SummaryErr = err
		} else {
			result.Summary = summary
		}
		return nil
	})

	g.Go(func() error {
		var rawPayload string
		entries, err := Retry(ctx, "vocabulary", func(ctx context.Context) ([]newslingo.VocabEntry, error) {
			entries, payload, err := p.Generator.ExtractVocabulary(ctx, result.CleanText)
			if payload != "" {
				rawPayload = payload
			}
			return entries, err
		}, warn, delays)
		if err != nil {
			result.VocabErr = err
			result.VocabRaw = rawPayload
		} else {
			result.Vocabulary = entries
		}
		return nil
	})

	_ = g.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	logger.Info("run completed",
		"url", src.URL,
		"cleanFallback", result.CleanFallback,
		"summaryOK", result.SummaryErr == nil,
		"vocabOK", result.VocabErr == nil,
		"warnings", len(result.Warnings),
	)
	return result, nil
}
