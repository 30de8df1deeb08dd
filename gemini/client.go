// Package gemini implements newslingo.Generator and the delegated
// newslingo.ArticleFetcher on top of the Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/tanawatp/newslingo"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the model used unless WithModel overrides it.
const DefaultModel = "gemini-2.5-flash"

// DefaultCallTimeout bounds a single generation call so a stalled request
// cannot block a run indefinitely.
const DefaultCallTimeout = 90 * time.Second

// Ensure Client implements newslingo.Generator at compile time.
var _ newslingo.Generator = (*Client)(nil)

// Client wraps a genai.Client. Each Generator method issues exactly one
// remote call; retrying is left to the pipeline's retry controller.
//
// A Client is safe to reuse across the stages of one run. It holds no
// credential state of its own; the credential lives in the genai.Client
// supplied at construction.
type Client struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithModel overrides the model identifier. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithRateLimit applies a client-side token-bucket limit of rps requests
// per second (burst 1) before each remote call. Useful for keeping a run
// under free-tier quotas instead of relying on 429 retries.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithCallTimeout overrides the per-call deadline applied to each remote
// call. Defaults to DefaultCallTimeout.
func WithCallTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new Client around an initialized genai.Client.
func NewClient(client *genai.Client, opts ...Option) *Client {
	c := &Client{
		client:  client,
		model:   DefaultModel,
		timeout: DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CleanArticle strips boilerplate from raw article text.
func (c *Client) CleanArticle(ctx context.Context, raw string) (string, error) {
	if raw == "" {
		return "", newslingo.Errorf(newslingo.EINVALID, "article text required")
	}
	return c.generate(ctx, BuildCleanPrompt(raw), CleanConfig())
}

// Summarize returns a single-paragraph Thai summary of the article.
func (c *Client) Summarize(ctx context.Context, clean string) (string, error) {
	if clean == "" {
		return "", newslingo.Errorf(newslingo.EINVALID, "article text required")
	}
	return c.generate(ctx, BuildSummaryPrompt(clean), SummaryConfig())
}

// ExtractVocabulary returns newslingo.VocabCount vocabulary entries for the
// article. The raw model payload is returned alongside the entries so
// callers can surface it when parsing fails.
func (c *Client) ExtractVocabulary(ctx context.Context, clean string) ([]newslingo.VocabEntry, string, error) {
	if clean == "" {
		return nil, "", newslingo.Errorf(newslingo.EINVALID, "article text required")
	}

	payload, err := c.generate(ctx, BuildVocabPrompt(clean), VocabConfig())
	if err != nil {
		return nil, "", err
	}

	entries, err := ParseVocabulary(payload)
	if err != nil {
		return nil, payload, err
	}
	return entries, payload, nil
}

// generate issues one GenerateContent call and returns the trimmed text.
func (c *Client) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.client.Models.GenerateContent(callCtx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		// A per-call deadline is a stalled request, retryable as long as
		// the caller itself has not given up.
		if callCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
			return "", newslingo.Errorf(newslingo.ETRANSIENT, "gemini call timed out after %s", c.timeout)
		}
		return "", classify(err)
	}
	if result == nil {
		return "", newslingo.Errorf(newslingo.EINTERNAL, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", newslingo.Errorf(newslingo.EINTERNAL, "gemini returned empty response")
	}
	return text, nil
}

// ParseVocabulary decodes the structured vocabulary payload. Payloads that
// are not valid JSON, have the wrong entry count, or contain empty fields
// are rejected as EMALFORMED; there is no partial recovery.
func ParseVocabulary(payload string) ([]newslingo.VocabEntry, error) {
	var entries []newslingo.VocabEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, newslingo.Errorf(newslingo.EMALFORMED, "vocabulary response is not valid JSON: %v", err)
	}
	if len(entries) != newslingo.VocabCount {
		return nil, newslingo.Errorf(newslingo.EMALFORMED, "vocabulary response has %d entries, want %d", len(entries), newslingo.VocabCount)
	}
	for i, e := range entries {
		if e.Term == "" || e.Translation == "" || e.Example == "" {
			return nil, newslingo.Errorf(newslingo.EMALFORMED, "vocabulary entry %d has empty fields", i)
		}
	}
	return entries, nil
}
