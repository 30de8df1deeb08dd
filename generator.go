package newslingo

import "context"

// Generator produces the derived artifacts of a run. Each method wraps
// exactly one remote generation call; retrying is the caller's concern.
//
// Failures are classified by error code: ETRANSIENT for retryable service
// failures, EMALFORMED for structured responses that fail to parse, and
// EINTERNAL for everything else.
type Generator interface {
	// CleanArticle strips boilerplate (navigation, ads, captions) from raw
	// article text, returning only the article body.
	CleanArticle(ctx context.Context, raw string) (string, error)

	// Summarize returns a single-paragraph Thai summary of the article.
	Summarize(ctx context.Context, clean string) (string, error)

	// ExtractVocabulary returns exactly VocabCount entries suitable for
	// high-school learners, with example sentences quoted from the article.
	// raw is the unparsed model payload, returned even when parsing fails
	// so callers can surface it for diagnosis.
	ExtractVocabulary(ctx context.Context, clean string) (entries []VocabEntry, raw string, err error)
}
