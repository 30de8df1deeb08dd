package newslingo

import "strings"

// Text thresholds shared across the pipeline.
const (
	// MaxArticleLen caps the text sent to the model. Longer articles are
	// truncated with TruncationMarker appended.
	MaxArticleLen = 15000

	// MinArticleLen is the minimum fetched-text length considered meaningful.
	// Shorter articles abort the run before any generation call.
	MinArticleLen = 50

	// MinExtractLen is the minimum length the tag-based extraction heuristic
	// must produce before falling back to whole-body text.
	MinExtractLen = 100

	// TruncationMarker is appended to truncated article text.
	TruncationMarker = "..."
)

// VocabCount is the number of vocabulary entries requested per article.
const VocabCount = 5

// Source identifies the article to process. Created once per run.
type Source struct {
	URL string `json:"url"`
}

// Validate returns EINVALID unless the URL is an absolute HTTP(S) URL.
func (s Source) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if !strings.HasPrefix(s.URL, "http://") && !strings.HasPrefix(s.URL, "https://") {
		return Errorf(EINVALID, "article URL must start with http:// or https://: %q", s.URL)
	}
	return nil
}

// RawArticle is the text fetched for a source before any generation stage.
type RawArticle struct {
	// Text is the extracted article text. May still contain boilerplate.
	Text string

	// Truncated reports whether Text was cut at MaxArticleLen.
	Truncated bool

	// Clean reports whether the fetcher already removed boilerplate
	// (the delegated fetcher does), in which case the pipeline skips
	// its Clean stage.
	Clean bool
}

// Truncate caps text at MaxArticleLen, appending TruncationMarker when the
// cap applies. The second return reports whether truncation happened.
func Truncate(text string) (string, bool) {
	if len(text) <= MaxArticleLen {
		return text, false
	}
	return text[:MaxArticleLen] + TruncationMarker, true
}

// VocabEntry is one row of the vocabulary table. Example is contractually a
// verbatim sentence from the article text the entry was generated from.
type VocabEntry struct {
	Term        string `json:"English_Word"`
	Translation string `json:"Thai_Translation"`
	Example     string `json:"Example_Sentence"`
}

// Result is the output surface of one pipeline run. Every field is owned by
// the run; runs share no state.
type Result struct {
	URL string

	// RawText is the fetched article text; Truncated reports the length cap.
	RawText   string
	Truncated bool

	// CleanText is the canonical article text consumed by the summary and
	// vocabulary stages. CleanFallback reports that the Clean stage failed
	// and RawText was substituted.
	CleanText     string
	CleanFallback bool

	// Summary is the one-paragraph Thai summary, empty when SummaryErr is set.
	Summary    string
	SummaryErr error

	// Vocabulary holds exactly VocabCount entries on success, nil when
	// VocabErr is set. VocabRaw preserves the raw model payload when the
	// structured response failed to parse, for diagnosis.
	Vocabulary []VocabEntry
	VocabErr   error
	VocabRaw   string

	// Warnings collects non-fatal notices: retry attempts, truncation,
	// fallback activations, language advisories.
	Warnings []string
}
