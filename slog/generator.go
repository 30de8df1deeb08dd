package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tanawatp/newslingo"
)

// Ensure LoggingGenerator implements newslingo.Generator at compile time.
var _ newslingo.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with per-call logging.
type LoggingGenerator struct {
	next   newslingo.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next newslingo.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// CleanArticle delegates to the wrapped generator, logging the call.
func (g *LoggingGenerator) CleanArticle(ctx context.Context, raw string) (string, error) {
	begin := time.Now()
	clean, err := g.next.CleanArticle(ctx, raw)
	g.log("clean", begin, len(raw), len(clean), err)
	return clean, err
}

// Summarize delegates to the wrapped generator, logging the call.
func (g *LoggingGenerator) Summarize(ctx context.Context, clean string) (string, error) {
	begin := time.Now()
	summary, err := g.next.Summarize(ctx, clean)
	g.log("summarize", begin, len(clean), len(summary), err)
	return summary, err
}

// ExtractVocabulary delegates to the wrapped generator, logging the call.
func (g *LoggingGenerator) ExtractVocabulary(ctx context.Context, clean string) ([]newslingo.VocabEntry, string, error) {
	begin := time.Now()
	entries, raw, err := g.next.ExtractVocabulary(ctx, clean)
	g.log("vocabulary", begin, len(clean), len(raw), err)
	return entries, raw, err
}

func (g *LoggingGenerator) log(stage string, begin time.Time, in, out int, err error) {
	if err != nil {
		g.logger.Error("generate",
			"stage", stage,
			"inChars", in,
			"duration", time.Since(begin),
			"error", err,
		)
		return
	}
	g.logger.Info("generate",
		"stage", stage,
		"inChars", in,
		"outChars", out,
		"duration", time.Since(begin),
	)
}
