package mock

import (
	"context"

	"github.com/tanawatp/newslingo"
)

var _ newslingo.Generator = (*Generator)(nil)

// Generator is a mock implementation of newslingo.Generator.
type Generator struct {
	CleanArticleFn      func(ctx context.Context, raw string) (string, error)
	SummarizeFn         func(ctx context.Context, clean string) (string, error)
	ExtractVocabularyFn func(ctx context.Context, clean string) ([]newslingo.VocabEntry, string, error)
}

func (g *Generator) CleanArticle(ctx context.Context, raw string) (string, error) {
	return g.CleanArticleFn(ctx, raw)
}

func (g *Generator) Summarize(ctx context.Context, clean string) (string, error) {
	return g.SummarizeFn(ctx, clean)
}

func (g *Generator) ExtractVocabulary(ctx context.Context, clean string) ([]newslingo.VocabEntry, string, error) {
	return g.ExtractVocabularyFn(ctx, clean)
}
