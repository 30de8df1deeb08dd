package mock

import "github.com/tanawatp/newslingo"

var _ newslingo.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newslingo.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*newslingo.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*newslingo.ExtractResult, error) {
	return e.ExtractFn(html)
}
