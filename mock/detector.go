package mock

import "github.com/tanawatp/newslingo"

var _ newslingo.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of newslingo.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(text string) (string, bool)
}

func (d *LanguageDetector) Detect(text string) (string, bool) {
	return d.DetectFn(text)
}
