// Package lingua implements newslingo.LanguageDetector using lingua-go.
package lingua

import (
	"github.com/pemistahl/lingua-go"
	"github.com/tanawatp/newslingo"
)

// Ensure Detector implements newslingo.LanguageDetector at compile time.
var _ newslingo.LanguageDetector = (*Detector)(nil)

// Detector detects the language of article text. The candidate set is
// limited to languages commonly seen on news sites; a smaller set keeps
// detection fast and accurate.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.Thai,
		lingua.French,
		lingua.German,
		lingua.Spanish,
		lingua.Portuguese,
		lingua.Russian,
		lingua.Arabic,
		lingua.Chinese,
		lingua.Japanese,
	}

	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the English name of the detected language.
// ok is false when the text is too ambiguous to classify.
func (d *Detector) Detect(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	language, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return "", false
	}
	return language.String(), true
}
