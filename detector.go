package newslingo

// LanguageDetector reports the language of a text. Used for an advisory
// warning when the article does not appear to be in English; detection
// never fails a run.
type LanguageDetector interface {
	// Detect returns the English name of the detected language.
	// ok is false when no language can be determined reliably.
	Detect(text string) (language string, ok bool)
}
