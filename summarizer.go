package websum

import "context"

// DefaultSentenceCount is the number of sentences in a summary.
const DefaultSentenceCount = 5

// Summarizer produces extractive summaries.
type Summarizer interface {
	// Summarize returns up to count sentences taken verbatim from text,
	// in the order they appear in text.
	Summarize(ctx context.Context, text string, count int) ([]string, error)
}

// LanguageDetector guesses the natural language of a text.
type LanguageDetector interface {
	// DetectLanguage returns the language name (e.g. "English") and whether
	// detection was reliable.
	DetectLanguage(text string) (string, bool)
}
