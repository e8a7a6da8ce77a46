package mock

import (
	"context"

	"github.com/fwojciec/websum"
)

var _ websum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of websum.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string, count int) ([]string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string, count int) ([]string, error) {
	return s.SummarizeFn(ctx, text, count)
}

var _ websum.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of websum.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) (string, bool)
}

func (d *LanguageDetector) DetectLanguage(text string) (string, bool) {
	return d.DetectLanguageFn(text)
}
