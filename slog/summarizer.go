package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/websum"
)

// Ensure LoggingSummarizer implements websum.Summarizer.
var _ websum.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with debug logging.
type LoggingSummarizer struct {
	next   websum.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next websum.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the outcome.
func (s *LoggingSummarizer) Summarize(ctx context.Context, text string, count int) (sentences []string, err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "summarize",
			"chars", len([]rune(text)),
			"requested", count,
			"selected", len(sentences),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, text, count)
}
