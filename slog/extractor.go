package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/websum"
)

// Ensure LoggingExtractor implements websum.Extractor.
var _ websum.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   websum.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next websum.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (result *websum.ExtractResult, err error) {
	defer func(begin time.Time) {
		var chars int
		if result != nil {
			chars = len([]rune(result.Text))
		}
		e.logger.Debug("extract",
			"bytes", len(html),
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
