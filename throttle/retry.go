package throttle

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/websum"
)

var _ websum.Fetcher = (*RetryFetcher)(nil)

// RetryDelays returns n backoff delays doubling from one second: 1s, 2s, 4s...
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, n)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// RetryFetcher retries failed fetches once per configured delay.
// With no delays it makes a single attempt.
type RetryFetcher struct {
	next   websum.Fetcher
	delays []time.Duration
	logger *slog.Logger
}

// NewRetryFetcher wraps next. A nil logger uses slog.Default().
func NewRetryFetcher(next websum.Fetcher, delays []time.Duration, logger *slog.Logger) *RetryFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// Fetch implements websum.Fetcher. The last error is returned once all
// attempts fail.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.delays); attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(f.delays) {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		f.logger.WarnContext(ctx, "retrying fetch",
			"url", url,
			"attempt", attempt+2,
			"err", err,
		)

		timer := time.NewTimer(f.delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	return "", lastErr
}

// Close delegates to the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
