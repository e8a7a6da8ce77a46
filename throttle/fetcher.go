package throttle

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/websum"
)

var _ websum.Fetcher = (*Fetcher)(nil)

// Fetcher waits for the host's rate limit before delegating to the wrapped
// fetcher. URLs without a host are passed through unthrottled so the wrapped
// fetcher reports the error.
type Fetcher struct {
	next    websum.Fetcher
	limiter websum.DomainLimiter
}

// NewFetcher wraps next with limiter.
func NewFetcher(next websum.Fetcher, limiter websum.DomainLimiter) *Fetcher {
	return &Fetcher{next: next, limiter: limiter}
}

// Fetch implements websum.Fetcher.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if u, err := url.Parse(rawURL); err == nil && u.Hostname() != "" {
		if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
			return "", fmt.Errorf("rate limit for %s: %w", u.Hostname(), err)
		}
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
