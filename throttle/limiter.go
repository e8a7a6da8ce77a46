// Package throttle paces outbound fetches: per-host rate limits and retries
// with backoff.
package throttle

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/websum"
	"golang.org/x/time/rate"
)

// DefaultMaxHosts is the number of hosts a DomainLimiter tracks at once.
const DefaultMaxHosts = 1024

var _ websum.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter rate limits requests per host with a token bucket of burst 1.
//
// Hosts arrive from user submissions, so the set of buckets is kept small:
// a bucket that has refilled is indistinguishable from a new one and is
// dropped at the next sweep, and at most maxHosts buckets are kept.
type DomainLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	rps       float64
	maxHosts  int
	now       func() time.Time
	lastSweep time.Time
}

// LimiterOption configures a DomainLimiter.
type LimiterOption func(*DomainLimiter)

// WithMaxHosts caps the number of tracked hosts. Values below 1 are ignored.
func WithMaxHosts(n int) LimiterOption {
	return func(d *DomainLimiter) {
		if n > 0 {
			d.maxHosts = n
		}
	}
}

// WithClock sets the time source used for sweeping idle hosts.
func WithClock(now func() time.Time) LimiterOption {
	return func(d *DomainLimiter) {
		d.now = now
	}
}

// NewDomainLimiter returns a DomainLimiter allowing rps requests per second
// to each host.
func NewDomainLimiter(rps float64, opts ...LimiterOption) *DomainLimiter {
	d := &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		maxHosts: DefaultMaxHosts,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		d.makeRoom(d.now())
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// Len returns the number of hosts currently tracked.
func (d *DomainLimiter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.limiters)
}

// makeRoom sweeps refilled buckets once per refill interval, or whenever the
// map is full. If it is still full, the bucket holding the most tokens goes.
// Callers hold d.mu.
func (d *DomainLimiter) makeRoom(now time.Time) {
	full := len(d.limiters) >= d.maxHosts
	if full || now.Sub(d.lastSweep) >= d.refill() {
		for host, l := range d.limiters {
			if l.TokensAt(now) >= 1 {
				delete(d.limiters, host)
			}
		}
		d.lastSweep = now
	}

	for len(d.limiters) >= d.maxHosts {
		var (
			victim string
			most   float64
			found  bool
		)
		for host, l := range d.limiters {
			if tokens := l.TokensAt(now); !found || tokens > most {
				victim, most, found = host, tokens, true
			}
		}
		delete(d.limiters, victim)
	}
}

// refill is the time an empty bucket takes to hold one token again.
func (d *DomainLimiter) refill() time.Duration {
	if d.rps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / d.rps)
}
