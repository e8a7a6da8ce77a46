package mock

import (
	"context"

	"github.com/fwojciec/websum"
)

var _ websum.Digester = (*Digester)(nil)

// Digester is a mock implementation of websum.Digester.
type Digester struct {
	DigestFn func(ctx context.Context, rawURL string) (*websum.Digest, error)
}

func (d *Digester) Digest(ctx context.Context, rawURL string) (*websum.Digest, error) {
	return d.DigestFn(ctx, rawURL)
}
