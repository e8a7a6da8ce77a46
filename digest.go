package websum

import (
	"context"
	"strings"
)

// Digest is the outcome of summarizing a single page.
type Digest struct {
	// URL is the normalized URL that was fetched.
	URL string

	// Title is the page title reported by the extractor.
	Title string

	// Language is the detected language of the content, empty if unknown.
	Language string

	// ContentHash identifies the extracted text (xxhash, hex encoded).
	ContentHash string

	// Sentences are the selected sentences in document order.
	Sentences []string
}

// Summary joins the selected sentences with single spaces.
func (d *Digest) Summary() string {
	return strings.Join(d.Sentences, " ")
}

// Digester turns a user-submitted URL into a Digest.
type Digester interface {
	// Digest normalizes rawURL, fetches the page, extracts its text and
	// summarizes it. Errors carry one of the application error codes.
	Digest(ctx context.Context, rawURL string) (*Digest, error)
}

// RenderResult is the data shown on the result page.
// At most one of Summary and Error is set; both empty renders the blank form.
type RenderResult struct {
	Summary string
	Error   string
}
