// Package trafilatura extracts the main text of a page using go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/websum"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements websum.Extractor at compile time.
var _ websum.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(rawHTML string) (*websum.ExtractResult, error) {
	if rawHTML == "" {
		return nil, websum.Errorf(websum.ECONTENT, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, websum.Errorf(websum.ECONTENT, "%v", err)
	}

	return &websum.ExtractResult{
		Title: strings.TrimSpace(result.Metadata.Title),
		Text:  strings.Join(strings.Fields(result.ContentText), " "),
	}, nil
}
