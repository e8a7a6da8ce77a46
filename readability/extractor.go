// Package readability extracts the main article text of a page using
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/websum"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements websum.Extractor at compile time.
var _ websum.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// Navigation, footers and sidebars are dropped.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article text with whitespace
// collapsed to single spaces.
func (e *Extractor) Extract(rawHTML string) (*websum.ExtractResult, error) {
	if rawHTML == "" {
		return nil, websum.Errorf(websum.ECONTENT, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, websum.Errorf(websum.ECONTENT, "%v", err)
	}

	return &websum.ExtractResult{
		Title: strings.TrimSpace(article.Title),
		Text:  strings.Join(strings.Fields(article.TextContent), " "),
	}, nil
}
