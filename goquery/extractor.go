// Package goquery extracts page text with CSS selectors using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/websum"
)

// ContentSelector matches the elements whose text makes up a page's content.
const ContentSelector = "p, h1, h2, h3, article"

// Ensure Extractor implements websum.Extractor at compile time.
var _ websum.Extractor = (*Extractor)(nil)

// Extractor collects the text of paragraph, heading and article elements.
type Extractor struct {
	selector string
}

// NewExtractor creates a new Extractor using ContentSelector.
func NewExtractor() *Extractor {
	return &Extractor{selector: ContentSelector}
}

// Extract returns the text of every matching element in document order,
// joined by single spaces. Elements with no text are skipped. Nested matches
// (a <p> inside an <article>) contribute their text once per element.
func (e *Extractor) Extract(html string) (*websum.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, websum.Errorf(websum.ECONTENT, "failed to parse HTML: %v", err)
	}

	var parts []string
	doc.Find(e.selector).Each(func(_ int, sel *goquery.Selection) {
		if text := collapseSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	return &websum.ExtractResult{
		Title: collapseSpace(doc.Find("title").First().Text()),
		Text:  strings.Join(parts, " "),
	}, nil
}

// collapseSpace trims s and replaces internal whitespace runs with one space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
