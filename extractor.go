package websum

// MinContentLength is the minimum number of characters of extracted text
// needed to produce a summary.
const MinContentLength = 100

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title, if any.
	Title string

	// Text is the visible textual content as a single space-separated string.
	Text string
}

// Extractor extracts visible text from HTML pages.
type Extractor interface {
	// Extract parses raw HTML and returns its textual content.
	// An empty Text is not an error; callers decide what is enough.
	Extract(html string) (*ExtractResult, error)
}
