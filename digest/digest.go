// Package digest runs the summarization pipeline for a submitted URL:
// normalize, fetch, extract, validate and summarize.
package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/websum"
)

// Messages shown to users for the pipeline's own failures.
const (
	MsgMissingURL    = "Please provide a URL"
	MsgNotEnoughText = "Not enough textual content found on the page"
	MsgEmptySummary  = "Failed to generate a summary"
)

// summaryLanguage is the language the sentence tokenizer is trained on.
const summaryLanguage = "English"

// Ensure Digester implements websum.Digester at compile time.
var _ websum.Digester = (*Digester)(nil)

// Digester orchestrates one summarization request.
// Fetcher, Extractor and Summarizer are required; Languages is optional.
type Digester struct {
	Fetcher    websum.Fetcher
	Extractor  websum.Extractor
	Summarizer websum.Summarizer
	Languages  websum.LanguageDetector
	Logger     *slog.Logger

	// SentenceCount is the summary length. Zero means websum.DefaultSentenceCount.
	SentenceCount int

	// MinContentLength is the minimum extracted text length in characters.
	// Zero means websum.MinContentLength.
	MinContentLength int
}

// Digest summarizes the page at rawURL.
//
// Errors carry websum.EINVALID for a missing URL, websum.EFETCH when the page
// cannot be retrieved, websum.ECONTENT when too little text is found and
// websum.ESUMMARY when no summary can be produced. A panic in any step is
// reported as websum.EINTERNAL.
func (d *Digester) Digest(ctx context.Context, rawURL string) (digest *websum.Digest, err error) {
	defer func() {
		if r := recover(); r != nil {
			digest = nil
			err = websum.Errorf(websum.EINTERNAL, "%v", r)
		}
	}()

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, websum.Errorf(websum.EINVALID, MsgMissingURL)
	}

	logger := d.logger()
	url := websum.NormalizeURL(rawURL)
	logger.InfoContext(ctx, "Attempting to scrape URL", "url", url)

	html, err := d.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, websum.Errorf(websum.EFETCH, "%v", err)
	}

	extracted, err := d.Extractor.Extract(html)
	if err != nil {
		return nil, classify(websum.ECONTENT, err)
	}
	chars := utf8.RuneCountInString(extracted.Text)
	if chars < d.minContentLength() {
		return nil, websum.Errorf(websum.ECONTENT, MsgNotEnoughText)
	}

	digest = &websum.Digest{
		URL:         url,
		Title:       extracted.Title,
		ContentHash: ComputeHash(extracted.Text),
	}
	logger.InfoContext(ctx, "Content extracted successfully",
		"url", url,
		"title", digest.Title,
		"chars", chars,
		"hash", digest.ContentHash,
	)

	if d.Languages != nil {
		if lang, ok := d.Languages.DetectLanguage(extracted.Text); ok {
			digest.Language = lang
			if lang != summaryLanguage {
				logger.WarnContext(ctx, "Content language differs from summarizer language",
					"url", url,
					"language", lang,
					"summarizer", summaryLanguage,
				)
			}
		}
	}

	sentences, err := d.Summarizer.Summarize(ctx, extracted.Text, d.sentenceCount())
	if err != nil {
		return nil, classify(websum.ESUMMARY, err)
	}
	digest.Sentences = sentences
	if strings.TrimSpace(digest.Summary()) == "" {
		return nil, websum.Errorf(websum.ESUMMARY, MsgEmptySummary)
	}

	logger.InfoContext(ctx, "Summary generated successfully",
		"url", url,
		"sentences", len(sentences),
	)
	return digest, nil
}

func (d *Digester) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

func (d *Digester) sentenceCount() int {
	if d.SentenceCount <= 0 {
		return websum.DefaultSentenceCount
	}
	return d.SentenceCount
}

func (d *Digester) minContentLength() int {
	if d.MinContentLength <= 0 {
		return websum.MinContentLength
	}
	return d.MinContentLength
}

// classify keeps application errors as they are and gives any other error
// the provided code.
func classify(code string, err error) error {
	var e *websum.Error
	if errors.As(err, &e) {
		return err
	}
	return websum.Errorf(code, "%v", err)
}

// ComputeHash returns the hex-encoded xxhash of content.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
