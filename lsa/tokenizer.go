// Package lsa implements extractive summarization by latent semantic
// analysis, with English sentence splitting from a Punkt model.
package lsa

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// wordPattern matches a word: a letter followed by letters, apostrophes or hyphens.
var wordPattern = regexp.MustCompile(`\p{L}[\p{L}'’-]*`)

// Tokenizer splits English text into sentences and words.
// It is safe for concurrent use.
type Tokenizer struct {
	sentences *sentences.DefaultSentenceTokenizer
}

// NewTokenizer loads the English Punkt model.
func NewTokenizer() (*Tokenizer, error) {
	st, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load english punkt model: %w", err)
	}
	return &Tokenizer{sentences: st}, nil
}

// Sentences returns the trimmed, non-empty sentences of text in order.
func (t *Tokenizer) Sentences(text string) []string {
	var out []string
	for _, s := range t.sentences.Tokenize(text) {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Words returns the lower-cased words of sentence. Numbers and punctuation
// are dropped.
func Words(sentence string) []string {
	matches := wordPattern.FindAllString(sentence, -1)
	for i, m := range matches {
		matches[i] = strings.ToLower(m)
	}
	return matches
}
