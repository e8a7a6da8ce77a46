// Package lingua detects the language of extracted text using lingua-go.
package lingua

import (
	"github.com/fwojciec/websum"
	"github.com/pemistahl/lingua-go"
)

// DefaultLanguages are the candidate languages when none are given.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
}

// Ensure Detector implements websum.LanguageDetector at compile time.
var _ websum.LanguageDetector = (*Detector)(nil)

// Detector identifies the language of a text among a fixed set of candidates.
// It is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a Detector for languages, or DefaultLanguages if none
// are given. Building loads language models and is relatively slow, so
// create one Detector per process.
func NewDetector(languages ...lingua.Language) *Detector {
	if len(languages) < 2 {
		languages = DefaultLanguages
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// DetectLanguage returns the English name of the detected language.
func (d *Detector) DetectLanguage(text string) (string, bool) {
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return language.String(), true
}
