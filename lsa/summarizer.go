package lsa

import (
	"context"
	"errors"
	"math"
	"slices"

	"github.com/fwojciec/websum"
	"gonum.org/v1/gonum/mat"
)

const (
	// MinDimensions is the minimum number of singular values used for ranking.
	MinDimensions = 3

	// ReductionRatio is the fraction of singular values used for ranking.
	ReductionRatio = 1.0

	// smoothing is the floor of the smoothed term frequency.
	smoothing = 0.4
)

// ErrNoTokenizer is returned when the summarizer was built without a tokenizer,
// typically because the Punkt model failed to load at startup.
var ErrNoTokenizer = errors.New("sentence tokenizer is not available")

// Ensure Summarizer implements websum.Summarizer at compile time.
var _ websum.Summarizer = (*Summarizer)(nil)

// Summarizer ranks sentences by the singular value decomposition of a
// term/sentence matrix and keeps the best ones.
type Summarizer struct {
	tokenizer *Tokenizer
}

// NewSummarizer returns a Summarizer using t. A nil t yields a summarizer
// whose every call fails with ErrNoTokenizer.
func NewSummarizer(t *Tokenizer) *Summarizer {
	return &Summarizer{tokenizer: t}
}

// Summarize returns up to count sentences of text, in document order.
// Text without any words yields no sentences and no error.
func (s *Summarizer) Summarize(ctx context.Context, text string, count int) ([]string, error) {
	if s.tokenizer == nil {
		return nil, ErrNoTokenizer
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, nil
	}

	sentences := s.tokenizer.Sentences(text)
	if len(sentences) == 0 {
		return nil, nil
	}

	words := make([][]string, len(sentences))
	for i, sentence := range sentences {
		words[i] = Words(sentence)
	}

	dictionary := buildDictionary(words)
	if len(dictionary) == 0 {
		return nil, nil
	}

	ranks, err := rank(termFrequencyMatrix(words, dictionary))
	if err != nil {
		return nil, err
	}

	return best(sentences, ranks, count), nil
}

// buildDictionary maps each distinct word to a matrix row, in sorted order.
func buildDictionary(words [][]string) map[string]int {
	seen := make(map[string]struct{})
	for _, sentence := range words {
		for _, w := range sentence {
			seen[w] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(seen))
	for w := range seen {
		sorted = append(sorted, w)
	}
	slices.Sort(sorted)

	dictionary := make(map[string]int, len(sorted))
	for i, w := range sorted {
		dictionary[w] = i
	}
	return dictionary
}

// termFrequencyMatrix builds the words x sentences matrix of smoothed term
// frequencies. Columns of sentences without words stay zero.
func termFrequencyMatrix(words [][]string, dictionary map[string]int) *mat.Dense {
	m := mat.NewDense(len(dictionary), len(words), nil)
	for col, sentence := range words {
		for _, w := range sentence {
			row := dictionary[w]
			m.Set(row, col, m.At(row, col)+1)
		}
	}

	rows, cols := m.Dims()
	for col := 0; col < cols; col++ {
		maxFreq := mat.Max(m.ColView(col))
		if maxFreq == 0 {
			continue
		}
		for row := 0; row < rows; row++ {
			m.Set(row, col, smoothing+(1-smoothing)*m.At(row, col)/maxFreq)
		}
	}
	return m
}

// rank scores every sentence (matrix column) by the length of its vector
// in the space spanned by the strongest singular vectors.
func rank(m *mat.Dense) ([]float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		return nil, errors.New("singular value decomposition failed")
	}

	sigma := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	dimensions := max(MinDimensions, int(float64(len(sigma))*ReductionRatio))
	powered := make([]float64, len(sigma))
	for i, s := range sigma {
		if i < dimensions {
			powered[i] = s * s
		}
	}

	n, _ := v.Dims()
	ranks := make([]float64, n)
	for j := range n {
		var sum float64
		for i, p := range powered {
			x := v.At(j, i)
			sum += p * x * x
		}
		ranks[j] = math.Sqrt(sum)
	}
	return ranks, nil
}

// best returns the count highest-ranked sentences in document order.
// Equal ranks keep document order.
func best(sentences []string, ranks []float64, count int) []string {
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case ranks[a] > ranks[b]:
			return -1
		case ranks[a] < ranks[b]:
			return 1
		default:
			return 0
		}
	})

	if count < len(order) {
		order = order[:count]
	}
	slices.Sort(order)

	out := make([]string, len(order))
	for i, idx := range order {
		out[i] = sentences[idx]
	}
	return out
}
