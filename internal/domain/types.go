package domain

import (
	"fmt"
	"sort"
)

// EmbeddingSpace maps words to dense vectors of a fixed dimensionality.
// It is populated once by training or by loading a pretrained file and is
// read-only afterwards, so concurrent queries need no synchronization.
type EmbeddingSpace struct {
	dim     int
	vectors map[string][]float64
}

// NewEmbeddingSpace creates an empty space whose vectors all have dim entries.
func NewEmbeddingSpace(dim int) (*EmbeddingSpace, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("embedding dimension must be positive, got %d", dim)
	}
	return &EmbeddingSpace{dim: dim, vectors: make(map[string][]float64)}, nil
}

// Add inserts a vector for word. The vector is copied, so callers may reuse
// their slice. Adding a vector of the wrong length is an error; adding the
// same word twice overwrites the previous vector.
func (s *EmbeddingSpace) Add(word string, vec []float64) error {
	if len(vec) != s.dim {
		return fmt.Errorf("vector for %q has length %d, space dimension is %d", word, len(vec), s.dim)
	}
	cp := make([]float64, len(vec))
	copy(cp, vec)
	s.vectors[word] = cp
	return nil
}

// Vector returns the vector for word and whether the word is present.
// The returned slice must not be modified.
func (s *EmbeddingSpace) Vector(word string) ([]float64, bool) {
	v, ok := s.vectors[word]
	return v, ok
}

// Has reports whether word is present in the space.
func (s *EmbeddingSpace) Has(word string) bool {
	_, ok := s.vectors[word]
	return ok
}

// Dim returns the dimensionality shared by all vectors.
func (s *EmbeddingSpace) Dim() int { return s.dim }

// Len returns the number of words in the space.
func (s *EmbeddingSpace) Len() int { return len(s.vectors) }

// Words returns all words in the space in lexicographic order.
func (s *EmbeddingSpace) Words() []string {
	words := make([]string, 0, len(s.vectors))
	for w := range s.vectors {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// WordScore pairs a word with a metric-specific score.
type WordScore struct {
	Word  string
	Score float64
}

// QueryResult is the outcome of one association query: a scalar effect size
// and, for metrics where it is meaningful, a per-target-word breakdown in the
// order the target words were supplied.
type QueryResult struct {
	Method     string
	EffectSize float64
	Breakdown  []WordScore
}
