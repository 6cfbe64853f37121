package memory

import (
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/chainsawriot/methodshub-weat/internal/domain"
)

// Storage is an in-memory word-vector index using brute-force cosine
// similarity.
type Storage struct {
	mu        sync.RWMutex
	dimension int
	words     []string
	vectors   [][]float64
}

func NewStorage() *Storage { return &Storage{} }

func (s *Storage) Init(dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.words = nil
	s.vectors = nil
	return nil
}

func (s *Storage) Index(words []string, vectors [][]float64) error {
	if len(words) != len(vectors) {
		return errors.New("words and vectors length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vectors {
		if len(v) != s.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	s.words = append(s.words, words...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}

func (s *Storage) Neighbors(vector []float64, topK int) ([]domain.WordScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(vector) != s.dimension {
		return nil, errors.New("query vector dimension mismatch")
	}
	if topK <= 0 {
		topK = 10
	}
	scores := make([]domain.WordScore, len(s.vectors))
	for i := range s.vectors {
		scores[i] = domain.WordScore{Word: s.words[i], Score: cosine(s.vectors[i], vector)}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	if topK > len(scores) {
		topK = len(scores)
	}
	return scores[:topK], nil
}

func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = nil
	s.vectors = nil
	return nil
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	denom := math.Sqrt(na) * math.Sqrt(nb)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
