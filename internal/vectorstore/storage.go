package vectorstore

import "github.com/chainsawriot/methodshub-weat/internal/domain"

// Storage indexes word vectors and supports nearest-neighbour search.
type Storage interface {
	Init(dimension int) error
	Index(words []string, vectors [][]float64) error
	Neighbors(vector []float64, topK int) ([]domain.WordScore, error)
	Clear() error
}
