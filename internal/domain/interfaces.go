package domain

// VectorStore indexes word vectors and supports nearest-neighbour search.
type VectorStore interface {
	Init(dimension int) error
	Index(words []string, vectors [][]float64) error
	Neighbors(vector []float64, topK int) ([]WordScore, error)
	Clear() error
}
