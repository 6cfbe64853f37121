package service

import (
	"fmt"
	"os"

	"github.com/chainsawriot/methodshub-weat/internal/assoc"
	"github.com/chainsawriot/methodshub-weat/internal/domain"
	"github.com/chainsawriot/methodshub-weat/internal/glove"
	"github.com/chainsawriot/methodshub-weat/internal/pretrained"
	"github.com/chainsawriot/methodshub-weat/internal/tokenizer"
	"github.com/chainsawriot/methodshub-weat/internal/vectorstore"
)

// AssociationService owns one immutable embedding space and answers bias
// queries and nearest-neighbour lookups against it. Queries are pure, so the
// service is safe for concurrent use once constructed.
type AssociationService struct {
	space *domain.EmbeddingSpace
	store vectorstore.Storage
	topK  int
}

// New wires the service and indexes the space into the store for
// nearest-neighbour search.
func New(space *domain.EmbeddingSpace, store vectorstore.Storage, topK int) (*AssociationService, error) {
	if topK <= 0 {
		topK = 10
	}
	// Drop any stale index before creating the collection, since Clear on
	// the Qdrant store removes the collection itself.
	if err := store.Clear(); err != nil {
		return nil, fmt.Errorf("clear store: %w", err)
	}
	if err := store.Init(space.Dim()); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	words := space.Words()
	vectors := make([][]float64, len(words))
	for i, w := range words {
		v, _ := space.Vector(w)
		vectors[i] = v
	}
	if err := store.Index(words, vectors); err != nil {
		return nil, fmt.Errorf("index store: %w", err)
	}
	return &AssociationService{space: space, store: store, topK: topK}, nil
}

// TrainSpace tokenizes the given corpus files and trains an embedding space.
func TrainSpace(paths []string, cfg glove.Config) (*domain.EmbeddingSpace, error) {
	tok := tokenizer.New()
	var docs [][]string
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		tokens := tok.Tokenize(string(data))
		if len(tokens) > 0 {
			docs = append(docs, tokens)
		}
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no usable text in corpus files")
	}
	return glove.Train(docs, cfg)
}

// LoadSpace parses a pretrained embedding file.
func LoadSpace(path string) (*domain.EmbeddingSpace, error) {
	return pretrained.LoadFile(path)
}

// Query runs one association query. Word sets default to empty and the
// method name defaults to guess.
func (s *AssociationService) Query(sWords, tWords, aWords, bWords []string, method string) (*domain.QueryResult, error) {
	m, err := assoc.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return assoc.Query(s.space, sWords, tWords, aWords, bWords, m)
}

// WEATPValue runs the permutation test for a WEAT query.
func (s *AssociationService) WEATPValue(sWords, tWords, aWords, bWords []string, permutations int, seed int64) (float64, error) {
	return assoc.WEATPValue(s.space, sWords, tWords, aWords, bWords, permutations, seed)
}

// Neighbors returns the words nearest to the given word in the space.
// The word itself is included with similarity 1 when present in the index.
func (s *AssociationService) Neighbors(word string, topK int) ([]domain.WordScore, error) {
	vec, ok := s.space.Vector(word)
	if !ok {
		return nil, fmt.Errorf("%w: %q", assoc.ErrMissingWord, word)
	}
	if topK <= 0 {
		topK = s.topK
	}
	return s.store.Neighbors(vec, topK)
}

// Space exposes the read-only embedding space.
func (s *AssociationService) Space() *domain.EmbeddingSpace { return s.space }
