package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chainsawriot/methodshub-weat/internal/assoc"
	"github.com/chainsawriot/methodshub-weat/internal/domain"
	"github.com/chainsawriot/methodshub-weat/internal/glove"
	"github.com/chainsawriot/methodshub-weat/internal/vectorstore/memory"
)

func trainingConfig() glove.Config {
	return glove.Config{
		WindowSize:    3,
		Rank:          8,
		LearningRate:  0.05,
		MaxIterations: 20,
		Tolerance:     1e-8,
		Seed:          1,
	}
}

func writeCorpus(t *testing.T, docs ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(docs))
	for i, doc := range docs {
		paths[i] = filepath.Join(dir, "doc"+string(rune('a'+i))+".txt")
		if err := os.WriteFile(paths[i], []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func TestTrainSpaceAndQuery(t *testing.T) {
	paths := writeCorpus(t,
		"The king rules the castle. The queen rules the castle too.",
		"A cat sleeps on the mat. A dog sleeps on the rug.",
	)
	space, err := TrainSpace(paths, trainingConfig())
	if err != nil {
		t.Fatalf("TrainSpace error = %v", err)
	}
	svc, err := New(space, memory.NewStorage(), 10)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	res, err := svc.Query([]string{"king", "queen"}, nil, []string{"castle"}, nil, "guess")
	if err != nil {
		t.Fatalf("Query error = %v", err)
	}
	if res.Method != "mac" {
		t.Errorf("guessed method = %q, want mac", res.Method)
	}
	if len(res.Breakdown) != 2 {
		t.Errorf("breakdown entries = %d, want 2", len(res.Breakdown))
	}
}

func TestTrainSpaceRejectsEmptyCorpus(t *testing.T) {
	paths := writeCorpus(t, "42 17 99")
	if _, err := TrainSpace(paths, trainingConfig()); err == nil {
		t.Error("corpus without words should error")
	}
}

func TestTrainSpaceMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")
	if _, err := TrainSpace([]string{missing}, trainingConfig()); err == nil {
		t.Error("missing corpus file should error")
	}
}

func TestNeighbors(t *testing.T) {
	space, err := domain.NewEmbeddingSpace(2)
	if err != nil {
		t.Fatal(err)
	}
	for w, v := range map[string][]float64{
		"east":  {1, 0},
		"north": {0, 1},
		"west":  {-1, 0},
	} {
		if err := space.Add(w, v); err != nil {
			t.Fatal(err)
		}
	}
	svc, err := New(space, memory.NewStorage(), 10)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	got, err := svc.Neighbors("east", 2)
	if err != nil {
		t.Fatalf("Neighbors error = %v", err)
	}
	if len(got) != 2 || got[0].Word != "east" {
		t.Errorf("neighbours = %+v, want east first", got)
	}
	if _, err := svc.Neighbors("south", 2); !errors.Is(err, assoc.ErrMissingWord) {
		t.Errorf("Neighbors for absent word error = %v, want ErrMissingWord", err)
	}
}

func TestQueryRejectsUnknownMethod(t *testing.T) {
	space, err := domain.NewEmbeddingSpace(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := space.Add("x", []float64{1, 0}); err != nil {
		t.Fatal(err)
	}
	svc, err := New(space, memory.NewStorage(), 10)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if _, err := svc.Query([]string{"x"}, nil, []string{"x"}, nil, "bogus"); err == nil {
		t.Error("unknown method should error")
	}
}
