package memory

import (
	"testing"
)

func TestNeighborsOrdering(t *testing.T) {
	s := NewStorage()
	if err := s.Init(2); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	words := []string{"east", "northeast", "north", "west"}
	vectors := [][]float64{
		{1, 0},
		{1, 1},
		{0, 1},
		{-1, 0},
	}
	if err := s.Index(words, vectors); err != nil {
		t.Fatalf("Index error = %v", err)
	}
	got, err := s.Neighbors([]float64{1, 0}, 3)
	if err != nil {
		t.Fatalf("Neighbors error = %v", err)
	}
	want := []string{"east", "northeast", "north"}
	if len(got) != len(want) {
		t.Fatalf("got %d neighbours, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Word != w {
			t.Errorf("neighbour %d = %q, want %q", i, got[i].Word, w)
		}
	}
	if got[0].Score <= got[1].Score || got[1].Score <= got[2].Score {
		t.Errorf("scores not descending: %+v", got)
	}
}

func TestNeighborsClampsTopK(t *testing.T) {
	s := NewStorage()
	if err := s.Init(2); err != nil {
		t.Fatal(err)
	}
	if err := s.Index([]string{"only"}, [][]float64{{1, 1}}); err != nil {
		t.Fatal(err)
	}
	got, err := s.Neighbors([]float64{1, 0}, 10)
	if err != nil {
		t.Fatalf("Neighbors error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d neighbours, want 1", len(got))
	}
}

func TestIndexValidation(t *testing.T) {
	s := NewStorage()
	if err := s.Init(0); err == nil {
		t.Error("Init(0) should error")
	}
	if err := s.Init(3); err != nil {
		t.Fatal(err)
	}
	if err := s.Index([]string{"a"}, nil); err == nil {
		t.Error("length mismatch should error")
	}
	if err := s.Index([]string{"a"}, [][]float64{{1, 2}}); err == nil {
		t.Error("dimension mismatch should error")
	}
}

func TestNeighborsDimensionMismatch(t *testing.T) {
	s := NewStorage()
	if err := s.Init(2); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Neighbors([]float64{1, 2, 3}, 5); err == nil {
		t.Error("query dimension mismatch should error")
	}
}

func TestClear(t *testing.T) {
	s := NewStorage()
	if err := s.Init(2); err != nil {
		t.Fatal(err)
	}
	if err := s.Index([]string{"a"}, [][]float64{{1, 0}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	got, err := s.Neighbors([]float64{1, 0}, 5)
	if err != nil {
		t.Fatalf("Neighbors error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("store not empty after Clear: %+v", got)
	}
}
