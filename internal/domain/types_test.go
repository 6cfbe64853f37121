package domain

import (
	"reflect"
	"testing"
)

func TestEmbeddingSpaceEnforcesDimension(t *testing.T) {
	space, err := NewEmbeddingSpace(3)
	if err != nil {
		t.Fatalf("NewEmbeddingSpace error = %v", err)
	}
	if err := space.Add("ok", []float64{1, 2, 3}); err != nil {
		t.Fatalf("Add error = %v", err)
	}
	if err := space.Add("short", []float64{1, 2}); err == nil {
		t.Error("adding a short vector should error")
	}
	if _, err := NewEmbeddingSpace(0); err == nil {
		t.Error("zero dimension should error")
	}
}

func TestEmbeddingSpaceCopiesVectors(t *testing.T) {
	space, err := NewEmbeddingSpace(2)
	if err != nil {
		t.Fatal(err)
	}
	src := []float64{1, 2}
	if err := space.Add("w", src); err != nil {
		t.Fatal(err)
	}
	src[0] = 99
	got, ok := space.Vector("w")
	if !ok {
		t.Fatal("word missing")
	}
	if got[0] != 1 {
		t.Error("space shares memory with the caller's slice")
	}
}

func TestEmbeddingSpaceWordsSorted(t *testing.T) {
	space, err := NewEmbeddingSpace(1)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"zebra", "apple", "mango"} {
		if err := space.Add(w, []float64{1}); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"apple", "mango", "zebra"}
	if got := space.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
	if space.Len() != 3 || space.Dim() != 1 {
		t.Errorf("Len/Dim = %d/%d", space.Len(), space.Dim())
	}
	if !space.Has("mango") || space.Has("papaya") {
		t.Error("Has misreports membership")
	}
}
