package assoc

import (
	"errors"
	"math"
	"testing"
)

func TestCosineSymmetric(t *testing.T) {
	pairs := [][2][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{-1, 0.5, 2}, {3, -2, 0}},
		{{0.1, 0.2}, {0.9, -0.4}},
	}
	for _, p := range pairs {
		ab, err := Cosine(p[0], p[1])
		if err != nil {
			t.Fatalf("Cosine(a,b) error = %v", err)
		}
		ba, err := Cosine(p[1], p[0])
		if err != nil {
			t.Fatalf("Cosine(b,a) error = %v", err)
		}
		if ab != ba {
			t.Errorf("Cosine not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestCosineSelf(t *testing.T) {
	v := []float64{0.3, -1.2, 4}
	got, err := Cosine(v, v)
	if err != nil {
		t.Fatalf("Cosine error = %v", err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("Cosine(v,v) = %v, want 1", got)
	}
}

func TestCosineOrthogonalOneHots(t *testing.T) {
	a := []float64{0, 1, 0, 0}
	b := []float64{0, 0, 0, 1}
	got, err := Cosine(a, b)
	if err != nil {
		t.Fatalf("Cosine error = %v", err)
	}
	if got != 0 {
		t.Errorf("Cosine of distinct one-hots = %v, want exactly 0", got)
	}
}

func TestCosineToyDocumentVectors(t *testing.T) {
	// Term-count vectors from the walkthrough's toy corpus: dot product 4,
	// norms 2 and 3, so the cosine is 4/6.
	doc1 := []float64{2, 0, 0}
	doc2 := []float64{2, 2, 1}
	got, err := Cosine(doc1, doc2)
	if err != nil {
		t.Fatalf("Cosine error = %v", err)
	}
	if math.Abs(got-4.0/6.0) > 1e-12 {
		t.Errorf("Cosine = %v, want %v", got, 4.0/6.0)
	}
}

func TestCosineZeroNormIsNaN(t *testing.T) {
	got, err := Cosine([]float64{0, 0}, []float64{1, 2})
	if err != nil {
		t.Fatalf("Cosine error = %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Cosine with zero-norm vector = %v, want NaN", got)
	}
}

func TestCosineDimensionMismatch(t *testing.T) {
	_, err := Cosine([]float64{1, 2}, []float64{1, 2, 3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Cosine error = %v, want ErrDimensionMismatch", err)
	}
}
