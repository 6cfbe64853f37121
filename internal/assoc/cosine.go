package assoc

import (
	"fmt"
	"math"
)

// Cosine returns the cosine of the angle between two equal-length vectors:
// their dot product divided by the product of their Euclidean norms.
//
// When either vector has zero norm the result is NaN; that is documented
// behaviour, not an error. Vectors of unequal length yield
// ErrDimensionMismatch.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}

// meanVector returns the element-wise mean of a non-empty set of
// equal-length vectors.
func meanVector(vectors [][]float64) []float64 {
	mean := make([]float64, len(vectors[0]))
	for _, v := range vectors {
		for i := range mean {
			mean[i] += v[i]
		}
	}
	for i := range mean {
		mean[i] /= float64(len(vectors))
	}
	return mean
}

// euclidean returns the L2 distance between two equal-length vectors.
func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// meanCosine averages the cosine similarity of v against each vector in set.
func meanCosine(v []float64, set [][]float64) (float64, error) {
	var sum float64
	for _, u := range set {
		c, err := Cosine(v, u)
		if err != nil {
			return 0, err
		}
		sum += c
	}
	return sum / float64(len(set)), nil
}
