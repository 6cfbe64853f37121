package assoc

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/chainsawriot/methodshub-weat/internal/domain"
)

// setVectors validates one word set against the space: the set must be
// non-empty and every word must be present. The returned vectors keep the
// order of words.
func setVectors(space *domain.EmbeddingSpace, name string, words []string) ([][]float64, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyWordSet, name)
	}
	out := make([][]float64, len(words))
	for i, w := range words {
		v, ok := space.Vector(w)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingWord, w)
		}
		out[i] = v
	}
	return out, nil
}

// MAC computes the Mean Average Cosine Similarity: the mean over s in S of
// the mean cosine similarity of s to every attribute word in A. Higher means
// more associated. The breakdown carries each target's mean cosine to A.
func MAC(space *domain.EmbeddingSpace, s, a []string) (*domain.QueryResult, error) {
	sv, err := setVectors(space, "S", s)
	if err != nil {
		return nil, err
	}
	av, err := setVectors(space, "A", a)
	if err != nil {
		return nil, err
	}
	breakdown := make([]domain.WordScore, len(s))
	var total float64
	for i, v := range sv {
		m, err := meanCosine(v, av)
		if err != nil {
			return nil, err
		}
		breakdown[i] = domain.WordScore{Word: s[i], Score: m}
		total += m
	}
	return &domain.QueryResult{
		Method:     MethodMAC.String(),
		EffectSize: total / float64(len(s)),
		Breakdown:  breakdown,
	}, nil
}

// RND computes the Relative Norm Distance: for each s, the Euclidean
// distance to the mean of A minus the distance to the mean of B, averaged
// over S. A positive effect size means S sits closer to B.
func RND(space *domain.EmbeddingSpace, s, a, b []string) (*domain.QueryResult, error) {
	return relativeNorm(space, MethodRND, s, a, b)
}

// RNSB computes the Relative Negative Sentiment Bias: the same norm-distance
// contrast as RND, with A and B read as the positive and negative sentiment
// poles. A positive effect size means S sits closer to the negative pole B.
func RNSB(space *domain.EmbeddingSpace, s, a, b []string) (*domain.QueryResult, error) {
	return relativeNorm(space, MethodRNSB, s, a, b)
}

func relativeNorm(space *domain.EmbeddingSpace, method Method, s, a, b []string) (*domain.QueryResult, error) {
	sv, err := setVectors(space, "S", s)
	if err != nil {
		return nil, err
	}
	av, err := setVectors(space, "A", a)
	if err != nil {
		return nil, err
	}
	bv, err := setVectors(space, "B", b)
	if err != nil {
		return nil, err
	}
	meanA, meanB := meanVector(av), meanVector(bv)
	breakdown := make([]domain.WordScore, len(s))
	var total float64
	for i, v := range sv {
		d := euclidean(v, meanA) - euclidean(v, meanB)
		breakdown[i] = domain.WordScore{Word: s[i], Score: d}
		total += d
	}
	return &domain.QueryResult{
		Method:     method.String(),
		EffectSize: total / float64(len(s)),
		Breakdown:  breakdown,
	}, nil
}

// SemAxis projects each s onto the semantic axis mean(A) - mean(B) via
// cosine similarity. Positive scores point at the A pole, negative at B.
func SemAxis(space *domain.EmbeddingSpace, s, a, b []string) (*domain.QueryResult, error) {
	sv, err := setVectors(space, "S", s)
	if err != nil {
		return nil, err
	}
	av, err := setVectors(space, "A", a)
	if err != nil {
		return nil, err
	}
	bv, err := setVectors(space, "B", b)
	if err != nil {
		return nil, err
	}
	meanA, meanB := meanVector(av), meanVector(bv)
	axis := make([]float64, len(meanA))
	for i := range axis {
		axis[i] = meanA[i] - meanB[i]
	}
	breakdown := make([]domain.WordScore, len(s))
	var total float64
	for i, v := range sv {
		c, err := Cosine(v, axis)
		if err != nil {
			return nil, err
		}
		breakdown[i] = domain.WordScore{Word: s[i], Score: c}
		total += c
	}
	return &domain.QueryResult{
		Method:     MethodSemAxis.String(),
		EffectSize: total / float64(len(s)),
		Breakdown:  breakdown,
	}, nil
}

// NAS computes the Normalized Association Score: for each s, the difference
// of its mean cosine to B and to A, divided by the standard deviation of its
// cosines to all of A and B together. A positive effect size means S is
// closer to B, the same convention as RND and RNSB. When a target's cosines
// show no spread its score is 0.
func NAS(space *domain.EmbeddingSpace, s, a, b []string) (*domain.QueryResult, error) {
	sv, err := setVectors(space, "S", s)
	if err != nil {
		return nil, err
	}
	av, err := setVectors(space, "A", a)
	if err != nil {
		return nil, err
	}
	bv, err := setVectors(space, "B", b)
	if err != nil {
		return nil, err
	}
	breakdown := make([]domain.WordScore, len(s))
	var total float64
	for i, v := range sv {
		all := make([]float64, 0, len(av)+len(bv))
		var sumA, sumB float64
		for _, u := range av {
			c, err := Cosine(v, u)
			if err != nil {
				return nil, err
			}
			sumA += c
			all = append(all, c)
		}
		for _, u := range bv {
			c, err := Cosine(v, u)
			if err != nil {
				return nil, err
			}
			sumB += c
			all = append(all, c)
		}
		diff := sumB/float64(len(bv)) - sumA/float64(len(av))
		sd := stat.StdDev(all, nil)
		score := 0.0
		if sd > 0 {
			score = diff / sd
		}
		breakdown[i] = domain.WordScore{Word: s[i], Score: score}
		total += score
	}
	return &domain.QueryResult{
		Method:     MethodNAS.String(),
		EffectSize: total / float64(len(s)),
		Breakdown:  breakdown,
	}, nil
}

// ECT computes the Embedding Coherence Test: the Spearman rank correlation
// between the cosines of each s to mean(A) and to mean(B). A correlation
// near 1 means both attribute poles rank the targets the same way. The
// breakdown carries each target's cosine difference to the two pole means.
func ECT(space *domain.EmbeddingSpace, s, a, b []string) (*domain.QueryResult, error) {
	sv, err := setVectors(space, "S", s)
	if err != nil {
		return nil, err
	}
	av, err := setVectors(space, "A", a)
	if err != nil {
		return nil, err
	}
	bv, err := setVectors(space, "B", b)
	if err != nil {
		return nil, err
	}
	meanA, meanB := meanVector(av), meanVector(bv)
	toA := make([]float64, len(sv))
	toB := make([]float64, len(sv))
	breakdown := make([]domain.WordScore, len(s))
	for i, v := range sv {
		ca, err := Cosine(v, meanA)
		if err != nil {
			return nil, err
		}
		cb, err := Cosine(v, meanB)
		if err != nil {
			return nil, err
		}
		toA[i], toB[i] = ca, cb
		breakdown[i] = domain.WordScore{Word: s[i], Score: ca - cb}
	}
	return &domain.QueryResult{
		Method:     MethodECT.String(),
		EffectSize: spearman(toA, toB),
		Breakdown:  breakdown,
	}, nil
}

// WEAT computes the Word Embedding Association Test effect size: the
// difference between the mean association of S and of T with the attribute
// poles, divided by the pooled standard deviation of the per-word
// associations across S and T. Positive means S is more associated with A.
// The breakdown carries the per-word association g(w) for S then T.
func WEAT(space *domain.EmbeddingSpace, s, t, a, b []string) (*domain.QueryResult, error) {
	sv, err := setVectors(space, "S", s)
	if err != nil {
		return nil, err
	}
	tv, err := setVectors(space, "T", t)
	if err != nil {
		return nil, err
	}
	av, err := setVectors(space, "A", a)
	if err != nil {
		return nil, err
	}
	bv, err := setVectors(space, "B", b)
	if err != nil {
		return nil, err
	}
	gs, err := associations(sv, av, bv)
	if err != nil {
		return nil, err
	}
	gt, err := associations(tv, av, bv)
	if err != nil {
		return nil, err
	}
	pooled := append(append([]float64{}, gs...), gt...)
	breakdown := make([]domain.WordScore, 0, len(s)+len(t))
	for i, g := range gs {
		breakdown = append(breakdown, domain.WordScore{Word: s[i], Score: g})
	}
	for i, g := range gt {
		breakdown = append(breakdown, domain.WordScore{Word: t[i], Score: g})
	}
	effect := (stat.Mean(gs, nil) - stat.Mean(gt, nil)) / stat.StdDev(pooled, nil)
	return &domain.QueryResult{
		Method:     MethodWEAT.String(),
		EffectSize: effect,
		Breakdown:  breakdown,
	}, nil
}

// associations returns g(w) = meanCos(w, A) - meanCos(w, B) for each target.
func associations(targets, av, bv [][]float64) ([]float64, error) {
	out := make([]float64, len(targets))
	for i, v := range targets {
		ca, err := meanCosine(v, av)
		if err != nil {
			return nil, err
		}
		cb, err := meanCosine(v, bv)
		if err != nil {
			return nil, err
		}
		out[i] = ca - cb
	}
	return out, nil
}

// spearman is the Pearson correlation of average ranks, i.e. Spearman's rho
// with tie correction.
func spearman(x, y []float64) float64 {
	return stat.Correlation(ranks(x), ranks(y), nil)
}

// ranks assigns 1-based ranks, averaging over ties.
func ranks(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })
	out := make([]float64, len(values))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = avg
		}
		i = j + 1
	}
	return out
}
