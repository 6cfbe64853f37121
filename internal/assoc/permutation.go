package assoc

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/chainsawriot/methodshub-weat/internal/domain"
)

// WEATPValue estimates a one-sided permutation p-value for the WEAT test
// statistic mean g(S) - mean g(T). The pooled targets are randomly
// re-partitioned into sets of the original sizes; the p-value is the share
// of permutations whose statistic is at least the observed one, with the
// +1 smoothing that keeps it strictly positive. The seed is explicit so
// results are reproducible.
func WEATPValue(space *domain.EmbeddingSpace, s, t, a, b []string, permutations int, seed int64) (float64, error) {
	if permutations <= 0 {
		return 0, fmt.Errorf("permutations must be positive, got %d", permutations)
	}
	sv, err := setVectors(space, "S", s)
	if err != nil {
		return 0, err
	}
	tv, err := setVectors(space, "T", t)
	if err != nil {
		return 0, err
	}
	av, err := setVectors(space, "A", a)
	if err != nil {
		return 0, err
	}
	bv, err := setVectors(space, "B", b)
	if err != nil {
		return 0, err
	}
	gs, err := associations(sv, av, bv)
	if err != nil {
		return 0, err
	}
	gt, err := associations(tv, av, bv)
	if err != nil {
		return 0, err
	}
	observed := stat.Mean(gs, nil) - stat.Mean(gt, nil)

	pool := append(append([]float64{}, gs...), gt...)
	rng := rand.New(rand.NewSource(seed))
	extreme := 0
	for i := 0; i < permutations; i++ {
		rng.Shuffle(len(pool), func(x, y int) { pool[x], pool[y] = pool[y], pool[x] })
		perm := stat.Mean(pool[:len(gs)], nil) - stat.Mean(pool[len(gs):], nil)
		if perm >= observed {
			extreme++
		}
	}
	return float64(extreme+1) / float64(permutations+1), nil
}
