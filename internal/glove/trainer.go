package glove

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/chainsawriot/methodshub-weat/internal/domain"
)

// Defaults from the GloVe paper.
const (
	DefaultLearningRate = 0.05
	DefaultXMax         = 100
	DefaultAlpha        = 0.75
)

// Config holds the training hyperparameters. The random seed is explicit so
// two runs with the same corpus and config produce identical vectors.
type Config struct {
	WindowSize    int
	Rank          int
	LearningRate  float64
	MaxIterations int
	Tolerance     float64
	XMax          float64
	Alpha         float64
	Seed          int64
}

func (c Config) withDefaults() Config {
	if c.LearningRate == 0 {
		c.LearningRate = DefaultLearningRate
	}
	if c.XMax == 0 {
		c.XMax = DefaultXMax
	}
	if c.Alpha == 0 {
		c.Alpha = DefaultAlpha
	}
	return c
}

func (c Config) validate() error {
	switch {
	case c.WindowSize <= 0:
		return fmt.Errorf("window size must be positive, got %d", c.WindowSize)
	case c.Rank <= 0:
		return fmt.Errorf("rank must be positive, got %d", c.Rank)
	case c.LearningRate <= 0:
		return fmt.Errorf("learning rate must be positive, got %g", c.LearningRate)
	case c.MaxIterations <= 0:
		return fmt.Errorf("max iterations must be positive, got %d", c.MaxIterations)
	case c.Tolerance <= 0:
		return fmt.Errorf("convergence tolerance must be positive, got %g", c.Tolerance)
	}
	return nil
}

// Trainer factorizes a co-occurrence matrix into target and context vectors
// using the AdaGrad variant of stochastic gradient descent on the weighted
// least-squares GloVe objective.
type Trainer struct {
	cfg     Config
	cooccur *Cooccur
	entries []entry
	rng     *rand.Rand

	vectors    *mat.Dense
	ctxVectors *mat.Dense
	biases     []float64
	ctxBiases  []float64

	// AdaGrad accumulators, initialized to 1 so the first update uses the
	// plain learning rate.
	adaVectors    *mat.Dense
	adaCtxVectors *mat.Dense
	adaBiases     []float64
	adaCtxBiases  []float64
}

// NewTrainer initializes parameters from the configured seed.
func NewTrainer(cooccur *Cooccur, cfg Config) (*Trainer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cooccur.VocabSize() == 0 {
		return nil, errors.New("co-occurrence matrix has an empty vocabulary")
	}
	n, r := cooccur.VocabSize(), cfg.Rank
	t := &Trainer{
		cfg:           cfg,
		cooccur:       cooccur,
		entries:       cooccur.entries(),
		rng:           rand.New(rand.NewSource(cfg.Seed)),
		vectors:       mat.NewDense(n, r, nil),
		ctxVectors:    mat.NewDense(n, r, nil),
		biases:        make([]float64, n),
		ctxBiases:     make([]float64, n),
		adaVectors:    mat.NewDense(n, r, nil),
		adaCtxVectors: mat.NewDense(n, r, nil),
		adaBiases:     make([]float64, n),
		adaCtxBiases:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		for k := 0; k < r; k++ {
			t.vectors.Set(i, k, (t.rng.Float64()-0.5)/float64(r))
			t.ctxVectors.Set(i, k, (t.rng.Float64()-0.5)/float64(r))
			t.adaVectors.Set(i, k, 1)
			t.adaCtxVectors.Set(i, k, 1)
		}
		t.biases[i] = (t.rng.Float64() - 0.5) / float64(r)
		t.ctxBiases[i] = (t.rng.Float64() - 0.5) / float64(r)
		t.adaBiases[i] = 1
		t.adaCtxBiases[i] = 1
	}
	return t, nil
}

// Run performs up to MaxIterations passes over the non-zero co-occurrence
// entries and stops early once the relative cost improvement between passes
// drops below the configured tolerance. Entries are shuffled each pass with
// the trainer's own seeded source, so runs stay reproducible.
func (t *Trainer) Run() error {
	prev := math.Inf(1)
	for iter := 0; iter < t.cfg.MaxIterations; iter++ {
		t.rng.Shuffle(len(t.entries), func(i, j int) {
			t.entries[i], t.entries[j] = t.entries[j], t.entries[i]
		})
		cost := 0.0
		for _, e := range t.entries {
			cost += t.update(e)
		}
		if !math.IsInf(prev, 1) && prev > 0 {
			if math.Abs(prev-cost)/prev < t.cfg.Tolerance {
				return nil
			}
		}
		prev = cost
	}
	return nil
}

// update applies one AdaGrad step for a single co-occurrence cell and returns
// its contribution to the weighted least-squares cost.
func (t *Trainer) update(e entry) float64 {
	w := t.vectors.RawRowView(e.row)
	c := t.ctxVectors.RawRowView(e.col)
	adaW := t.adaVectors.RawRowView(e.row)
	adaC := t.adaCtxVectors.RawRowView(e.col)

	diff := t.biases[e.row] + t.ctxBiases[e.col] - math.Log(e.count)
	for k := range w {
		diff += w[k] * c[k]
	}
	f := t.weight(e.count)
	fdiff := f * diff
	cost := 0.5 * fdiff * diff

	lr := t.cfg.LearningRate
	for k := range w {
		gw := fdiff * c[k]
		gc := fdiff * w[k]
		w[k] -= lr * gw / math.Sqrt(adaW[k])
		c[k] -= lr * gc / math.Sqrt(adaC[k])
		adaW[k] += gw * gw
		adaC[k] += gc * gc
	}
	t.biases[e.row] -= lr * fdiff / math.Sqrt(t.adaBiases[e.row])
	t.ctxBiases[e.col] -= lr * fdiff / math.Sqrt(t.adaCtxBiases[e.col])
	t.adaBiases[e.row] += fdiff * fdiff
	t.adaCtxBiases[e.col] += fdiff * fdiff
	return cost
}

// weight is the GloVe cost weighting f(x) = min(1, (x/xmax)^alpha).
func (t *Trainer) weight(x float64) float64 {
	if x >= t.cfg.XMax {
		return 1
	}
	return math.Pow(x/t.cfg.XMax, t.cfg.Alpha)
}

// Space combines the target and context matrices by element-wise addition
// into one vector per vocabulary word. Addition (rather than averaging or
// concatenation) is the standard convention for this factorization family and
// is relied on by downstream cosine values.
func (t *Trainer) Space() (*domain.EmbeddingSpace, error) {
	n, r := t.vectors.Dims()
	var combined mat.Dense
	combined.Add(t.vectors, t.ctxVectors)

	space, err := domain.NewEmbeddingSpace(r)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := space.Add(t.cooccur.Word(i), combined.RawRowView(i)); err != nil {
			return nil, err
		}
	}
	return space, nil
}

// Train runs the full pipeline over tokenized documents: co-occurrence
// accumulation, factorization and the additive combine.
func Train(documents [][]string, cfg Config) (*domain.EmbeddingSpace, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cooccur := NewCooccur(cfg.WindowSize)
	cooccur.AddAll(documents)
	trainer, err := NewTrainer(cooccur, cfg)
	if err != nil {
		return nil, err
	}
	if err := trainer.Run(); err != nil {
		return nil, err
	}
	return trainer.Space()
}
