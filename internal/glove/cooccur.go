package glove

import (
	"sort"
)

// Cooccur is a vocabulary-indexed, symmetric sparse matrix of weighted
// co-occurrence counts. Cell (i, j) accumulates 1/distance for every pair of
// tokens i and j that appear within the window of each other, in either
// direction.
type Cooccur struct {
	window int
	vocab  map[string]int
	words  []string
	rows   []map[int]float64
}

// NewCooccur creates an empty co-occurrence accumulator. A window of w counts
// pairs up to w tokens apart; w must be positive.
func NewCooccur(window int) *Cooccur {
	if window <= 0 {
		window = 1
	}
	return &Cooccur{
		window: window,
		vocab:  make(map[string]int),
	}
}

// Add accumulates the co-occurrences of one tokenized document. Unseen tokens
// extend the vocabulary.
func (c *Cooccur) Add(tokens []string) {
	ids := make([]int, len(tokens))
	for i, tok := range tokens {
		ids[i] = c.id(tok)
	}
	for i := range ids {
		for j := i - 1; j >= 0 && j >= i-c.window; j-- {
			weight := 1 / float64(i-j)
			c.rows[ids[i]][ids[j]] += weight
			c.rows[ids[j]][ids[i]] += weight
		}
	}
}

// AddAll accumulates every document.
func (c *Cooccur) AddAll(documents [][]string) {
	for _, doc := range documents {
		c.Add(doc)
	}
}

func (c *Cooccur) id(token string) int {
	if id, ok := c.vocab[token]; ok {
		return id
	}
	id := len(c.words)
	c.vocab[token] = id
	c.words = append(c.words, token)
	c.rows = append(c.rows, make(map[int]float64))
	return id
}

// VocabSize returns the number of distinct tokens seen.
func (c *Cooccur) VocabSize() int { return len(c.words) }

// Word returns the token for a vocabulary index.
func (c *Cooccur) Word(id int) string { return c.words[id] }

// At returns the weighted count for the pair of tokens at indices i and j.
func (c *Cooccur) At(i, j int) float64 {
	if i < 0 || i >= len(c.rows) {
		return 0
	}
	return c.rows[i][j]
}

// AtWords returns the weighted count for a pair of tokens, 0 when either is
// out of vocabulary.
func (c *Cooccur) AtWords(a, b string) float64 {
	i, ok := c.vocab[a]
	if !ok {
		return 0
	}
	j, ok := c.vocab[b]
	if !ok {
		return 0
	}
	return c.rows[i][j]
}

// entry is one non-zero cell of the matrix.
type entry struct {
	row, col int
	count    float64
}

// entries returns all non-zero cells in a deterministic order so that a fixed
// seed yields a reproducible training run.
func (c *Cooccur) entries() []entry {
	var out []entry
	for i, row := range c.rows {
		for j, count := range row {
			out = append(out, entry{row: i, col: j, count: count})
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].row != out[b].row {
			return out[a].row < out[b].row
		}
		return out[a].col < out[b].col
	})
	return out
}
