package tokenizer

import (
	"regexp"
	"strings"
)

// Tokenizer splits raw text into lowercase word tokens. Unlike a retrieval
// tokenizer it keeps stopwords: window-based co-occurrence counting needs
// every token to preserve distances.
type Tokenizer struct {
	pattern *regexp.Regexp
}

// New creates a tokenizer matching unicode letter runs, allowing internal
// apostrophes ("don't", "l'amour").
func New() *Tokenizer {
	return &Tokenizer{
		pattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
	}
}

// Tokenize returns the lowercase word tokens of text in order.
func (t *Tokenizer) Tokenize(text string) []string {
	return t.pattern.FindAllString(strings.ToLower(text), -1)
}

// TokenizeAll tokenizes each document independently.
func (t *Tokenizer) TokenizeAll(documents []string) [][]string {
	out := make([][]string, len(documents))
	for i, doc := range documents {
		out[i] = t.Tokenize(doc)
	}
	return out
}
