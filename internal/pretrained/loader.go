package pretrained

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chainsawriot/methodshub-weat/internal/domain"
)

// Load parses pretrained embeddings in the whitespace-delimited text format
// where each line is "word f1 f2 ... fR". The dimensionality is taken from
// the first data line; every later line must match it. Blank lines are
// skipped.
func Load(r io.Reader) (*domain.EmbeddingSpace, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var space *domain.EmbeddingSpace
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected a word followed by vector components", line)
		}
		word := fields[0]
		vec := make([]float64, len(fields)-1)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: component %d of %q: %w", line, i+1, word, err)
			}
			vec[i] = v
		}
		if space == nil {
			s, err := domain.NewEmbeddingSpace(len(vec))
			if err != nil {
				return nil, err
			}
			space = s
		}
		if err := space.Add(word, vec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if space == nil || space.Len() == 0 {
		return nil, fmt.Errorf("no embedding vectors found")
	}
	return space, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*domain.EmbeddingSpace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	space, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return space, nil
}
