package assoc

import (
	"fmt"

	"github.com/chainsawriot/methodshub-weat/internal/domain"
)

// Query validates the word sets and routes to the metric selected by method.
// MethodGuess resolves via Infer from which sets are non-empty. Queries are
// pure: the space and sets are never mutated, and on error no partial result
// is returned.
func Query(space *domain.EmbeddingSpace, s, t, a, b []string, method Method) (*domain.QueryResult, error) {
	if space == nil {
		return nil, fmt.Errorf("nil embedding space")
	}
	if method == MethodGuess {
		inferred, err := Infer(len(s), len(t), len(a), len(b))
		if err != nil {
			return nil, err
		}
		method = inferred
	}
	switch method {
	case MethodMAC:
		return MAC(space, s, a)
	case MethodRND:
		return RND(space, s, a, b)
	case MethodRNSB:
		return RNSB(space, s, a, b)
	case MethodSemAxis:
		return SemAxis(space, s, a, b)
	case MethodNAS:
		return NAS(space, s, a, b)
	case MethodECT:
		return ECT(space, s, a, b)
	case MethodWEAT:
		return WEAT(space, s, t, a, b)
	}
	return nil, fmt.Errorf("unknown method %v", method)
}
