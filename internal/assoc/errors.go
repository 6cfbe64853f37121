package assoc

import "errors"

// Sentinel errors surfaced by queries. Callers match them with errors.Is.
var (
	// ErrMissingWord reports a queried word that is absent from the
	// embedding space. Absent words are never silently skipped.
	ErrMissingWord = errors.New("word not found in embedding space")

	// ErrEmptyWordSet reports an empty word set that the resolved method
	// requires.
	ErrEmptyWordSet = errors.New("required word set is empty")

	// ErrAmbiguousMethod reports that guess mode could not resolve a unique
	// method from the supplied non-empty sets.
	ErrAmbiguousMethod = errors.New("cannot infer a unique method from the provided word sets")

	// ErrDimensionMismatch reports vectors of unequal length. It cannot
	// occur for vectors taken from one embedding space, but is checked
	// defensively.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)
