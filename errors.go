package glidescore

import "errors"

// Sentinel errors returned by the core. A fix count below 2 is not one
// of these: it is a well-formed degenerate input and resolves to an
// empty path, never an error.
var (
	// ErrMismatchedInputLengths is returned when lat/lon/alt differ in length.
	ErrMismatchedInputLengths = errors.New("glidescore: lat/lon/alt lengths differ")
	// ErrTooManyFixes is returned when N exceeds Config.MaxFixes.
	ErrTooManyFixes = errors.New("glidescore: fix count exceeds configured MaxFixes")
)

// InvariantError reports a violated internal invariant: a reconstructed
// path that fails its altitude predicate, or one that starts on a
// forbidden index. Either indicates a bug in the DP, not a bad input, so
// it is always fatal.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return "glidescore: internal invariant violated: " + e.Detail
}
