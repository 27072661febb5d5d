// Package combined: sentinel error set.

package combined

import "errors"

var (
	// ErrTooFew indicates fewer than two generators were given to Stack.
	ErrTooFew = errors.New("combined: need at least two generators")

	// ErrNilComponent indicates a nil component generator.
	ErrNilComponent = errors.New("combined: nil component generator")
)
