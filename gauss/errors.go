// Package gauss: sentinel error set.

package gauss

import "errors"

var (
	// ErrBadStddev indicates a non-positive or non-finite standard deviation.
	ErrBadStddev = errors.New("gauss: stddev must be positive and finite")

	// ErrEmptyArg indicates an empty input-vector name.
	ErrEmptyArg = errors.New("gauss: argument name must be non-empty")

	// ErrSameArg indicates the two axes of a 2-D profile share one name.
	ErrSameArg = errors.New("gauss: 2-D axes must use distinct argument names")
)
