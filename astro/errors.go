// Package astro: sentinel error set.

package astro

import "errors"

var (
	// ErrBadTimescale indicates a non-positive or non-finite rise/decay/tau.
	ErrBadTimescale = errors.New("astro: timescales must be positive and finite")

	// ErrEmptyArg indicates an empty input-vector name.
	ErrEmptyArg = errors.New("astro: argument name must be non-empty")
)
