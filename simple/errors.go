// Package simple: sentinel error set.

package simple

import "errors"

var (
	// ErrBadDegree indicates a polynomial degree below one.
	ErrBadDegree = errors.New("simple: degree must be >= 1")

	// ErrBadHarmonics indicates a harmonic count below one.
	ErrBadHarmonics = errors.New("simple: harmonics must be >= 1")

	// ErrEmptyArg indicates an empty input-vector name.
	ErrEmptyArg = errors.New("simple: argument name must be non-empty")
)
