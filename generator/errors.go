// Package generator: sentinel error set.
// All fitting paths MUST return these sentinels (possibly wrapped with %w);
// tests check them via errors.Is. No panics on user input.

package generator

import "errors"

var (
	// ErrNilGenerator indicates a nil Generator was passed to a pipeline entry.
	ErrNilGenerator = errors.New("generator: nil generator")

	// ErrMissingInput indicates a required named input vector is absent.
	ErrMissingInput = errors.New("generator: missing input vector")

	// ErrInputLength indicates the named input vectors have inconsistent lengths.
	ErrInputLength = errors.New("generator: input vectors must share one length")

	// ErrEmptyInput indicates an input vector of zero length.
	ErrEmptyInput = errors.New("generator: input vectors must be non-empty")

	// ErrDataLength indicates len(data) does not match the design-matrix rows.
	ErrDataLength = errors.New("generator: data length must match design matrix rows")

	// ErrErrorsLength indicates len(errors) does not match len(data).
	ErrErrorsLength = errors.New("generator: errors length must match data length")

	// ErrMaskLength indicates len(mask) does not match len(data).
	ErrMaskLength = errors.New("generator: mask length must match data length")

	// ErrBadErrorValue indicates a non-positive per-sample uncertainty.
	ErrBadErrorValue = errors.New("generator: errors must be positive")

	// ErrAllMasked indicates the mask removed every sample.
	ErrAllMasked = errors.New("generator: mask excludes all samples")

	// ErrPriorWidth indicates prior mu/sigma length differs from Width().
	ErrPriorWidth = errors.New("generator: prior length must equal generator width")

	// ErrPriorSigma indicates a prior sigma that is not positive (or +Inf).
	ErrPriorSigma = errors.New("generator: prior sigma must be positive or +Inf")

	// ErrMeanLength indicates a coefficient vector whose length differs from Width().
	ErrMeanLength = errors.New("generator: mean length must equal generator width")

	// ErrNotFitted indicates an operation that requires fit state before it ran.
	ErrNotFitted = errors.New("generator: model has not been fitted")

	// ErrBadSampleCount indicates a non-positive number of requested samples.
	ErrBadSampleCount = errors.New("generator: sample count must be >= 1")
)
