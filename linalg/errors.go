// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the linalg
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package linalg

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or a vector whose length differs from
	// the expected matrix dimension.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrNotPositiveDefinite is returned by Cholesky when a non-positive pivot
	// is encountered; the input is not symmetric positive definite within
	// floating-point precision.
	ErrNotPositiveDefinite = errors.New("linalg: matrix is not positive definite")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (data ingestion under the validation policy).
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")
)
