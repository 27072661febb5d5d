// SPDX-License-Identifier: MIT
// Package linalg: Cholesky factorization and SPD solves.
//
// The weighted normal equations produce a symmetric positive-definite system
// A·x = b with A = Xᵀ·diag(w)·X + diag(1/σ²). Cholesky is the canonical
// deterministic route: factor once, then reuse the factor for the posterior
// mean (CholSolve) and the posterior covariance (CholInverse).

package linalg

import "math"

const (
	opCholesky    = "Cholesky"
	opCholSolve   = "CholSolve"
	opCholInverse = "CholInverse"
)

// Cholesky computes the lower-triangular factor L with A = L·Lᵀ.
// Only the lower triangle of A is read; the strict upper triangle of the
// result is zero.
//
// Implementation:
//   - For each column j: diagonal pivot L[j,j] = sqrt(A[j,j] − Σ L[j,k]²),
//     then the sub-diagonal entries L[i,j] for i > j in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrNotPositiveDefinite when a pivot is ≤ 0 or non-finite.
//
// Determinism: fixed j→i→k loop order; no pivoting.
// Complexity: Time O(n³/3), Space O(n²).
func Cholesky(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opCholesky, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, opErrorf(opCholesky, err)
	}

	n := a.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, opErrorf(opCholesky, err)
	}

	var sum, pivot float64
	var baseJ, baseI int
	for j := 0; j < n; j++ {
		baseJ = j * n
		// Diagonal pivot.
		sum = 0
		for k := 0; k < j; k++ {
			sum += l.data[baseJ+k] * l.data[baseJ+k]
		}
		pivot = a.data[baseJ+j] - sum
		if pivot <= 0 || math.IsNaN(pivot) || math.IsInf(pivot, 0) {
			return nil, opErrorf(opCholesky, ErrNotPositiveDefinite)
		}
		l.data[baseJ+j] = math.Sqrt(pivot)

		// Sub-diagonal column entries.
		for i := j + 1; i < n; i++ {
			baseI = i * n
			sum = 0
			for k := 0; k < j; k++ {
				sum += l.data[baseI+k] * l.data[baseJ+k]
			}
			l.data[baseI+j] = (a.data[baseI+j] - sum) / l.data[baseJ+j]
		}
	}

	return l, nil
}

// CholSolve solves A·x = b given the lower factor L (A = L·Lᵀ) via one
// forward and one backward substitution.
//
// Contract: l is a lower-triangular n×n factor from Cholesky; len(b) == n.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - ErrNotPositiveDefinite when a zero diagonal entry is met (degenerate factor).
//
// Complexity: Time O(n²), Space O(n).
func CholSolve(l *Dense, b []float64) ([]float64, error) {
	if err := ValidateNotNil(l); err != nil {
		return nil, opErrorf(opCholSolve, err)
	}
	if err := ValidateSquare(l); err != nil {
		return nil, opErrorf(opCholSolve, err)
	}
	n := l.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, opErrorf(opCholSolve, err)
	}

	var sum, diag float64
	var base int
	// Forward substitution: L·y = b.
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		base = i * n
		sum = 0
		for k := 0; k < i; k++ {
			sum += l.data[base+k] * y[k]
		}
		diag = l.data[base+i]
		if diag == 0 {
			return nil, opErrorf(opCholSolve, ErrNotPositiveDefinite)
		}
		y[i] = (b[i] - sum) / diag
	}

	// Backward substitution: Lᵀ·x = y.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum = 0
		for k := i + 1; k < n; k++ {
			sum += l.data[k*n+i] * x[k]
		}
		diag = l.data[i*n+i]
		if diag == 0 {
			return nil, opErrorf(opCholSolve, ErrNotPositiveDefinite)
		}
		x[i] = (y[i] - sum) / diag
	}

	return x, nil
}

// CholInverse computes A⁻¹ from the lower factor L (A = L·Lᵀ) by solving
// against each canonical basis vector. The result is the posterior covariance
// when A is the normal-equations matrix.
//
// Errors: as CholSolve.
// Complexity: Time O(n³), Space O(n²).
func CholInverse(l *Dense) (*Dense, error) {
	if err := ValidateNotNil(l); err != nil {
		return nil, opErrorf(opCholInverse, err)
	}
	if err := ValidateSquare(l); err != nil {
		return nil, opErrorf(opCholInverse, err)
	}

	n := l.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, opErrorf(opCholInverse, err)
	}

	e := make([]float64, n)
	for col := 0; col < n; col++ {
		e[col] = 1
		x, err := CholSolve(l, e)
		if err != nil {
			return nil, opErrorf(opCholInverse, err)
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
		e[col] = 0
	}

	return inv, nil
}
