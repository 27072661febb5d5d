// SPDX-License-Identifier: MIT
// Package linalg: shared kernels over *Dense operands.
//
// Purpose:
//   - Declare the canonical kernels used across the fitting pipeline.
//   - Keep loop orders fixed for determinism; never mutate operands.
//   - Wrap sentinel errors with stable operation tags at this facade.

package linalg

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opMatVec      = "MatVec"
	opVecMat      = "VecMat"
	opHStack      = "HStack"
	opGram        = "Gram"
	opWeightedRHS = "WeightedRHS"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Loop order is i→k→j over flat row-major slices; zero A[i,k] entries are
// skipped, which pays off for sparse-ish design matrices.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (A.Cols != B.Rows).
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, opErrorf(opMul, ErrDimensionMismatch)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	var av float64
	var rowA, rowB, rowR int
	for i := 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k := 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// MatVec computes y = m · x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, opErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var acc, xv float64
	var base int
	for i := 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j := 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// VecMat computes y = xᵀ · m for a row vector x (length m.Rows()).
// This is the column-wise accumulation used by the normal-equations RHS.
//
// Complexity: Time O(r*c), Space O(c) for y.
func VecMat(x []float64, m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, opErrorf(opVecMat, err)
	}

	y := make([]float64, m.c)
	var xv float64
	var base int
	for i := 0; i < m.r; i++ {
		xv = x[i]
		if xv == 0 {
			continue
		}
		base = i * m.c
		for j := 0; j < m.c; j++ {
			y[j] += xv * m.data[base+j]
		}
	}

	return y, nil
}

// HStack concatenates matrices column-wise: result has the common row count
// and the sum of all column counts. This is the design-matrix composition
// primitive used by stacked generators.
//
// Errors:
//   - ErrInvalidDimensions (no operands), ErrNilMatrix (nil operand),
//     ErrDimensionMismatch (row counts differ).
//
// Complexity: Time O(r * Σc), Space O(r * Σc).
func HStack(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, opErrorf(opHStack, ErrInvalidDimensions)
	}
	for _, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return nil, opErrorf(opHStack, err)
		}
	}

	rows := ms[0].r
	cols := 0
	for _, m := range ms {
		if m.r != rows {
			return nil, opErrorf(opHStack, ErrDimensionMismatch)
		}
		cols += m.c
	}

	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, opErrorf(opHStack, err)
	}

	offset := 0
	for _, m := range ms {
		for i := 0; i < rows; i++ {
			copy(res.data[i*cols+offset:i*cols+offset+m.c], m.data[i*m.c:(i+1)*m.c])
		}
		offset += m.c
	}

	return res, nil
}

// Gram computes G = Xᵀ · diag(w) · X in a single pass over the rows of X.
// G is the (symmetric) left-hand side of the weighted normal equations;
// only one triangle is accumulated and then mirrored.
//
// Contract: x non-nil; len(w) == x.Rows(); w entries are weights (1/err²).
//
// Determinism: fixed row-major accumulation order.
// Complexity: Time O(r*c²), Space O(c²).
func Gram(x *Dense, w []float64) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, opErrorf(opGram, err)
	}
	if err := ValidateVecLen(w, x.r); err != nil {
		return nil, opErrorf(opGram, err)
	}

	g, err := NewDense(x.c, x.c)
	if err != nil {
		return nil, opErrorf(opGram, err)
	}

	var wi, xij float64
	var base int
	for i := 0; i < x.r; i++ {
		wi = w[i]
		if wi == 0 {
			continue // fully down-weighted row contributes nothing
		}
		base = i * x.c
		for j := 0; j < x.c; j++ {
			xij = wi * x.data[base+j]
			if xij == 0 {
				continue
			}
			for k := j; k < x.c; k++ { // upper triangle only
				g.data[j*x.c+k] += xij * x.data[base+k]
			}
		}
	}
	// Mirror the upper triangle into the lower one.
	for j := 0; j < x.c; j++ {
		for k := j + 1; k < x.c; k++ {
			g.data[k*x.c+j] = g.data[j*x.c+k]
		}
	}

	return g, nil
}

// WeightedRHS computes b = Xᵀ · (w ⊙ y): the right-hand side of the weighted
// normal equations, with w the per-sample weights (1/err²).
//
// Contract: x non-nil; len(y) == len(w) == x.Rows().
// Complexity: Time O(r*c), Space O(c).
func WeightedRHS(x *Dense, y, w []float64) ([]float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, opErrorf(opWeightedRHS, err)
	}
	if err := ValidateVecLen(y, x.r); err != nil {
		return nil, opErrorf(opWeightedRHS, err)
	}
	if err := ValidateVecLen(w, x.r); err != nil {
		return nil, opErrorf(opWeightedRHS, err)
	}

	b := make([]float64, x.c)
	var wy float64
	var base int
	for i := 0; i < x.r; i++ {
		wy = w[i] * y[i]
		if wy == 0 {
			continue
		}
		base = i * x.c
		for j := 0; j < x.c; j++ {
			b[j] += wy * x.data[base+j]
		}
	}

	return b, nil
}
