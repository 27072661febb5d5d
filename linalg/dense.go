// SPDX-License-Identifier: MIT

// Package linalg - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(c).

package linalg

import (
	"fmt"
	"strconv"
	"strings"
)

// method tags used in error wrappers.
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxSetRow = "SetRow"
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
// Keeps stable, human-friendly messages while preserving the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0 after construction)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Returns ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity: O(r*c) for the zero-filled buffer.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from a non-empty slice of equally sized rows.
// The input is copied; later mutation of rows does not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when any row length differs from the first.
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrDimensionMismatch
		}
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, nil
}

// NewColumn builds an n×1 Dense from a vector (copied).
// Returns ErrInvalidDimensions for an empty vector.
func NewColumn(x []float64) (*Dense, error) {
	if len(x) == 0 {
		return nil, ErrInvalidDimensions
	}
	d := &Dense{r: len(x), c: 1, data: make([]float64, len(x))}
	copy(d.data, x)

	return d, nil
}

// Rows returns the number of rows. O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. O(1).
func (d *Dense) Cols() int { return d.c }

// At retrieves the element at position (i, j).
// Returns ErrOutOfRange when indices are invalid. O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set assigns the value v at position (i, j).
// Returns ErrOutOfRange when indices are invalid. O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Row copies row i into a fresh slice.
// Returns ErrOutOfRange when i is invalid. O(c).
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, d.c)
	copy(out, d.data[i*d.c:(i+1)*d.c])

	return out, nil
}

// SetRow overwrites row i with the given values.
// Errors: ErrOutOfRange (bad index), ErrDimensionMismatch (len(vals) != Cols).
// O(c).
func (d *Dense) SetRow(i int, vals []float64) error {
	if i < 0 || i >= d.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(vals) != d.c {
		return denseErrorf(ctxSetRow, i, 0, ErrDimensionMismatch)
	}
	copy(d.data[i*d.c:(i+1)*d.c], vals)

	return nil
}

// Col copies column j into a fresh slice.
// Returns ErrOutOfRange when j is invalid. O(r).
func (d *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= d.c {
		return nil, denseErrorf(ctxRow, 0, j, ErrOutOfRange)
	}
	out := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		out[i] = d.data[i*d.c+j]
	}

	return out, nil
}

// Diagonal copies the main diagonal into a fresh slice of length min(r, c).
// O(min(r,c)).
func (d *Dense) Diagonal() []float64 {
	n := d.r
	if d.c < n {
		n = d.c
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = d.data[i*d.c+i]
	}

	return out
}

// Clone returns a deep copy of the matrix. O(r*c).
func (d *Dense) Clone() *Dense {
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	copy(out.data, d.data)

	return out
}

// String renders the matrix as bracketed rows, one per line.
// Intended for debugging and test failure messages, not machine parsing.
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteString("[")
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(d.data[i*d.c+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
