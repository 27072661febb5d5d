// Package linalg provides dense matrix storage and the small set of
// linear-algebra kernels the fitting pipeline shares.
//
// The linalg package provides:
//
//   - Dense, a row-major float64 matrix with safe (error-returning) accessors.
//   - General kernels: Mul, Transpose, MatVec, VecMat, HStack.
//   - Regression kernels: Gram (Xᵀ·diag(w)·X) and WeightedRHS (Xᵀ·(w⊙y)),
//     computed in single passes for the weighted normal equations.
//   - SPD routines: Cholesky factorization, CholSolve and CholInverse, which
//     back the posterior mean and covariance of every fit.
//
// All kernels use fixed loop orders, never mutate their inputs, and return
// sentinel errors (see errors.go) instead of panicking.
package linalg
