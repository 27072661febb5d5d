// Package spline provides a clamped B-spline basis over a configurable
// breakpoint vector.
//
// The basis columns are the Cox–de Boor basis functions of the requested
// degree, clamped at both ends (the first and last breakpoints are repeated
// degree times), so the basis partitions unity on the breakpoint domain.
// Samples outside the domain evaluate to all-zero rows: a spline component
// contributes nothing where it is undefined instead of extrapolating.
package spline
