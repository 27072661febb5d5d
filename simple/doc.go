// Package simple provides the elementary bases: constant, polynomial and
// sinusoid generators over a single named input vector.
//
// The simple package provides:
//
//   - Constant — a single all-ones column (offsets, mean levels).
//   - Polynomial — columns x⁰..x^degree for trends and smooth backgrounds.
//   - Sinusoid — sin/cos harmonic pairs for periodic signals.
//
// All three implement generator.Generator, so Fit, Evaluate, Sample and the
// report/serialize packages work with them unchanged.
package simple
