// Package generator defines the Generator contract and the fitting machinery
// shared by every basis in lamatrix.
//
// A Generator turns named input vectors (time, column, row, ...) into a design
// matrix X with a fixed Width (number of columns/coefficients). Fitting finds
// the coefficient vector w that best explains observed data under a weighted
// least-squares objective with independent Gaussian priors on each
// coefficient:
//
//	σ_w⁻¹ = Xᵀ·diag(1/err²)·X + diag(1/σ_prior²)
//	B     = Xᵀ·(data/err²)   + μ_prior/σ_prior²
//	μ_fit = σ_w · B,   Cov = σ_w,   σ_fit = sqrt(diag(Cov))
//
// A prior σ of +Inf means "uninformative": that coefficient contributes
// nothing to either term above.
//
// The package provides:
//
//   - Generator, the interface every basis implements.
//   - Inputs, named input vectors with length validation.
//   - Prior, per-coefficient Gaussian priors with scalar/slice broadcasting.
//   - Fit / Evaluate / Sample, the shared pipeline over any Generator.
//   - Model, a convenience binding of a Generator to its fit state.
//   - FormatMeasurement, significant-figure pairing for reports.
//
// Determinism: fits are pure; sampling uses an explicit seed (seed==0 maps to
// a fixed default), so the same call always produces the same draws.
package generator
