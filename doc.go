// Package lamatrix is your toolkit for building, fitting and reporting
// linear models expressed as design matrices — from simple polynomials to
// stacked astrophysical light-curve components.
//
// 🚀 What is lamatrix?
//
//	A deterministic, pure-Go modeling library that brings together:
//		• Dense kernels: row-major matrices, Gram products, Cholesky solves
//		• Generators: polynomial, sinusoid, spline, Gaussian and flare bases
//		• Composition: stack generators side by side or cross their columns
//		• Fitting: weighted least squares with per-coefficient Gaussian priors
//		• Reporting: LaTeX equations/tables and styled terminal summaries
//		• Persistence: YAML round-trips for model definitions and fit state
//
// ✨ Why choose lamatrix?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – fixed loop orders, seeded sampling, no global state
//   - Honest errors – sentinel errors everywhere, no panics on user input
//   - Extensible – implement generator.Generator and every fit, report and
//     serialization path works with your basis unchanged
//
// Under the hood, everything is organized under focused subpackages:
//
//	linalg/    — dense matrix storage and the shared regression kernels
//	generator/ — the Generator contract, priors, fitting, evaluation, sampling
//	simple/    — constant, polynomial and sinusoid bases
//	gauss/     — Gaussian profile bases (1-D, derivative, separable 2-D)
//	spline/    — B-spline basis over a configurable knot vector
//	astro/     — flare and detector-ramp profiles for light curves
//	combined/  — stacked and cross-term composition of generators
//	report/    — LaTeX and lipgloss-styled rendering of fits
//	serialize/ — YAML save/load for generators and fit results
//
// Quick sketch of a fit:
//
//	g, _ := simple.Polynomial("x", 2)
//	res, err := generator.Fit(g, generator.NewInputs("x", xs), data,
//	    generator.WithErrors(errs))
//
// Dive into the package docs for full examples and the fit-math contract.
//
//	go get github.com/christinahedges/lamatrix
package lamatrix
