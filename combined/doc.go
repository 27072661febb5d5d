// Package combined composes generators into richer bases.
//
// The combined package provides:
//
//   - Stack — horizontal concatenation: the design matrices sit side by side,
//     widths and priors concatenate, and each component keeps its own
//     coefficients. This is the "model A + model B" operator.
//   - Crossterm — column-wise products of two bases: every column of A is
//     multiplied with every column of B. Use it for interactions such as a
//     position-dependent polynomial background.
//
// Both results implement generator.Generator, so they fit, evaluate, sample,
// report and serialize exactly like any elementary basis — including being
// stacked or crossed again.
package combined
