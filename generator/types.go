// Package generator: the Generator contract and named input vectors.

package generator

import "github.com/christinahedges/lamatrix/linalg"

// Generator is the contract every basis implements. Implementations must be
// deterministic: the same Inputs always produce the same design matrix.
//
// Width, NVectors, ArgNames, Terms and Prior are all O(1) or O(Width) and
// must not depend on any Inputs.
type Generator interface {
	// DesignMatrix builds X from the named input vectors. The row count equals
	// the shared input length; the column count equals Width().
	DesignMatrix(in Inputs) (*linalg.Dense, error)

	// Width returns the number of columns (coefficients) of the design matrix.
	Width() int

	// NVectors returns how many distinct input vectors the basis consumes.
	NVectors() int

	// ArgNames returns the user-facing names of the required input vectors,
	// in a stable order. len(ArgNames()) == NVectors().
	ArgNames() []string

	// Terms returns one LaTeX fragment per design-matrix column, used to
	// assemble the model equation. len(Terms()) == Width().
	Terms() []string

	// Prior returns the per-coefficient Gaussian prior (width == Width()).
	Prior() Prior
}

// Inputs holds named input vectors, keyed by the arg names a Generator
// declares. All vectors must share one length; Len enforces that.
type Inputs map[string][]float64

// NewInputs builds an Inputs map from alternating name/vector pairs:
//
//	generator.NewInputs("x", xs, "y", ys)
//
// It is a convenience for call sites; a literal map works just as well.
func NewInputs(pairs ...any) Inputs {
	in := make(Inputs, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		name, okN := pairs[i].(string)
		vec, okV := pairs[i+1].([]float64)
		if okN && okV {
			in[name] = vec
		}
	}

	return in
}

// Get returns the named vector or ErrMissingInput.
func (in Inputs) Get(name string) ([]float64, error) {
	v, ok := in[name]
	if !ok {
		return nil, ErrMissingInput
	}

	return v, nil
}

// Len returns the shared vector length across the given names.
//
// Errors:
//   - ErrMissingInput when a name is absent.
//   - ErrEmptyInput when a vector has zero length.
//   - ErrInputLength when lengths disagree.
func (in Inputs) Len(names []string) (int, error) {
	n := -1
	for _, name := range names {
		v, ok := in[name]
		if !ok {
			return 0, ErrMissingInput
		}
		if len(v) == 0 {
			return 0, ErrEmptyInput
		}
		if n == -1 {
			n = len(v)
		} else if len(v) != n {
			return 0, ErrInputLength
		}
	}
	if n == -1 {
		// Zero required vectors (constant-like bases): callers must size rows
		// another way; report as missing so misuse fails loudly.
		return 0, ErrMissingInput
	}

	return n, nil
}

// FitResult holds the posterior of a fit: best-fit coefficients, their
// 1-sigma uncertainties, and the full covariance.
type FitResult struct {
	Mu    []float64     // posterior mean, length Width
	Sigma []float64     // sqrt of the covariance diagonal, length Width
	Cov   *linalg.Dense // posterior covariance, Width×Width
	Width int           // coefficient count, kept for cheap validation
}
