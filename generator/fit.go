// Package generator: the shared fit/evaluate pipeline.
//
// Fit solves the weighted normal equations with Gaussian priors:
//
//	(Xᵀ·diag(1/err²)·X + diag(1/σ²)) · μ = Xᵀ·(data/err²) + μ_prior/σ²
//
// Masked-out samples are removed by zeroing their weight, which keeps the
// design matrix intact and the kernels single-pass. A prior σ of +Inf
// contributes zero to both sides.

package generator

import (
	"fmt"
	"math"

	"github.com/christinahedges/lamatrix/linalg"
)

// Operation tags for unified error wrapping.
const (
	opFit      = "Fit"
	opEvaluate = "Evaluate"
	opSample   = "Sample"
)

// genErrorf wraps err with an operation tag, preserving sentinels via %w.
// Use only when err != nil.
func genErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Fit builds the design matrix for g over in and solves for the posterior
// coefficient distribution of data.
//
// Inputs:
//   - g: the basis to fit (non-nil).
//   - in: named input vectors; must satisfy g.ArgNames().
//   - data: observed samples; length must equal the design-matrix row count.
//   - opts: WithErrors, WithMask, WithPrior, WithNoValidateFinite.
//
// Defaults: errors = ones (unweighted), mask = all true, prior = g.Prior().
//
// Errors:
//   - ErrNilGenerator, ErrDataLength, ErrErrorsLength, ErrBadErrorValue,
//     ErrMaskLength, ErrAllMasked, ErrPriorWidth, ErrPriorSigma.
//   - linalg.ErrNaNInf under the finite-validation policy.
//   - linalg.ErrNotPositiveDefinite when the system is degenerate (e.g. a
//     column of zeros with an uninformative prior).
//
// Determinism: pure function of its arguments; fixed kernel loop orders.
// Complexity: Time O(n·w²) + O(w³), Space O(w²) beyond the design matrix.
func Fit(g Generator, in Inputs, data []float64, opts ...FitOption) (*FitResult, error) {
	if g == nil {
		return nil, genErrorf(opFit, ErrNilGenerator)
	}

	x, err := g.DesignMatrix(in)
	if err != nil {
		return nil, genErrorf(opFit, err)
	}
	n, width := x.Rows(), x.Cols()
	if len(data) != n {
		return nil, genErrorf(opFit, ErrDataLength)
	}

	o := gatherFitOptions(opts...)

	// Resolve per-sample uncertainties.
	errs := o.errs
	if errs == nil {
		errs = make([]float64, n)
		for i := range errs {
			errs[i] = 1
		}
	} else if len(errs) != n {
		return nil, genErrorf(opFit, ErrErrorsLength)
	}

	// Resolve the mask.
	mask := o.mask
	if mask != nil && len(mask) != n {
		return nil, genErrorf(opFit, ErrMaskLength)
	}

	// Resolve the prior.
	prior := g.Prior()
	if o.prior != nil {
		prior = *o.prior
	}
	if err = prior.Validate(width); err != nil {
		return nil, genErrorf(opFit, err)
	}

	// Fold mask and uncertainties into per-sample weights 1/err²; masked-out
	// rows get weight zero and a zeroed data copy so the kernels skip them.
	weights := make([]float64, n)
	y := make([]float64, n)
	kept := 0
	for i := 0; i < n; i++ {
		if mask != nil && !mask[i] {
			continue // weight stays zero, y stays zero
		}
		if o.validateFinite {
			if math.IsNaN(data[i]) || math.IsInf(data[i], 0) ||
				math.IsNaN(errs[i]) || math.IsInf(errs[i], 0) {
				return nil, genErrorf(opFit, linalg.ErrNaNInf)
			}
		}
		if !(errs[i] > 0) {
			return nil, genErrorf(opFit, ErrBadErrorValue)
		}
		weights[i] = 1 / (errs[i] * errs[i])
		y[i] = data[i]
		kept++
	}
	if kept == 0 {
		return nil, genErrorf(opFit, ErrAllMasked)
	}

	// Left-hand side: Gram matrix plus the prior precision on the diagonal.
	a, err := linalg.Gram(x, weights)
	if err != nil {
		return nil, genErrorf(opFit, err)
	}
	// Right-hand side: weighted projection plus the prior pull.
	b, err := linalg.WeightedRHS(x, y, weights)
	if err != nil {
		return nil, genErrorf(opFit, err)
	}
	var av, prec float64
	for j := 0; j < width; j++ {
		if math.IsInf(prior.Sigma[j], 1) {
			continue // uninformative prior contributes nothing
		}
		prec = 1 / (prior.Sigma[j] * prior.Sigma[j])
		av, _ = a.At(j, j)
		_ = a.Set(j, j, av+prec)
		b[j] += prior.Mu[j] * prec
	}

	// Solve via Cholesky; reuse the factor for mean and covariance.
	l, err := linalg.Cholesky(a)
	if err != nil {
		return nil, genErrorf(opFit, err)
	}
	mu, err := linalg.CholSolve(l, b)
	if err != nil {
		return nil, genErrorf(opFit, err)
	}
	cov, err := linalg.CholInverse(l)
	if err != nil {
		return nil, genErrorf(opFit, err)
	}

	sigma := make([]float64, width)
	for j, v := range cov.Diagonal() {
		sigma[j] = math.Sqrt(v)
	}

	return &FitResult{Mu: mu, Sigma: sigma, Cov: cov, Width: width}, nil
}

// Evaluate computes X·mean over the given inputs: the model realization for
// an explicit coefficient vector (best-fit or prior mean).
//
// Errors: ErrNilGenerator, ErrMeanLength, plus design-matrix errors.
// Complexity: Time O(n·w), Space O(n).
func Evaluate(g Generator, in Inputs, mean []float64) ([]float64, error) {
	if g == nil {
		return nil, genErrorf(opEvaluate, ErrNilGenerator)
	}
	if len(mean) != g.Width() {
		return nil, genErrorf(opEvaluate, ErrMeanLength)
	}

	x, err := g.DesignMatrix(in)
	if err != nil {
		return nil, genErrorf(opEvaluate, err)
	}
	y, err := linalg.MatVec(x, mean)
	if err != nil {
		return nil, genErrorf(opEvaluate, err)
	}

	return y, nil
}
