// Package generator: per-coefficient Gaussian priors.
//
// A Prior pins each coefficient w_i to N(Mu_i, Sigma_i²). Sigma_i == +Inf
// means "uninformative": the coefficient is unconstrained and contributes
// nothing to the normal equations. Construction follows broadcasting rules:
// a scalar broadcasts across the full width, slices must match the width
// exactly.

package generator

import "math"

// Prior holds per-coefficient Gaussian prior parameters. Both slices always
// share one length (the generator width).
type Prior struct {
	Mu    []float64 // prior means
	Sigma []float64 // prior standard deviations; +Inf = uninformative
}

// NewPrior returns the uninformative prior of the given width:
// mu = 0, sigma = +Inf for every coefficient. width must be >= 1; smaller
// values yield a zero-width prior that fails validation downstream.
func NewPrior(width int) Prior {
	if width < 1 {
		return Prior{}
	}
	mu := make([]float64, width)
	sigma := make([]float64, width)
	inf := math.Inf(1)
	for i := range sigma {
		sigma[i] = inf
	}

	return Prior{Mu: mu, Sigma: sigma}
}

// PriorFromScalars broadcasts scalar mu and sigma across the full width.
//
// Errors:
//   - ErrPriorWidth when width < 1.
//   - ErrPriorSigma when sigma is not positive (or +Inf); NaN is rejected.
func PriorFromScalars(width int, mu, sigma float64) (Prior, error) {
	if width < 1 {
		return Prior{}, ErrPriorWidth
	}
	if !(sigma > 0) || math.IsNaN(sigma) { // rejects 0, negatives and NaN; allows +Inf
		return Prior{}, ErrPriorSigma
	}
	p := Prior{Mu: make([]float64, width), Sigma: make([]float64, width)}
	for i := 0; i < width; i++ {
		p.Mu[i] = mu
		p.Sigma[i] = sigma
	}

	return p, nil
}

// PriorFromSlices copies mu and sigma verbatim. Both must be non-empty and
// share one length; every sigma must be positive or +Inf.
//
// Errors: ErrPriorWidth (length problems), ErrPriorSigma (bad sigma entry).
func PriorFromSlices(mu, sigma []float64) (Prior, error) {
	if len(mu) == 0 || len(mu) != len(sigma) {
		return Prior{}, ErrPriorWidth
	}
	p := Prior{Mu: make([]float64, len(mu)), Sigma: make([]float64, len(sigma))}
	copy(p.Mu, mu)
	for i, s := range sigma {
		if !(s > 0) || math.IsNaN(s) {
			return Prior{}, ErrPriorSigma
		}
		p.Sigma[i] = s
	}

	return p, nil
}

// Width returns the coefficient count the prior covers.
func (p Prior) Width() int { return len(p.Mu) }

// Validate checks the prior against a generator width.
// Returns ErrPriorWidth on mismatch, ErrPriorSigma on a bad sigma entry.
func (p Prior) Validate(width int) error {
	if len(p.Mu) != width || len(p.Sigma) != width {
		return ErrPriorWidth
	}
	for _, s := range p.Sigma {
		if !(s > 0) || math.IsNaN(s) {
			return ErrPriorSigma
		}
	}

	return nil
}

// Concat returns the concatenation of p and q (stacked-generator priors).
func (p Prior) Concat(q Prior) Prior {
	out := Prior{
		Mu:    make([]float64, 0, len(p.Mu)+len(q.Mu)),
		Sigma: make([]float64, 0, len(p.Sigma)+len(q.Sigma)),
	}
	out.Mu = append(append(out.Mu, p.Mu...), q.Mu...)
	out.Sigma = append(append(out.Sigma, p.Sigma...), q.Sigma...)

	return out
}
