// Package generator: functional configuration for Fit.
//
// Defaults are documented as constants and resolved in one place
// (gatherFitOptions); public entry points consume ...FitOption.

package generator

// Default fit policy.
const (
	// DefaultValidateFinite toggles strict finite-value validation of data and
	// errors before fitting. NaN samples should be removed via WithMask instead
	// of being smuggled into the normal equations.
	DefaultValidateFinite = true
)

// FitOption mutates the internal fit options. Safe to apply repeatedly;
// last-writer-wins.
type FitOption func(*fitOptions)

// fitOptions stores the effective configuration after applying setters.
// Unexported to prevent external mutation.
type fitOptions struct {
	errs           []float64 // per-sample 1-sigma uncertainties; nil = ones
	mask           []bool    // per-sample keep flags; nil = all true
	prior          *Prior    // override of the generator's own prior; nil = use g.Prior()
	validateFinite bool      // DefaultValidateFinite
}

// WithErrors sets per-sample 1-sigma uncertainties. Length must match the
// data length (checked inside Fit, not here).
func WithErrors(errs []float64) FitOption {
	return func(o *fitOptions) { o.errs = errs }
}

// WithMask sets per-sample keep flags; false rows are excluded from the fit.
// Length must match the data length (checked inside Fit).
func WithMask(mask []bool) FitOption {
	return func(o *fitOptions) { o.mask = mask }
}

// WithPrior overrides the generator's own prior for this fit only.
// The prior is validated against the generator width inside Fit.
func WithPrior(p Prior) FitOption {
	return func(o *fitOptions) { o.prior = &p }
}

// WithNoValidateFinite disables NaN/Inf validation of data and errors.
// Use only when ingesting values that a mask already excludes.
func WithNoValidateFinite() FitOption {
	return func(o *fitOptions) { o.validateFinite = false }
}

// gatherFitOptions applies user setters on top of documented defaults.
// Last-writer-wins; deterministic for a given setter sequence.
func gatherFitOptions(user ...FitOption) fitOptions {
	o := fitOptions{validateFinite: DefaultValidateFinite}
	for _, set := range user {
		set(&o)
	}

	return o
}
