// Package simple: functional configuration shared by the simple bases.

package simple

import "github.com/christinahedges/lamatrix/generator"

// DefaultIntercept controls whether polynomial/sinusoid bases carry a
// constant leading column. true ⇒ include the x⁰ (or harmonic-zero) term.
const DefaultIntercept = true

// Option mutates the internal construction options. Last-writer-wins.
type Option func(*options)

type options struct {
	intercept bool             // DefaultIntercept
	prior     *generator.Prior // nil = uninformative prior of the right width
}

// WithoutIntercept drops the constant leading column. Use when a Constant or
// another stacked component already models the offset.
func WithoutIntercept() Option {
	return func(o *options) { o.intercept = false }
}

// WithPrior sets the per-coefficient Gaussian prior. The width is validated
// against the basis width inside the constructor.
func WithPrior(p generator.Prior) Option {
	return func(o *options) { o.prior = &p }
}

// gatherOptions applies user setters on top of documented defaults.
func gatherOptions(user ...Option) options {
	o := options{intercept: DefaultIntercept}
	for _, set := range user {
		set(&o)
	}

	return o
}

// resolvePrior returns the explicit prior validated against width, or the
// uninformative prior of that width.
func resolvePrior(o options, width int) (generator.Prior, error) {
	if o.prior == nil {
		return generator.NewPrior(width), nil
	}
	if err := o.prior.Validate(width); err != nil {
		return generator.Prior{}, err
	}

	return *o.prior, nil
}
