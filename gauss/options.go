// Package gauss: functional configuration shared by the Gaussian bases.

package gauss

import "github.com/christinahedges/lamatrix/generator"

// Option mutates the internal construction options. Last-writer-wins.
type Option func(*options)

type options struct {
	prior *generator.Prior // nil = uninformative prior of the right width
}

// WithPrior sets the per-coefficient Gaussian prior. The width is validated
// against the basis width inside the constructor.
func WithPrior(p generator.Prior) Option {
	return func(o *options) { o.prior = &p }
}

func gatherOptions(user ...Option) options {
	var o options
	for _, set := range user {
		set(&o)
	}

	return o
}

func resolvePrior(o options, width int) (generator.Prior, error) {
	if o.prior == nil {
		return generator.NewPrior(width), nil
	}
	if err := o.prior.Validate(width); err != nil {
		return generator.Prior{}, err
	}

	return *o.prior, nil
}
