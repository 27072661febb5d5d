// Package astro: the flare (fast-rise, exponential-decay) profile.

package astro

import (
	"fmt"
	"math"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/linalg"
)

// FlareGenerator is a single-column FRED profile: a Gaussian rise before the
// peak time and an exponential decay after it. The profile peaks at one, so
// the fitted coefficient is the flare amplitude.
type FlareGenerator struct {
	arg         string
	t0          float64 // peak time
	rise, decay float64 // rise sigma and decay e-folding time
	prior       generator.Prior
}

var _ generator.Generator = (*FlareGenerator)(nil)

// Option mutates the internal construction options. Last-writer-wins.
type Option func(*options)

type options struct {
	prior *generator.Prior
}

// WithPrior sets the per-coefficient Gaussian prior, validated against the
// basis width inside the constructor.
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

// Flare builds the FRED basis over the named input vector (typically time).
//
// Errors: ErrEmptyArg, ErrBadTimescale (rise or decay ≤ 0, NaN or Inf),
// plus prior validation errors.
func Flare(arg string, t0, rise, decay float64, opts ...Option) (*FlareGenerator, error) {
	if arg == "" {
		return nil, ErrEmptyArg
	}
	if !(rise > 0) || math.IsInf(rise, 0) || !(decay > 0) || math.IsInf(decay, 0) {
		return nil, ErrBadTimescale
	}
	o := gatherOptions(opts...)
	prior, err := resolvePrior(o, 1)
	if err != nil {
		return nil, err
	}

	return &FlareGenerator{arg: arg, t0: t0, rise: rise, decay: decay, prior: prior}, nil
}

// DesignMatrix returns the n×1 profile column:
// exp(−(t−t0)²/(2·rise²)) for t < t0, exp(−(t−t0)/decay) for t ≥ t0.
func (g *FlareGenerator) DesignMatrix(in generator.Inputs) (*linalg.Dense, error) {
	n, err := in.Len(g.ArgNames())
	if err != nil {
		return nil, err
	}
	v, err := in.Get(g.arg)
	if err != nil {
		return nil, err
	}

	x, err := linalg.NewDense(n, 1)
	if err != nil {
		return nil, err
	}
	twoVar := 2 * g.rise * g.rise
	var d float64
	for i := 0; i < n; i++ {
		d = v[i] - g.t0
		if d < 0 {
			_ = x.Set(i, 0, math.Exp(-d*d/twoVar))
		} else {
			_ = x.Set(i, 0, math.Exp(-d/g.decay))
		}
	}

	return x, nil
}

// Width returns 1.
func (g *FlareGenerator) Width() int { return 1 }

// NVectors returns 1.
func (g *FlareGenerator) NVectors() int { return 1 }

// ArgNames returns the single input-vector name.
func (g *FlareGenerator) ArgNames() []string { return []string{g.arg} }

// Terms returns the profile's LaTeX fragment.
func (g *FlareGenerator) Terms() []string {
	return []string{fmt.Sprintf(`\mathrm{FRED}(\mathbf{%s}; %g, %g, %g)`,
		g.arg, g.t0, g.rise, g.decay)}
}

// Prior returns the per-coefficient prior.
func (g *FlareGenerator) Prior() generator.Prior { return g.prior }

// Arg returns the input-vector name (serialization accessor).
func (g *FlareGenerator) Arg() string { return g.arg }

// Peak returns the peak time (serialization accessor).
func (g *FlareGenerator) Peak() float64 { return g.t0 }

// Rise returns the rise sigma (serialization accessor).
func (g *FlareGenerator) Rise() float64 { return g.rise }

// Decay returns the decay e-folding time (serialization accessor).
func (g *FlareGenerator) Decay() float64 { return g.decay }
