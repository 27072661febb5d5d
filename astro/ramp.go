// Package astro: the exponential detector-ramp profile.

package astro

import (
	"fmt"
	"math"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/linalg"
)

// RampGenerator is a single-column exponential ramp e^(−x/τ): the settling
// systematic common at the start of detector time series. The fitted
// coefficient is the ramp amplitude.
type RampGenerator struct {
	arg   string
	tau   float64
	prior generator.Prior
}

var _ generator.Generator = (*RampGenerator)(nil)

// ExponentialRamp builds the ramp basis over the named input vector.
//
// Errors: ErrEmptyArg, ErrBadTimescale (τ ≤ 0, NaN or Inf), plus prior
// validation errors.
func ExponentialRamp(arg string, tau float64, opts ...Option) (*RampGenerator, error) {
	if arg == "" {
		return nil, ErrEmptyArg
	}
	if !(tau > 0) || math.IsInf(tau, 0) {
		return nil, ErrBadTimescale
	}
	o := gatherOptions(opts...)
	prior, err := resolvePrior(o, 1)
	if err != nil {
		return nil, err
	}

	return &RampGenerator{arg: arg, tau: tau, prior: prior}, nil
}

// DesignMatrix returns the n×1 ramp column e^(−x/τ).
func (g *RampGenerator) DesignMatrix(in generator.Inputs) (*linalg.Dense, error) {
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
	for i := 0; i < n; i++ {
		_ = x.Set(i, 0, math.Exp(-v[i]/g.tau))
	}

	return x, nil
}

// Width returns 1.
func (g *RampGenerator) Width() int { return 1 }

// NVectors returns 1.
func (g *RampGenerator) NVectors() int { return 1 }

// ArgNames returns the single input-vector name.
func (g *RampGenerator) ArgNames() []string { return []string{g.arg} }

// Terms returns the ramp's LaTeX fragment.
func (g *RampGenerator) Terms() []string {
	return []string{fmt.Sprintf(`e^{-\mathbf{%s}/%g}`, g.arg, g.tau)}
}

// Prior returns the per-coefficient prior.
func (g *RampGenerator) Prior() generator.Prior { return g.prior }

// Arg returns the input-vector name (serialization accessor).
func (g *RampGenerator) Arg() string { return g.arg }

// Tau returns the e-folding timescale (serialization accessor).
func (g *RampGenerator) Tau() float64 { return g.tau }
