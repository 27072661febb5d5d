// Package gauss: 1-D Gaussian profile and its centroid derivative.

package gauss

import (
	"fmt"
	"math"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/linalg"
)

// GaussianGenerator is a single-column basis
// exp(−(x−mean)²/(2·stddev²)) with fixed shape; the fitted coefficient is the
// profile amplitude.
type GaussianGenerator struct {
	arg          string
	mean, stddev float64
	prior        generator.Prior
}

var _ generator.Generator = (*GaussianGenerator)(nil)

// Gaussian builds the 1-D profile basis over the named input vector.
//
// Errors: ErrEmptyArg, ErrBadStddev (stddev ≤ 0, NaN or Inf), plus prior
// validation errors.
func Gaussian(arg string, mean, stddev float64, opts ...Option) (*GaussianGenerator, error) {
	if arg == "" {
		return nil, ErrEmptyArg
	}
	if !(stddev > 0) || math.IsInf(stddev, 0) {
		return nil, ErrBadStddev
	}
	o := gatherOptions(opts...)
	prior, err := resolvePrior(o, 1)
	if err != nil {
		return nil, err
	}

	return &GaussianGenerator{arg: arg, mean: mean, stddev: stddev, prior: prior}, nil
}

// DesignMatrix returns the n×1 profile column.
func (g *GaussianGenerator) DesignMatrix(in generator.Inputs) (*linalg.Dense, error) {
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
	twoVar := 2 * g.stddev * g.stddev
	var d float64
	for i := 0; i < n; i++ {
		d = v[i] - g.mean
		_ = x.Set(i, 0, math.Exp(-d*d/twoVar))
	}

	return x, nil
}

// Width returns 1.
func (g *GaussianGenerator) Width() int { return 1 }

// NVectors returns 1.
func (g *GaussianGenerator) NVectors() int { return 1 }

// ArgNames returns the single input-vector name.
func (g *GaussianGenerator) ArgNames() []string { return []string{g.arg} }

// Terms returns the profile's LaTeX fragment.
func (g *GaussianGenerator) Terms() []string {
	return []string{fmt.Sprintf(
		`e^{-\frac{(\mathbf{%s} - %g)^2}{2\cdot %g^2}}`, g.arg, g.mean, g.stddev)}
}

// Prior returns the per-coefficient prior.
func (g *GaussianGenerator) Prior() generator.Prior { return g.prior }

// Arg returns the input-vector name (serialization accessor).
func (g *GaussianGenerator) Arg() string { return g.arg }

// Mean returns the fixed profile center (serialization accessor).
func (g *GaussianGenerator) Mean() float64 { return g.mean }

// Stddev returns the fixed profile width (serialization accessor).
func (g *GaussianGenerator) Stddev() float64 { return g.stddev }

// DGaussianGenerator is the derivative of the 1-D profile with respect to its
// center: the linearized centroid-shift column. Stacking it next to the
// profile lets a fit absorb small pointing offsets.
type DGaussianGenerator struct {
	arg          string
	mean, stddev float64
	prior        generator.Prior
}

var _ generator.Generator = (*DGaussianGenerator)(nil)

// DGaussian builds the centroid-derivative basis over the named input vector.
//
// Errors: as Gaussian.
func DGaussian(arg string, mean, stddev float64, opts ...Option) (*DGaussianGenerator, error) {
	if arg == "" {
		return nil, ErrEmptyArg
	}
	if !(stddev > 0) || math.IsInf(stddev, 0) {
		return nil, ErrBadStddev
	}
	o := gatherOptions(opts...)
	prior, err := resolvePrior(o, 1)
	if err != nil {
		return nil, err
	}

	return &DGaussianGenerator{arg: arg, mean: mean, stddev: stddev, prior: prior}, nil
}

// DesignMatrix returns the n×1 derivative column
// ((x−mean)/stddev²)·exp(−(x−mean)²/(2·stddev²)).
func (g *DGaussianGenerator) DesignMatrix(in generator.Inputs) (*linalg.Dense, error) {
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
	variance := g.stddev * g.stddev
	var d float64
	for i := 0; i < n; i++ {
		d = v[i] - g.mean
		_ = x.Set(i, 0, (d/variance)*math.Exp(-d*d/(2*variance)))
	}

	return x, nil
}

// Width returns 1.
func (g *DGaussianGenerator) Width() int { return 1 }

// NVectors returns 1.
func (g *DGaussianGenerator) NVectors() int { return 1 }

// ArgNames returns the single input-vector name.
func (g *DGaussianGenerator) ArgNames() []string { return []string{g.arg} }

// Terms returns the derivative profile's LaTeX fragment.
func (g *DGaussianGenerator) Terms() []string {
	return []string{fmt.Sprintf(
		`\frac{\mathbf{%s} - %g}{%g^2}\,e^{-\frac{(\mathbf{%s} - %g)^2}{2\cdot %g^2}}`,
		g.arg, g.mean, g.stddev, g.arg, g.mean, g.stddev)}
}

// Prior returns the per-coefficient prior.
func (g *DGaussianGenerator) Prior() generator.Prior { return g.prior }

// Arg returns the input-vector name (serialization accessor).
func (g *DGaussianGenerator) Arg() string { return g.arg }

// Mean returns the fixed profile center (serialization accessor).
func (g *DGaussianGenerator) Mean() float64 { return g.mean }

// Stddev returns the fixed profile width (serialization accessor).
func (g *DGaussianGenerator) Stddev() float64 { return g.stddev }
