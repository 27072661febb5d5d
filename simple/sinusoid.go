// Package simple: the sinusoid (harmonic) basis.

package simple

import (
	"fmt"
	"math"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/linalg"
)

// SinusoidGenerator builds sin/cos harmonic pairs over one input vector
// (assumed to be a phase in radians): sin(x), cos(x), sin(2x), cos(2x), ...
// With the intercept a leading all-ones column models the mean level.
type SinusoidGenerator struct {
	arg       string
	nharm     int
	intercept bool
	prior     generator.Prior
}

var _ generator.Generator = (*SinusoidGenerator)(nil)

// Sinusoid builds an nharm-harmonic basis over the named input vector.
// Width = 2*nharm + 1 with the intercept, 2*nharm without.
//
// Errors: ErrEmptyArg, ErrBadHarmonics, plus prior validation errors.
func Sinusoid(arg string, nharm int, opts ...Option) (*SinusoidGenerator, error) {
	if arg == "" {
		return nil, ErrEmptyArg
	}
	if nharm < 1 {
		return nil, ErrBadHarmonics
	}
	o := gatherOptions(opts...)
	width := 2*nharm + 1
	if !o.intercept {
		width = 2 * nharm
	}
	prior, err := resolvePrior(o, width)
	if err != nil {
		return nil, err
	}

	return &SinusoidGenerator{arg: arg, nharm: nharm, intercept: o.intercept, prior: prior}, nil
}

// DesignMatrix returns the n×Width matrix of harmonic columns.
func (g *SinusoidGenerator) DesignMatrix(in generator.Inputs) (*linalg.Dense, error) {
	n, err := in.Len(g.ArgNames())
	if err != nil {
		return nil, err
	}
	v, err := in.Get(g.arg)
	if err != nil {
		return nil, err
	}

	x, err := linalg.NewDense(n, g.Width())
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		col := 0
		if g.intercept {
			_ = x.Set(i, col, 1)
			col++
		}
		for k := 1; k <= g.nharm; k++ {
			kx := float64(k) * v[i]
			_ = x.Set(i, col, math.Sin(kx))
			_ = x.Set(i, col+1, math.Cos(kx))
			col += 2
		}
	}

	return x, nil
}

// Width returns 2*nharm+1 (or 2*nharm without the intercept).
func (g *SinusoidGenerator) Width() int {
	if g.intercept {
		return 2*g.nharm + 1
	}

	return 2 * g.nharm
}

// NVectors returns 1.
func (g *SinusoidGenerator) NVectors() int { return 1 }

// ArgNames returns the single input-vector name.
func (g *SinusoidGenerator) ArgNames() []string { return []string{g.arg} }

// Terms returns one LaTeX fragment per column:
// 1, \sin(\mathbf{x}), \cos(\mathbf{x}), \sin(2\mathbf{x}), ...
func (g *SinusoidGenerator) Terms() []string {
	terms := make([]string, 0, g.Width())
	if g.intercept {
		terms = append(terms, "1")
	}
	for k := 1; k <= g.nharm; k++ {
		mult := ""
		if k > 1 {
			mult = fmt.Sprintf("%d", k)
		}
		terms = append(terms,
			fmt.Sprintf(`\sin(%s\mathbf{%s})`, mult, g.arg),
			fmt.Sprintf(`\cos(%s\mathbf{%s})`, mult, g.arg))
	}

	return terms
}

// Prior returns the per-coefficient prior.
func (g *SinusoidGenerator) Prior() generator.Prior { return g.prior }

// Arg returns the input-vector name (serialization accessor).
func (g *SinusoidGenerator) Arg() string { return g.arg }

// Harmonics returns the harmonic count (serialization accessor).
func (g *SinusoidGenerator) Harmonics() int { return g.nharm }

// HasIntercept reports whether the leading ones column is present.
func (g *SinusoidGenerator) HasIntercept() bool { return g.intercept }
