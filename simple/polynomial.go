// Package simple: the polynomial basis.

package simple

import (
	"fmt"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/linalg"
)

// PolynomialGenerator builds columns x⁰..x^degree over one input vector.
// With WithoutIntercept the x⁰ column is dropped and the basis starts at x¹.
type PolynomialGenerator struct {
	arg       string
	degree    int
	intercept bool
	prior     generator.Prior
}

var _ generator.Generator = (*PolynomialGenerator)(nil)

// Polynomial builds a degree-d basis over the named input vector.
// Width = degree+1 with the intercept, degree without.
//
// Errors: ErrEmptyArg, ErrBadDegree, plus prior validation errors.
func Polynomial(arg string, degree int, opts ...Option) (*PolynomialGenerator, error) {
	if arg == "" {
		return nil, ErrEmptyArg
	}
	if degree < 1 {
		return nil, ErrBadDegree
	}
	o := gatherOptions(opts...)
	width := degree + 1
	if !o.intercept {
		width = degree
	}
	prior, err := resolvePrior(o, width)
	if err != nil {
		return nil, err
	}

	return &PolynomialGenerator{arg: arg, degree: degree, intercept: o.intercept, prior: prior}, nil
}

// DesignMatrix returns the n×Width matrix of powers of the input vector.
// Powers are built incrementally per row (one multiply per column).
func (g *PolynomialGenerator) DesignMatrix(in generator.Inputs) (*linalg.Dense, error) {
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
	var p float64
	for i := 0; i < n; i++ {
		p = 1
		if g.intercept {
			_ = x.Set(i, 0, p)
		}
		col := 0
		if g.intercept {
			col = 1
		}
		for k := 1; k <= g.degree; k++ {
			p *= v[i]
			_ = x.Set(i, col, p)
			col++
		}
	}

	return x, nil
}

// Width returns degree+1 (or degree without the intercept).
func (g *PolynomialGenerator) Width() int {
	if g.intercept {
		return g.degree + 1
	}

	return g.degree
}

// NVectors returns 1.
func (g *PolynomialGenerator) NVectors() int { return 1 }

// ArgNames returns the single input-vector name.
func (g *PolynomialGenerator) ArgNames() []string { return []string{g.arg} }

// Terms returns one LaTeX fragment per power: 1, \mathbf{x}, \mathbf{x}^{2}, ...
func (g *PolynomialGenerator) Terms() []string {
	terms := make([]string, 0, g.Width())
	if g.intercept {
		terms = append(terms, "1")
	}
	for k := 1; k <= g.degree; k++ {
		if k == 1 {
			terms = append(terms, fmt.Sprintf(`\mathbf{%s}`, g.arg))
			continue
		}
		terms = append(terms, fmt.Sprintf(`\mathbf{%s}^{%d}`, g.arg, k))
	}

	return terms
}

// Prior returns the per-coefficient prior.
func (g *PolynomialGenerator) Prior() generator.Prior { return g.prior }

// Arg returns the input-vector name (serialization accessor).
func (g *PolynomialGenerator) Arg() string { return g.arg }

// Degree returns the polynomial degree (serialization accessor).
func (g *PolynomialGenerator) Degree() int { return g.degree }

// HasIntercept reports whether the x⁰ column is present.
func (g *PolynomialGenerator) HasIntercept() bool { return g.intercept }
