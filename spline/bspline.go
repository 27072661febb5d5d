// Package spline: the clamped B-spline basis generator.

package spline

import (
	"errors"
	"fmt"
	"math"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/linalg"
)

var (
	// ErrBadKnots indicates a breakpoint vector that is too short, not strictly
	// increasing, or contains non-finite values.
	ErrBadKnots = errors.New("spline: knots must be >= 2 strictly increasing finite values")

	// ErrBadDegree indicates a spline degree below one.
	ErrBadDegree = errors.New("spline: degree must be >= 1")

	// ErrEmptyArg indicates an empty input-vector name.
	ErrEmptyArg = errors.New("spline: argument name must be non-empty")
)

// BSplineGenerator builds the clamped B-spline basis of a fixed degree over a
// breakpoint vector. Width = len(knots) + degree − 1.
type BSplineGenerator struct {
	arg    string
	knots  []float64 // user breakpoints, strictly increasing
	degree int
	padded []float64 // clamped knot vector (endpoints repeated degree times)
	prior  generator.Prior
}

var _ generator.Generator = (*BSplineGenerator)(nil)

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

// BSpline builds the basis over the named input vector.
//
// Errors: ErrEmptyArg, ErrBadDegree, ErrBadKnots, plus prior validation
// errors (generator.ErrPriorWidth / ErrPriorSigma).
func BSpline(arg string, knots []float64, degree int, opts ...Option) (*BSplineGenerator, error) {
	if arg == "" {
		return nil, ErrEmptyArg
	}
	if degree < 1 {
		return nil, ErrBadDegree
	}
	if len(knots) < 2 {
		return nil, ErrBadKnots
	}
	for i := range knots {
		if math.IsNaN(knots[i]) || math.IsInf(knots[i], 0) {
			return nil, ErrBadKnots
		}
		if i > 0 && knots[i] <= knots[i-1] {
			return nil, ErrBadKnots
		}
	}

	var o options
	for _, set := range opts {
		set(&o)
	}

	// Clamp: repeat each endpoint degree extra times.
	padded := make([]float64, 0, len(knots)+2*degree)
	for i := 0; i < degree; i++ {
		padded = append(padded, knots[0])
	}
	padded = append(padded, knots...)
	for i := 0; i < degree; i++ {
		padded = append(padded, knots[len(knots)-1])
	}

	g := &BSplineGenerator{
		arg:    arg,
		knots:  append([]float64(nil), knots...),
		degree: degree,
		padded: padded,
	}
	if o.prior == nil {
		g.prior = generator.NewPrior(g.Width())
	} else {
		if err := o.prior.Validate(g.Width()); err != nil {
			return nil, err
		}
		g.prior = *o.prior
	}

	return g, nil
}

// DesignMatrix returns the n×Width matrix of basis values, one Cox–de Boor
// evaluation per sample. Out-of-domain samples yield zero rows.
//
// Complexity: Time O(n·width·degree), Space O(n·width).
func (g *BSplineGenerator) DesignMatrix(in generator.Inputs) (*linalg.Dense, error) {
	n, err := in.Len(g.ArgNames())
	if err != nil {
		return nil, err
	}
	v, err := in.Get(g.arg)
	if err != nil {
		return nil, err
	}

	width := g.Width()
	x, err := linalg.NewDense(n, width)
	if err != nil {
		return nil, err
	}

	lo, hi := g.knots[0], g.knots[len(g.knots)-1]
	row := make([]float64, width)
	for i := 0; i < n; i++ {
		if v[i] < lo || v[i] > hi {
			continue // zero row outside the domain
		}
		g.basisRow(v[i], row)
		if err = x.SetRow(i, row); err != nil {
			return nil, err
		}
	}

	return x, nil
}

// basisRow fills out with the Cox–de Boor basis values at t.
// The recursion starts from the degree-0 indicator functions and lifts the
// degree one step at a time; 0/0 conventions resolve to zero, which handles
// the repeated clamp knots.
func (g *BSplineGenerator) basisRow(t float64, out []float64) {
	T := g.padded
	nb := len(T) - 1 // number of degree-0 indicators

	// Degree 0: indicator of the half-open knot span; the last sample clamps
	// into the final non-empty span so the basis sums to one at t == hi.
	vals := make([]float64, nb)
	for i := 0; i < nb; i++ {
		if (T[i] <= t && t < T[i+1]) || (t == T[len(T)-1] && T[i] < T[i+1] && T[i+1] == T[len(T)-1]) {
			vals[i] = 1
		}
	}

	// Lift degree: N_{i,d}(t) from N_{i,d-1} and N_{i+1,d-1}.
	var left, right, denom float64
	for d := 1; d <= g.degree; d++ {
		for i := 0; i < nb-d; i++ {
			left = 0
			denom = T[i+d] - T[i]
			if denom != 0 {
				left = (t - T[i]) / denom * vals[i]
			}
			right = 0
			denom = T[i+d+1] - T[i+1]
			if denom != 0 {
				right = (T[i+d+1] - t) / denom * vals[i+1]
			}
			vals[i] = left + right
		}
	}

	copy(out, vals[:g.Width()])
}

// Width returns len(knots) + degree − 1.
func (g *BSplineGenerator) Width() int { return len(g.knots) + g.degree - 1 }

// NVectors returns 1.
func (g *BSplineGenerator) NVectors() int { return 1 }

// ArgNames returns the single input-vector name.
func (g *BSplineGenerator) ArgNames() []string { return []string{g.arg} }

// Terms returns one LaTeX fragment per basis function: N_{i,d}(\mathbf{x}).
func (g *BSplineGenerator) Terms() []string {
	terms := make([]string, g.Width())
	for i := range terms {
		terms[i] = fmt.Sprintf(`N_{%d,%d}(\mathbf{%s})`, i, g.degree, g.arg)
	}

	return terms
}

// Prior returns the per-coefficient prior.
func (g *BSplineGenerator) Prior() generator.Prior { return g.prior }

// Arg returns the input-vector name (serialization accessor).
func (g *BSplineGenerator) Arg() string { return g.arg }

// Knots returns a copy of the breakpoint vector (serialization accessor).
func (g *BSplineGenerator) Knots() []float64 { return append([]float64(nil), g.knots...) }

// Degree returns the spline degree (serialization accessor).
func (g *BSplineGenerator) Degree() int { return g.degree }
