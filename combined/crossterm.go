// Package combined: column-wise cross terms of two generators.

package combined

import (
	"fmt"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/linalg"
)

// CrosstermGenerator multiplies every column of A with every column of B:
// column (i, j) of the result is A_i ⊙ B_j, laid out i-major. Width is
// A.Width() × B.Width(). The default prior is uninformative; cross-term
// coefficients have no natural prior inherited from the factors.
type CrosstermGenerator struct {
	a, b  generator.Generator
	args  []string
	prior generator.Prior
}

var _ generator.Generator = (*CrosstermGenerator)(nil)

// Option mutates the internal construction options. Last-writer-wins.
type Option func(*options)

type options struct {
	prior *generator.Prior
}

// WithPrior sets the per-coefficient Gaussian prior on the cross terms,
// validated against widthA×widthB inside the constructor.
func WithPrior(p generator.Prior) Option {
	return func(o *options) { o.prior = &p }
}

// Crossterm builds the interaction basis of two generators.
//
// Errors: ErrNilComponent, plus prior validation errors
// (generator.ErrPriorWidth / ErrPriorSigma).
func Crossterm(a, b generator.Generator, opts ...Option) (*CrosstermGenerator, error) {
	if a == nil || b == nil {
		return nil, ErrNilComponent
	}

	var o options
	for _, set := range opts {
		set(&o)
	}

	c := &CrosstermGenerator{a: a, b: b}
	seen := make(map[string]bool)
	for _, g := range []generator.Generator{a, b} {
		for _, arg := range g.ArgNames() {
			if !seen[arg] {
				seen[arg] = true
				c.args = append(c.args, arg)
			}
		}
	}

	width := a.Width() * b.Width()
	if o.prior == nil {
		c.prior = generator.NewPrior(width)
	} else {
		if err := o.prior.Validate(width); err != nil {
			return nil, err
		}
		c.prior = *o.prior
	}

	return c, nil
}

// DesignMatrix builds both factor matrices and multiplies their columns
// pairwise, i-major: result column i·widthB + j is A_i ⊙ B_j.
//
// Complexity: Time O(n·widthA·widthB).
func (c *CrosstermGenerator) DesignMatrix(in generator.Inputs) (*linalg.Dense, error) {
	xa, err := c.a.DesignMatrix(in)
	if err != nil {
		return nil, err
	}
	xb, err := c.b.DesignMatrix(in)
	if err != nil {
		return nil, err
	}
	if xa.Rows() != xb.Rows() {
		return nil, linalg.ErrDimensionMismatch
	}

	n := xa.Rows()
	wa, wb := xa.Cols(), xb.Cols()
	x, err := linalg.NewDense(n, wa*wb)
	if err != nil {
		return nil, err
	}
	var av, bv float64
	for r := 0; r < n; r++ {
		for i := 0; i < wa; i++ {
			av, _ = xa.At(r, i)
			if av == 0 {
				continue // whole block of this row stays zero
			}
			for j := 0; j < wb; j++ {
				bv, _ = xb.At(r, j)
				_ = x.Set(r, i*wb+j, av*bv)
			}
		}
	}

	return x, nil
}

// Width returns widthA × widthB.
func (c *CrosstermGenerator) Width() int { return c.a.Width() * c.b.Width() }

// NVectors returns the number of distinct input vectors across both factors.
func (c *CrosstermGenerator) NVectors() int { return len(c.args) }

// ArgNames returns the union of factor arg names, first-occurrence order.
func (c *CrosstermGenerator) ArgNames() []string {
	return append([]string(nil), c.args...)
}

// Terms returns the pairwise products of the factor terms, i-major, with the
// redundant "1" factor elided.
func (c *CrosstermGenerator) Terms() []string {
	ta, tb := c.a.Terms(), c.b.Terms()
	terms := make([]string, 0, len(ta)*len(tb))
	for _, a := range ta {
		for _, b := range tb {
			switch {
			case a == "1":
				terms = append(terms, b)
			case b == "1":
				terms = append(terms, a)
			default:
				terms = append(terms, fmt.Sprintf(`%s \cdot %s`, a, b))
			}
		}
	}

	return terms
}

// Prior returns the per-coefficient prior on the cross terms.
func (c *CrosstermGenerator) Prior() generator.Prior { return c.prior }

// Generators returns the two factors (serialization accessor).
func (c *CrosstermGenerator) Generators() (generator.Generator, generator.Generator) {
	return c.a, c.b
}
