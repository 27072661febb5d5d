// Package gauss: separable 2-D Gaussian profile over paired input vectors.

package gauss

import (
	"fmt"
	"math"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/linalg"
)

// Gaussian2DGenerator is a single-column separable 2-D profile over two
// paired input vectors (flattened pixel coordinates):
// exp(−(x−meanX)²/(2·stddevX²)) · exp(−(y−meanY)²/(2·stddevY²)).
type Gaussian2DGenerator struct {
	argX, argY       string
	meanX, meanY     float64
	stddevX, stddevY float64
	prior            generator.Prior
}

var _ generator.Generator = (*Gaussian2DGenerator)(nil)

// Gaussian2D builds the separable 2-D profile basis. Both input vectors must
// share one length (row-major flattened images pair naturally).
//
// Errors: ErrEmptyArg, ErrSameArg, ErrBadStddev, plus prior validation errors.
func Gaussian2D(argX, argY string, meanX, meanY, stddevX, stddevY float64, opts ...Option) (*Gaussian2DGenerator, error) {
	if argX == "" || argY == "" {
		return nil, ErrEmptyArg
	}
	if argX == argY {
		return nil, ErrSameArg
	}
	if !(stddevX > 0) || math.IsInf(stddevX, 0) || !(stddevY > 0) || math.IsInf(stddevY, 0) {
		return nil, ErrBadStddev
	}
	o := gatherOptions(opts...)
	prior, err := resolvePrior(o, 1)
	if err != nil {
		return nil, err
	}

	return &Gaussian2DGenerator{
		argX: argX, argY: argY,
		meanX: meanX, meanY: meanY,
		stddevX: stddevX, stddevY: stddevY,
		prior: prior,
	}, nil
}

// DesignMatrix returns the n×1 profile column over the paired vectors.
func (g *Gaussian2DGenerator) DesignMatrix(in generator.Inputs) (*linalg.Dense, error) {
	n, err := in.Len(g.ArgNames())
	if err != nil {
		return nil, err
	}
	vx, err := in.Get(g.argX)
	if err != nil {
		return nil, err
	}
	vy, err := in.Get(g.argY)
	if err != nil {
		return nil, err
	}

	x, err := linalg.NewDense(n, 1)
	if err != nil {
		return nil, err
	}
	twoVarX := 2 * g.stddevX * g.stddevX
	twoVarY := 2 * g.stddevY * g.stddevY
	var dx, dy float64
	for i := 0; i < n; i++ {
		dx = vx[i] - g.meanX
		dy = vy[i] - g.meanY
		_ = x.Set(i, 0, math.Exp(-dx*dx/twoVarX-dy*dy/twoVarY))
	}

	return x, nil
}

// Width returns 1.
func (g *Gaussian2DGenerator) Width() int { return 1 }

// NVectors returns 2.
func (g *Gaussian2DGenerator) NVectors() int { return 2 }

// ArgNames returns the two axis names in (x, y) order.
func (g *Gaussian2DGenerator) ArgNames() []string { return []string{g.argX, g.argY} }

// Terms returns the profile's LaTeX fragment.
func (g *Gaussian2DGenerator) Terms() []string {
	return []string{fmt.Sprintf(
		`e^{-\frac{(\mathbf{%s} - %g)^2}{2\cdot %g^2} - \frac{(\mathbf{%s} - %g)^2}{2\cdot %g^2}}`,
		g.argX, g.meanX, g.stddevX, g.argY, g.meanY, g.stddevY)}
}

// Prior returns the per-coefficient prior.
func (g *Gaussian2DGenerator) Prior() generator.Prior { return g.prior }

// Args returns the axis names (serialization accessor).
func (g *Gaussian2DGenerator) Args() (string, string) { return g.argX, g.argY }

// Means returns the fixed profile centers (serialization accessor).
func (g *Gaussian2DGenerator) Means() (float64, float64) { return g.meanX, g.meanY }

// Stddevs returns the fixed profile widths (serialization accessor).
func (g *Gaussian2DGenerator) Stddevs() (float64, float64) { return g.stddevX, g.stddevY }
