// Package simple: the constant (all-ones) basis.

package simple

import (
	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/linalg"
)

// ConstantGenerator is a single all-ones column: the model offset. The named
// input vector only fixes the row count of the design matrix.
type ConstantGenerator struct {
	arg   string
	prior generator.Prior
}

var _ generator.Generator = (*ConstantGenerator)(nil)

// Constant builds the offset basis over the named input vector.
//
// Errors: ErrEmptyArg, plus prior validation errors from WithPrior.
func Constant(arg string, opts ...Option) (*ConstantGenerator, error) {
	if arg == "" {
		return nil, ErrEmptyArg
	}
	o := gatherOptions(opts...)
	prior, err := resolvePrior(o, 1)
	if err != nil {
		return nil, err
	}

	return &ConstantGenerator{arg: arg, prior: prior}, nil
}

// DesignMatrix returns an n×1 matrix of ones, n = len(inputs[arg]).
func (g *ConstantGenerator) DesignMatrix(in generator.Inputs) (*linalg.Dense, error) {
	n, err := in.Len(g.ArgNames())
	if err != nil {
		return nil, err
	}
	x, err := linalg.NewDense(n, 1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = x.Set(i, 0, 1)
	}

	return x, nil
}

// Width returns 1.
func (g *ConstantGenerator) Width() int { return 1 }

// NVectors returns 1 (the row-count vector).
func (g *ConstantGenerator) NVectors() int { return 1 }

// ArgNames returns the single input-vector name.
func (g *ConstantGenerator) ArgNames() []string { return []string{g.arg} }

// Terms returns the single LaTeX term "1".
func (g *ConstantGenerator) Terms() []string { return []string{"1"} }

// Prior returns the per-coefficient prior.
func (g *ConstantGenerator) Prior() generator.Prior { return g.prior }

// Arg returns the input-vector name (serialization accessor).
func (g *ConstantGenerator) Arg() string { return g.arg }
