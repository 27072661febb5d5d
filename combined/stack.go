// Package combined: horizontal stacking of generators.

package combined

import (
	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/linalg"
)

// StackedGenerator concatenates the design matrices of its components
// column-wise. Coefficients, terms and priors concatenate in component order.
type StackedGenerator struct {
	gs    []generator.Generator
	args  []string // union of component arg names, first occurrence wins
	width int
}

var _ generator.Generator = (*StackedGenerator)(nil)

// Stack builds the concatenation of two or more generators.
//
// Errors: ErrTooFew (fewer than two), ErrNilComponent (nil entry).
func Stack(gs ...generator.Generator) (*StackedGenerator, error) {
	if len(gs) < 2 {
		return nil, ErrTooFew
	}

	s := &StackedGenerator{gs: make([]generator.Generator, len(gs))}
	seen := make(map[string]bool)
	for i, g := range gs {
		if g == nil {
			return nil, ErrNilComponent
		}
		s.gs[i] = g
		s.width += g.Width()
		for _, a := range g.ArgNames() {
			if !seen[a] {
				seen[a] = true
				s.args = append(s.args, a)
			}
		}
	}

	return s, nil
}

// DesignMatrix builds every component matrix and concatenates them
// column-wise. All components see the same Inputs, so shared arg names
// naturally reuse one vector.
func (s *StackedGenerator) DesignMatrix(in generator.Inputs) (*linalg.Dense, error) {
	parts := make([]*linalg.Dense, len(s.gs))
	for i, g := range s.gs {
		x, err := g.DesignMatrix(in)
		if err != nil {
			return nil, err
		}
		parts[i] = x
	}

	return linalg.HStack(parts...)
}

// Width returns the sum of the component widths.
func (s *StackedGenerator) Width() int { return s.width }

// NVectors returns the number of distinct input vectors across components.
func (s *StackedGenerator) NVectors() int { return len(s.args) }

// ArgNames returns the union of component arg names, in first-occurrence
// order (stable across calls).
func (s *StackedGenerator) ArgNames() []string {
	return append([]string(nil), s.args...)
}

// Terms returns the component terms, concatenated in component order.
func (s *StackedGenerator) Terms() []string {
	terms := make([]string, 0, s.width)
	for _, g := range s.gs {
		terms = append(terms, g.Terms()...)
	}

	return terms
}

// Prior returns the concatenation of the component priors.
func (s *StackedGenerator) Prior() generator.Prior {
	p := s.gs[0].Prior()
	for _, g := range s.gs[1:] {
		p = p.Concat(g.Prior())
	}

	return p
}

// Generators returns the components (serialization accessor).
func (s *StackedGenerator) Generators() []generator.Generator {
	return append([]generator.Generator(nil), s.gs...)
}
