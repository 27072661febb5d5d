// Package generator: Model, a Generator bound to its fit state.

package generator

import "github.com/christinahedges/lamatrix/linalg"

// Model couples a Generator with the result of its latest fit. It is a thin
// convenience layer: all math lives in Fit/Evaluate/Sample. The zero fit
// state falls back to the prior, so the model mean is the prior mean until a
// fit has run.
type Model struct {
	Gen    Generator  // the basis; never nil after NewModel
	Result *FitResult // nil until Fit succeeds
}

// NewModel wraps a Generator with empty fit state.
func NewModel(g Generator) *Model {
	return &Model{Gen: g}
}

// Fit runs the shared pipeline and stores the result on success.
func (m *Model) Fit(in Inputs, data []float64, opts ...FitOption) error {
	res, err := Fit(m.Gen, in, data, opts...)
	if err != nil {
		return err
	}
	m.Result = res

	return nil
}

// MeanVector returns the fitted coefficients, falling back to the prior mean
// before any fit has run.
func (m *Model) MeanVector() []float64 {
	if m.Result != nil {
		return m.Result.Mu
	}

	return m.Gen.Prior().Mu
}

// SigmaVector returns the fitted 1-sigma uncertainties, falling back to the
// prior sigmas before any fit has run.
func (m *Model) SigmaVector() []float64 {
	if m.Result != nil {
		return m.Result.Sigma
	}

	return m.Gen.Prior().Sigma
}

// Evaluate computes the model realization over in using MeanVector.
func (m *Model) Evaluate(in Inputs) ([]float64, error) {
	return Evaluate(m.Gen, in, m.MeanVector())
}

// Sample draws size realizations from the fitted posterior over in.
// Returns ErrNotFitted before a successful Fit.
func (m *Model) Sample(in Inputs, size int, seed int64) (*linalg.Dense, error) {
	return Sample(m.Gen, in, m.Result, size, seed)
}
