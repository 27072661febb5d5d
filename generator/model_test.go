package generator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/simple"
)

// TestModel_PriorFallback verifies an unfitted model exposes the prior as
// its coefficient vectors and evaluates the prior mean.
func TestModel_PriorFallback(t *testing.T) {
	prior, err := generator.PriorFromSlices([]float64{3, 0}, []float64{0.5, math.Inf(1)})
	require.NoError(t, err)
	g, err := simple.Polynomial("x", 1, simple.WithPrior(prior))
	require.NoError(t, err)

	m := generator.NewModel(g)
	require.Nil(t, m.Result)
	require.Equal(t, []float64{3, 0}, m.MeanVector())
	require.Equal(t, 0.5, m.SigmaVector()[0])

	xs, in := lineInputs(5)
	y, err := m.Evaluate(in)
	require.NoError(t, err)
	for i := range xs {
		require.InDelta(t, 3.0, y[i], 1e-12) // slope prior mean is zero
	}
}

// TestModel_FitThenSample verifies the state transition from prior to
// posterior and that sampling requires fit state.
func TestModel_FitThenSample(t *testing.T) {
	g, err := simple.Polynomial("x", 1)
	require.NoError(t, err)
	m := generator.NewModel(g)

	xs, in := lineInputs(15)
	_, err = m.Sample(in, 3, 0)
	require.ErrorIs(t, err, generator.ErrNotFitted)

	data := make([]float64, len(xs))
	for i, x := range xs {
		data[i] = 4 + x
	}
	require.NoError(t, m.Fit(in, data))
	require.NotNil(t, m.Result)
	require.InDelta(t, 4.0, m.MeanVector()[0], 1e-9)

	draws, err := m.Sample(in, 3, 0)
	require.NoError(t, err)
	require.Equal(t, len(xs), draws.Rows())
	require.Equal(t, 3, draws.Cols())
}

// TestModel_FitFailureKeepsState verifies a failed fit leaves the previous
// result untouched.
func TestModel_FitFailureKeepsState(t *testing.T) {
	g, err := simple.Polynomial("x", 1)
	require.NoError(t, err)
	m := generator.NewModel(g)

	xs, in := lineInputs(10)
	data := make([]float64, len(xs))
	for i, x := range xs {
		data[i] = x
	}
	require.NoError(t, m.Fit(in, data))
	kept := m.Result

	require.Error(t, m.Fit(in, data[:2]))
	require.Same(t, kept, m.Result)
}
