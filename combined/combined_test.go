package combined_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/christinahedges/lamatrix/combined"
	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/simple"
)

// TestStack_WidthArgsTerms verifies column counts, the arg-name union and
// term concatenation.
func TestStack_WidthArgsTerms(t *testing.T) {
	p, err := simple.Polynomial("x", 2)
	require.NoError(t, err)
	s, err := simple.Sinusoid("phi", 1, simple.WithoutIntercept())
	require.NoError(t, err)
	p2, err := simple.Polynomial("x", 1, simple.WithoutIntercept())
	require.NoError(t, err)

	g, err := combined.Stack(p, s, p2)
	require.NoError(t, err)

	require.Equal(t, 3+2+1, g.Width())
	require.Equal(t, []string{"x", "phi"}, g.ArgNames()) // union, first occurrence wins
	require.Equal(t, 2, g.NVectors())
	require.Len(t, g.Terms(), g.Width())
	require.Equal(t, "1", g.Terms()[0])
}

// TestStack_DesignMatrix verifies the column-wise concatenation against the
// component matrices.
func TestStack_DesignMatrix(t *testing.T) {
	p, err := simple.Polynomial("x", 1)
	require.NoError(t, err)
	c, err := simple.Constant("x")
	require.NoError(t, err)

	g, err := combined.Stack(p, c)
	require.NoError(t, err)

	in := generator.NewInputs("x", []float64{2, 3})
	x, err := g.DesignMatrix(in)
	require.NoError(t, err)
	require.Equal(t, 2, x.Rows())
	require.Equal(t, 3, x.Cols())

	row, err := x.Row(1)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 3, 1}, row, 1e-12)
}

// TestStack_PriorConcat verifies the stacked prior is the component priors
// in component order.
func TestStack_PriorConcat(t *testing.T) {
	tight, err := generator.PriorFromScalars(1, 5, 0.1)
	require.NoError(t, err)
	c, err := simple.Constant("x", simple.WithPrior(tight))
	require.NoError(t, err)
	p, err := simple.Polynomial("x", 1, simple.WithoutIntercept())
	require.NoError(t, err)

	g, err := combined.Stack(c, p)
	require.NoError(t, err)

	prior := g.Prior()
	require.Equal(t, 2, prior.Width())
	require.Equal(t, 5.0, prior.Mu[0])
	require.Equal(t, 0.1, prior.Sigma[0])
	require.True(t, math.IsInf(prior.Sigma[1], 1))
}

// TestStack_Validation covers the component rules.
func TestStack_Validation(t *testing.T) {
	c, err := simple.Constant("x")
	require.NoError(t, err)

	_, err = combined.Stack(c)
	require.ErrorIs(t, err, combined.ErrTooFew)

	_, err = combined.Stack(c, nil)
	require.ErrorIs(t, err, combined.ErrNilComponent)
}

// TestStack_FitsCompositeModel end-to-end: line plus sinusoid recovered
// from synthetic data.
func TestStack_FitsCompositeModel(t *testing.T) {
	p, err := simple.Polynomial("x", 1)
	require.NoError(t, err)
	s, err := simple.Sinusoid("x", 1, simple.WithoutIntercept())
	require.NoError(t, err)
	g, err := combined.Stack(p, s)
	require.NoError(t, err)

	n := 200
	xs := make([]float64, n)
	data := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) / float64(n) * 4 * math.Pi
		data[i] = 0.5 + 0.25*xs[i] + 2*math.Sin(xs[i])
	}

	res, err := generator.Fit(g, generator.NewInputs("x", xs), data)
	require.NoError(t, err)
	require.InDelta(t, 0.5, res.Mu[0], 1e-6)
	require.InDelta(t, 0.25, res.Mu[1], 1e-6)
	require.InDelta(t, 2.0, res.Mu[2], 1e-6) // sin amplitude
	require.InDelta(t, 0.0, res.Mu[3], 1e-6) // cos amplitude
}

// TestCrossterm_WidthAndValues verifies the i-major pairwise products.
func TestCrossterm_WidthAndValues(t *testing.T) {
	a, err := simple.Polynomial("x", 1)
	require.NoError(t, err)
	b, err := simple.Polynomial("y", 1)
	require.NoError(t, err)

	g, err := combined.Crossterm(a, b)
	require.NoError(t, err)
	require.Equal(t, 4, g.Width())
	require.Equal(t, []string{"x", "y"}, g.ArgNames())

	in := generator.NewInputs("x", []float64{2}, "y", []float64{3})
	x, err := g.DesignMatrix(in)
	require.NoError(t, err)
	row, err := x.Row(0)
	require.NoError(t, err)
	// Columns: 1·1, 1·y, x·1, x·y.
	require.InDeltaSlice(t, []float64{1, 3, 2, 6}, row, 1e-12)
}

// TestCrossterm_TermsElideOnes verifies the "1" factors drop out of the
// rendered terms.
func TestCrossterm_TermsElideOnes(t *testing.T) {
	a, err := simple.Polynomial("x", 1)
	require.NoError(t, err)
	b, err := simple.Polynomial("y", 1)
	require.NoError(t, err)

	g, err := combined.Crossterm(a, b)
	require.NoError(t, err)
	require.Equal(t, []string{
		"1",
		`\mathbf{y}`,
		`\mathbf{x}`,
		`\mathbf{x} \cdot \mathbf{y}`,
	}, g.Terms())
}

// TestCrossterm_Validation covers nil factors and prior width.
func TestCrossterm_Validation(t *testing.T) {
	a, err := simple.Constant("x")
	require.NoError(t, err)

	_, err = combined.Crossterm(a, nil)
	require.ErrorIs(t, err, combined.ErrNilComponent)

	short := generator.NewPrior(2)
	b, err := simple.Polynomial("y", 1)
	require.NoError(t, err)
	_, err = combined.Crossterm(a, b, combined.WithPrior(short))
	require.NoError(t, err) // widths match: 1×2

	_, err = combined.Crossterm(b, b, combined.WithPrior(short))
	require.ErrorIs(t, err, generator.ErrPriorWidth) // 2×2 ≠ 2
}
