package serialize_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/christinahedges/lamatrix/astro"
	"github.com/christinahedges/lamatrix/combined"
	"github.com/christinahedges/lamatrix/gauss"
	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/linalg"
	"github.com/christinahedges/lamatrix/serialize"
	"github.com/christinahedges/lamatrix/simple"
	"github.com/christinahedges/lamatrix/spline"
)

func roundTrip(t *testing.T, g generator.Generator, res *generator.FitResult) (generator.Generator, *generator.FitResult) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, serialize.Save(&buf, g, res))

	g2, res2, err := serialize.Load(&buf)
	require.NoError(t, err)

	return g2, res2
}

// TestRoundTrip_Polynomial verifies kind, parameters and prior survive a
// save/load cycle.
func TestRoundTrip_Polynomial(t *testing.T) {
	prior, err := generator.PriorFromSlices([]float64{1, 0}, []float64{0.5, math.Inf(1)})
	require.NoError(t, err)
	g, err := simple.Polynomial("x", 1, simple.WithPrior(prior))
	require.NoError(t, err)

	g2, res2 := roundTrip(t, g, nil)
	require.Nil(t, res2)

	p, ok := g2.(*simple.PolynomialGenerator)
	require.True(t, ok)
	require.Equal(t, "x", p.Arg())
	require.Equal(t, 1, p.Degree())
	require.True(t, p.HasIntercept())
	require.Equal(t, []float64{1, 0}, p.Prior().Mu)
	require.Equal(t, 0.5, p.Prior().Sigma[0])
	require.True(t, math.IsInf(p.Prior().Sigma[1], 1)) // .inf survives YAML
}

// TestRoundTrip_WithoutIntercept verifies the intercept flag is not lost
// on generators that drop the ones column.
func TestRoundTrip_WithoutIntercept(t *testing.T) {
	g, err := simple.Sinusoid("phi", 2, simple.WithoutIntercept())
	require.NoError(t, err)

	g2, _ := roundTrip(t, g, nil)
	s, ok := g2.(*simple.SinusoidGenerator)
	require.True(t, ok)
	require.Equal(t, 2, s.Harmonics())
	require.False(t, s.HasIntercept())
	require.Equal(t, g.Width(), s.Width())
}

// TestRoundTrip_FitState verifies posterior mean, sigmas and covariance
// survive a save/load cycle.
func TestRoundTrip_FitState(t *testing.T) {
	g, err := simple.Polynomial("x", 1)
	require.NoError(t, err)

	xs := make([]float64, 20)
	data := make([]float64, 20)
	for i := range xs {
		xs[i] = float64(i)
		data[i] = 3 + 0.5*xs[i]
	}
	res, err := generator.Fit(g, generator.NewInputs("x", xs), data)
	require.NoError(t, err)

	g2, res2 := roundTrip(t, g, res)
	require.NotNil(t, res2)
	require.Equal(t, g.Width(), res2.Width)
	require.InDeltaSlice(t, res.Mu, res2.Mu, 1e-12)
	require.InDeltaSlice(t, res.Sigma, res2.Sigma, 1e-12)
	require.Equal(t, res.Cov.Rows(), res2.Cov.Rows())
	for i := 0; i < res.Cov.Rows(); i++ {
		want, _ := res.Cov.Row(i)
		got, _ := res2.Cov.Row(i)
		require.InDeltaSlice(t, want, got, 1e-12)
	}

	// The loaded model evaluates identically.
	in := generator.NewInputs("x", []float64{100})
	y1, err := generator.Evaluate(g, in, res.Mu)
	require.NoError(t, err)
	y2, err := generator.Evaluate(g2, in, res2.Mu)
	require.NoError(t, err)
	require.InDelta(t, y1[0], y2[0], 1e-12)
}

// TestRoundTrip_EveryLeafKind round-trips one generator of every leaf kind.
func TestRoundTrip_EveryLeafKind(t *testing.T) {
	mk := func(g generator.Generator, err error) generator.Generator {
		t.Helper()
		require.NoError(t, err)

		return g
	}

	leaves := []generator.Generator{
		mk(simple.Constant("t")),
		mk(simple.Polynomial("t", 3)),
		mk(simple.Sinusoid("t", 2)),
		mk(gauss.Gaussian("x", 1.5, 0.3)),
		mk(gauss.DGaussian("x", 1.5, 0.3)),
		mk(gauss.Gaussian2D("x", "y", 0, 1, 2, 3)),
		mk(spline.BSpline("t", []float64{0, 1, 2, 4}, 2)),
		mk(astro.Flare("t", 5, 0.2, 1.5)),
		mk(astro.ExponentialRamp("t", 2)),
	}

	for _, g := range leaves {
		g2, _ := roundTrip(t, g, nil)
		require.IsType(t, g, g2)
		require.Equal(t, g.Width(), g2.Width())
		require.Equal(t, g.ArgNames(), g2.ArgNames())
		require.Equal(t, g.Terms(), g2.Terms())
	}
}

// TestRoundTrip_Composite verifies nested stack and cross-term documents.
func TestRoundTrip_Composite(t *testing.T) {
	p, err := simple.Polynomial("x", 2)
	require.NoError(t, err)
	f, err := astro.Flare("t", 3, 0.1, 1)
	require.NoError(t, err)
	s, err := combined.Stack(p, f)
	require.NoError(t, err)

	g2, _ := roundTrip(t, s, nil)
	s2, ok := g2.(*combined.StackedGenerator)
	require.True(t, ok)
	require.Equal(t, s.Width(), s2.Width())
	require.Equal(t, s.ArgNames(), s2.ArgNames())
	require.Equal(t, s.Terms(), s2.Terms())

	ct, err := combined.Crossterm(p, f)
	require.NoError(t, err)
	g3, _ := roundTrip(t, ct, nil)
	ct2, ok := g3.(*combined.CrosstermGenerator)
	require.True(t, ok)
	require.Equal(t, ct.Width(), ct2.Width())
	require.Equal(t, ct.Terms(), ct2.Terms())
}

// TestLoad_UnknownKind rejects documents with an unrecognized kind.
func TestLoad_UnknownKind(t *testing.T) {
	doc := "kind: quasar\nargs: [t]\n"
	_, _, err := serialize.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, serialize.ErrUnknownKind)
}

// TestLoad_BadDocuments covers structural validation on load.
func TestLoad_BadDocuments(t *testing.T) {
	// Polynomial without its argument.
	_, _, err := serialize.Load(strings.NewReader("kind: polynomial\nparameters:\n  degree: 2\n"))
	require.ErrorIs(t, err, serialize.ErrBadDocument)

	// Stack with a single component.
	doc := `kind: stack
components:
  - kind: constant
    args: [t]
`
	_, _, err = serialize.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, serialize.ErrBadDocument)

	// Constructor validation still applies to loaded parameters.
	_, _, err = serialize.Load(strings.NewReader("kind: polynomial\nargs: [x]\nparameters:\n  degree: -1\n"))
	require.ErrorIs(t, err, simple.ErrBadDegree)

	// Fit state whose width disagrees with the generator.
	doc = `kind: constant
args: [t]
fit:
  mu: [1, 2]
  sigma: [1, 2]
`
	_, _, err = serialize.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, serialize.ErrBadDocument)
}

// TestSave_UnknownGenerator rejects generator types outside the built-in
// set.
func TestSave_UnknownGenerator(t *testing.T) {
	var buf bytes.Buffer
	err := serialize.Save(&buf, fakeGenerator{}, nil)
	require.ErrorIs(t, err, serialize.ErrUnknownKind)
}

// fakeGenerator is a minimal out-of-set implementation for the unknown-kind
// path.
type fakeGenerator struct{}

func (fakeGenerator) DesignMatrix(generator.Inputs) (*linalg.Dense, error) { return nil, nil }
func (fakeGenerator) Width() int                                           { return 1 }
func (fakeGenerator) NVectors() int                                        { return 0 }
func (fakeGenerator) ArgNames() []string                                   { return nil }
func (fakeGenerator) Terms() []string                                      { return []string{"1"} }
func (fakeGenerator) Prior() generator.Prior                               { return generator.NewPrior(1) }
