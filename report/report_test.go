package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/report"
	"github.com/christinahedges/lamatrix/simple"
)

// TestEquation_Polynomial verifies the rendered display equation.
func TestEquation_Polynomial(t *testing.T) {
	g, err := simple.Polynomial("x", 2)
	require.NoError(t, err)

	eq := report.Equation(g)
	require.Equal(t,
		`\[f(\mathbf{x}) = w_{0} 1 + w_{1} \mathbf{x} + w_{2} \mathbf{x}^{2}\]`,
		eq)
}

// TestLatexTable_PriorFallback verifies the table renders from the prior
// when no fit result is given.
func TestLatexTable_PriorFallback(t *testing.T) {
	prior, err := generator.PriorFromScalars(1, 2, 0.5)
	require.NoError(t, err)
	g, err := simple.Constant("x", simple.WithPrior(prior))
	require.NoError(t, err)

	table := report.LatexTable(g, nil)
	require.Contains(t, table, `\begin{tabular}{|c|c|c|}`)
	require.Contains(t, table, "Coefficient & Best Fit & Prior")
	require.Contains(t, table, `w_{0} & $2.0 \pm 0.5$  & $2.0 \pm 0.5$`)
}

// TestLatexTable_UnconstrainedPrior verifies +Inf prior sigmas render as
// the infinity marker.
func TestLatexTable_UnconstrainedPrior(t *testing.T) {
	g, err := simple.Constant("x")
	require.NoError(t, err)

	table := report.LatexTable(g, nil)
	require.Contains(t, table, `\infty`)
}

// TestLatexTable_FitResult renders fitted coefficients with matched
// precision.
func TestLatexTable_FitResult(t *testing.T) {
	g, err := simple.Polynomial("x", 1)
	require.NoError(t, err)

	xs := make([]float64, 50)
	errs := make([]float64, 50)
	data := make([]float64, 50)
	for i := range xs {
		xs[i] = float64(i) / 49
		errs[i] = 0.01
		data[i] = 1 + 2*xs[i]
	}
	res, err := generator.Fit(g, generator.NewInputs("x", xs), data, generator.WithErrors(errs))
	require.NoError(t, err)

	table := report.LatexTable(g, res)
	require.Contains(t, table, "w_{0} & $1.00")
	require.Contains(t, table, "w_{1} & $2.0")
}

// TestLatex_Concatenation verifies the combined surface is the equation
// followed by the table.
func TestLatex_Concatenation(t *testing.T) {
	g, err := simple.Constant("x")
	require.NoError(t, err)

	out := report.Latex(g, nil)
	parts := strings.SplitN(out, "\n", 2)
	require.Equal(t, report.Equation(g), parts[0])
	require.Contains(t, parts[1], `\begin{table}`)
}

// TestTable_Content verifies the terminal table carries the coefficient
// rows and header labels.
func TestTable_Content(t *testing.T) {
	prior, err := generator.PriorFromScalars(2, 0, 1)
	require.NoError(t, err)
	g, err := simple.Polynomial("x", 1, simple.WithPrior(prior))
	require.NoError(t, err)

	out := report.Table(g, nil)
	require.Contains(t, out, "Coefficient")
	require.Contains(t, out, "Best Fit")
	require.Contains(t, out, "Prior")
	require.Contains(t, out, "w_0")
	require.Contains(t, out, "w_1")
	require.Contains(t, out, "±")
}

// TestSummary_States verifies the fitted / prior-only state line.
func TestSummary_States(t *testing.T) {
	g, err := simple.Polynomial("x", 2)
	require.NoError(t, err)

	require.Contains(t, report.Summary(g, nil), "prior only")
	require.Contains(t, report.Summary(g, nil), "Polynomial")

	res := &generator.FitResult{
		Mu:    []float64{0, 0, 0},
		Sigma: []float64{1, 1, 1},
		Width: 3,
	}
	require.Contains(t, report.Summary(g, res), "fitted")
}
