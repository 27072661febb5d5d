// Package report: LaTeX rendering of equations and coefficient tables.

package report

import (
	"fmt"
	"strings"

	"github.com/christinahedges/lamatrix/generator"
)

// meanSigma resolves the coefficient vectors to render: the fit posterior
// when available, the prior otherwise.
func meanSigma(g generator.Generator, res *generator.FitResult) ([]float64, []float64) {
	if res != nil {
		return res.Mu, res.Sigma
	}
	p := g.Prior()

	return p.Mu, p.Sigma
}

// Equation renders the model as a display equation:
//
//	\[f(\mathbf{x}) = w_{0} 1 + w_{1} \mathbf{x} + ...\]
//
// one weighted term per design-matrix column.
func Equation(g generator.Generator) string {
	args := g.ArgNames()
	sig := make([]string, len(args))
	for i, a := range args {
		sig[i] = fmt.Sprintf(`\mathbf{%s}`, a)
	}

	terms := g.Terms()
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = fmt.Sprintf(`w_{%d} %s`, i, t)
	}

	return fmt.Sprintf(`\[f(%s) = %s\]`, strings.Join(sig, ", "), strings.Join(parts, " + "))
}

// LatexTable renders the per-coefficient table: symbol, best fit ± error,
// prior ± error, one row per coefficient.
func LatexTable(g generator.Generator, res *generator.FitResult) string {
	mu, sigma := meanSigma(g, res)
	prior := g.Prior()

	var sb strings.Builder
	sb.WriteString("\\begin{table}[h!]\n\\centering\n")
	sb.WriteString("\\begin{tabular}{|c|c|c|}\n\\hline\n")
	sb.WriteString("Coefficient & Best Fit & Prior \\\\\\hline\n")
	for i := 0; i < g.Width(); i++ {
		fitMean, fitErr := generator.FormatMeasurement(mu[i], sigma[i])
		priorMean, priorErr := generator.FormatMeasurement(prior.Mu[i], prior.Sigma[i])
		sb.WriteString(fmt.Sprintf("w_{%d} & $%s \\pm %s$  & $%s \\pm %s$ \\\\\\hline\n",
			i, fitMean, fitErr, priorMean, priorErr))
	}
	sb.WriteString("\\end{tabular}\n\\end{table}")

	return sb.String()
}

// Latex renders the equation and the coefficient table, newline-joined.
func Latex(g generator.Generator, res *generator.FitResult) string {
	return Equation(g) + "\n" + LatexTable(g, res)
}
