// Package report: lipgloss-styled terminal rendering.

package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/christinahedges/lamatrix/generator"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	symbolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// measurement renders "mean ± err" using the shared significant-figure rules,
// with the LaTeX infinity replaced by the terminal glyph.
func measurement(mean, err float64) string {
	m, e := generator.FormatMeasurement(mean, err)
	if e == `\infty` {
		e = "∞"
	}

	return m + " ± " + e
}

// Table renders the coefficient table (symbol, best fit, prior) as a styled
// terminal box. When res is nil the prior doubles as the best fit, matching
// the unfitted-model semantics elsewhere.
func Table(g generator.Generator, res *generator.FitResult) string {
	mu, sigma := meanSigma(g, res)
	prior := g.Prior()

	// Collect raw cells first so the columns can be sized before styling.
	rows := make([][3]string, g.Width())
	for i := range rows {
		rows[i] = [3]string{
			fmt.Sprintf("w_%d", i),
			measurement(mu[i], sigma[i]),
			measurement(prior.Mu[i], prior.Sigma[i]),
		}
	}

	headers := [3]string{"Coefficient", "Best Fit", "Prior"}
	widths := [3]int{len(headers[0]), len(headers[1]), len(headers[2])}
	for _, r := range rows {
		for c := 0; c < 3; c++ {
			if n := len([]rune(r[c])); n > widths[c] {
				widths[c] = n
			}
		}
	}

	pad := func(s string, w int) string {
		return s + strings.Repeat(" ", w-len([]rune(s)))
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, headerStyle.Render(
		pad(headers[0], widths[0])+"  "+pad(headers[1], widths[1])+"  "+pad(headers[2], widths[2])))
	for _, r := range rows {
		lines = append(lines,
			symbolStyle.Render(pad(r[0], widths[0]))+"  "+
				cellStyle.Render(pad(r[1], widths[1]))+"  "+
				cellStyle.Render(pad(r[2], widths[2])))
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}

// Summary renders a one-line description of the model and its fit state,
// e.g. "Polynomial[n, 3] · fitted" or "· prior only" before a fit.
func Summary(g generator.Generator, res *generator.FitResult) string {
	state := "prior only"
	if res != nil {
		state = "fitted"
	}
	name := fmt.Sprintf("%T", g)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "Generator")

	return summaryStyle.Render(fmt.Sprintf("%s[n, %d] · %s", name, g.Width(), state))
}
