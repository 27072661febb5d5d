// Package report renders generators and fit results for humans.
//
// Two surfaces are provided:
//
//   - LaTeX: Equation (the model as a weighted sum of terms), LatexTable
//     (per-coefficient best fit and prior), and Latex (both together) —
//     ready to paste into a paper or notebook.
//   - Terminal: Table and Summary, styled with lipgloss for quick inspection
//     from scripts and the lamatrix CLI.
//
// Both surfaces fall back to the prior when no fit result is supplied, so a
// freshly constructed model renders meaningfully.
package report
