package app

import (
	"github.com/spf13/cobra"
)

// RootCmd is the root command for the lamatrix CLI.
var RootCmd = &cobra.Command{
	Use:   "lamatrix",
	Short: "Fit linear models built from design-matrix generators",
	Long: `lamatrix builds design matrices from simple components (polynomials,
sinusoids, Gaussians, splines, flares), fits them to data by weighted
least squares with Gaussian priors, and renders the results.

Models are described in YAML and data is exchanged as CSV with a header
row; column names must match the model's input names.

Typical session:
  1. Write model.yaml describing the generator and its priors
  2. lamatrix fit --model model.yaml --data data.csv --out fitted.yaml
  3. lamatrix show --model fitted.yaml
  4. lamatrix sample --model fitted.yaml --data grid.csv --draws 50`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(fitCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(sampleCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
