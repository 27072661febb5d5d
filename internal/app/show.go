package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/christinahedges/lamatrix/report"
)

var (
	showModelPath string
	showLatex     bool

	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Render a model and its coefficients",
		Long: `Render the model from a YAML file: the equation and the
per-coefficient table (best fit and prior).

For an unfitted model the prior doubles as the best fit. With --latex
the output is a LaTeX display equation plus table, ready to paste into
a paper.`,
		Example: `  # Styled terminal table
  lamatrix show --model fitted.yaml

  # LaTeX for a manuscript
  lamatrix show --model fitted.yaml --latex`,
		RunE: runShow,
	}
)

func init() {
	showCmd.Flags().StringVar(&showModelPath, "model", "", "model YAML file (required)")
	showCmd.Flags().BoolVar(&showLatex, "latex", false, "emit LaTeX instead of a terminal table")
	_ = showCmd.MarkFlagRequired("model")
}

func runShow(cmd *cobra.Command, args []string) error {
	g, res, err := loadModel(showModelPath)
	if err != nil {
		return err
	}

	if showLatex {
		fmt.Println(report.Latex(g, res))

		return nil
	}

	fmt.Println(report.Summary(g, res))
	fmt.Println(report.Table(g, res))

	return nil
}
