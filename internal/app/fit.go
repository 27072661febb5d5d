package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/report"
)

var (
	fitModelPath string
	fitDataPath  string
	fitOutPath   string
	fitDataCol   string
	fitErrCol    string
	fitQuiet     bool

	fitCmd = &cobra.Command{
		Use:   "fit",
		Short: "Fit a model to CSV data",
		Long: `Fit the model described in a YAML file to the data in a CSV file.

The CSV must carry a header row. Every input name of the model must
appear as a column; the dependent variable defaults to column "y" and
per-point uncertainties are read from --err-col when given, otherwise
all points are weighted equally.

The fitted model (posterior mean, sigmas and covariance) is written
back as YAML so it can be rendered or sampled later.`,
		Example: `  # Fit with uniform weights
  lamatrix fit --model model.yaml --data lc.csv --out fitted.yaml

  # Fit with per-point errors from the "flux_err" column
  lamatrix fit --model model.yaml --data lc.csv --data-col flux --err-col flux_err --out fitted.yaml`,
		RunE: runFit,
	}
)

func init() {
	fitCmd.Flags().StringVar(&fitModelPath, "model", "", "model YAML file (required)")
	fitCmd.Flags().StringVar(&fitDataPath, "data", "", "data CSV file (required)")
	fitCmd.Flags().StringVar(&fitOutPath, "out", "", "output YAML file for the fitted model (required)")
	fitCmd.Flags().StringVar(&fitDataCol, "data-col", "y", "name of the dependent-variable column")
	fitCmd.Flags().StringVar(&fitErrCol, "err-col", "", "name of the uncertainty column (optional)")
	fitCmd.Flags().BoolVar(&fitQuiet, "quiet", false, "suppress the fit summary")
	_ = fitCmd.MarkFlagRequired("model")
	_ = fitCmd.MarkFlagRequired("data")
	_ = fitCmd.MarkFlagRequired("out")
}

func runFit(cmd *cobra.Command, args []string) error {
	g, _, err := loadModel(fitModelPath)
	if err != nil {
		return err
	}

	cols, err := loadCSV(fitDataPath)
	if err != nil {
		return err
	}

	in, err := inputsFromColumns(g, cols)
	if err != nil {
		return err
	}

	data, ok := cols[fitDataCol]
	if !ok {
		return fmt.Errorf("data file is missing the dependent-variable column %q", fitDataCol)
	}

	var opts []generator.FitOption
	if fitErrCol != "" {
		errs, ok := cols[fitErrCol]
		if !ok {
			return fmt.Errorf("data file is missing the uncertainty column %q", fitErrCol)
		}
		opts = append(opts, generator.WithErrors(errs))
	}

	res, err := generator.Fit(g, in, data, opts...)
	if err != nil {
		return fmt.Errorf("fit failed: %w", err)
	}

	if err := saveModel(fitOutPath, g, res); err != nil {
		return err
	}

	if !fitQuiet {
		fmt.Println(report.Summary(g, res))
		fmt.Println(report.Table(g, res))
	}

	return nil
}
