package app

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/serialize"
)

// loadModel reads a YAML model file and returns the generator plus any
// persisted fit state.
func loadModel(path string) (generator.Generator, *generator.FitResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer f.Close()

	g, res, err := serialize.Load(f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load model: %w", err)
	}

	return g, res, nil
}

// saveModel writes the generator and fit state back to a YAML file.
func saveModel(path string, g generator.Generator, res *generator.FitResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	defer f.Close()

	if err := serialize.Save(f, g, res); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	return nil
}

// loadCSV reads a CSV file with a header row into named float64 columns.
func loadCSV(path string) (map[string][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("data file %s has no rows", path)
	}

	header := records[0]
	cols := make(map[string][]float64, len(header))
	for _, name := range header {
		cols[name] = make([]float64, 0, len(records)-1)
	}
	for line, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("data file %s: row %d has %d fields, want %d",
				path, line+2, len(rec), len(header))
		}
		for i, field := range rec {
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				return nil, fmt.Errorf("data file %s: row %d column %q: %w",
					path, line+2, header[i], perr)
			}
			cols[header[i]] = append(cols[header[i]], v)
		}
	}

	return cols, nil
}

// writeCSV writes named columns to a CSV file with a header row. All columns
// must have equal length; the caller controls the column order.
func writeCSV(path string, names []string, cols map[string][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(names); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	n := len(cols[names[0]])
	rec := make([]string, len(names))
	for i := 0; i < n; i++ {
		for j, name := range names {
			rec[j] = strconv.FormatFloat(cols[name][i], 'g', -1, 64)
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	w.Flush()

	return w.Error()
}

// inputsFromColumns assembles the generator's inputs from loaded CSV columns,
// failing with the missing column name when one is absent.
func inputsFromColumns(g generator.Generator, cols map[string][]float64) (generator.Inputs, error) {
	in := make(generator.Inputs, g.NVectors())
	for _, name := range g.ArgNames() {
		col, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("data file is missing column %q required by the model", name)
		}
		in[name] = col
	}

	return in, nil
}
