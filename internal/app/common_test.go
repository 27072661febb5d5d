package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/simple"
)

// TestCSV_RoundTrip verifies named columns survive a write/read cycle.
func TestCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	cols := map[string][]float64{
		"x": {0, 0.5, 1},
		"y": {1, 2.25, 3.5},
	}
	require.NoError(t, writeCSV(path, []string{"x", "y"}, cols))

	got, err := loadCSV(path)
	require.NoError(t, err)
	require.Equal(t, cols["x"], got["x"])
	require.Equal(t, cols["y"], got["y"])
}

// TestLoadCSV_Malformed covers header/row validation.
func TestLoadCSV_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n1,notanumber\n"), 0o644))
	_, err := loadCSV(path)
	require.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("x,y\n"), 0o644))
	_, err = loadCSV(empty)
	require.Error(t, err)
}

// TestModel_SaveLoad verifies the YAML model file round-trip used by the
// fit and show commands.
func TestModel_SaveLoad(t *testing.T) {
	g, err := simple.Polynomial("x", 2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, saveModel(path, g, nil))

	g2, res, err := loadModel(path)
	require.NoError(t, err)
	require.Nil(t, res)
	require.Equal(t, g.Width(), g2.Width())
}

// TestInputsFromColumns reports the missing column by name.
func TestInputsFromColumns(t *testing.T) {
	g, err := simple.Polynomial("x", 1)
	require.NoError(t, err)

	cols := map[string][]float64{"t": {1, 2}}
	_, err = inputsFromColumns(g, cols)
	require.ErrorContains(t, err, `"x"`)

	cols["x"] = []float64{1, 2}
	in, err := inputsFromColumns(g, cols)
	require.NoError(t, err)
	require.Equal(t, generator.Inputs{"x": {1, 2}}, in)
}
