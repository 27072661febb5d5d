package generator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/christinahedges/lamatrix/generator"
)

// TestFormatMeasurement_Precision verifies the decimal count follows the
// first significant digit of the error.
func TestFormatMeasurement_Precision(t *testing.T) {
	cases := []struct {
		mean, err    float64
		wantM, wantE string
	}{
		{1.23456, 0.01, "1.23", "0.01"},
		{1.23456, 0.1, "1.2", "0.1"},
		{10.5, 1.0, "10", "1"},
		{3.14159, 0.004, "3.142", "0.004"},
		{100.4, 25, "100", "25"}, // error >= 10 clamps to integers
		{-2.5, 0.2, "-2.5", "0.2"},
		{7.0, 0, "7", "0"}, // zero error renders integers
	}
	for _, tc := range cases {
		m, e := generator.FormatMeasurement(tc.mean, tc.err)
		require.Equal(t, tc.wantM, m, "mean for (%v, %v)", tc.mean, tc.err)
		require.Equal(t, tc.wantE, e, "err for (%v, %v)", tc.mean, tc.err)
	}
}

// TestFormatMeasurement_NonFinite verifies Inf/NaN measurements render as
// the unconstrained marker.
func TestFormatMeasurement_NonFinite(t *testing.T) {
	for _, pair := range [][2]float64{
		{0, math.Inf(1)},
		{math.Inf(1), 1},
		{math.NaN(), 1},
		{1, math.NaN()},
	} {
		m, e := generator.FormatMeasurement(pair[0], pair[1])
		require.Equal(t, "0", m)
		require.Equal(t, `\infty`, e)
	}
}
