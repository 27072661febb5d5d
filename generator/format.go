// Package generator: significant-figure formatting for reports.

package generator

import (
	"math"
	"strconv"
)

// infLatex is the rendering used when a measurement cannot be formatted.
const infLatex = `\infty`

// FormatMeasurement renders a mean and its 1-sigma error with matching
// decimal places, choosing the precision from the first significant digit of
// the error.
//
// Edge cases:
//   - Any Inf/NaN in mean or err ⇒ ("0", `\infty`).
//   - err == 0 ⇒ zero decimal places.
//   - err >= 10 ⇒ precision clamps at zero decimal places (integer rendering).
//
// Complexity: O(1).
func FormatMeasurement(mean, err float64) (string, string) {
	if math.IsInf(mean, 0) || math.IsInf(err, 0) || math.IsNaN(mean) || math.IsNaN(err) {
		return "0", infLatex
	}

	decimals := 0
	if err != 0 {
		decimals = -int(math.Floor(math.Log10(math.Abs(err))))
		if decimals < 0 {
			decimals = 0 // errors above 10 round to integers
		}
	}

	return strconv.FormatFloat(mean, 'f', decimals, 64),
		strconv.FormatFloat(err, 'f', decimals, 64)
}
