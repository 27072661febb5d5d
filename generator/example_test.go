package generator_test

import (
	"fmt"

	"github.com/christinahedges/lamatrix/generator"
	"github.com/christinahedges/lamatrix/simple"
)

// ExampleFit fits a straight line y = 1 + 2x and prints the recovered
// coefficients.
func ExampleFit() {
	xs := make([]float64, 50)
	data := make([]float64, 50)
	for i := range xs {
		xs[i] = float64(i) / 49
		data[i] = 1 + 2*xs[i]
	}

	g, _ := simple.Polynomial("x", 1)
	res, _ := generator.Fit(g, generator.NewInputs("x", xs), data)

	fmt.Printf("intercept: %.3f\n", res.Mu[0])
	fmt.Printf("slope:     %.3f\n", res.Mu[1])
	// Output:
	// intercept: 1.000
	// slope:     2.000
}

// ExampleModel demonstrates the fit-then-evaluate workflow on a model
// wrapper.
func ExampleModel() {
	xs := []float64{0, 0.5, 1}
	data := []float64{3, 3, 3}

	g, _ := simple.Constant("x")
	m := generator.NewModel(g)
	_ = m.Fit(generator.NewInputs("x", xs), data)

	y, _ := m.Evaluate(generator.NewInputs("x", []float64{10}))
	fmt.Printf("prediction: %.1f\n", y[0])
	// Output:
	// prediction: 3.0
}
