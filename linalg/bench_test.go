// SPDX-License-Identifier: MIT
package linalg_test

import (
	"testing"

	"github.com/christinahedges/lamatrix/linalg"
)

func benchMatrix(n, w int) *linalg.Dense {
	x, _ := linalg.NewDense(n, w)
	for i := 0; i < n; i++ {
		for j := 0; j < w; j++ {
			_ = x.Set(i, j, float64((i*w+j)%7)+0.5)
		}
	}

	return x
}

func BenchmarkGram_1000x16(b *testing.B) {
	x := benchMatrix(1000, 16)
	w := make([]float64, 1000)
	for i := range w {
		w[i] = 1
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = linalg.Gram(x, w)
	}
}

func BenchmarkCholesky_32(b *testing.B) {
	x := benchMatrix(256, 32)
	w := make([]float64, 256)
	for i := range w {
		w[i] = 1
	}
	a, _ := linalg.Gram(x, w)
	// Regularize the diagonal so the factorization always succeeds.
	for j := 0; j < 32; j++ {
		v, _ := a.At(j, j)
		_ = a.Set(j, j, v+1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = linalg.Cholesky(a)
	}
}
