// Package loss provides benchmarks for the quadratic cost.
package loss

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// randomBatch builds a matrix of uniform random values.
func randomBatch(r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rand.Float64()
	}
	return mat.NewDense(r, c, data)
}

// BenchmarkQuadraticForward benchmarks the cost of a 10x100 batch.
func BenchmarkQuadraticForward(b *testing.B) {
	q := Quadratic{}
	yhat := randomBatch(10, 100)
	y := randomBatch(10, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Forward(yhat, y)
	}
}

// BenchmarkQuadraticBackward benchmarks the gradient of a 10x100 batch.
func BenchmarkQuadraticBackward(b *testing.B) {
	q := Quadratic{}
	yhat := randomBatch(10, 100)
	y := randomBatch(10, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Backward(yhat, y)
	}
}
