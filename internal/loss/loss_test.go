// Package loss provides comprehensive unit tests for the quadratic cost.
package loss

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestQuadraticForward tests known cost values.
func TestQuadraticForward(t *testing.T) {
	q := Quadratic{}

	tests := []struct {
		name     string
		yhat     *mat.Dense
		y        *mat.Dense
		expected float64
	}{
		{
			"Perfect prediction",
			mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			0.0,
		},
		{
			"Single error",
			mat.NewDense(1, 2, []float64{1.5, 2.0}),
			mat.NewDense(1, 2, []float64{1.0, 2.0}),
			0.125, // 0.5 * 0.5^2
		},
		{
			"All elements off by one",
			mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			mat.NewDense(2, 2, []float64{0, 1, 2, 3}),
			2.0, // 0.5 * 4
		},
		{
			"Large error",
			mat.NewDense(1, 1, []float64{10}),
			mat.NewDense(1, 1, []float64{0}),
			50.0, // 0.5 * 100
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := q.Forward(tt.yhat, tt.y)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("Quadratic.Forward() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// TestQuadraticForwardZeroOnEqual tests that identical matrices cost
// exactly zero.
func TestQuadraticForwardZeroOnEqual(t *testing.T) {
	q := Quadratic{}
	y := mat.NewDense(3, 4, []float64{
		0.1, -2, 3, 0,
		7, 0.5, -0.5, 1,
		2, 2, 2, -9,
	})
	if got := q.Forward(y, y); got != 0 {
		t.Errorf("Quadratic.Forward(y, y) = %v, want 0", got)
	}
}

// TestQuadraticForwardSumsOverBatch tests the total (not averaged)
// convention: duplicating a sample column doubles the cost.
func TestQuadraticForwardSumsOverBatch(t *testing.T) {
	q := Quadratic{}

	yhat1 := mat.NewDense(2, 1, []float64{0.8, 0.3})
	y1 := mat.NewDense(2, 1, []float64{1.0, 0.0})
	single := q.Forward(yhat1, y1)

	yhat2 := mat.NewDense(2, 2, []float64{0.8, 0.8, 0.3, 0.3})
	y2 := mat.NewDense(2, 2, []float64{1.0, 1.0, 0.0, 0.0})
	double := q.Forward(yhat2, y2)

	if math.Abs(double-2*single) > 1e-12 {
		t.Errorf("cost of duplicated batch = %v, want %v", double, 2*single)
	}
}

// TestQuadraticBackward tests that the gradient is elementwise yhat - y.
func TestQuadraticBackward(t *testing.T) {
	q := Quadratic{}

	yhat := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	y := mat.NewDense(2, 3, []float64{0.5, 2, 4, 4, 4.5, 8})
	want := mat.NewDense(2, 3, []float64{0.5, 0, -1, 0, 0.5, -2})

	grad := q.Backward(yhat, y)
	if !mat.Equal(grad, want) {
		t.Errorf("Quadratic.Backward() = %v, want %v",
			mat.Formatted(grad), mat.Formatted(want))
	}
}

// TestQuadraticBackwardFreshMatrix tests that the gradient does not
// alias the inputs.
func TestQuadraticBackwardFreshMatrix(t *testing.T) {
	q := Quadratic{}

	yhat := mat.NewDense(1, 2, []float64{1, 2})
	y := mat.NewDense(1, 2, []float64{0, 0})
	grad := q.Backward(yhat, y)

	yhat.Set(0, 0, 99)
	if got := grad.At(0, 0); got != 1 {
		t.Errorf("gradient changed to %v after input mutation, want 1", got)
	}
}

// TestQuadraticForwardShapeMismatch tests error handling.
func TestQuadraticForwardShapeMismatch(t *testing.T) {
	q := Quadratic{}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for shape mismatch")
		}
	}()

	q.Forward(mat.NewDense(2, 2, nil), mat.NewDense(2, 3, nil))
}

// TestQuadraticBackwardShapeMismatch tests error handling.
func TestQuadraticBackwardShapeMismatch(t *testing.T) {
	q := Quadratic{}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for shape mismatch")
		}
	}()

	q.Backward(mat.NewDense(1, 2, nil), mat.NewDense(2, 1, nil))
}
