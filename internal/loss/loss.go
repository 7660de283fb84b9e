// Package loss provides the quadratic cost used for training.
package loss

import "gonum.org/v1/gonum/mat"

// Quadratic is the half total squared error over a batch:
//
//	L = 0.5 * sum((yhat - y)^2)
//
// summed over every unit and every sample. Nothing is averaged, so the
// cost of a batch is the sum of the costs of its columns.
type Quadratic struct{}

// Forward computes 0.5 * sum((yhat - y)^2) over all elements.
// Panics if the two matrices do not have the same shape.
func (Quadratic) Forward(yhat, y mat.Matrix) float64 {
	pr, pc := yhat.Dims()
	yr, yc := y.Dims()
	if pr != yr || pc != yc {
		panic("loss: prediction and target must have the same shape")
	}

	var diff mat.Dense
	diff.Sub(yhat, y)
	// The Frobenius norm squared is exactly sum(diff^2).
	f := mat.Norm(&diff, 2)
	return 0.5 * f * f
}

// Backward computes the gradient of the cost w.r.t. the prediction,
// which for the quadratic cost is simply yhat - y.
// Panics if the two matrices do not have the same shape.
func (Quadratic) Backward(yhat, y mat.Matrix) *mat.Dense {
	pr, pc := yhat.Dims()
	yr, yc := y.Dims()
	if pr != yr || pc != yc {
		panic("loss: prediction and target must have the same shape")
	}

	grad := mat.NewDense(pr, pc, nil)
	grad.Sub(yhat, y)
	return grad
}
