// Package opt provides optimization algorithms.
package opt

import "gonum.org/v1/gonum/mat"

// Optimizer updates parameter matrices from matching gradient matrices.
type Optimizer interface {
	// Step updates each parameter in place from the gradient at the
	// same index. Both slices must have the same length and matching
	// shapes pairwise.
	Step(params, grads []*mat.Dense)
}

// SGD is plain gradient descent with a constant step size.
type SGD struct {
	LearningRate float64
}

// Step applies params[i] = params[i] - lr*grads[i] in place.
func (s SGD) Step(params, grads []*mat.Dense) {
	for i, p := range params {
		var scaled mat.Dense
		scaled.Scale(s.LearningRate, grads[i])
		p.Sub(p, &scaled)
	}
}
