// Package activations provides the logistic sigmoid and its derivative.
package activations

import "math"

// Sigmoid computes the logistic function 1/(1+exp(-x)).
// The two branches keep the exp argument non-positive so large |x|
// cannot overflow.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	return 1 - 1/(1+math.Exp(x))
}

// SigmoidPrime computes the derivative sigmoid(x) * (1 - sigmoid(x)).
func SigmoidPrime(x float64) float64 {
	s := Sigmoid(x)
	return s * (1 - s)
}

// ApplySigmoid evaluates Sigmoid on one element. The signature matches
// mat.Dense.Apply so a whole batch can be activated in one call.
func ApplySigmoid(_, _ int, v float64) float64 {
	return Sigmoid(v)
}

// ApplySigmoidPrime evaluates SigmoidPrime on one element. The signature
// matches mat.Dense.Apply.
func ApplySigmoidPrime(_, _ int, v float64) float64 {
	return SigmoidPrime(v)
}
