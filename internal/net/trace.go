package net

import "gonum.org/v1/gonum/mat"

// Trace holds the intermediates of one forward pass over a batch whose
// columns are samples. For a network with L layers, Activations has L+1
// entries (index 0 is the input batch) and WeightedInputs has L entries
// (entry l is layer l's pre-activation W*a + B).
type Trace struct {
	Activations    []*mat.Dense
	WeightedInputs []*mat.Dense
}

// Batch returns the number of samples the trace was computed over.
func (t *Trace) Batch() int {
	_, n := t.Activations[0].Dims()
	return n
}

// Output returns the activations of the last layer.
func (t *Trace) Output() *mat.Dense {
	return t.Activations[len(t.Activations)-1]
}

// Gradients holds the cost gradients for every layer, summed over the
// batch. Weights[l] has the shape of layer l's weight matrix and
// Biases[l] the shape of its bias column.
type Gradients struct {
	Weights []*mat.Dense
	Biases  []*mat.Dense
}
