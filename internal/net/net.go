// Package net provides the network, its training loop, and callbacks.
package net

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/mdtdev/scratchnet/internal/activations"
	"github.com/mdtdev/scratchnet/internal/layer"
	"github.com/mdtdev/scratchnet/internal/loss"
	"github.com/mdtdev/scratchnet/internal/opt"
)

// Network is a stack of dense sigmoid layers trained by full-batch
// gradient descent. The struct holds parameters only; forward traces and
// gradients are explicit values produced and consumed by the methods.
type Network struct {
	layers []*layer.Dense
	loss   loss.Quadratic
	opt    opt.Optimizer
}

// New creates a network with one dense layer between each pair of
// consecutive sizes in dims, so dims [3, 4, 2] gives two layers shaped
// 4x3 and 2x4. Weights and biases start from the standard normal
// distribution; a nil src uses the shared global source.
func New(dims []int, optimizer opt.Optimizer, src rand.Source) (*Network, error) {
	if len(dims) < 2 {
		return nil, &DimsError{Dims: dims}
	}
	for _, d := range dims {
		if d < 1 {
			return nil, &DimsError{Dims: dims}
		}
	}

	layers := make([]*layer.Dense, len(dims)-1)
	for i := range layers {
		layers[i] = layer.NewDense(dims[i], dims[i+1], src)
	}
	return &Network{layers: layers, opt: optimizer}, nil
}

// Dims returns the layer sizes from input to output.
func (n *Network) Dims() []int {
	dims := make([]int, 0, len(n.layers)+1)
	dims = append(dims, n.layers[0].InSize())
	for _, l := range n.layers {
		dims = append(dims, l.OutSize())
	}
	return dims
}

// Layers returns the network's layers slice.
func (n *Network) Layers() []*layer.Dense {
	return n.layers
}

// Forward propagates a batch whose columns are samples through every
// layer. It returns the output activations together with the trace of
// intermediates the backward pass needs. The network itself is not
// modified.
func (n *Network) Forward(x mat.Matrix) (*mat.Dense, *Trace, error) {
	xr, xc := x.Dims()
	if in := n.layers[0].InSize(); xr != in {
		return nil, nil, &ShapeError{
			Op: "forward", Operand: "input",
			WantRows: in, WantCols: xc,
			GotRows: xr, GotCols: xc,
		}
	}

	tr := &Trace{
		Activations:    make([]*mat.Dense, 0, len(n.layers)+1),
		WeightedInputs: make([]*mat.Dense, 0, len(n.layers)),
	}
	a := mat.DenseCopyOf(x)
	tr.Activations = append(tr.Activations, a)
	for _, l := range n.layers {
		z, next := l.Forward(a)
		tr.WeightedInputs = append(tr.WeightedInputs, z)
		tr.Activations = append(tr.Activations, next)
		a = next
	}
	return a, tr, nil
}

// Predict runs a forward pass and returns only the output activations.
func (n *Network) Predict(x mat.Matrix) (*mat.Dense, error) {
	yhat, _, err := n.Forward(x)
	return yhat, err
}

// Loss computes the quadratic cost of the network's predictions on the
// batch (x, y) without changing any state.
func (n *Network) Loss(x, y mat.Matrix) (float64, error) {
	yhat, _, err := n.Forward(x)
	if err != nil {
		return 0, err
	}
	if err := n.checkTarget("loss", yhat, y); err != nil {
		return 0, err
	}
	return n.loss.Forward(yhat, y), nil
}

// checkTarget validates that y has exactly the shape of the output batch.
func (n *Network) checkTarget(op string, yhat *mat.Dense, y mat.Matrix) error {
	pr, pc := yhat.Dims()
	yr, yc := y.Dims()
	if yr != pr || yc != pc {
		return &ShapeError{
			Op: op, Operand: "target",
			WantRows: pr, WantCols: pc,
			GotRows: yr, GotCols: yc,
		}
	}
	return nil
}

// Backward computes the gradients of the quadratic cost w.r.t. every
// weight and bias, starting from the trace of a forward pass and the
// target batch. Gradients are summed over the batch columns, not
// averaged. Parameters are read but never modified.
func (n *Network) Backward(tr *Trace, y mat.Matrix) (*Gradients, error) {
	if tr == nil || len(tr.Activations) != len(n.layers)+1 || len(tr.WeightedInputs) != len(n.layers) {
		return nil, ErrMissingTrace
	}
	yhat := tr.Output()
	if err := n.checkTarget("backward", yhat, y); err != nil {
		return nil, err
	}

	L := len(n.layers)
	g := &Gradients{
		Weights: make([]*mat.Dense, L),
		Biases:  make([]*mat.Dense, L),
	}

	// delta enters each iteration as dL/da for that layer and is turned
	// into dL/dz by the elementwise sigmoid derivative.
	delta := n.loss.Backward(yhat, y)
	for l := L - 1; l >= 0; l-- {
		var sp mat.Dense
		sp.Apply(activations.ApplySigmoidPrime, tr.WeightedInputs[l])
		delta.MulElem(delta, &sp)

		aPrev := tr.Activations[l]
		gw := mat.NewDense(n.layers[l].OutSize(), n.layers[l].InSize(), nil)
		gw.Mul(delta, aPrev.T())
		g.Weights[l] = gw
		g.Biases[l] = sumRows(delta)

		if l > 0 {
			down := mat.NewDense(n.layers[l].InSize(), tr.Batch(), nil)
			down.Mul(n.layers[l].W.T(), delta)
			delta = down
		}
	}
	return g, nil
}

// sumRows sums a matrix across its columns into a single column vector,
// the matrix form of multiplying by a ones vector on the right.
func sumRows(m *mat.Dense) *mat.Dense {
	r, _ := m.Dims()
	out := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		out.Set(i, 0, floats.Sum(m.RawRowView(i)))
	}
	return out
}

// Step applies one optimizer update from g to every layer's weights and
// biases. After the step the network still holds nothing but parameters;
// the caller is expected to drop g.
func (n *Network) Step(g *Gradients) error {
	if g == nil || len(g.Weights) != len(n.layers) || len(g.Biases) != len(n.layers) {
		return ErrMissingGradients
	}
	for l, lay := range n.layers {
		if err := checkGradShape(l, lay.W, g.Weights[l], "weight gradient"); err != nil {
			return err
		}
		if err := checkGradShape(l, lay.B, g.Biases[l], "bias gradient"); err != nil {
			return err
		}
	}

	params := make([]*mat.Dense, 0, 2*len(n.layers))
	grads := make([]*mat.Dense, 0, 2*len(n.layers))
	for l, lay := range n.layers {
		params = append(params, lay.W, lay.B)
		grads = append(grads, g.Weights[l], g.Biases[l])
	}
	n.opt.Step(params, grads)
	return nil
}

func checkGradShape(l int, p, g *mat.Dense, name string) error {
	pr, pc := p.Dims()
	gr, gc := g.Dims()
	if gr != pr || gc != pc {
		return &ShapeError{
			Op: "step", Operand: fmt.Sprintf("layer %d %s", l, name),
			WantRows: pr, WantCols: pc,
			GotRows: gr, GotCols: gc,
		}
	}
	return nil
}

// Train runs one full-batch training step: forward, cost, backward,
// update. It returns the cost measured before the update. The trace and
// the gradients exist only inside the call.
func (n *Network) Train(x, y mat.Matrix) (float64, error) {
	yhat, tr, err := n.Forward(x)
	if err != nil {
		return 0, err
	}
	if err := n.checkTarget("train", yhat, y); err != nil {
		return 0, err
	}
	cost := n.loss.Forward(yhat, y)

	g, err := n.Backward(tr, y)
	if err != nil {
		return 0, err
	}
	if err := n.Step(g); err != nil {
		return 0, err
	}
	return cost, nil
}

// Fit trains on the fixed batch (x, y) for the given number of epochs,
// invoking callbacks around the loop. Every epoch repeats the same
// full-batch step; there is no shuffling, minibatching, or stopping
// condition.
func (n *Network) Fit(x, y mat.Matrix, epochs int, callbacks ...Callback) error {
	for _, c := range callbacks {
		c.OnTrainBegin(n)
	}
	for epoch := 0; epoch < epochs; epoch++ {
		for _, c := range callbacks {
			c.OnEpochBegin(epoch, n)
		}
		cost, err := n.Train(x, y)
		if err != nil {
			return err
		}
		for _, c := range callbacks {
			c.OnEpochEnd(epoch, cost, n)
		}
	}
	for _, c := range callbacks {
		c.OnTrainEnd(n)
	}
	return nil
}
