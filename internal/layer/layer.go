// Package layer provides the fully connected layer used by the network.
package layer

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mdtdev/scratchnet/internal/activations"
)

// Dense is a fully connected layer with a sigmoid nonlinearity.
//
// W has one row per output unit and one column per input unit, so a batch
// whose columns are samples is propagated as W*x. B is a column vector
// added to every column of the product.
type Dense struct {
	W *mat.Dense
	B *mat.Dense
}

// NewDense creates a layer mapping in inputs to out outputs. Every weight
// and bias is drawn independently from the standard normal distribution.
// A nil src uses the shared global source.
func NewDense(in, out int, src rand.Source) *Dense {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	w := mat.NewDense(out, in, nil)
	for i := 0; i < out; i++ {
		for j := 0; j < in; j++ {
			w.Set(i, j, dist.Rand())
		}
	}

	b := mat.NewDense(out, 1, nil)
	for i := 0; i < out; i++ {
		b.Set(i, 0, dist.Rand())
	}

	return &Dense{W: w, B: b}
}

// InSize returns the number of inputs the layer accepts.
func (d *Dense) InSize() int {
	_, c := d.W.Dims()
	return c
}

// OutSize returns the number of outputs the layer produces.
func (d *Dense) OutSize() int {
	r, _ := d.W.Dims()
	return r
}

// Forward computes z = W*x + B and a = sigmoid(z) for a batch whose
// columns are samples. B is broadcast across the columns. The weighted
// input z is returned alongside the activation so a training pass can
// keep both.
func (d *Dense) Forward(x mat.Matrix) (z, a *mat.Dense) {
	out := d.OutSize()
	_, n := x.Dims()

	z = mat.NewDense(out, n, nil)
	z.Mul(d.W, x)
	addB := func(i, _ int, v float64) float64 { return v + d.B.At(i, 0) }
	z.Apply(addB, z)

	a = mat.NewDense(out, n, nil)
	a.Apply(activations.ApplySigmoid, z)
	return z, a
}
