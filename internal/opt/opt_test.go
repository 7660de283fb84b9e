// Package opt provides comprehensive unit tests for optimizers.
package opt

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestSGDStep tests the SGD update rule p = p - lr*g.
func TestSGDStep(t *testing.T) {
	sgd := SGD{LearningRate: 0.1}

	p := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	g := mat.NewDense(2, 2, []float64{0.1, 0.2, 0.3, 0.4})

	sgd.Step([]*mat.Dense{p}, []*mat.Dense{g})

	expected := []float64{
		1 - 0.1*0.1, // 0.99
		2 - 0.1*0.2, // 1.98
		3 - 0.1*0.3, // 2.97
		4 - 0.1*0.4, // 3.96
	}
	for i, want := range expected {
		got := p.RawMatrix().Data[i]
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("p[%d] = %v, want %v", i, got, want)
		}
	}
}

// TestSGDStepZeroGradient tests that a zero gradient leaves parameters unchanged.
func TestSGDStepZeroGradient(t *testing.T) {
	sgd := SGD{LearningRate: 0.5}

	p := mat.NewDense(3, 1, []float64{-1, 0, 2.5})
	before := mat.DenseCopyOf(p)
	g := mat.NewDense(3, 1, nil)

	sgd.Step([]*mat.Dense{p}, []*mat.Dense{g})

	if !mat.Equal(p, before) {
		t.Errorf("parameters changed under zero gradient:\ngot  %v\nwant %v",
			mat.Formatted(p), mat.Formatted(before))
	}
}

// TestSGDStepMultipleParams tests that every parameter in the group is updated.
func TestSGDStepMultipleParams(t *testing.T) {
	sgd := SGD{LearningRate: 1.0}

	w := mat.NewDense(1, 2, []float64{2, 4})
	b := mat.NewDense(1, 1, []float64{10})
	gw := mat.NewDense(1, 2, []float64{1, 1})
	gb := mat.NewDense(1, 1, []float64{-2})

	sgd.Step([]*mat.Dense{w, b}, []*mat.Dense{gw, gb})

	if got := w.At(0, 0); got != 1 {
		t.Errorf("w[0] = %v, want 1", got)
	}
	if got := w.At(0, 1); got != 3 {
		t.Errorf("w[1] = %v, want 3", got)
	}
	if got := b.At(0, 0); got != 12 {
		t.Errorf("b = %v, want 12", got)
	}
}

// TestSGDLeavesGradientsIntact tests that Step does not mutate the gradients.
func TestSGDLeavesGradientsIntact(t *testing.T) {
	sgd := SGD{LearningRate: 0.1}

	p := mat.NewDense(2, 1, []float64{1, 1})
	g := mat.NewDense(2, 1, []float64{0.5, -0.5})
	before := mat.DenseCopyOf(g)

	sgd.Step([]*mat.Dense{p}, []*mat.Dense{g})

	if !mat.Equal(g, before) {
		t.Error("Step modified the gradient matrix")
	}
}
