package main

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/mdtdev/scratchnet/internal/net"
	"github.com/mdtdev/scratchnet/internal/opt"
)

func main() {
	fmt.Println("=== XOR Training Example ===")

	// XOR cannot be solved by a single layer, so use 2 -> 3 -> 1.
	dims := []int{2, 3, 1}
	eta := 0.5
	epochs := 5000

	fmt.Printf("Network architecture: %d-%d-%d\n", dims[0], dims[1], dims[2])
	fmt.Println("Activation: sigmoid on every layer")
	fmt.Println("Loss: half total squared error over the batch")
	fmt.Printf("Optimizer: gradient descent with eta = %.2f\n", eta)

	// The four XOR cases as one fixed batch, one sample per column.
	x := mat.NewDense(2, 4, []float64{
		0, 0, 1, 1,
		0, 1, 0, 1,
	})
	y := mat.NewDense(1, 4, []float64{0, 1, 1, 0})

	network, err := net.New(dims, opt.SGD{LearningRate: eta}, rand.NewSource(42))
	if err != nil {
		fmt.Printf("Error creating network: %v\n", err)
		return
	}

	history := net.NewHistory(500)
	err = network.Fit(x, y, epochs, net.Logger{Interval: 500}, history)
	if err != nil {
		fmt.Printf("Error during training: %v\n", err)
		return
	}

	fmt.Println("\nTesting trained network:")
	pred, err := network.Predict(x)
	if err != nil {
		fmt.Printf("Error during prediction: %v\n", err)
		return
	}
	_, cols := x.Dims()
	for j := 0; j < cols; j++ {
		fmt.Printf("Input: [%g %g], Predicted: %.4f, Target: %g\n",
			x.At(0, j), x.At(1, j), pred.At(0, j), y.At(0, j))
	}

	fmt.Println("\nRecorded loss curve:")
	for _, r := range history.Records {
		fmt.Printf("  epoch %4d  loss %.6f\n", r.Epoch, r.Loss)
	}
}
