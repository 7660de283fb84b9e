package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/petar/GoMNIST"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/mdtdev/scratchnet/internal/net"
	"github.com/mdtdev/scratchnet/internal/opt"
)

// MNIST digit classification on real data. Expects the four idx .gz
// files (train-images, train-labels, t10k-images, t10k-labels) in the
// -data directory.
func main() {
	dataDir := flag.String("data", "./data", "directory with the MNIST idx .gz files")
	limit := flag.Int("limit", 1000, "training images to use")
	testLimit := flag.Int("test-limit", 200, "test images to score")
	hidden := flag.Int("hidden", 30, "hidden layer size")
	epochs := flag.Int("epochs", 300, "training epochs")
	eta := flag.Float64("eta", 0.001, "learning rate (applied to batch-summed gradients)")
	every := flag.Int("every", 10, "console log interval in epochs")
	csvPath := flag.String("log", "", "optional CSV file for the loss curve")
	seed := flag.Uint64("seed", 42, "random seed for the initial parameters")
	flag.Parse()

	fmt.Println("=== MNIST Training Example ===")

	train, test, err := GoMNIST.Load(*dataDir)
	if err != nil {
		fmt.Printf("Error loading MNIST from %s: %v\n", *dataDir, err)
		os.Exit(1)
	}

	nTrain := clamp(*limit, train.Count())
	nTest := clamp(*testLimit, test.Count())
	pixels := train.NRow * train.NCol

	fmt.Printf("Architecture: %d-%d-10\n", pixels, *hidden)
	fmt.Printf("Training on %d images, scoring on %d\n\n", nTrain, nTest)

	x, y := batchFrom(train, nTrain)
	testX, testY := batchFrom(test, nTest)

	network, err := net.New([]int{pixels, *hidden, 10}, opt.SGD{LearningRate: *eta}, rand.NewSource(*seed))
	if err != nil {
		fmt.Printf("Error creating network: %v\n", err)
		os.Exit(1)
	}

	callbacks := []net.Callback{net.Logger{Interval: *every}}
	if *csvPath != "" {
		logger := net.NewCSVLogger(*csvPath)
		logger.Every = *every
		callbacks = append(callbacks, logger)
	}

	fmt.Println("Training...")
	if err := network.Fit(x, y, *epochs, callbacks...); err != nil {
		fmt.Printf("Error during training: %v\n", err)
		os.Exit(1)
	}

	trainPred, err := network.Predict(x)
	if err != nil {
		fmt.Printf("Error during prediction: %v\n", err)
		os.Exit(1)
	}
	testPred, err := network.Predict(testX)
	if err != nil {
		fmt.Printf("Error during prediction: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nTraining accuracy: %.1f%%\n", accuracy(trainPred, y)*100)
	fmt.Printf("Test accuracy:     %.1f%%\n", accuracy(testPred, testY)*100)
}

// batchFrom converts the first n images of a set into column-major
// matrices: pixel intensities scaled into [0, 1] and one-hot labels.
func batchFrom(s *GoMNIST.Set, n int) (*mat.Dense, *mat.Dense) {
	pixels := s.NRow * s.NCol
	x := mat.NewDense(pixels, n, nil)
	y := mat.NewDense(10, n, nil)
	for i := 0; i < n; i++ {
		img, label := s.Get(i)
		for p := 0; p < pixels; p++ {
			x.Set(p, i, float64(img[p])/255)
		}
		y.Set(int(label), i, 1)
	}
	return x, y
}

// accuracy scores predictions column by column against one-hot targets.
func accuracy(pred, y *mat.Dense) float64 {
	_, n := pred.Dims()
	correct := 0
	for j := 0; j < n; j++ {
		p := mat.Col(nil, j, pred)
		t := mat.Col(nil, j, y)
		if floats.MaxIdx(p) == floats.MaxIdx(t) {
			correct++
		}
	}
	return float64(correct) / float64(n)
}

func clamp(n, max int) int {
	if n > max {
		return max
	}
	return n
}
