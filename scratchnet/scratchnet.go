package scratchnet

import (
	"golang.org/x/exp/rand"

	"github.com/mdtdev/scratchnet/internal/activations"
	"github.com/mdtdev/scratchnet/internal/net"
	"github.com/mdtdev/scratchnet/internal/opt"
)

// Re-export common types and functions for easier access
type (
	Network    = net.Network
	Trace      = net.Trace
	Gradients  = net.Gradients
	Callback   = net.Callback
	Record     = net.Record
	History    = net.History
	CSVLogger  = net.CSVLogger
	Dataset    = net.Dataset
	ShapeError = net.ShapeError
	DimsError  = net.DimsError
	Optimizer  = opt.Optimizer
	SGD        = opt.SGD
)

// Contract errors
var (
	ErrMissingTrace     = net.ErrMissingTrace
	ErrMissingGradients = net.ErrMissingGradients
)

// New creates a network trained by plain gradient descent with step size
// eta. The seed makes the parameter initialization reproducible.
func New(dims []int, eta float64, seed uint64) (*Network, error) {
	return net.New(dims, opt.SGD{LearningRate: eta}, rand.NewSource(seed))
}

// NewWithOptimizer creates a network with a caller-supplied optimizer
// and random source. A nil src uses the shared global source.
func NewWithOptimizer(dims []int, optimizer Optimizer, src rand.Source) (*Network, error) {
	return net.New(dims, optimizer, src)
}

// Callbacks
func Logger(interval int) net.Logger {
	return net.Logger{Interval: interval}
}

func NewHistory(every int) *History {
	return net.NewHistory(every)
}

func NewCSVLogger(filename string) *CSVLogger {
	return net.NewCSVLogger(filename)
}

// Data loading
func LoadCSV(filename string, inputs, outputs int, hasHeader bool) (*Dataset, error) {
	return net.LoadCSV(filename, inputs, outputs, hasHeader)
}

// Primitives
func Sigmoid(x float64) float64 {
	return activations.Sigmoid(x)
}

func SigmoidPrime(x float64) float64 {
	return activations.SigmoidPrime(x)
}
