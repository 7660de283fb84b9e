package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mdtdev/scratchnet/scratchnet"
)

// Generic trainer for CSV data: each row holds the feature columns
// followed by the target columns.
func main() {
	file := flag.String("data", "", "CSV file with feature columns then target columns")
	inputs := flag.Int("inputs", 2, "number of feature columns")
	outputs := flag.Int("outputs", 1, "number of target columns")
	hidden := flag.Int("hidden", 8, "hidden layer size")
	epochs := flag.Int("epochs", 1000, "training epochs")
	eta := flag.Float64("eta", 0.01, "learning rate (applied to batch-summed gradients)")
	every := flag.Int("every", 100, "recording interval in epochs")
	header := flag.Bool("header", true, "first CSV line is a header")
	normalize := flag.Bool("normalize", true, "min-max scale features into [0, 1]")
	logFile := flag.String("log", "", "optional CSV file for the loss curve")
	seed := flag.Uint64("seed", 1, "random seed for the initial parameters")
	flag.Parse()

	if *file == "" {
		fmt.Println("csvtrain: -data is required")
		flag.Usage()
		os.Exit(2)
	}

	ds, err := scratchnet.LoadCSV(*file, *inputs, *outputs, *header)
	if err != nil {
		fmt.Printf("Error loading %s: %v\n", *file, err)
		os.Exit(1)
	}
	if *normalize {
		ds.Normalize()
	}
	fmt.Printf("Loaded %d samples (%d features -> %d targets)\n", ds.Samples(), *inputs, *outputs)
	fmt.Printf("Architecture: %d-%d-%d, eta = %g\n\n", *inputs, *hidden, *outputs, *eta)

	network, err := scratchnet.New([]int{*inputs, *hidden, *outputs}, *eta, *seed)
	if err != nil {
		fmt.Printf("Error creating network: %v\n", err)
		os.Exit(1)
	}

	history := scratchnet.NewHistory(*every)
	callbacks := []scratchnet.Callback{scratchnet.Logger(*every), history}
	if *logFile != "" {
		logger := scratchnet.NewCSVLogger(*logFile)
		logger.Every = *every
		callbacks = append(callbacks, logger)
	}

	if err := network.Fit(ds.X, ds.Y, *epochs, callbacks...); err != nil {
		fmt.Printf("Error during training: %v\n", err)
		os.Exit(1)
	}

	final, err := network.Loss(ds.X, ds.Y)
	if err != nil {
		fmt.Printf("Error evaluating: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nFinal loss after %d epochs: %.6f\n", *epochs, final)
	if len(history.Records) > 0 {
		first := history.Records[0]
		last := history.Last()
		fmt.Printf("Loss curve: %d points recorded, epoch %d (%.6f) to epoch %d (%.6f)\n",
			len(history.Records), first.Epoch, first.Loss, last.Epoch, last.Loss)
	}
}
