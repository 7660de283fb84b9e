package net

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dataset is a fixed training batch with samples as columns: X is
// (inputs x N) and Y is (outputs x N).
type Dataset struct {
	X *mat.Dense
	Y *mat.Dense
}

// Samples returns the number of samples in the batch.
func (d *Dataset) Samples() int {
	_, n := d.X.Dims()
	return n
}

// LoadCSV reads a training batch from a CSV file whose rows each hold
// inputs feature values followed by outputs target values. hasHeader
// skips the first line. The file's rows become the columns of X and Y.
func LoadCSV(filename string, inputs, outputs int, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	start := 0
	if hasHeader {
		start = 1
	}
	if len(records) <= start {
		return nil, fmt.Errorf("csv file has no data rows")
	}

	n := len(records) - start
	x := mat.NewDense(inputs, n, nil)
	y := mat.NewDense(outputs, n, nil)

	for i := start; i < len(records); i++ {
		record := records[i]
		if len(record) != inputs+outputs {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(record), inputs+outputs)
		}
		col := i - start
		for j, s := range record {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse value at row %d, col %d: %w", i, j, err)
			}
			if j < inputs {
				x.Set(j, col, v)
			} else {
				y.Set(j-inputs, col, v)
			}
		}
	}

	return &Dataset{X: x, Y: y}, nil
}

// Normalize rescales every feature row of X into [0, 1] by min-max
// normalization. A constant feature becomes all zeros.
func (d *Dataset) Normalize() {
	rows, n := d.X.Dims()
	for i := 0; i < rows; i++ {
		row := d.X.RawRowView(i)
		lo, hi := floats.Min(row), floats.Max(row)
		span := hi - lo
		for j := 0; j < n; j++ {
			if span != 0 {
				row[j] = (row[j] - lo) / span
			} else {
				row[j] = 0
			}
		}
	}
}
