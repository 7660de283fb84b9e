package net

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// CSVLogger writes the training curve to a CSV file with the columns
// epoch, loss and time_seconds. Every controls how often a row is
// written: every Every-th epoch, or every epoch when Every is zero or
// less. File problems are reported to the console and disable the
// logger for the rest of the run; they never abort training.
type CSVLogger struct {
	BaseCallback
	Filename string
	Append   bool
	Every    int

	file   *os.File
	writer *csv.Writer
	start  time.Time
}

// NewCSVLogger creates a CSVLogger that truncates filename and writes a
// row for every epoch.
func NewCSVLogger(filename string) *CSVLogger {
	return &CSVLogger{Filename: filename}
}

func (c *CSVLogger) OnTrainBegin(n *Network) {
	mode := os.O_CREATE | os.O_WRONLY
	if c.Append {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}

	file, err := os.OpenFile(c.Filename, mode, 0644)
	if err != nil {
		fmt.Printf("CSVLogger: failed to open %s: %v\n", c.Filename, err)
		return
	}
	c.file = file
	c.writer = csv.NewWriter(file)
	c.start = time.Now()

	// A fresh or truncated file gets the header; an appended-to file
	// keeps its existing one.
	info, err := file.Stat()
	if err == nil && (info.Size() == 0 || !c.Append) {
		c.writer.Write([]string{"epoch", "loss", "time_seconds"})
		c.writer.Flush()
	}
}

func (c *CSVLogger) OnEpochEnd(epoch int, loss float64, n *Network) {
	if c.writer == nil {
		return
	}
	if c.Every > 1 && epoch%c.Every != 0 {
		return
	}

	row := []string{
		strconv.Itoa(epoch),
		fmt.Sprintf("%.6f", loss),
		fmt.Sprintf("%.2f", time.Since(c.start).Seconds()),
	}
	if err := c.writer.Write(row); err != nil {
		fmt.Printf("CSVLogger: failed to write row: %v\n", err)
	}
	c.writer.Flush()
}

func (c *CSVLogger) OnTrainEnd(n *Network) {
	if c.file == nil {
		return
	}
	c.writer.Flush()
	c.file.Close()
	c.file = nil
	c.writer = nil
}
