package net

import "fmt"

// Callback defines the interface for training callbacks.
type Callback interface {
	OnTrainBegin(n *Network)
	OnTrainEnd(n *Network)
	OnEpochBegin(epoch int, n *Network)
	OnEpochEnd(epoch int, loss float64, n *Network)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *Network)                        {}
func (c BaseCallback) OnTrainEnd(n *Network)                          {}
func (c BaseCallback) OnEpochBegin(epoch int, n *Network)             {}
func (c BaseCallback) OnEpochEnd(epoch int, loss float64, n *Network) {}

// Logger logs training progress to console.
type Logger struct {
	BaseCallback
	Interval int
}

func (c Logger) OnEpochEnd(epoch int, loss float64, n *Network) {
	if c.Interval > 0 && epoch%c.Interval == 0 {
		fmt.Printf("Epoch %d: loss = %.6f\n", epoch, loss)
	}
}

// Record is one entry of a training history: the cost at a given epoch.
type Record struct {
	Epoch int
	Loss  float64
}

// History keeps an ordered log of (epoch, loss) pairs, recording every
// Every-th epoch starting at epoch 0. An Every of zero or less records
// nothing.
type History struct {
	BaseCallback
	Every   int
	Records []Record
}

// NewHistory creates a History that records every n-th epoch.
func NewHistory(n int) *History {
	return &History{Every: n}
}

func (h *History) OnEpochEnd(epoch int, loss float64, n *Network) {
	if h.Every > 0 && epoch%h.Every == 0 {
		h.Records = append(h.Records, Record{Epoch: epoch, Loss: loss})
	}
}

// Last returns the most recent record, or a zero Record if none exist.
func (h *History) Last() Record {
	if len(h.Records) == 0 {
		return Record{}
	}
	return h.Records[len(h.Records)-1]
}
