package net

import (
	"errors"
	"fmt"
)

// ErrMissingTrace is returned by Backward when it is called without the
// trace of a prior forward pass.
var ErrMissingTrace = errors.New("net: backward pass requires a forward trace")

// ErrMissingGradients is returned by Step when it is called without
// gradients from a prior backward pass.
var ErrMissingGradients = errors.New("net: parameter step requires gradients")

// ShapeError reports an operand whose dimensions disagree with what an
// operation expects.
type ShapeError struct {
	Op                 string // operation that rejected the operand
	Operand            string // which operand was rejected
	WantRows, WantCols int
	GotRows, GotCols   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("net: %s: %s is %dx%d, want %dx%d",
		e.Op, e.Operand, e.GotRows, e.GotCols, e.WantRows, e.WantCols)
}

// DimsError reports a layer size list that cannot describe a network:
// fewer than two entries, or an entry that is not positive.
type DimsError struct {
	Dims []int
}

func (e *DimsError) Error() string {
	if len(e.Dims) < 2 {
		return fmt.Sprintf("net: need at least an input and an output size, got %v", e.Dims)
	}
	return fmt.Sprintf("net: layer sizes must be positive, got %v", e.Dims)
}
