// SPDX-License-Identifier: MIT
// Package mcm: sentinel error set.
// All user-triggered failures are returned as *InvalidInputError whose Err
// field is one of the sentinels below; every one of them wraps ErrInvalidInput,
// so callers can match either the precise reason or the whole class with
// errors.Is. Programmer errors (bad indices, corrupted split tables) use
// separate sentinels and never match ErrInvalidInput.

package mcm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the root of every user-facing input error.
	ErrInvalidInput = errors.New("mcm: invalid input")

	// ErrEmptyInput indicates that the dimension text was empty or blank.
	ErrEmptyInput = fmt.Errorf("%w: no dimensions given", ErrInvalidInput)

	// ErrTooFewDimensions indicates fewer than two dimensions (no matrix at all).
	ErrTooFewDimensions = fmt.Errorf("%w: at least two dimensions are required", ErrInvalidInput)

	// ErrNotInteger indicates that a dimension token could not be parsed as an integer.
	ErrNotInteger = fmt.Errorf("%w: dimension is not an integer", ErrInvalidInput)

	// ErrNonPositive indicates a zero or negative dimension.
	ErrNonPositive = fmt.Errorf("%w: dimension must be positive", ErrInvalidInput)

	// ErrCostOverflow indicates that a multiplication count does not fit into Cost.
	ErrCostOverflow = fmt.Errorf("%w: multiplication cost overflows int64", ErrInvalidInput)

	// ErrLabelCount indicates that WithLabels got a different number of labels than matrices.
	ErrLabelCount = fmt.Errorf("%w: label count does not match matrix count", ErrInvalidInput)

	// ErrShapeMismatch indicates that operands passed to Multiply disagree with the chain dimensions.
	ErrShapeMismatch = fmt.Errorf("%w: matrix shape does not match chain dimensions", ErrInvalidInput)
)

var (
	// ErrNilTables indicates a nil *Tables receiver or argument.
	ErrNilTables = errors.New("mcm: nil tables")

	// ErrIndexOutOfRange indicates an interval [i, j] outside 0 ≤ i ≤ j < N.
	ErrIndexOutOfRange = errors.New("mcm: index out of range")

	// ErrMalformedSplit indicates a split table that is not square or holds
	// a split point outside [i, j-1] for its interval.
	ErrMalformedSplit = errors.New("mcm: malformed split table")
)

// InvalidInputError describes a rejected dimension list or operand set.
//
// Pos is the zero-based position of the offending item, or -1 when the
// failure concerns the input as a whole (empty input, too few dimensions).
// Token holds the raw text of the offending item when one exists.
type InvalidInputError struct {
	Pos   int
	Token string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Pos < 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("%v (item %d: %q)", e.Err, e.Pos+1, e.Token)
}

// Unwrap exposes the sentinel so errors.Is works through the wrapper.
func (e *InvalidInputError) Unwrap() error { return e.Err }

// inputError builds an *InvalidInputError without a position.
func inputError(err error) error {
	return &InvalidInputError{Pos: -1, Err: err}
}

// itemError builds an *InvalidInputError pinned to item pos.
func itemError(pos int, token string, err error) error {
	return &InvalidInputError{Pos: pos, Token: token, Err: err}
}
