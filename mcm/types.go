// SPDX-License-Identifier: MIT

package mcm

import (
	"math"
	"strconv"
)

// Cost counts scalar multiplications.
type Cost int64

// Infinity is the sentinel stored in cost-table cells that the DP never
// fills (everything below the diagonal). No cell on or above the diagonal
// holds Infinity after a successful Build, and no real cost may reach it.
const Infinity Cost = math.MaxInt64

// IsInf reports whether c is the Infinity sentinel.
func (c Cost) IsInf() bool { return c == Infinity }

// String renders c in decimal, or "∞" for the sentinel.
func (c Cost) String() string {
	if c == Infinity {
		return InfinityMarker
	}

	return strconv.FormatInt(int64(c), 10)
}

// InfinityMarker is the printable form of Infinity.
const InfinityMarker = "∞"

// Default label policy used by ReconstructOrder and by Build without options.
const (
	// DefaultLabelPrefix yields labels A1, A2, … AN.
	DefaultLabelPrefix = "A"

	// DefaultSeparator joins the two operands of a product.
	DefaultSeparator = " x "
)

// Dimensions is the compact description of a chain: matrix i has shape
// Dimensions[i] × Dimensions[i+1], so N+1 values describe N matrices.
type Dimensions []int

// Count returns N, the number of matrices (0 for fewer than two values).
func (d Dimensions) Count() int {
	if len(d) < 2 {
		return 0
	}

	return len(d) - 1
}

// Shape returns the (rows, cols) of matrix i.
// Returns ErrIndexOutOfRange when i ∉ [0, N).
func (d Dimensions) Shape(i int) (rows, cols int, err error) {
	if i < 0 || i >= d.Count() {
		return 0, 0, ErrIndexOutOfRange
	}

	return d[i], d[i+1], nil
}

// Validate checks the chain invariants: at least two values, all positive.
// Failures are *InvalidInputError wrapping ErrTooFewDimensions or ErrNonPositive.
// Complexity: O(N).
func (d Dimensions) Validate() error {
	if len(d) < 2 {
		return inputError(ErrTooFewDimensions)
	}
	for i, v := range d {
		if v <= 0 {
			return itemError(i, strconv.Itoa(v), ErrNonPositive)
		}
	}

	return nil
}

// Clone returns an independent copy of d.
func (d Dimensions) Clone() Dimensions {
	if d == nil {
		return nil
	}
	out := make(Dimensions, len(d))
	copy(out, d)

	return out
}
