// SPDX-License-Identifier: MIT

package mcm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MultiplyStats reports the work done by Multiply.
type MultiplyStats struct {
	Products    int  // pairwise products performed (N-1)
	ScalarMults Cost // Σ rows·inner·cols over all products; equals Tables.OptimalCost
}

// Multiply evaluates A1·A2·…·AN following the optimal plan of t.
//
// Stage 1 (Validate): t non-nil, len(ms) == N, ms[i] has shape dims[i]×dims[i+1].
// Stage 2 (Execute): post-order walk of the plan, one mat.Dense.Mul per product.
// Stage 3 (Finalize): return the product (always a fresh *mat.Dense).
//
// Errors:
//   - ErrNilTables: t is nil.
//   - ErrShapeMismatch: wrong operand count (Pos -1) or wrong shape (Pos i),
//     as *InvalidInputError.
//
// Complexity: exactly Tables.OptimalCost scalar multiplications.
func Multiply(t *Tables, ms []mat.Matrix) (*mat.Dense, MultiplyStats, error) {
	var stats MultiplyStats
	if t == nil {
		return nil, stats, ErrNilTables
	}
	if len(ms) != t.N() {
		return nil, stats, inputError(ErrShapeMismatch)
	}
	for i, m := range ms {
		if m == nil {
			return nil, stats, itemError(i, "nil", ErrShapeMismatch)
		}
		r, c := m.Dims()
		if r != t.dims[i] || c != t.dims[i+1] {
			return nil, stats, itemError(i, fmt.Sprintf("%dx%d", r, c), ErrShapeMismatch)
		}
	}

	res := evalNode(t.Plan(), ms, &stats)
	if d, ok := res.(*mat.Dense); ok && t.N() > 1 {
		return d, stats, nil
	}

	return mat.DenseCopyOf(res), stats, nil
}

// evalNode computes the value of n; leaves return the caller's operand as is.
func evalNode(n *Node, ms []mat.Matrix, stats *MultiplyStats) mat.Matrix {
	if n.IsLeaf() {
		return ms[n.Lo]
	}
	a := evalNode(n.Left, ms, stats)
	b := evalNode(n.Right, ms, stats)

	out := mat.NewDense(n.Rows, n.Cols, nil)
	out.Mul(a, b)

	stats.Products++
	stats.ScalarMults += Cost(n.Rows) * Cost(n.Left.Cols) * Cost(n.Cols)

	return out
}
