// SPDX-License-Identifier: MIT

package mcm

// Build: Matrix Chain Multiplication
//
// Description:
//
//	Build fills the minimum-cost table m and the split table s for the chain
//	described by dims, using bottom-up interval dynamic programming.
//
// Algorithm Outline:
//  1. Let N = len(dims)-1. Allocate N×N tables m and s.
//  2. Initialize:
//     m[i][i] = 0          (a single matrix costs nothing)
//     m[i][j] = Infinity   for i ≠ j
//  3. For l = 2..N (interval length):
//     For i = 0..N-l, j = i+l-1:
//     For k = i..j-1:
//     q = m[i][k] + m[k+1][j] + dims[i]·dims[k+1]·dims[j+1]
//     if q < m[i][j]: m[i][j] = q, s[i][j] = k
//  4. The optimal cost is m[0][N-1].
//
// Tie policy:
//
//	The comparison is strict and k is scanned in increasing order, so among
//	equally cheap splits the smallest k is kept. Golden outputs depend on it.
//
// Complexity:
//
//	Time   = O(N³)
//	Memory = O(N²)
//
// Errors:
//   - ErrTooFewDimensions, ErrNonPositive: dims violate Dimensions.Validate.
//   - ErrCostOverflow: every candidate q of some interval reaches Infinity.
//     Candidates that overflow only lose the comparison.
//   - ErrLabelCount: WithLabels length ≠ N.
//
// All of them arrive as *InvalidInputError.
func Build(dims []int, opts ...Option) (*Tables, error) {
	d := Dimensions(dims).Clone()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	n := d.Count()

	cfg := gatherOptions(opts)
	if cfg.labels != nil && len(cfg.labels) != n {
		return nil, inputError(ErrLabelCount)
	}

	cost, split := newTables(n)
	if err := fill(d, cost, split); err != nil {
		return nil, err
	}

	return &Tables{dims: d, cost: cost, split: split, cfg: cfg}, nil
}

// BuildTables is the table-only form of Build: it returns the N×N cost
// table and the N×N split table for dims.
//
// Example:
//
//	m, s, err := BuildTables([]int{10, 20, 30})
//	// m = [[0 6000] [∞ 0]], s = [[0 0] [0 0]]
func BuildTables(dims []int) (cost [][]Cost, split [][]int, err error) {
	t, err := Build(dims)
	if err != nil {
		return nil, nil, err
	}

	return t.cost, t.split, nil
}

// newTables allocates the cost table (diagonal 0, Infinity elsewhere) and a
// zeroed split table.
func newTables(n int) ([][]Cost, [][]int) {
	cost := make([][]Cost, n)
	split := make([][]int, n)
	for i := 0; i < n; i++ {
		cost[i] = make([]Cost, n)
		split[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i != j {
				cost[i][j] = Infinity
			}
		}
	}

	return cost, split
}

// fill runs the interval DP over pre-validated dims.
func fill(dims Dimensions, cost [][]Cost, split [][]int) error {
	n := dims.Count()

	var (
		l, i, j, k int  // interval length, bounds and split point
		q, w       Cost // candidate cost and product weight
		ok         bool
	)
	for l = 2; l <= n; l++ {
		for i = 0; i <= n-l; i++ {
			j = i + l - 1
			for k = i; k < j; k++ {
				w, ok = productCost(dims[i], dims[k+1], dims[j+1])
				if !ok {
					continue
				}
				q, ok = addCost(cost[i][k], cost[k+1][j], w)
				if !ok {
					continue
				}
				if q < cost[i][j] {
					cost[i][j] = q
					split[i][j] = k
				}
			}
			if cost[i][j].IsInf() {
				return inputError(ErrCostOverflow)
			}
		}
	}

	return nil
}

// productCost returns p·q·r, the price of multiplying a p×q by a q×r matrix.
// ok is false when the result would reach Infinity.
func productCost(p, q, r int) (Cost, bool) {
	a, ok := mulCost(Cost(p), Cost(q))
	if !ok {
		return 0, false
	}

	return mulCost(a, Cost(r))
}

// mulCost multiplies two positive costs, refusing results ≥ Infinity.
func mulCost(a, b Cost) (Cost, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > (Infinity-1)/b {
		return 0, false
	}

	return a * b, true
}

// addCost sums non-negative costs, refusing results ≥ Infinity.
func addCost(xs ...Cost) (Cost, bool) {
	var sum Cost
	for _, x := range xs {
		if x >= Infinity-sum {
			return 0, false
		}
		sum += x
	}

	return sum, true
}

// SequentialCost returns the price of the naive left-to-right order
// ((A1 x A2) x A3) x … , i.e. Σ dims[0]·dims[k]·dims[k+1] for k = 1..N-1.
// It is the baseline an optimal plan is compared against.
// Complexity: O(N).
func SequentialCost(dims []int) (Cost, error) {
	d := Dimensions(dims)
	if err := d.Validate(); err != nil {
		return 0, err
	}

	var total Cost
	for k := 1; k < d.Count(); k++ {
		w, ok := productCost(d[0], d[k], d[k+1])
		if !ok {
			return 0, inputError(ErrCostOverflow)
		}
		if total, ok = addCost(total, w); !ok {
			return 0, inputError(ErrCostOverflow)
		}
	}

	return total, nil
}
