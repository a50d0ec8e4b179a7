// SPDX-License-Identifier: MIT

package mcm

// Tables is the immutable result of Build: the chain dimensions, the cost
// table m, the split table s and the label policy used for printing.
//
// Every accessor returns copies or scalars, so a *Tables may be shared
// freely, including across goroutines. Only Build produces a populated
// value; the zero Tables describes an empty chain.
type Tables struct {
	dims  Dimensions
	cost  [][]Cost
	split [][]int
	cfg   options
}

// N returns the number of matrices in the chain.
func (t *Tables) N() int { return len(t.cost) }

// Dimensions returns a copy of the chain dimensions.
func (t *Tables) Dimensions() Dimensions { return t.dims.Clone() }

// inRange reports whether 0 ≤ i ≤ j < N.
func (t *Tables) inRange(i, j int) bool {
	return i >= 0 && i <= j && j < len(t.cost)
}

// Cost returns m[i][j], the minimum cost of computing Ai+1·…·Aj+1.
// Requires 0 ≤ i ≤ j < N, otherwise ErrIndexOutOfRange.
func (t *Tables) Cost(i, j int) (Cost, error) {
	if !t.inRange(i, j) {
		return 0, ErrIndexOutOfRange
	}

	return t.cost[i][j], nil
}

// Split returns s[i][j], the split point chosen for interval [i, j].
// Requires 0 ≤ i < j < N, otherwise ErrIndexOutOfRange.
func (t *Tables) Split(i, j int) (int, error) {
	if !t.inRange(i, j) || i == j {
		return 0, ErrIndexOutOfRange
	}

	return t.split[i][j], nil
}

// OptimalCost returns m[0][N-1], or 0 for an empty Tables.
func (t *Tables) OptimalCost() Cost {
	if len(t.cost) == 0 {
		return 0
	}

	return t.cost[0][len(t.cost)-1]
}

// CostTable returns a deep copy of the N×N cost table. Cells below the
// diagonal hold Infinity.
// Complexity: O(N²).
func (t *Tables) CostTable() [][]Cost {
	out := make([][]Cost, len(t.cost))
	for i, row := range t.cost {
		out[i] = append([]Cost(nil), row...)
	}

	return out
}

// SplitTable returns a deep copy of the N×N split table.
// Complexity: O(N²).
func (t *Tables) SplitTable() [][]int {
	out := make([][]int, len(t.split))
	for i, row := range t.split {
		out[i] = append([]int(nil), row...)
	}

	return out
}

// Label returns the display name of matrix i ("A1" for i == 0 by default).
func (t *Tables) Label(i int) string { return t.cfg.label(i) }

// Labels returns the display names of all N matrices.
func (t *Tables) Labels() []string {
	out := make([]string, len(t.cost))
	for i := range out {
		out[i] = t.cfg.label(i)
	}

	return out
}

// Separator returns the operand separator used by Order.
func (t *Tables) Separator() string { return t.cfg.sep }
