// SPDX-License-Identifier: MIT

// Package mcm_test holds helpers shared by the *_test.go files of package mcm:
// canonical fixtures, a brute-force oracle and a deterministic chain generator.
package mcm_test

import (
	"math/rand"
	"regexp"
	"sort"
	"strconv"

	"github.com/katalvlaran/matrixchain/mcm"
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// textbookDims is the classic six-matrix chain with optimal cost 15125.
var textbookDims = []int{30, 35, 15, 5, 10, 20, 25}

const (
	textbookOrder = "((A1 x (A2 x A3)) x ((A4 x A5) x A6))"
	textbookCost  = mcm.Cost(15125)
)

// inf is a short alias used in table literals.
const inf = mcm.Infinity

// textbookCostTable is the full m table for textbookDims.
var textbookCostTable = [][]mcm.Cost{
	{0, 15750, 7875, 9375, 11875, 15125},
	{inf, 0, 2625, 4375, 7125, 10500},
	{inf, inf, 0, 750, 2500, 5375},
	{inf, inf, inf, 0, 1000, 3500},
	{inf, inf, inf, inf, 0, 5000},
	{inf, inf, inf, inf, inf, 0},
}

// textbookSplitTable is the full s table for textbookDims.
var textbookSplitTable = [][]int{
	{0, 0, 0, 2, 2, 2},
	{0, 0, 1, 2, 2, 2},
	{0, 0, 0, 2, 2, 2},
	{0, 0, 0, 0, 3, 4},
	{0, 0, 0, 0, 0, 4},
	{0, 0, 0, 0, 0, 0},
}

// seedDet is the fixed seed for randomized property tests.
const seedDet = int64(42)

// -----------------------------------------------------------------------------
// Oracle & generators
// -----------------------------------------------------------------------------

// bruteCost recomputes the minimum cost of [i, j] by plain recursion over
// every split, without memoization. Exponential; keep N small.
func bruteCost(dims []int, i, j int) mcm.Cost {
	if i == j {
		return 0
	}
	best := mcm.Infinity
	for k := i; k < j; k++ {
		q := bruteCost(dims, i, k) + bruteCost(dims, k+1, j) +
			mcm.Cost(dims[i])*mcm.Cost(dims[k+1])*mcm.Cost(dims[j+1])
		if q < best {
			best = q
		}
	}

	return best
}

// randomDims returns n+1 dimensions in [1, maxDim].
func randomDims(rng *rand.Rand, n, maxDim int) []int {
	dims := make([]int, n+1)
	for i := range dims {
		dims[i] = 1 + rng.Intn(maxDim)
	}

	return dims
}

var labelRe = regexp.MustCompile(`A\d+`)

// labelsIn returns the matrix labels found in an order string, sorted by index.
func labelsIn(order string) []string {
	found := labelRe.FindAllString(order, -1)
	sort.Slice(found, func(a, b int) bool {
		x, _ := strconv.Atoi(found[a][1:])
		y, _ := strconv.Atoi(found[b][1:])
		return x < y
	})

	return found
}

// expectedLabels returns A1..An.
func expectedLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "A" + strconv.Itoa(i+1)
	}

	return out
}
