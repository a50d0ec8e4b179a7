// SPDX-License-Identifier: MIT

package mcm_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/matrixchain/mcm"
)

// BuildSuite exercises the cost/split table builder.
type BuildSuite struct {
	suite.Suite
}

// TestTwoMatrices checks the smallest non-trivial chain.
func (s *BuildSuite) TestTwoMatrices() {
	m, sp, err := mcm.BuildTables([]int{10, 20, 30})
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]mcm.Cost{{0, 6000}, {inf, 0}}, m)
	require.Equal(s.T(), [][]int{{0, 0}, {0, 0}}, sp)
}

// TestTextbookChain checks every cell of the classic six-matrix example.
func (s *BuildSuite) TestTextbookChain() {
	t, err := mcm.Build(textbookDims)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, t.N())
	require.Equal(s.T(), textbookCostTable, t.CostTable())
	require.Equal(s.T(), textbookSplitTable, t.SplitTable())
	require.Equal(s.T(), textbookCost, t.OptimalCost())
	require.Equal(s.T(), textbookOrder, t.OptimalOrder())
}

// TestSingleMatrix checks N=1: a 1×1 table holding 0 and the bare label.
func (s *BuildSuite) TestSingleMatrix() {
	t, err := mcm.Build([]int{5, 10})
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]mcm.Cost{{0}}, t.CostTable())
	require.Equal(s.T(), mcm.Cost(0), t.OptimalCost())
	require.Equal(s.T(), "A1", t.OptimalOrder())
}

// TestTooFewDimensions ensures [] and [40] are rejected.
func (s *BuildSuite) TestTooFewDimensions() {
	for _, dims := range [][]int{nil, {}, {40}} {
		_, _, err := mcm.BuildTables(dims)
		require.ErrorIs(s.T(), err, mcm.ErrTooFewDimensions, "dims=%v", dims)
		require.ErrorIs(s.T(), err, mcm.ErrInvalidInput)

		var ie *mcm.InvalidInputError
		require.ErrorAs(s.T(), err, &ie)
		require.Equal(s.T(), -1, ie.Pos)
	}
}

// TestNonPositiveDimension ensures zero and negative sizes are rejected with their position.
func (s *BuildSuite) TestNonPositiveDimension() {
	_, err := mcm.Build([]int{10, 0, 5})
	require.ErrorIs(s.T(), err, mcm.ErrNonPositive)

	var ie *mcm.InvalidInputError
	require.ErrorAs(s.T(), err, &ie)
	require.Equal(s.T(), 1, ie.Pos)
	require.Equal(s.T(), "0", ie.Token)

	_, err = mcm.Build([]int{10, 5, -3})
	require.ErrorIs(s.T(), err, mcm.ErrNonPositive)
}

// TestOverflow ensures costs that would collide with the Infinity sentinel are rejected.
func (s *BuildSuite) TestOverflow() {
	big := math.MaxInt32
	_, err := mcm.Build([]int{big, big, big})
	require.ErrorIs(s.T(), err, mcm.ErrCostOverflow)
	require.ErrorIs(s.T(), err, mcm.ErrInvalidInput)

	// k=0 overflows in the sum 2⁶² + 2⁶², k=1 in the product 2⁶³.
	_, err = mcm.Build([]int{1 << 21, 1 << 20, 1 << 21, 1 << 21})
	require.ErrorIs(s.T(), err, mcm.ErrCostOverflow)
}

// TestOverflowingSplitLoses ensures a split whose cost overflows is skipped
// when another split of the same interval fits.
func (s *BuildSuite) TestOverflowingSplitLoses() {
	// m[1][2] = 2⁶², so k=0 costs 2⁶² + 2⁶²; k=1 costs 2³¹ + 2³¹.
	t, err := mcm.Build([]int{1, 1 << 31, 1, 1 << 31})
	require.NoError(s.T(), err)
	require.Equal(s.T(), mcm.Cost(1<<32), t.OptimalCost())
	require.Equal(s.T(), "(A1 x (A2 x A3))", t.OptimalOrder())

	m12, err := t.Cost(1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), mcm.Cost(1<<62), m12)
	k, err := t.Split(0, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, k)
}

// TestSequentialCostOverflow ensures the left-to-right baseline reports
// overflow instead of wrapping.
func (s *BuildSuite) TestSequentialCostOverflow() {
	_, err := mcm.SequentialCost([]int{1 << 32, 1 << 32, 1})
	require.ErrorIs(s.T(), err, mcm.ErrCostOverflow)
	require.ErrorIs(s.T(), err, mcm.ErrInvalidInput)
}

// TestZeroTables ensures the zero value answers as an empty chain.
func (s *BuildSuite) TestZeroTables() {
	var t mcm.Tables
	require.Equal(s.T(), 0, t.N())
	require.Equal(s.T(), mcm.Cost(0), t.OptimalCost())
	require.Nil(s.T(), t.Plan())
	require.Empty(s.T(), t.OptimalOrder())
	_, err := t.Cost(0, 0)
	require.ErrorIs(s.T(), err, mcm.ErrIndexOutOfRange)
}

// TestInputNotAliased ensures Build copies the caller's slice.
func (s *BuildSuite) TestInputNotAliased() {
	dims := []int{10, 20, 30}
	t, err := mcm.Build(dims)
	require.NoError(s.T(), err)
	dims[1] = 999
	require.Equal(s.T(), mcm.Dimensions{10, 20, 30}, t.Dimensions())
	require.Equal(s.T(), mcm.Cost(6000), t.OptimalCost())
}

// TestAccessorsReturnCopies ensures callers cannot mutate a built Tables.
func (s *BuildSuite) TestAccessorsReturnCopies() {
	t, err := mcm.Build(textbookDims)
	require.NoError(s.T(), err)

	m := t.CostTable()
	m[0][5] = 1
	sp := t.SplitTable()
	sp[0][5] = 4
	d := t.Dimensions()
	d[0] = 1

	require.Equal(s.T(), textbookCost, t.OptimalCost())
	require.Equal(s.T(), textbookOrder, t.OptimalOrder())
	require.Equal(s.T(), 30, t.Dimensions()[0])
}

// TestCostAndSplitAccessors checks bounds handling of the scalar accessors.
func (s *BuildSuite) TestCostAndSplitAccessors() {
	t, err := mcm.Build(textbookDims)
	require.NoError(s.T(), err)

	c, err := t.Cost(1, 4)
	require.NoError(s.T(), err)
	require.Equal(s.T(), mcm.Cost(7125), c)

	k, err := t.Split(3, 5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, k)

	_, err = t.Cost(4, 3)
	require.ErrorIs(s.T(), err, mcm.ErrIndexOutOfRange)
	_, err = t.Cost(0, 6)
	require.ErrorIs(s.T(), err, mcm.ErrIndexOutOfRange)
	_, err = t.Split(2, 2)
	require.ErrorIs(s.T(), err, mcm.ErrIndexOutOfRange)
	_, err = t.Split(-1, 2)
	require.ErrorIs(s.T(), err, mcm.ErrIndexOutOfRange)
}

// TestIdempotent ensures two builds of the same input are identical.
func (s *BuildSuite) TestIdempotent() {
	m1, s1, err := mcm.BuildTables(textbookDims)
	require.NoError(s.T(), err)
	m2, s2, err := mcm.BuildTables(textbookDims)
	require.NoError(s.T(), err)
	require.Equal(s.T(), m1, m2)
	require.Equal(s.T(), s1, s2)
}

// TestOptionsDoNotChangeTables ensures label options only affect printing.
func (s *BuildSuite) TestOptionsDoNotChangeTables() {
	plain, err := mcm.Build(textbookDims)
	require.NoError(s.T(), err)
	named, err := mcm.Build(textbookDims, mcm.WithLabelPrefix("M"), mcm.WithSeparator("·"))
	require.NoError(s.T(), err)

	require.Equal(s.T(), plain.CostTable(), named.CostTable())
	require.Equal(s.T(), plain.SplitTable(), named.SplitTable())
	require.Equal(s.T(), "((M1·(M2·M3))·((M4·M5)·M6))", named.OptimalOrder())
}

// TestBuildSuite runs BuildSuite.
func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

// TestBuild_TieBreakSmallestSplit verifies that equal-cost splits resolve to the smallest k.
func TestBuild_TieBreakSmallestSplit(t *testing.T) {
	tb, err := mcm.Build([]int{1, 1, 1, 1})
	require.NoError(t, err)

	// k=0 and k=1 both cost 2; the first one scanned wins.
	k, err := tb.Split(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, k)
	assert.Equal(t, mcm.Cost(2), tb.OptimalCost())
	assert.Equal(t, "(A1 x (A2 x A3))", tb.OptimalOrder())

	// Uniform square chains tie everywhere: the plan is always right-leaning.
	tb, err = mcm.Build([]int{3, 3, 3, 3, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, "(A1 x (A2 x (A3 x (A4 x A5))))", tb.OptimalOrder())
}

// TestBuild_GoldenChains pins a few more chains computed with the reference algorithm.
func TestBuild_GoldenChains(t *testing.T) {
	cases := []struct {
		dims  []int
		cost  mcm.Cost
		order string
	}{
		{[]int{10, 20, 30, 40, 30}, 30000, "(((A1 x A2) x A3) x A4)"},
		{[]int{40, 20, 30, 10, 30}, 26000, "((A1 x (A2 x A3)) x A4)"},
		{[]int{5, 4, 6, 2, 7}, 158, "((A1 x (A2 x A3)) x A4)"},
		{[]int{2, 3, 4, 5}, 64, "((A1 x A2) x A3)"},
	}
	for _, tc := range cases {
		tb, err := mcm.Build(tc.dims)
		require.NoError(t, err)
		assert.Equal(t, tc.cost, tb.OptimalCost(), "dims=%v", tc.dims)
		assert.Equal(t, tc.order, tb.OptimalOrder(), "dims=%v", tc.dims)
	}
}

// TestBuild_MatchesBruteForce checks every cell against exhaustive recursion
// on random chains, plus the table shape and the sentinel layout.
func TestBuild_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(7)
		dims := randomDims(rng, n, 40)

		m, sp, err := mcm.BuildTables(dims)
		require.NoError(t, err, "dims=%v", dims)
		require.Len(t, m, n)
		require.Len(t, sp, n)

		for i := 0; i < n; i++ {
			require.Len(t, m[i], n)
			require.Len(t, sp[i], n)
			for j := 0; j < n; j++ {
				switch {
				case i == j:
					require.Equal(t, mcm.Cost(0), m[i][j])
				case i > j:
					require.True(t, m[i][j].IsInf(), "below-diagonal cell must stay ∞")
				default:
					require.False(t, m[i][j].IsInf(), "upper cell must be finite")
					require.Equal(t, bruteCost(dims, i, j), m[i][j], "dims=%v cell=(%d,%d)", dims, i, j)

					// s[i][j] achieves the minimum and no smaller k does.
					k := sp[i][j]
					require.GreaterOrEqual(t, k, i)
					require.Less(t, k, j)
					w := func(k int) mcm.Cost {
						return m[i][k] + m[k+1][j] + mcm.Cost(dims[i]*dims[k+1]*dims[j+1])
					}
					require.Equal(t, m[i][j], w(k))
					for kk := i; kk < k; kk++ {
						require.Greater(t, w(kk), m[i][j])
					}
				}
			}
		}
	}
}

// TestSequentialCost compares the left-to-right baseline with the optimum.
func TestSequentialCost(t *testing.T) {
	c, err := mcm.SequentialCost(textbookDims)
	require.NoError(t, err)
	assert.Equal(t, mcm.Cost(40500), c)

	c, err = mcm.SequentialCost([]int{5, 10})
	require.NoError(t, err)
	assert.Equal(t, mcm.Cost(0), c)

	_, err = mcm.SequentialCost([]int{7})
	assert.ErrorIs(t, err, mcm.ErrTooFewDimensions)

	rng := rand.New(rand.NewSource(seedDet))
	for iter := 0; iter < 100; iter++ {
		dims := randomDims(rng, 1+rng.Intn(10), 60)
		tb, err := mcm.Build(dims)
		require.NoError(t, err)
		seq, err := mcm.SequentialCost(dims)
		require.NoError(t, err)
		require.LessOrEqual(t, tb.OptimalCost(), seq, "dims=%v", dims)
	}
}

// TestCost_String checks the ∞ marker.
func TestCost_String(t *testing.T) {
	assert.Equal(t, "15125", mcm.Cost(15125).String())
	assert.Equal(t, "∞", mcm.Infinity.String())
	assert.True(t, strings.Contains(mcm.Infinity.String(), mcm.InfinityMarker))
}
