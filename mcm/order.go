// SPDX-License-Identifier: MIT

package mcm

import (
	"strconv"
	"strings"
)

// ReconstructOrder turns a split table into the fully parenthesized product
// for the interval [i, j]:
//
//	order(i, i) = "A{i+1}"
//	order(i, j) = "(" + order(i, k) + " x " + order(k+1, j) + ")",  k = split[i][j]
//
// The walk is a pure recursion over a binary tree of depth ≤ N.
//
// Errors:
//   - ErrIndexOutOfRange: [i, j] is not inside 0 ≤ i ≤ j < len(split).
//   - ErrMalformedSplit: split is not square, or a visited split[a][b] lies
//     outside [a, b-1].
//
// Complexity: O(N) for the walk plus O(N) for the squareness check.
func ReconstructOrder(split [][]int, i, j int) (string, error) {
	n := len(split)
	for _, row := range split {
		if len(row) != n {
			return "", ErrMalformedSplit
		}
	}
	if i < 0 || i > j || j >= n {
		return "", ErrIndexOutOfRange
	}

	var b strings.Builder
	label := func(x int) string { return DefaultLabelPrefix + strconv.Itoa(x+1) }
	if err := writeOrder(&b, split, i, j, label, DefaultSeparator); err != nil {
		return "", err
	}

	return b.String(), nil
}

// Order returns the optimal parenthesization of the sub-chain [i, j] using
// the labels and separator configured at Build time.
// Requires 0 ≤ i ≤ j < N, otherwise ErrIndexOutOfRange.
func (t *Tables) Order(i, j int) (string, error) {
	if !t.inRange(i, j) {
		return "", ErrIndexOutOfRange
	}

	var b strings.Builder
	if err := writeOrder(&b, t.split, i, j, t.cfg.label, t.cfg.sep); err != nil {
		return "", err
	}

	return b.String(), nil
}

// OptimalOrder returns the parenthesization of the whole chain.
// The split table of a built Tables is well formed, so no error can occur.
func (t *Tables) OptimalOrder() string {
	s, _ := t.Order(0, t.N()-1)

	return s
}

// writeOrder appends order(i, j) to b. Bounds of i and j are the caller's
// job; split points are checked on the way down.
func writeOrder(b *strings.Builder, split [][]int, i, j int, label func(int) string, sep string) error {
	if i == j {
		b.WriteString(label(i))

		return nil
	}
	k := split[i][j]
	if k < i || k >= j {
		return ErrMalformedSplit
	}

	b.WriteByte('(')
	if err := writeOrder(b, split, i, k, label, sep); err != nil {
		return err
	}
	b.WriteString(sep)
	if err := writeOrder(b, split, k+1, j, label, sep); err != nil {
		return err
	}
	b.WriteByte(')')

	return nil
}
