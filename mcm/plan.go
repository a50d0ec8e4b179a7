// SPDX-License-Identifier: MIT

package mcm

import "strings"

// Node is one product in the optimal plan. The root covers the whole chain.
//
//   - Leaf:     Left == Right == nil, Lo == Hi, Split == -1, Cost == 0.
//   - Internal: Left covers [Lo, Split], Right covers [Split+1, Hi].
//
// Rows×Cols is the shape of the value the node produces and Cost is
// m[Lo][Hi], the multiplications spent in the whole subtree.
type Node struct {
	Lo, Hi     int
	Split      int
	Rows, Cols int
	Cost       Cost
	Label      string // leaf name; empty for internal nodes

	Left, Right *Node
}

// IsLeaf reports whether n is a single input matrix.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Depth returns the number of levels below and including n.
// A single matrix has depth 1.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 1
	}

	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// Walk visits the subtree in post-order: both operands before the product
// that consumes them, which is a valid evaluation order.
func (n *Node) Walk(fn func(*Node)) {
	if !n.IsLeaf() {
		n.Left.Walk(fn)
		n.Right.Walk(fn)
	}
	fn(n)
}

// Expr renders the subtree with the given operand separator.
func (n *Node) Expr(sep string) string {
	var b strings.Builder
	n.writeExpr(&b, sep)

	return b.String()
}

// String renders the subtree with DefaultSeparator.
func (n *Node) String() string { return n.Expr(DefaultSeparator) }

func (n *Node) writeExpr(b *strings.Builder, sep string) {
	if n.IsLeaf() {
		b.WriteString(n.Label)

		return
	}
	b.WriteByte('(')
	n.Left.writeExpr(b, sep)
	b.WriteString(sep)
	n.Right.writeExpr(b, sep)
	b.WriteByte(')')
}

// Plan returns the plan tree of the whole chain, or nil for an empty Tables.
func (t *Tables) Plan() *Node {
	if t.N() == 0 {
		return nil
	}

	return t.node(0, t.N()-1)
}

// PlanInterval returns the plan tree of the sub-chain [i, j].
// Requires 0 ≤ i ≤ j < N, otherwise ErrIndexOutOfRange.
func (t *Tables) PlanInterval(i, j int) (*Node, error) {
	if !t.inRange(i, j) {
		return nil, ErrIndexOutOfRange
	}

	return t.node(i, j), nil
}

// node builds the subtree for [i, j]; the split table is trusted.
func (t *Tables) node(i, j int) *Node {
	n := &Node{
		Lo:    i,
		Hi:    j,
		Split: -1,
		Rows:  t.dims[i],
		Cols:  t.dims[j+1],
		Cost:  t.cost[i][j],
	}
	if i == j {
		n.Label = t.cfg.label(i)

		return n
	}
	n.Split = t.split[i][j]
	n.Left = t.node(i, n.Split)
	n.Right = t.node(n.Split+1, j)

	return n
}
