// SPDX-License-Identifier: MIT

// Package matrixchain finds the cheapest way to multiply a chain of matrices
// and shows why it is the cheapest.
//
// 🚀 What is in the box?
//
//	• mcm/       cost table m, split table s, optimal order, plan tree,
//	             and execution of the plan on gonum matrices
//	• render/    text table with ∞ markers, go-echarts HTML heatmap,
//	             gonum/plot SVG/PNG heatmap
//	• cmd/mcm/   command-line front-end wiring both together
//	• examples/  runnable scenarios
//
// ✨ Why another matrix-chain solver?
//
//   - Exact, reproducible output: ties always resolve to the smallest split
//   - Typed errors: every bad input is an *mcm.InvalidInputError
//   - No float infinities: the unused half of the table holds mcm.Infinity
//   - Pure functions: no globals, no logging, safe to share results
//
// Quick example:
//
//	$ mcm 30 35 15 5 10 20 25
//	Best way to parenthesize: ((A1 x (A2 x A3)) x ((A4 x A5) x A6))
//	Minimum multiplications: 15125
//
//	go get github.com/katalvlaran/matrixchain/mcm
package matrixchain
