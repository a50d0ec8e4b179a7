// SPDX-License-Identifier: MIT

// Package mcm solves the Matrix Chain Multiplication problem: given the
// shapes of N matrices A1·A2·…·AN, find the parenthesization that needs the
// fewest scalar multiplications.
//
// 🚀 What is Matrix Chain Multiplication?
//
//	Matrix product is associative, so (A1·A2)·A3 == A1·(A2·A3), but the
//	amount of work is not. For shapes 10×100, 100×5 and 5×50:
//	  • (A1·A2)·A3 costs 10·100·5 + 10·5·50   =  7 500 multiplications
//	  • A1·(A2·A3) costs 100·5·50 + 10·100·50 = 75 000 multiplications
//	The chain is described compactly by N+1 dimensions: matrix i has shape
//	dims[i] × dims[i+1].
//
// ✨ Key features:
//   - bottom-up interval DP: cost table m and split table s (Build, BuildTables)
//   - exact tie policy: the smallest split point k wins (strict "<" scan)
//   - explicit Infinity sentinel instead of floating-point +Inf
//   - order reconstruction: "((A1 x (A2 x A3)) x A4)" (ReconstructOrder, Tables.Order)
//   - plan tree with per-node shape and cost (Tables.Plan)
//   - execution of the plan on real gonum matrices (Multiply)
//   - input parsing from "30,35,15,5" style text (ParseDimensions)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/matrixchain/mcm"
//
//	dims, err := mcm.ParseDimensions("30,35,15,5,10,20,25")
//	if err != nil {
//	  // errors.Is(err, mcm.ErrInvalidInput) == true
//	}
//	t, err := mcm.Build(dims)
//	fmt.Println(t.OptimalOrder()) // ((A1 x (A2 x A3)) x ((A4 x A5) x A6))
//	fmt.Println(t.OptimalCost())  // 15125
//
// Errors:
//   - every user-facing failure is an *InvalidInputError matching ErrInvalidInput
//   - ErrIndexOutOfRange / ErrMalformedSplit flag caller bugs, not bad input
//
// Performance:
//
//   - Time:   O(N³)
//   - Memory: O(N²)
//
// The package never logs, never panics on user input and keeps no state
// between calls; a *Tables value is immutable once Build returns.
package mcm
