// SPDX-License-Identifier: MIT

// Package render presents a solved matrix chain: the optimal order, the
// optimal cost and the cost table m.
//
// Formats:
//   - FormatText: aligned plain-text table, ∞ for never-computed cells
//   - FormatHTML: interactive go-echarts heatmap page
//   - FormatSVG: gonum/plot heatmap as SVG
//   - FormatPNG: gonum/plot heatmap as PNG
//
// Every renderer writes to an io.Writer and reads the *mcm.Tables only
// through its accessors, so rendering never mutates a result.
//
//	t, _ := mcm.Build([]int{30, 35, 15, 5, 10, 20, 25})
//	_ = render.Render(os.Stdout, t, render.FormatText)
package render
