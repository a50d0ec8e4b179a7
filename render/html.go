// SPDX-License-Identifier: MIT

package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/katalvlaran/matrixchain/mcm"
)

// heatColors is the low → high cost gradient of the HTML heatmap.
var heatColors = []string{"#50a3ba", "#eac736", "#d94e5d"}

// HTML writes a self-contained go-echarts page with the cost table as a
// heatmap: columns and rows are the matrix labels, the subtitle carries the
// optimal order. Cells below the diagonal are left out.
func HTML(w io.Writer, t *mcm.Tables) error {
	if t == nil {
		return ErrNilTables
	}
	labels := t.Labels()
	items, hi := heatItems(t)

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Matrix Chain Multiplication",
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Cost matrix (minimum multiplications)",
			Subtitle: "Best way to parenthesize: " + t.OptimalOrder(),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:    "category",
			Data:    labels,
			Inverse: opts.Bool(true),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(hi),
			InRange: &opts.VisualMapInRange{
				Color: heatColors,
			},
		}),
	)
	hm.SetXAxis(labels).AddSeries("cost", items)

	return hm.Render(w)
}

// heatItems converts the upper triangle of the cost table into
// (column, row, value) triples and returns the largest value seen.
func heatItems(t *mcm.Tables) ([]opts.HeatMapData, mcm.Cost) {
	var (
		items []opts.HeatMapData
		hi    mcm.Cost
	)
	for i, row := range t.CostTable() {
		for j, c := range row {
			if c.IsInf() {
				continue
			}
			items = append(items, opts.HeatMapData{Value: [3]interface{}{j, i, int64(c)}})
			if c > hi {
				hi = c
			}
		}
	}

	return items, hi
}
