// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/matrixchain/mcm"
)

const (
	// heatSteps is the number of palette colors in image heatmaps.
	heatSteps = 16

	// imageSide is the edge length of the square image.
	imageSide = 5 * vg.Inch
)

// SVG writes the cost table as an SVG heatmap.
func SVG(w io.Writer, t *mcm.Tables) error { return heatImage(w, t, "svg") }

// PNG writes the cost table as a PNG heatmap.
func PNG(w io.Writer, t *mcm.Tables) error { return heatImage(w, t, "png") }

// heatImage draws the cost table with gonum/plot and encodes it as format.
func heatImage(w io.Writer, t *mcm.Tables, format string) error {
	if t == nil {
		return ErrNilTables
	}
	grid := newCostGrid(t)

	hm := plotter.NewHeatMap(grid, palette.Heat(heatSteps, 1))
	hm.Min, hm.Max = grid.lo, grid.hi
	hm.NaN = color.Transparent

	p := plot.New()
	p.Title.Text = "Cost matrix: " + t.OptimalOrder()
	p.X.Label.Text = "j"
	p.Y.Label.Text = "i"
	p.X.Tick.Marker = plot.ConstantTicks(grid.ticks(false))
	p.Y.Tick.Marker = plot.ConstantTicks(grid.ticks(true))
	p.Add(hm)

	wt, err := p.WriterTo(imageSide, imageSide, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)

	return err
}

// costGrid adapts a cost table to plotter.GridXYZ. Row 0 is drawn on top;
// Infinity cells become NaN and are painted transparent.
type costGrid struct {
	cost   [][]mcm.Cost
	labels []string
	lo, hi float64
}

var _ plotter.GridXYZ = (*costGrid)(nil)

func newCostGrid(t *mcm.Tables) *costGrid {
	g := &costGrid{cost: t.CostTable(), labels: t.Labels(), lo: math.Inf(1), hi: math.Inf(-1)}
	for _, row := range g.cost {
		for _, c := range row {
			if c.IsInf() {
				continue
			}
			g.lo = math.Min(g.lo, float64(c))
			g.hi = math.Max(g.hi, float64(c))
		}
	}
	// A flat table (N=1) would give the palette a zero-width range.
	if g.hi <= g.lo {
		g.hi = g.lo + 1
	}

	return g
}

func (g *costGrid) Dims() (c, r int) { return len(g.cost), len(g.cost) }

func (g *costGrid) Z(c, r int) float64 {
	v := g.cost[g.row(r)][c]
	if v.IsInf() {
		return math.NaN()
	}

	return float64(v)
}

func (g *costGrid) X(c int) float64 { return float64(c) }

func (g *costGrid) Y(r int) float64 { return float64(r) }

// row maps a grid row (bottom-up) to a cost-table row (top-down).
func (g *costGrid) row(r int) int { return len(g.cost) - 1 - r }

// Min and Max report the finite value range.
func (g *costGrid) Min() float64 { return g.lo }
func (g *costGrid) Max() float64 { return g.hi }

// ticks labels every cell center with the matrix names.
func (g *costGrid) ticks(rows bool) []plot.Tick {
	out := make([]plot.Tick, len(g.labels))
	for i, l := range g.labels {
		v := g.X(i)
		if rows {
			v = g.Y(g.row(i))
		}
		out[i] = plot.Tick{Value: v, Label: l}
	}

	return out
}
