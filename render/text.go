// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/matrixchain/mcm"
)

// Section headings of the text report.
const (
	orderHeading = "Best way to parenthesize:"
	costHeading  = "Minimum multiplications:"
	tableHeading = "Cost matrix (minimum multiplications):"
)

// Text writes the order, the optimal cost and the cost table:
//
//	Best way to parenthesize: (A1 x A2)
//	Minimum multiplications: 6000
//
//	Cost matrix (minimum multiplications):
//	     1     2
//	  1  0  6000
//	  2  ∞     0
func Text(w io.Writer, t *mcm.Tables) error {
	if t == nil {
		return ErrNilTables
	}
	if _, err := fmt.Fprintf(w, "%s %s\n%s %s\n\n%s\n",
		orderHeading, t.OptimalOrder(),
		costHeading, t.OptimalCost(),
		tableHeading); err != nil {
		return err
	}

	return CostTable(w, t)
}

// CostTable writes only the N×N cost table with 1-based row and column
// headers, right-aligned, ∞ marking cells the DP never fills.
func CostTable(w io.Writer, t *mcm.Tables) error {
	if t == nil {
		return ErrNilTables
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	n := t.N()
	for j := 0; j < n; j++ {
		fmt.Fprintf(tw, "\t%d", j+1)
	}
	fmt.Fprint(tw, "\t\n")

	for i, row := range t.CostTable() {
		fmt.Fprint(tw, strconv.Itoa(i+1))
		for _, c := range row {
			fmt.Fprintf(tw, "\t%s", c)
		}
		fmt.Fprint(tw, "\t\n")
	}

	return tw.Flush()
}
