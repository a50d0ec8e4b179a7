// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/matrixchain/mcm"
)

// Format selects a renderer.
type Format int

const (
	// FormatText renders a plain-text summary and table.
	FormatText Format = iota

	// FormatHTML renders a go-echarts heatmap page.
	FormatHTML

	// FormatSVG renders a gonum/plot heatmap as SVG.
	FormatSVG

	// FormatPNG renders a gonum/plot heatmap as PNG.
	FormatPNG
)

var (
	// ErrUnknownFormat is returned for an unrecognized format name or value.
	ErrUnknownFormat = errors.New("render: unknown format")

	// ErrNilTables is returned when asked to render a nil result.
	ErrNilTables = errors.New("render: nil tables")
)

var formatNames = [...]string{
	FormatText: "text",
	FormatHTML: "html",
	FormatSVG:  "svg",
	FormatPNG:  "png",
}

// String returns the lower-case name accepted by ParseFormat.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// ParseFormat maps a case-insensitive name ("text", "html", "svg", "png")
// to a Format. "txt" is accepted as an alias of "text".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "txt" {
		return FormatText, nil
	}
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Render writes t to w in format f.
func Render(w io.Writer, t *mcm.Tables, f Format) error {
	if t == nil {
		return ErrNilTables
	}
	switch f {
	case FormatText:
		return Text(w, t)
	case FormatHTML:
		return HTML(w, t)
	case FormatSVG:
		return SVG(w, t)
	case FormatPNG:
		return PNG(w, t)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}
