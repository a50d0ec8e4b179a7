// SPDX-License-Identifier: MIT

// Command mcm prints the optimal multiplication order and the cost table of
// a matrix chain.
//
//	mcm -dims 30,35,15,5,10,20,25
//	mcm 30 35 15 5 10 20 25
//	mcm 10 20 30 -format svg -o chain.svg
//	echo "10,20,30" | mcm -format html -o chain.html
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/matrixchain/mcm"
	"github.com/katalvlaran/matrixchain/render"
)

type config struct {
	Dims    string
	Format  string
	Output  string
	Prefix  string
	Sep     string
	Compare bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mcm: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.Println(err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg config
	fs := flag.NewFlagSet("mcm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Dims, "dims", "", "comma-separated matrix dimensions, e.g. 30,35,15,5")
	fs.StringVar(&cfg.Format, "format", "text", "output format: text, html, svg or png")
	fs.StringVar(&cfg.Output, "o", "", "write output to this file instead of stdout")
	fs.StringVar(&cfg.Prefix, "prefix", mcm.DefaultLabelPrefix, "matrix label prefix")
	fs.StringVar(&cfg.Sep, "sep", mcm.DefaultSeparator, "separator between multiplied operands")
	fs.BoolVar(&cfg.Compare, "compare", false, "also print the left-to-right cost (text format only)")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	text := cfg.Dims
	if text == "" && len(positional) > 0 {
		text = strings.Join(positional, ",")
	}
	if text == "" {
		if text, err = firstLine(stdin); err != nil {
			return err
		}
	}

	dims, err := mcm.ParseDimensions(text)
	if err != nil {
		return err
	}
	t, err := mcm.Build(dims, mcm.WithLabelPrefix(cfg.Prefix), mcm.WithSeparator(cfg.Sep))
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return emit(stdout, t, format, cfg.Compare)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err = emit(f, t, format, cfg.Compare); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// parseArgs parses flags that may appear before, between or after the
// positional dimensions and returns the positional values in order.
// Everything after "--" is positional.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// emit renders t and, for text output, the optional baseline comparison.
func emit(w io.Writer, t *mcm.Tables, format render.Format, compare bool) error {
	if err := render.Render(w, t, format); err != nil {
		return err
	}
	if compare && format == render.FormatText {
		return writeComparison(w, t.Dimensions(), t.OptimalCost())
	}

	return nil
}

// firstLine returns the first non-blank line of r, or "" at EOF.
func firstLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}

	return "", sc.Err()
}

// writeComparison prints the naive left-to-right cost next to the optimum.
func writeComparison(w io.Writer, dims mcm.Dimensions, best mcm.Cost) error {
	seq, err := mcm.SequentialCost(dims)
	if err != nil {
		return err
	}
	saved := 0.0
	if seq > 0 {
		saved = 100 * float64(seq-best) / float64(seq)
	}
	_, err = fmt.Fprintf(w, "\nLeft-to-right multiplications: %s (optimal order saves %.1f%%)\n", seq, saved)

	return err
}
