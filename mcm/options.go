// SPDX-License-Identifier: MIT

// Package mcm: functional options controlling how a solved chain is printed.
// Options never influence the DP itself; two Tables built from the same
// dimensions always hold identical cost and split tables.

package mcm

import "strconv"

// Option customizes Build.
type Option func(*options)

// options is the resolved configuration carried by a Tables value.
type options struct {
	prefix string   // label prefix, used when labels == nil
	sep    string   // operand separator inside a product
	labels []string // explicit per-matrix names; len must equal N
}

// defaultOptions returns the A1..AN / " x " policy.
func defaultOptions() options {
	return options{prefix: DefaultLabelPrefix, sep: DefaultSeparator}
}

// gatherOptions applies opts on top of the defaults.
func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithLabelPrefix sets the prefix for generated labels: prefix+"1" … prefix+"N".
// An empty prefix yields bare numbers.
func WithLabelPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithSeparator sets the text placed between the two operands of a product.
func WithSeparator(sep string) Option {
	return func(o *options) { o.sep = sep }
}

// WithLabels names every matrix explicitly. Build rejects the option with
// ErrLabelCount when len(labels) differs from the number of matrices.
// The slice is copied.
func WithLabels(labels []string) Option {
	cp := make([]string, len(labels))
	copy(cp, labels)

	return func(o *options) { o.labels = cp }
}

// label returns the display name of matrix i.
func (o *options) label(i int) string {
	if o.labels != nil {
		return o.labels[i]
	}

	return o.prefix + strconv.Itoa(i+1)
}
