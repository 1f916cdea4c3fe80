// Package render produces terminal representations of truth tables
// and equivalence reports.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/truthtab/go-prop/table"
)

type options struct {
	color bool
}

type Option func(*options)

// WithColor colorizes truth values. Callers decide terminal detection.
func WithColor(on bool) Option {
	return func(o *options) {
		o.color = on
	}
}

const cellWidth = 5

// Table renders t as an aligned ASCII table. Rows that failed to
// evaluate show the error in place of a result.
func Table(t *table.TruthTable, opts ...Option) string {
	o := &options{}
	for _, f := range opts {
		f(o)
	}

	cols := make([]string, 0, len(t.Variables)+1)
	for _, v := range t.Variables {
		cols = append(cols, fmt.Sprintf("%*s", cellWidth, v))
	}
	cols = append(cols, "Result")
	header := strings.Join(cols, " | ")

	seps := make([]string, len(t.Variables)+1)
	for i := range seps {
		seps[i] = strings.Repeat("-", cellWidth)
	}
	sep := strings.Join(seps, "-+-")

	lines := []string{header, sep}
	for i := range t.Rows {
		r := &t.Rows[i]
		cells := make([]string, 0, len(r.Values)+1)
		for _, v := range r.Values {
			cells = append(cells, o.cell(v))
		}
		if r.Result != nil {
			cells = append(cells, o.cell(*r.Result))
		} else {
			cells = append(cells, "error")
		}
		lines = append(lines, strings.Join(cells, " | "))
	}
	return strings.Join(lines, "\n")
}

func (o *options) cell(v bool) string {
	s := fmt.Sprintf("%*s", cellWidth, fmt.Sprintf("%v", v))
	if !o.color {
		return s
	}
	if v {
		return color.GreenString("%s", s)
	}
	return color.RedString("%s", s)
}
