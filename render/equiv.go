package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/truthtab/go-prop/analysis"
	"github.com/truthtab/go-prop/table"
)

// EquivalenceReport renders the verdict of comparing two truth
// tables, with a character diff of the two result columns: each row
// contributes T, F or ? (error row) and go-diff marks where the
// columns disagree.
func EquivalenceReport(res *analysis.EquivalenceResult, t1, t2 *table.TruthTable, opts ...Option) string {
	o := &options{}
	for _, f := range opts {
		f(o)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%q vs %q over %v\n",
		res.Expr1, res.Expr2, res.Variables)
	verdict := "NOT EQUIVALENT"
	if res.AreEquivalent {
		verdict = "EQUIVALENT"
	}
	if o.color {
		if res.AreEquivalent {
			verdict = color.GreenString("%s", verdict)
		} else {
			verdict = color.RedString("%s", verdict)
		}
	}
	fmt.Fprintf(&b, "%s (confidence %.1f%%)\n", verdict, res.Confidence)

	if !res.AreEquivalent {
		diffCfg := diffpatch.New()
		diffs := diffCfg.DiffMain(resultColumn(t1), resultColumn(t2), false)
		b.WriteString("columns: ")
		for _, d := range diffs {
			switch d.Type {
			case diffpatch.DiffDelete:
				fmt.Fprintf(&b, "[-%s]", d.Text)
			case diffpatch.DiffInsert:
				fmt.Fprintf(&b, "[+%s]", d.Text)
			default:
				b.WriteString(d.Text)
			}
		}
		b.WriteByte('\n')
		for _, i := range res.Differing {
			fmt.Fprintf(&b, "row %d: %s -> %s vs %s\n",
				i, assignment(t1, i), resultAt(t1, i), resultAt(t2, i))
		}
	}
	return b.String()
}

func resultColumn(t *table.TruthTable) string {
	var b strings.Builder
	for i := range t.Rows {
		b.WriteByte(resultChar(&t.Rows[i]))
	}
	return b.String()
}

func resultChar(r *table.Row) byte {
	switch {
	case r.Result == nil:
		return '?'
	case *r.Result:
		return 'T'
	default:
		return 'F'
	}
}

func resultAt(t *table.TruthTable, i int) string {
	r := &t.Rows[i]
	if r.Result == nil {
		return "error"
	}
	return fmt.Sprintf("%v", *r.Result)
}

func assignment(t *table.TruthTable, i int) string {
	parts := make([]string, len(t.Variables))
	for j, name := range t.Variables {
		parts[j] = fmt.Sprintf("%s=%v", name, t.Rows[i].Values[j])
	}
	return strings.Join(parts, ", ")
}
