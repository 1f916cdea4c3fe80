// Package analysis derives logical properties from truth tables and,
// for formulas too wide to enumerate, from a SAT solver.
package analysis

import (
	"errors"
	"fmt"

	"github.com/truthtab/go-prop/table"
)

var ErrVariableMismatch = errors.New("variable mismatch")

// PropertyResult carries the tautology and contradiction flags for one
// formula. RowsEvaluated counts rows that produced a truth value; rows
// that errored are excluded from the all-true / all-false decision.
type PropertyResult struct {
	Expression      string
	Variables       []string
	IsTautology     bool
	IsContradiction bool
	RowsEvaluated   int
}

// EquivalenceResult reports whether two formulas agree on every
// assignment of the shared variable list. Confidence is the percentage
// of rows on which they agree, reported even when not equivalent.
type EquivalenceResult struct {
	Expr1, Expr2  string
	Variables     []string
	AreEquivalent bool
	Differing     []int
	Confidence    float64
}

// IsTautology reports whether every evaluated row of t is true and at
// least one row evaluated. A table of only error rows is not a
// tautology.
func IsTautology(t *table.TruthTable) bool {
	evaluated := 0
	for i := range t.Rows {
		r := &t.Rows[i]
		if r.Result == nil {
			continue
		}
		if !*r.Result {
			return false
		}
		evaluated++
	}
	return evaluated > 0
}

// IsContradiction reports whether every evaluated row of t is false
// and at least one row evaluated.
func IsContradiction(t *table.TruthTable) bool {
	evaluated := 0
	for i := range t.Rows {
		r := &t.Rows[i]
		if r.Result == nil {
			continue
		}
		if *r.Result {
			return false
		}
		evaluated++
	}
	return evaluated > 0
}

// Properties bundles both flags with the evaluated row count.
func Properties(t *table.TruthTable) *PropertyResult {
	evaluated := 0
	for i := range t.Rows {
		if t.Rows[i].Result != nil {
			evaluated++
		}
	}
	return &PropertyResult{
		Expression:      t.Expression,
		Variables:       t.Variables,
		IsTautology:     IsTautology(t),
		IsContradiction: IsContradiction(t),
		RowsEvaluated:   evaluated,
	}
}

// CheckEquivalence compares two tables row by row. The tables must
// share the same variable list in the same order. A pair where either
// side failed to evaluate counts as non-matching.
func CheckEquivalence(t1, t2 *table.TruthTable) (*EquivalenceResult, error) {
	if err := sameVariables(t1, t2); err != nil {
		return nil, err
	}
	res := &EquivalenceResult{
		Expr1:     t1.Expression,
		Expr2:     t2.Expression,
		Variables: t1.Variables,
	}
	total := len(t1.Rows)
	matching := 0
	for i := 0; i < total; i++ {
		r1, r2 := &t1.Rows[i], &t2.Rows[i]
		if r1.Result != nil && r2.Result != nil && *r1.Result == *r2.Result {
			matching++
			continue
		}
		res.Differing = append(res.Differing, i)
	}
	res.AreEquivalent = len(res.Differing) == 0
	if total > 0 {
		res.Confidence = float64(matching) / float64(total) * 100
	}
	return res, nil
}

func sameVariables(t1, t2 *table.TruthTable) error {
	if len(t1.Variables) != len(t2.Variables) || len(t1.Rows) != len(t2.Rows) {
		return fmt.Errorf("%w: %w: %v vs %v",
			table.ErrValidation, ErrVariableMismatch, t1.Variables, t2.Variables)
	}
	for i := range t1.Variables {
		if t1.Variables[i] != t2.Variables[i] {
			return fmt.Errorf("%w: %w: %v vs %v",
				table.ErrValidation, ErrVariableMismatch, t1.Variables, t2.Variables)
		}
	}
	return nil
}
