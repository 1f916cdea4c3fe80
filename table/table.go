// Package table enumerates truth tables for propositional formulas.
package table

import (
	"errors"
	"fmt"
	"time"

	"github.com/truthtab/go-prop/eval"
	"github.com/truthtab/go-prop/ir"
	"github.com/truthtab/go-prop/parse"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNoVariables       = errors.New("empty variable list")
	ErrDuplicateVariable = errors.New("duplicate variable")
)

// Row is one line of a truth table. Values aligns with the table's
// Variables. Result is nil exactly when Err is set.
type Row struct {
	Values []bool
	Result *bool
	Err    error
}

// TruthTable holds all 2^n assignments for a variable list and the
// formula's value under each. Immutable once built.
type TruthTable struct {
	Variables  []string
	Expression string
	Rows       []Row
	CreatedAt  time.Time
}

// Assignment returns row i's variable bindings as a map.
func (t *TruthTable) Assignment(i int) map[string]bool {
	asg := make(map[string]bool, len(t.Variables))
	for j, name := range t.Variables {
		asg[name] = t.Rows[i].Values[j]
	}
	return asg
}

// Generate parses expression once and evaluates it under every
// assignment of variables. Rows run in canonical order: the first
// variable toggles slowest and true sorts before false, so row 0 is
// all true and the last row all false. A row whose evaluation fails
// (the formula references a name outside variables) records the error
// and a nil result; the table always has exactly 2^n rows.
func Generate(variables []string, expression string) (*TruthTable, error) {
	if err := Validate(variables); err != nil {
		return nil, err
	}
	node, err := parse.Parse(expression)
	if err != nil {
		return nil, err
	}
	return FromNode(variables, expression, node), nil
}

// FromNode builds a table for an already parsed formula.
func FromNode(variables []string, expression string, node *ir.Node) *TruthTable {
	n := len(variables)
	t := &TruthTable{
		Variables:  variables,
		Expression: expression,
		Rows:       make([]Row, 1<<n),
		CreatedAt:  time.Now(),
	}
	asg := make(map[string]bool, n)
	for i := range t.Rows {
		values := make([]bool, n)
		for j, name := range variables {
			// bit 0 of i drives the last variable; a clear bit
			// means true so the all-true row comes first.
			v := (i>>(n-1-j))&1 == 0
			values[j] = v
			asg[name] = v
		}
		row := Row{Values: values}
		res, err := eval.Eval(node, asg)
		if err != nil {
			row.Err = err
		} else {
			row.Result = &res
		}
		t.Rows[i] = row
	}
	return t
}

// Validate rejects empty variable lists and duplicate names.
func Validate(variables []string) error {
	if len(variables) == 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNoVariables)
	}
	seen := make(map[string]bool, len(variables))
	for _, name := range variables {
		if seen[name] {
			return fmt.Errorf("%w: %w %q", ErrValidation, ErrDuplicateVariable, name)
		}
		seen[name] = true
	}
	return nil
}
