// Package eval evaluates ir formulas against variable assignments.
package eval

import (
	"errors"
	"fmt"

	"github.com/truthtab/go-prop/ir"
)

var ErrUndefinedVariable = errors.New("undefined variable")

// UndefinedVariableError reports a variable referenced by a formula
// but absent from the assignment. It unwraps to ErrUndefinedVariable.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

func (e *UndefinedVariableError) Unwrap() error {
	return ErrUndefinedVariable
}

// Eval computes the truth value of n under asg. The only possible
// failure is a variable missing from asg; parsed trees are well formed
// by construction.
func Eval(n *ir.Node, asg map[string]bool) (bool, error) {
	switch n.Kind {
	case ir.VarKind:
		v, ok := asg[n.Name]
		if !ok {
			return false, &UndefinedVariableError{Name: n.Name}
		}
		return v, nil
	case ir.NotKind:
		v, err := Eval(n.Left, asg)
		if err != nil {
			return false, err
		}
		return !v, nil
	case ir.AndKind:
		l, r, err := evalBoth(n, asg)
		if err != nil {
			return false, err
		}
		return l && r, nil
	case ir.OrKind:
		l, r, err := evalBoth(n, asg)
		if err != nil {
			return false, err
		}
		return l || r, nil
	case ir.ImpliesKind:
		l, r, err := evalBoth(n, asg)
		if err != nil {
			return false, err
		}
		return !l || r, nil
	case ir.IffKind:
		l, r, err := evalBoth(n, asg)
		if err != nil {
			return false, err
		}
		return l == r, nil
	default:
		panic(fmt.Sprintf("eval: bad node kind %d", n.Kind))
	}
}

// evalBoth evaluates both children. Operands are pure, so both sides
// are always evaluated and undefined variables surface regardless of
// the other side's value.
func evalBoth(n *ir.Node, asg map[string]bool) (bool, bool, error) {
	l, err := Eval(n.Left, asg)
	if err != nil {
		return false, false, err
	}
	r, err := Eval(n.Right, asg)
	if err != nil {
		return false, false, err
	}
	return l, r, nil
}
