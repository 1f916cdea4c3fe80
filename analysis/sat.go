package analysis

// SAT-backed property proofs.
//
// Truth tables are exact but cost 2^n rows. The functions here decide
// the same properties by satisfiability instead: a formula is a
// tautology iff its negation has no model, a contradiction iff it has
// no model itself, and two formulas are equivalent iff no assignment
// separates them. Useful past roughly 20 variables, and exercised in
// tests as a cross-check of the enumeration path.

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/truthtab/go-prop/ir"
)

// litBuilder translates an ir tree into a gini circuit, one literal
// per distinct variable name.
type litBuilder struct {
	c    *logic.C
	vars map[string]z.Lit
}

func newLitBuilder() *litBuilder {
	return &litBuilder{
		c:    logic.NewC(),
		vars: make(map[string]z.Lit),
	}
}

func (b *litBuilder) build(n *ir.Node) z.Lit {
	switch n.Kind {
	case ir.VarKind:
		if lit, ok := b.vars[n.Name]; ok {
			return lit
		}
		lit := b.c.Lit()
		b.vars[n.Name] = lit
		return lit
	case ir.NotKind:
		return b.build(n.Left).Not()
	case ir.AndKind:
		return b.c.Ands(b.build(n.Left), b.build(n.Right))
	case ir.OrKind:
		return b.c.Ors(b.build(n.Left), b.build(n.Right))
	case ir.ImpliesKind:
		return b.c.Ors(b.build(n.Left).Not(), b.build(n.Right))
	case ir.IffKind:
		l, r := b.build(n.Left), b.build(n.Right)
		return b.c.Ors(b.c.Ands(l, r), b.c.Ands(l.Not(), r.Not()))
	default:
		return b.c.F
	}
}

func (b *litBuilder) satisfiable(formula z.Lit) bool {
	g := gini.New()
	b.c.ToCnf(g)
	g.Assume(formula)
	return g.Solve() == 1
}

// Satisfiable reports whether some assignment makes n true.
func Satisfiable(n *ir.Node) bool {
	b := newLitBuilder()
	return b.satisfiable(b.build(n))
}

// ProveTautology reports whether n holds under every assignment, by
// refuting its negation.
func ProveTautology(n *ir.Node) bool {
	b := newLitBuilder()
	return !b.satisfiable(b.build(n).Not())
}

// ProveContradiction reports whether no assignment makes n true.
func ProveContradiction(n *ir.Node) bool {
	return !Satisfiable(n)
}

// ProveEquivalence reports whether a and b agree on every assignment.
// Shared variable names map to shared literals, so the check refutes
// any assignment on which the two formulas differ.
func ProveEquivalence(a, b *ir.Node) bool {
	lb := newLitBuilder()
	la, lbb := lb.build(a), lb.build(b)
	differs := lb.c.Ors(lb.c.Ands(la, lbb.Not()), lb.c.Ands(la.Not(), lbb))
	return !lb.satisfiable(differs)
}
