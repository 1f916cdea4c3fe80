package ir

import "strings"

// prec orders connectives from loosest to tightest binding. Used to
// decide where parentheses are needed when rendering.
func (n *Node) prec() int {
	switch n.Kind {
	case IffKind:
		return 0
	case ImpliesKind:
		return 1
	case OrKind:
		return 2
	case AndKind:
		return 3
	case NotKind:
		return 4
	default:
		return 5
	}
}

func (n *Node) connective() string {
	return map[Kind]string{
		NotKind:     "NOT",
		AndKind:     "AND",
		OrKind:      "OR",
		ImpliesKind: "IMPLIES",
		IffKind:     "BICONDITIONAL",
	}[n.Kind]
}

// String renders the formula in keyword syntax with parentheses only
// where binding requires them.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	switch n.Kind {
	case VarKind:
		b.WriteString(n.Name)
	case NotKind:
		b.WriteString("NOT ")
		n.renderChild(b, n.Left)
	default:
		n.renderChild(b, n.Left)
		b.WriteByte(' ')
		b.WriteString(n.connective())
		b.WriteByte(' ')
		n.renderChild(b, n.Right)
	}
}

func (n *Node) renderChild(b *strings.Builder, c *Node) {
	if c.prec() <= n.prec() && c.Kind != VarKind {
		b.WriteByte('(')
		c.render(b)
		b.WriteByte(')')
		return
	}
	c.render(b)
}
