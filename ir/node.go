package ir

type Kind int

const (
	VarKind Kind = iota
	NotKind
	AndKind
	OrKind
	ImpliesKind
	IffKind
)

func (k Kind) String() string {
	return map[Kind]string{
		VarKind:     "VarKind",
		NotKind:     "NotKind",
		AndKind:     "AndKind",
		OrKind:      "OrKind",
		ImpliesKind: "ImpliesKind",
		IffKind:     "IffKind",
	}[k]
}

type Node struct {
	Kind Kind
	Name string // VarKind only

	// NotKind uses Left only, binary connectives use both.
	Left, Right *Node
}

func Var(name string) *Node {
	return &Node{Kind: VarKind, Name: name}
}

func Not(x *Node) *Node {
	return &Node{Kind: NotKind, Left: x}
}

func And(l, r *Node) *Node {
	return &Node{Kind: AndKind, Left: l, Right: r}
}

func Or(l, r *Node) *Node {
	return &Node{Kind: OrKind, Left: l, Right: r}
}

func Implies(l, r *Node) *Node {
	return &Node{Kind: ImpliesKind, Left: l, Right: r}
}

func Iff(l, r *Node) *Node {
	return &Node{Kind: IffKind, Left: l, Right: r}
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Kind:  n.Kind,
		Name:  n.Name,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
	}
}

// Visit walks the tree pre-order, calling fn at every node. Returning
// false from fn stops the walk.
func (n *Node) Visit(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	if !n.Left.Visit(fn) {
		return false
	}
	return n.Right.Visit(fn)
}

// Vars returns the variable names referenced by the formula, in order
// of first appearance.
func (n *Node) Vars() []string {
	seen := map[string]bool{}
	var names []string
	n.Visit(func(c *Node) bool {
		if c.Kind == VarKind && !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
		return true
	})
	return names
}
