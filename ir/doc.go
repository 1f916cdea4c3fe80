// Package ir provides the intermediate representation for
// propositional formulas.
//
// # Overview
//
// A formula is a tree of Node values. Nodes are a recursive tagged
// union: variables carry a name, negation carries one child in Left,
// and the binary connectives carry Left and Right. Trees are built by
// the parse package or by the constructors here and are never mutated
// after construction, so they may be shared freely across goroutines.
//
// # Related Packages
//
//   - github.com/truthtab/go-prop/parse - text to Node
//   - github.com/truthtab/go-prop/eval - Node evaluation
package ir
