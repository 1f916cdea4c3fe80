// Package parse parses propositional expressions into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse("P AND (Q OR NOT R)")
//	if err != nil {
//	    return err
//	}
//
// The grammar, loosest binding first:
//
//	expr        = implication { ("BICONDITIONAL"|"↔") implication }
//	implication = disjunction { ("IMPLIES"|"→") disjunction }
//	disjunction = conjunction { ("OR"|"∨") conjunction }
//	conjunction = negation { ("AND"|"∧") negation }
//	negation    = ("NOT"|"¬") negation | atom
//	atom        = IDENT | "(" expr ")"
//
// Repetition folds left to right, so a IMPLIES b IMPLIES c parses as
// (a IMPLIES b) IMPLIES c.
//
// # Related Packages
//
//   - github.com/truthtab/go-prop/ir - node representation
//   - github.com/truthtab/go-prop/token - tokenization
package parse
