package parse

import (
	"fmt"
	"strings"

	"github.com/truthtab/go-prop/ir"
	"github.com/truthtab/go-prop/token"
)

// Parse turns an expression string into an ir tree.
func Parse(src string) (*ir.Node, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrEmptyExpression)
	}
	toks, err := token.Tokenize(src)
	if err != nil {
		return nil, err
	}
	off := 0
	res, err := parseIff(toks, &off)
	if err != nil {
		return nil, err
	}
	if toks[off].Type != token.TEnd {
		return nil, fmt.Errorf("%w: %w %q %s",
			ErrParse, ErrTrailingInput, toks[off].Text, toks[off].Pos)
	}
	return res, nil
}

func parseIff(toks []token.Token, pi *int) (*ir.Node, error) {
	res, err := parseImplies(toks, pi)
	if err != nil {
		return nil, err
	}
	for toks[*pi].Type == token.TIff {
		*pi++
		rhs, err := parseImplies(toks, pi)
		if err != nil {
			return nil, err
		}
		res = ir.Iff(res, rhs)
	}
	return res, nil
}

func parseImplies(toks []token.Token, pi *int) (*ir.Node, error) {
	res, err := parseOr(toks, pi)
	if err != nil {
		return nil, err
	}
	for toks[*pi].Type == token.TImplies {
		*pi++
		rhs, err := parseOr(toks, pi)
		if err != nil {
			return nil, err
		}
		res = ir.Implies(res, rhs)
	}
	return res, nil
}

func parseOr(toks []token.Token, pi *int) (*ir.Node, error) {
	res, err := parseAnd(toks, pi)
	if err != nil {
		return nil, err
	}
	for toks[*pi].Type == token.TOr {
		*pi++
		rhs, err := parseAnd(toks, pi)
		if err != nil {
			return nil, err
		}
		res = ir.Or(res, rhs)
	}
	return res, nil
}

func parseAnd(toks []token.Token, pi *int) (*ir.Node, error) {
	res, err := parseNot(toks, pi)
	if err != nil {
		return nil, err
	}
	for toks[*pi].Type == token.TAnd {
		*pi++
		rhs, err := parseNot(toks, pi)
		if err != nil {
			return nil, err
		}
		res = ir.And(res, rhs)
	}
	return res, nil
}

func parseNot(toks []token.Token, pi *int) (*ir.Node, error) {
	if toks[*pi].Type == token.TNot {
		*pi++
		child, err := parseNot(toks, pi)
		if err != nil {
			return nil, err
		}
		return ir.Not(child), nil
	}
	return parseAtom(toks, pi)
}

func parseAtom(toks []token.Token, pi *int) (*ir.Node, error) {
	t := &toks[*pi]
	switch t.Type {
	case token.TVariable:
		*pi++
		return ir.Var(t.Text), nil
	case token.TLParen:
		*pi++
		res, err := parseIff(toks, pi)
		if err != nil {
			return nil, err
		}
		if toks[*pi].Type != token.TRParen {
			return nil, fmt.Errorf("%w: %w %s",
				ErrParse, ErrUnbalancedParen, toks[*pi].Pos)
		}
		*pi++
		return res, nil
	case token.TRParen:
		return nil, fmt.Errorf("%w: %w %s",
			ErrParse, ErrUnbalancedParen, t.Pos)
	case token.TEnd:
		return nil, fmt.Errorf("%w: premature end of expression %s",
			ErrParse, t.Pos)
	default:
		return nil, fmt.Errorf("%w: unexpected %s %q %s",
			ErrParse, t.Type, t.Text, t.Pos)
	}
}
