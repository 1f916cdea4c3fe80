package token

import "fmt"

type TokenType int

const (
	TVariable TokenType = iota
	TAnd
	TOr
	TNot
	TImplies
	TIff
	TLParen
	TRParen
	TEnd
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TVariable: "TVariable",
		TAnd:      "TAnd",
		TOr:       "TOr",
		TNot:      "TNot",
		TImplies:  "TImplies",
		TIff:      "TIff",
		TLParen:   "TLParen",
		TRParen:   "TRParen",
		TEnd:      "TEnd",
	}[t]
}

type Token struct {
	Type TokenType
	Pos  *Pos
	Text string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	if t.Type == TEnd {
		return "<end>"
	}
	return t.Text
}
