package token

import (
	"errors"
	"testing"
)

func types(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenizeOK(t *testing.T) {
	tests := []struct {
		in   string
		want []TokenType
	}{
		{"P", []TokenType{TVariable, TEnd}},
		{"P AND Q", []TokenType{TVariable, TAnd, TVariable, TEnd}},
		{"P OR Q", []TokenType{TVariable, TOr, TVariable, TEnd}},
		{"NOT P", []TokenType{TNot, TVariable, TEnd}},
		{"P IMPLIES Q", []TokenType{TVariable, TImplies, TVariable, TEnd}},
		{"P BICONDITIONAL Q", []TokenType{TVariable, TIff, TVariable, TEnd}},
		{"(P)", []TokenType{TLParen, TVariable, TRParen, TEnd}},
		{"P∧Q", []TokenType{TVariable, TAnd, TVariable, TEnd}},
		{"P∨Q", []TokenType{TVariable, TOr, TVariable, TEnd}},
		{"¬P", []TokenType{TNot, TVariable, TEnd}},
		{"P→Q", []TokenType{TVariable, TImplies, TVariable, TEnd}},
		{"P↔Q", []TokenType{TVariable, TIff, TVariable, TEnd}},
		{"  P \t Q ", []TokenType{TVariable, TVariable, TEnd}},
		{"", []TokenType{TEnd}},
		{"_x9", []TokenType{TVariable, TEnd}},
	}
	for _, tt := range tests {
		toks, err := Tokenize(tt.in)
		if err != nil {
			t.Errorf("Tokenize(%q): %v", tt.in, err)
			continue
		}
		got := types(toks)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %s, want %s", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

// Operator keywords match whole words only. Identifiers that merely
// contain or extend a keyword stay variables.
func TestTokenizeKeywordBoundaries(t *testing.T) {
	tests := []struct {
		in   string
		want []TokenType
	}{
		{"ANDREW", []TokenType{TVariable, TEnd}},
		{"NOTE", []TokenType{TVariable, TEnd}},
		{"ORBIT AND NOTE", []TokenType{TVariable, TAnd, TVariable, TEnd}},
		{"and", []TokenType{TVariable, TEnd}}, // keywords are case-sensitive
		{"AND_Q", []TokenType{TVariable, TEnd}},
		{"IMPLIES2", []TokenType{TVariable, TEnd}},
	}
	for _, tt := range tests {
		toks, err := Tokenize(tt.in)
		if err != nil {
			t.Errorf("Tokenize(%q): %v", tt.in, err)
			continue
		}
		got := types(toks)
		for i := range tt.want {
			if i >= len(got) || got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	for _, in := range []string{"P & Q", "P + Q", "3", "P AND $x"} {
		_, err := Tokenize(in)
		if err == nil {
			t.Errorf("Tokenize(%q): expected error", in)
			continue
		}
		if !errors.Is(err, ErrUnexpectedToken) {
			t.Errorf("Tokenize(%q): got %v, want ErrUnexpectedToken", in, err)
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("Tokenize(%q): error carries no position", in)
		}
	}
}

func TestTokenizeErrColumn(t *testing.T) {
	_, err := Tokenize("P AND ?")
	var te *TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("expected TokenizeErr, got %v", err)
	}
	if te.Pos.Col != 7 {
		t.Errorf("column = %d, want 7", te.Pos.Col)
	}
}

func TestTokenPositions(t *testing.T) {
	toks, err := Tokenize("P ∧ Q")
	if err != nil {
		t.Fatal(err)
	}
	cols := []int{1, 3, 5}
	for i, want := range cols {
		if toks[i].Pos.Col != want {
			t.Errorf("token %d col = %d, want %d", i, toks[i].Pos.Col, want)
		}
	}
}
