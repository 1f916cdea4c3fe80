package token

import (
	"unicode"
	"unicode/utf8"
)

// keyword operators, matched whole-word and case-sensitively. The
// unicode connectives tokenize to the same types, so an operator can
// never collide with part of a variable name.
var keywords = map[string]TokenType{
	"AND":           TAnd,
	"OR":            TOr,
	"NOT":           TNot,
	"IMPLIES":       TImplies,
	"BICONDITIONAL": TIff,
}

var connectives = map[rune]TokenType{
	'∧': TAnd,
	'∨': TOr,
	'¬': TNot,
	'→': TImplies,
	'↔': TIff,
}

// Tokenize converts a raw expression into tokens, terminated by TEnd.
func Tokenize(src string) ([]Token, error) {
	toks := []Token{}
	off := 0
	col := 1
	for off < len(src) {
		r, sz := utf8.DecodeRuneInString(src[off:])
		pos := &Pos{Off: off, Col: col, Src: src}
		switch {
		case r == utf8.RuneError && sz == 1:
			return nil, UnexpectedErr("bad utf8", pos)
		case unicode.IsSpace(r):
			off += sz
			col++
		case r == '(':
			toks = append(toks, Token{Type: TLParen, Pos: pos, Text: "("})
			off += sz
			col++
		case r == ')':
			toks = append(toks, Token{Type: TRParen, Pos: pos, Text: ")"})
			off += sz
			col++
		case isIdentStart(r):
			end := off + sz
			n := 1
			for end < len(src) {
				rr, rsz := utf8.DecodeRuneInString(src[end:])
				if !isIdentPart(rr) {
					break
				}
				end += rsz
				n++
			}
			word := src[off:end]
			tt, kw := keywords[word]
			if !kw {
				tt = TVariable
			}
			toks = append(toks, Token{Type: tt, Pos: pos, Text: word})
			off = end
			col += n
		default:
			if tt, ok := connectives[r]; ok {
				toks = append(toks, Token{Type: tt, Pos: pos, Text: string(r)})
				off += sz
				col++
				continue
			}
			return nil, UnexpectedErr(junk(src[off:]), pos)
		}
	}
	toks = append(toks, Token{
		Type: TEnd,
		Pos:  &Pos{Off: len(src), Col: col, Src: src},
	})
	return toks, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

// junk extracts the run of offending characters for an error message.
func junk(s string) string {
	end := 0
	for end < len(s) {
		r, sz := utf8.DecodeRuneInString(s[end:])
		if unicode.IsSpace(r) || r == '(' || r == ')' || isIdentStart(r) {
			break
		}
		if _, ok := connectives[r]; ok {
			break
		}
		end += sz
	}
	if end == 0 {
		end = 1
	}
	return s[:end]
}
