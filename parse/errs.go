package parse

import "errors"

var (
	ErrParse           = errors.New("parse error")
	ErrEmptyExpression = errors.New("empty expression")
	ErrUnbalancedParen = errors.New("unbalanced parenthesis")
	ErrTrailingInput   = errors.New("trailing input")
)
