package token

import (
	"fmt"
	"strconv"
)

// Pos locates a token within a source expression. Expressions are
// single-line, so the column is the rune offset plus one.
type Pos struct {
	Off int    // byte offset into the source
	Col int    // 1-based column (rune count)
	Src string // full source expression
}

func (p *Pos) String() string {
	sample := p.Src[max(0, p.Off-5):min(p.Off+5, len(p.Src))]
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at column %d", sample, p.Col)
}
