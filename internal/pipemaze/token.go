package pipemaze

import "unicode/utf8"

// Kind classifies a token.
type Kind uint8

const (
	TokGround Kind = iota
	TokStart
	TokHorizontal
	TokVertical
	TokCorner
)

func (k Kind) String() string {
	switch k {
	case TokGround:
		return "ground"
	case TokStart:
		return "start"
	case TokHorizontal:
		return "horizontal"
	case TokVertical:
		return "vertical"
	case TokCorner:
		return "corner"
	}
	return "invalid"
}

// Token is a run of Len identical cells beginning at byte Offset of the
// scanned row or column. Shape is set for TokCorner only.
type Token struct {
	Kind   Kind
	Shape  Shape
	Offset int
	Len    int
}

type matcher struct {
	kind  Kind
	shape Shape
	char  byte
	run   bool // one or more, rather than exactly one
}

// grammar is tried in order at each offset; the first match wins.
var grammar = [...]matcher{
	{kind: TokGround, char: '.', run: true},
	{kind: TokStart, char: 'S'},
	{kind: TokHorizontal, char: '-', run: true},
	{kind: TokVertical, char: '|', run: true},
	{kind: TokCorner, shape: SouthWest, char: '7'},
	{kind: TokCorner, shape: NorthWest, char: 'J'},
	{kind: TokCorner, shape: NorthEast, char: 'L'},
	{kind: TokCorner, shape: SouthEast, char: 'F'},
}

// match returns how many bytes of s m consumes, or 0.
func (m matcher) match(s string) int {
	if s == "" || s[0] != m.char {
		return 0
	}
	if !m.run {
		return 1
	}
	n := 1
	for n < len(s) && s[n] == m.char {
		n++
	}
	return n
}

// Tokenize splits one row (or one transposed column) into tokens.
// An unknown character yields a *ParseError with Col set and Line zero;
// callers fill in the line.
func Tokenize(line string) ([]Token, error) {
	var toks []Token
	for off := 0; off < len(line); {
		var tok Token
		for _, m := range grammar {
			if n := m.match(line[off:]); n > 0 {
				tok = Token{Kind: m.kind, Shape: m.shape, Offset: off, Len: n}
				break
			}
		}
		if tok.Len == 0 {
			r, _ := utf8.DecodeRuneInString(line[off:])
			return nil, &ParseError{Col: off + 1, Char: r, Err: ErrBadChar}
		}
		toks = append(toks, tok)
		off += tok.Len
	}
	return toks, nil
}
