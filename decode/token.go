package decode

import (
	"fmt"
)

const (
	kwChart  = "chart"
	kwSerie  = "serie"
	kwStyle  = "style"
	kwRender = "render"
	kwTo     = "to"
)

func isKeyword(str string) bool {
	switch str {
	default:
		return false
	case kwChart:
	case kwSerie:
	case kwStyle:
	case kwRender:
	case kwTo:
	}
	return true
}

const (
	Invalid rune = -(iota + 1)
	Keyword
	Literal
	Boolean
	Comment
	Comma
	Lparen
	Rparen
	Lcurly
	Rcurly
	EOL
	EOF
)

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Literal string
	Type    rune
	Position
}

func (t Token) String() string {
	var prefix string
	switch t.Type {
	default:
		prefix = "unknown"
	case Invalid:
		prefix = "invalid"
	case Literal:
		prefix = "literal"
	case Boolean:
		prefix = "boolean"
	case Comment:
		prefix = "comment"
	case Keyword:
		prefix = "keyword"
	case Comma:
		return "<comma>"
	case EOL:
		return "<eol>"
	case EOF:
		return "<eof>"
	case Lparen:
		return "<lparen>"
	case Rparen:
		return "<rparen>"
	case Lcurly:
		return "<lcurly>"
	case Rcurly:
		return "<rcurly>"
	}
	return fmt.Sprintf("%s(%s)", prefix, t.Literal)
}
