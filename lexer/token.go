package lexer

import (
	"github.com/ava12/exhaust/source"
)

type Token struct {
	tokenType  int
	typeName   string
	text       string
	source     *source.Source
	start, end int
}

func (t *Token) Type() int {
	return t.tokenType
}

func (t *Token) TypeName() string {
	return t.typeName
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Source() *source.Source {
	return t.source
}

func (t *Token) SourceName() string {
	if t.source == nil {
		return ""
	} else {
		return t.source.Name()
	}
}

// Start returns byte offset of the first byte of the token.
func (t *Token) Start() int {
	return t.start
}

// End returns byte offset just past the token.
func (t *Token) End() int {
	return t.end
}

func NewToken(tokenType int, typeName, text string, src *source.Source, start, end int) *Token {
	return &Token{tokenType, typeName, text, src, start, end}
}

const (
	EofTokenType    = -2
	LowestTokenType = -2
	EofTokenName    = "-end-of-file-"
)

func EofToken(s *source.Source) *Token {
	pos := 0
	if s != nil {
		pos = s.Len()
	}
	return &Token{tokenType: EofTokenType, typeName: EofTokenName, source: s, start: pos, end: pos}
}
