// Package lexer defines lexical analyzer.
package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/ava12/exhaust"
	"github.com/ava12/exhaust/source"
)

const (
	// ErrorTokenType is the type for fake tokens capturing broken lexemes (e.g. incorrect string literals).
	// The purpose of these tokens is to generate more informative error messages.
	// Lexer will never return a token of this type, an error with message containing token text will be returned instead.
	ErrorTokenType = LowestTokenType - 1

	// ErrorTokenName is the type name for ErrorTokenType.
	ErrorTokenName = "-error-"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	// Error message contains the rune at current source position.
	WrongCharError = exhaust.LexicalErrors + iota

	// BadTokenError indicates that lexer has fetched a token of ErrorTokenType.
	BadTokenError
)

// TokenType describes token type for specific capturing group of regular expression.
type TokenType struct {
	// Type contains token type, may be any value. ErrorTokenType is treated specially.
	Type int

	// TypeName contains token type name, may be any value.
	TypeName string
}

// Cursor holds current scanning position in a source.
type Cursor struct {
	src *source.Source
	pos int
}

func NewCursor(src *source.Source) *Cursor {
	return &Cursor{src: src}
}

func (c *Cursor) Source() *source.Source {
	return c.src
}

func (c *Cursor) Pos() int {
	return c.pos
}

// Lexer fetches tokens from a source using regexp.Regexp.
// Lexer itself is immutable and stateless, scanning state is kept in Cursor.
// Each token type that may be returned by lexer maps to its own regexp capturing group index.
// A match containing no captured groups is treated as insignificant lexeme (e.g. whitespace),
// in this case lexer tries to fetch a token again at new position.
// Every byte of the source must belong to some lexeme.
type Lexer struct {
	types []TokenType
	re    *regexp.Regexp
}

// New creates new Lexer.
// Each n-th element of types describes token type for (n+1)-th regexp capturing group.
// A group that has no description is treated as ErrorTokenType.
func New(re *regexp.Regexp, types []TokenType) *Lexer {
	ts := make([]TokenType, len(types))
	copy(ts, types)
	return &Lexer{types: ts, re: re}
}

func wrongCharError(s *source.Source, content []byte, pos int) *exhaust.Error {
	r, size := utf8.DecodeRune(content)
	msg := fmt.Sprintf("wrong char %q (u+%x)", r, r)
	return exhaust.NewError(WrongCharError, msg, s.Name(), pos, pos+size)
}

func wrongTokenError(t *Token) *exhaust.Error {
	return exhaust.FormatErrorPos(t, BadTokenError, "bad token %q", t.Text())
}

func (l *Lexer) matchToken(src *source.Source, content []byte, pos int) (*Token, int, error) {
	content = content[pos:]
	match := l.re.FindSubmatchIndex(content)
	if len(match) == 0 || match[0] != 0 || match[1] <= match[0] {
		return nil, 0, wrongCharError(src, content, pos)
	}

	for i := 2; i < len(match); i += 2 {
		if match[i] >= 0 && match[i+1] >= 0 {
			tokenType := ErrorTokenType
			typeName := ErrorTokenName
			if len(l.types) >= (i >> 1) {
				tokenType = l.types[(i>>1)-1].Type
				typeName = l.types[(i>>1)-1].TypeName
			}
			token := NewToken(tokenType, typeName, string(content[match[i]:match[i+1]]), src, pos+match[i], pos+match[i+1])
			if tokenType == ErrorTokenType {
				return nil, 0, wrongTokenError(token)
			}

			return token, match[1], nil
		}
	}

	return nil, match[1], nil
}

// Next fetches token starting at current cursor position and advances the cursor.
// Returns nil token and exhaust.Error and does not advance if there is a lexical error.
// Returns EoF token if current position is at the end of the source.
func (l *Lexer) Next(c *Cursor) (*Token, error) {
	for {
		content := c.src.Content()
		if c.pos >= len(content) {
			return EofToken(c.src), nil
		}

		tok, advance, e := l.matchToken(c.src, content, c.pos)
		if e != nil {
			return nil, e
		}

		c.pos += advance
		if tok != nil {
			return tok, nil
		}
	}
}
