package langdef

import (
	"github.com/ava12/exhaust"
	"github.com/ava12/exhaust/lexer"
)

// Error codes used by langdef:
const (
	UnexpectedEofError = exhaust.LangDefErrors + iota
	UnexpectedTokenError
	NoKeywordError
	BadEscapeError
)

func eofError(token *lexer.Token) *exhaust.Error {
	return exhaust.FormatErrorPos(token, UnexpectedEofError, "unexpected EoF")
}

func unexpectedTokenError(token *lexer.Token) *exhaust.Error {
	return exhaust.FormatErrorPos(token, UnexpectedTokenError, "unexpected %s token %q", token.TypeName(), token.Text())
}

func keywordError(token *lexer.Token) *exhaust.Error {
	return exhaust.FormatErrorPos(token, NoKeywordError, "expected %q keyword, got %q", languageKeyword, token.Text())
}

func badEscapeError(token *lexer.Token, esc string) *exhaust.Error {
	return exhaust.FormatErrorPos(token, BadEscapeError, "invalid escape %q in string literal", esc)
}
