/*
Package exhaust is a deterministic sentence enumerator for context-free grammars.

Given a grammar written in an EBNF-like language, exhaust lazily enumerates
every sentence of the defined language in a fair order: for every length bound
there is a finite output index by which all sentences up to that length have
appeared. The intended use is fuzz testing, where exhaustive and progressively
growing corpora of syntactically valid inputs are needed.

Consists of subpackages:
  - cmd/exhaust: console utility streaming sentences for a grammar file;
  - grammar: defines the grammar syntax tree produced by langdef and consumed by generate;
  - langdef: converts grammar description (written in an EBNF-like language) to a grammar syntax tree;
  - lexer: lexical analyzer;
  - source: defines source text with offset to line/column mapping;
  - stream: lazy pull streams, fair pair/tuple interleaving, labelling enumeration;
  - generate: grammar validation, compilation, and sentence generation.

Typical usage is:

1. Describe a grammar in the EBNF-like language and parse it with langdef.

2. Create a generator for the resulting grammar using generate.New
(the grammar is validated at this point).

3. Pull sentences from the generator for as long as needed; the stream is
usually infinite, enumeration order is deterministic and reproducible.
*/
package exhaust

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LangDefErrors    = 1   // used by langdef
	LexicalErrors    = 101 // used by lexer
	ValidationErrors = 201 // used by generate
)

// Error is the error type used by exhaust subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Start and End contain byte offsets of the offending region in the source, End is exclusive.
	// Both are 0 if no position information was provided.
	Start, End int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// lexer.Token implements this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Start returns byte offset of the first byte of the region.
	Start() int
	// End returns byte offset just past the region.
	End() int
}

// NewError creates new Error structure.
// name and start offset will be added to error message if name is non-empty.
func NewError(code int, msg, name string, start, end int) *Error {
	if name != "" {
		msg += fmt.Sprintf(" in %s at offset %d", name, start)
	}
	return &Error{code, msg, name, start, end}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Start(), pos.End())
}
