/*
Package langdef converts textual grammar descriptions to grammar.Grammar syntax trees.

Grammars are described in an EBNF-like language:

	Language "lists":
	list = "[" items? "]";
	items = item ("," item)*;
	item! = "a" | "b" | list;

A description is the Language keyword, a quoted language name, a colon, and
any number of rules. A rule is a name, an optional ! marking a labelled rule,
=, a production, and ;. Productions are string literals in single or double
quotes (escape sequences: \\ \" \' \n \t), names referencing rules,
juxtaposition for sequences, | for choices, postfix * + ? operators,
parentheses for grouping, and ℇ for the empty production.

Parsing is purely syntactic. Duplicate rules, references to undeclared rules,
and non-terminating recursion are reported by generate.Validate.
*/
package langdef

import (
	"regexp"
	"strings"

	"github.com/ava12/exhaust/grammar"
	"github.com/ava12/exhaust/lexer"
	"github.com/ava12/exhaust/source"
)

const (
	stringTok  = "string"
	nameTok    = "name"
	epsilonTok = "epsilon"
	opTok      = "op"
	wrongTok   = ""
)

const languageKeyword = "Language"

var langLexer *lexer.Lexer

func init() {
	tokenTypes := []lexer.TokenType{
		{Type: 1, TypeName: stringTok},
		{Type: 2, TypeName: nameTok},
		{Type: 3, TypeName: epsilonTok},
		{Type: 4, TypeName: opTok},
		{Type: lexer.ErrorTokenType, TypeName: wrongTok},
	}

	re := regexp.MustCompile(
		`^(?:\s+|` +
			`((?:"(?:[^\\"]|\\.)*")|(?:'(?:[^\\']|\\.)*'))|` +
			`([a-zA-Z_][a-zA-Z_0-9]*)|` +
			`(ℇ)|` +
			`([=;:|*+?()!])|` +
			`(['"].{0,10}))`)

	langLexer = lexer.New(re, tokenTypes)
}

// ParseString parses a grammar description and returns its syntax tree on success.
// Returns nil and exhaust.Error on error.
func ParseString(name, content string) (*grammar.Grammar, error) {
	return Parse(source.New(name, []byte(content)))
}

// Parse parses a grammar description and returns its syntax tree on success.
// Returns nil and exhaust.Error on error.
func Parse(s *source.Source) (*grammar.Grammar, error) {
	c := &parseContext{cursor: lexer.NewCursor(s)}
	return c.parse()
}

type parseContext struct {
	cursor     *lexer.Cursor
	savedToken *lexer.Token
}

func (c *parseContext) put(t *lexer.Token) {
	if c.savedToken != nil {
		panic("cannot put " + t.TypeName() + " token: already put " + c.savedToken.TypeName())
	}

	c.savedToken = t
}

func isEof(t *lexer.Token) bool {
	return t.Type() == lexer.EofTokenType
}

// fetch returns the next token if its type name or text matches one of types.
// In strict mode a mismatch is an error; otherwise the token is put back and
// nil is returned.
func (c *parseContext) fetch(types []string, strict bool, e error) (*lexer.Token, error) {
	if e != nil {
		return nil, e
	}

	token := c.savedToken
	if token == nil {
		token, e = langLexer.Next(c.cursor)
		if e != nil {
			return nil, e
		}
	} else {
		c.savedToken = nil
	}

	for _, typ := range types {
		if token.TypeName() == typ || token.Text() == typ {
			return token, nil
		}
	}

	if strict {
		if isEof(token) {
			return nil, eofError(token)
		}
		return nil, unexpectedTokenError(token)
	}

	c.put(token)
	return nil, nil
}

func (c *parseContext) fetchOne(typ string, strict bool, e error) (*lexer.Token, error) {
	return c.fetch([]string{typ}, strict, e)
}

func (c *parseContext) skipOne(typ string, e error) error {
	_, e = c.fetch([]string{typ}, true, e)
	return e
}

func (c *parseContext) parse() (*grammar.Grammar, error) {
	t, e := c.fetchOne(nameTok, true, nil)
	if e != nil {
		return nil, e
	}
	if t.Text() != languageKeyword {
		return nil, keywordError(t)
	}

	t, e = c.fetchOne(stringTok, true, nil)
	if e != nil {
		return nil, e
	}
	name, e := unquote(t)
	e = c.skipOne(":", e)
	if e != nil {
		return nil, e
	}

	g := &grammar.Grammar{Name: name}
	for {
		t, e = c.fetch([]string{nameTok, lexer.EofTokenName}, true, nil)
		if e != nil {
			return nil, e
		}

		if isEof(t) {
			return g, nil
		}

		rule, e := c.parseRule(t)
		if e != nil {
			return nil, e
		}

		g.Rules = append(g.Rules, rule)
	}
}

func (c *parseContext) parseRule(name *lexer.Token) (*grammar.Rule, error) {
	rule := &grammar.Rule{Name: name.Text(), Start: name.Start(), End: name.End()}

	bang, e := c.fetchOne("!", false, nil)
	rule.Labeled = bang != nil

	e = c.skipOne("=", e)
	rule.Prod, e = c.parseChoice(e)
	e = c.skipOne(";", e)
	if e != nil {
		return nil, e
	}

	return rule, nil
}

func (c *parseContext) parseChoice(e error) (grammar.Production, error) {
	if e != nil {
		return nil, e
	}

	alts := make([]grammar.Production, 0, 1)
	for {
		item, e := c.parseSequence()
		if e != nil {
			return nil, e
		}

		alts = append(alts, item)
		t, e := c.fetchOne("|", false, nil)
		if e != nil {
			return nil, e
		}
		if t == nil {
			break
		}
	}

	if len(alts) == 1 {
		return alts[0], nil
	}
	return &grammar.Choice{Alternatives: alts}, nil
}

var itemHeads = []string{stringTok, nameTok, epsilonTok, "("}

func (c *parseContext) parseSequence() (grammar.Production, error) {
	t, e := c.fetch(itemHeads, true, nil)
	if e != nil {
		return nil, e
	}

	items := make([]grammar.Production, 0, 1)
	for {
		item, e := c.parseItem(t)
		if e != nil {
			return nil, e
		}

		items = append(items, item)
		t, e = c.fetch(itemHeads, false, nil)
		if e != nil {
			return nil, e
		}
		if t == nil {
			break
		}
	}

	if len(items) == 1 {
		return items[0], nil
	}
	return &grammar.Sequence{Items: items}, nil
}

// parseItem parses a primary production starting at the fetched head token
// and applies any postfix operators.
func (c *parseContext) parseItem(head *lexer.Token) (grammar.Production, error) {
	var result grammar.Production

	switch head.TypeName() {
	case stringTok:
		text, e := unquote(head)
		if e != nil {
			return nil, e
		}
		result = &grammar.Literal{Text: text}

	case nameTok:
		result = &grammar.RuleRef{Name: head.Text(), Start: head.Start(), End: head.End()}

	case epsilonTok:
		result = &grammar.Sequence{}

	default: // "("
		inner, e := c.parseChoice(nil)
		e = c.skipOne(")", e)
		if e != nil {
			return nil, e
		}
		result = inner
	}

	for {
		t, e := c.fetch([]string{"*", "+", "?"}, false, nil)
		if e != nil {
			return nil, e
		}
		if t == nil {
			return result, nil
		}

		var op grammar.UnaryOp
		switch t.Text() {
		case "*":
			op = grammar.Star
		case "+":
			op = grammar.Plus
		default:
			op = grammar.Opt
		}
		result = &grammar.Unary{Op: op, Inner: result}
	}
}

// unquote strips the delimiters of a string token and decodes escape sequences.
func unquote(t *lexer.Token) (string, error) {
	text := t.Text()
	content := text[1 : len(text)-1]
	if !strings.ContainsRune(content, '\\') {
		return content, nil
	}

	var b strings.Builder
	for i := 0; i < len(content); i++ {
		ch := content[i]
		if ch != '\\' {
			b.WriteByte(ch)
			continue
		}

		i++
		switch content[i] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		default:
			return "", badEscapeError(t, content[i-1:i+1])
		}
	}

	return b.String(), nil
}
