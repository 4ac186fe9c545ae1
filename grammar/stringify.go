package grammar

import (
	"strings"
)

// Production precedence levels, used to decide where parentheses are needed.
const (
	choicePrec = iota
	seqPrec
	unaryPrec
)

// String renders the grammar in the canonical textual form accepted by the
// langdef package. Literals are double-quoted, the empty production is ℇ,
// parentheses are emitted only where required by precedence.
// Parsing the result yields a grammar with the same structure.
func (g *Grammar) String() string {
	var b strings.Builder
	b.WriteString("Language ")
	writeQuoted(&b, g.Name)
	b.WriteString(":\n")
	for _, r := range g.Rules {
		b.WriteString(r.Name)
		if r.Labeled {
			b.WriteByte('!')
		}
		b.WriteString(" = ")
		writeProd(&b, r.Prod, choicePrec)
		b.WriteString(";\n")
	}
	return b.String()
}

func writeProd(b *strings.Builder, p Production, prec int) {
	switch v := p.(type) {
	case *Literal:
		writeQuoted(b, v.Text)

	case *RuleRef:
		b.WriteString(v.Name)

	case *Sequence:
		if len(v.Items) == 0 {
			b.WriteString("ℇ")
			return
		}
		if prec > seqPrec && len(v.Items) > 1 {
			b.WriteByte('(')
			writeItems(b, v.Items)
			b.WriteByte(')')
		} else if len(v.Items) == 1 {
			writeProd(b, v.Items[0], prec)
		} else {
			writeItems(b, v.Items)
		}

	case *Choice:
		if len(v.Alternatives) == 1 {
			writeProd(b, v.Alternatives[0], prec)
			return
		}
		if prec > choicePrec {
			b.WriteByte('(')
		}
		for i, alt := range v.Alternatives {
			if i > 0 {
				b.WriteString(" | ")
			}
			writeProd(b, alt, seqPrec)
		}
		if prec > choicePrec {
			b.WriteByte(')')
		}

	case *Unary:
		writeProd(b, v.Inner, unaryPrec)
		b.WriteString(v.Op.String())
	}
}

func writeItems(b *strings.Builder, items []Production) {
	for i, item := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeProd(b, item, unaryPrec)
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", "\"", "\\\"", "\n", "\\n", "\t", "\\t")

func writeQuoted(b *strings.Builder, text string) {
	b.WriteByte('"')
	quoteEscaper.WriteString(b, text)
	b.WriteByte('"')
}
