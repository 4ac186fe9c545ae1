package generate

import (
	"github.com/ava12/exhaust/grammar"
)

type nodeKind int

const (
	litNode nodeKind = iota
	seqNode
	choiceNode
	labelNode
)

// node is a production of the compiled grammar graph. Rule nodes are interned
// by name, so self- and mutually-recursive rules form genuine cycles; the
// graph is immutable once compile returns.
type node struct {
	kind  nodeKind
	text  string  // litNode: literal text
	items []*node // seqNode: elements, choiceNode: alternatives
	name  string  // labelNode: rule name
	inner *node   // labelNode: rule body
}

type compiler struct {
	nodes map[string]*node
}

// compile lowers a validated grammar to the production graph. Construction is
// two-pass: allocate one node per rule first, then fill bodies, so rule
// references can close cycles against already-allocated nodes.
// Postfix operators are rewritten into right-recursive choice/sequence forms:
//
//	X*  ->  C where C = ℇ | X C
//	X+  ->  S where S = X (ℇ | S)
//	X?  ->  ℇ | X
func compile(g *grammar.Grammar) (root *node, rules map[string]*node) {
	c := &compiler{nodes: make(map[string]*node, len(g.Rules))}

	for _, r := range g.Rules {
		if r.Labeled {
			c.nodes[r.Name] = &node{kind: labelNode, name: r.Name}
		} else {
			c.nodes[r.Name] = &node{kind: seqNode}
		}
	}

	for _, r := range g.Rules {
		n := c.nodes[r.Name]
		body := c.prod(r.Prod)
		if n.kind == labelNode {
			n.inner = body
		} else {
			n.items = []*node{body}
		}
	}

	return c.nodes[g.Rules[0].Name], c.nodes
}

func (c *compiler) prod(p grammar.Production) *node {
	switch v := p.(type) {
	case *grammar.Literal:
		return &node{kind: litNode, text: v.Text}

	case *grammar.RuleRef:
		return c.nodes[v.Name]

	case *grammar.Sequence:
		items := make([]*node, len(v.Items))
		for i, item := range v.Items {
			items[i] = c.prod(item)
		}
		return &node{kind: seqNode, items: items}

	case *grammar.Choice:
		alts := make([]*node, len(v.Alternatives))
		for i, alt := range v.Alternatives {
			alts[i] = c.prod(alt)
		}
		return &node{kind: choiceNode, items: alts}

	case *grammar.Unary:
		inner := c.prod(v.Inner)
		switch v.Op {
		case grammar.Star:
			star := &node{kind: choiceNode}
			star.items = []*node{emptyNode(), {kind: seqNode, items: []*node{inner, star}}}
			return star

		case grammar.Plus:
			plus := &node{kind: seqNode}
			plus.items = []*node{inner, {kind: choiceNode, items: []*node{emptyNode(), plus}}}
			return plus

		case grammar.Opt:
			return &node{kind: choiceNode, items: []*node{emptyNode(), inner}}
		}
	}

	panic("unknown production kind")
}

func emptyNode() *node {
	return &node{kind: seqNode}
}
