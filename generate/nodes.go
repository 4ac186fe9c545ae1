package generate

import (
	"strings"

	"github.com/ava12/exhaust/stream"
)

// fragment is one element of a sentence skeleton: either a piece of literal
// text or a placeholder for one yet-to-be-chosen value of a labelled rule.
type fragment struct {
	text  string
	label bool // text is a rule name
}

// skeleton is an ordered sequence of fragments. Skeletons yielded by a stream
// may be memoized and shared; they must never be mutated in place.
type skeleton []fragment

func joinSkeleton(sk skeleton) string {
	var b strings.Builder
	for _, f := range sk {
		if f.label {
			b.WriteByte('{')
			b.WriteString(f.text)
			b.WriteByte('}')
		} else {
			b.WriteString(f.text)
		}
	}
	return b.String()
}

func concatSkeletons(prefix, suffix skeleton) skeleton {
	result := make(skeleton, 0, len(prefix)+len(suffix))
	result = append(result, prefix...)
	return append(result, suffix...)
}

// gen returns a fresh lazy stream of skeletons for this node. Each call
// creates independent iteration state; the node itself is never mutated.
// Iterators defer construction of their children until the first pull, which
// is what makes cycles in the graph harmless.
func (n *node) gen(expandLabels bool) stream.Stream[skeleton] {
	switch n.kind {
	case litNode:
		return stream.Of(skeleton{{text: n.text}})

	case labelNode:
		if expandLabels {
			return n.inner.gen(true)
		}
		return stream.Of(skeleton{{text: n.name, label: true}})

	case seqNode:
		switch len(n.items) {
		case 0:
			return stream.Of(skeleton{})
		case 1:
			return n.items[0].gen(expandLabels)
		}
		return &seqIter{items: n.items, expand: expandLabels}

	case choiceNode:
		if len(n.items) == 1 {
			return n.items[0].gen(expandLabels)
		}
		return &choiceIter{alts: n.items, expand: expandLabels}
	}

	panic("unknown node kind")
}

// seqIter interleaves the first element of a sequence with the rest via the
// fair pair combination, concatenating prefix and suffix of each pair.
type seqIter struct {
	items  []*node // len >= 2
	expand bool
	pairs  stream.Stream[stream.Pair[skeleton, skeleton]]
}

func (s *seqIter) Next() (skeleton, bool) {
	if s.pairs == nil {
		s.pairs = stream.EveryCombination(s.items[0].gen(s.expand), tailGen(s.items[1:], s.expand))
	}

	p, ok := s.pairs.Next()
	if !ok {
		return nil, false
	}
	return concatSkeletons(p.First, p.Second), true
}

func tailGen(items []*node, expand bool) stream.Stream[skeleton] {
	if len(items) == 1 {
		return items[0].gen(expand)
	}
	return &seqIter{items: items, expand: expand}
}

// choiceIter runs all alternatives concurrently in a round-robin: one value
// from each still-live generator per cycle, in insertion order. Exhausted
// generators are removed; the stream ends when none remain.
type choiceIter struct {
	alts   []*node
	expand bool
	live   []stream.Stream[skeleton]
	pos    int
	init   bool
}

func (c *choiceIter) Next() (skeleton, bool) {
	if !c.init {
		c.init = true
		c.live = make([]stream.Stream[skeleton], len(c.alts))
		for i, alt := range c.alts {
			c.live[i] = alt.gen(c.expand)
		}
	}

	for len(c.live) > 0 {
		if c.pos >= len(c.live) {
			c.pos = 0
		}

		v, ok := c.live[c.pos].Next()
		if ok {
			c.pos++
			return v, true
		}

		c.live = append(c.live[:c.pos], c.live[c.pos+1:]...)
	}

	return nil, false
}
