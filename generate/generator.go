// Package generate validates and compiles a grammar and enumerates every
// sentence of its language.
//
// Enumeration is fair: for every length bound there is a finite output index
// by which all sentences up to that length have appeared. The order is
// deterministic and reproducible. A compiled Generator is immutable and may
// be shared; every call to Sentences creates independent iteration state, so
// one Generator can serve any number of concurrent iterations as long as each
// iteration stays on a single goroutine.
package generate

import (
	"strings"

	"github.com/ava12/exhaust/grammar"
	"github.com/ava12/exhaust/stream"
)

// Generator enumerates sentences of a validated grammar.
type Generator struct {
	grammar *grammar.Grammar
	root    *node
	rules   map[string]*node
	labeled bool
}

// New validates the grammar and compiles it into a generator.
// Returns nil and the first validation error on failure; use Validate to
// collect all of them.
func New(g *grammar.Grammar) (*Generator, error) {
	errs := Validate(g)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	root, rules := compile(g)
	labeled := false
	for _, r := range g.Rules {
		if r.Labeled {
			labeled = true
			break
		}
	}

	return &Generator{grammar: g, root: root, rules: rules, labeled: labeled}, nil
}

// Grammar returns the grammar this generator was compiled from.
func (g *Generator) Grammar() *grammar.Grammar {
	return g.grammar
}

// Sentences returns a fresh stream of every sentence of the language,
// starting from the root rule. The stream is infinite for most grammars;
// the consumer stops pulling when it has seen enough.
func (g *Generator) Sentences() stream.Stream[string] {
	if !g.labeled {
		return stream.Map(g.root.gen(true), joinSkeleton)
	}
	return &sentences{g: g, skeletons: g.root.gen(false)}
}

// sentences drives the two-phase labelled enumeration: sentence skeletons
// with label placeholders first, then every canonical labelling of each
// skeleton's placeholders.
type sentences struct {
	g         *Generator
	skeletons stream.Stream[skeleton]
	current   stream.Stream[string]
}

func (s *sentences) Next() (string, bool) {
	for {
		if s.current != nil {
			v, ok := s.current.Next()
			if ok {
				return v, true
			}
			s.current = nil
		}

		sk, ok := s.skeletons.Next()
		if !ok {
			return "", false
		}
		s.current = s.g.expand(sk)
	}
}

// expand turns one skeleton into the finite stream of sentences it denotes.
// Placeholder counts are collected per rule name in first-occurrence order;
// each name gets the canonical labellings over the first count distinct
// values of its rule, and the assignments are combined through the fair
// tuple interleaver.
func (g *Generator) expand(sk skeleton) stream.Stream[string] {
	var names []string
	counts := make(map[string]int)
	for _, f := range sk {
		if !f.label {
			continue
		}
		if counts[f.text] == 0 {
			names = append(names, f.text)
		}
		counts[f.text]++
	}

	if len(names) == 0 {
		return stream.Of(joinSkeleton(sk))
	}

	nameIndex := make(map[string]int, len(names))
	labellings := make([]stream.Stream[[]string], len(names))
	for i, name := range names {
		k := counts[name]
		labellings[i] = stream.EveryLabelling(g.firstDistinct(name, k), k)
		nameIndex[name] = i
	}

	return stream.Map(stream.EveryCombinationMany(labellings), func(assign [][]string) string {
		var b strings.Builder
		used := make(map[string]int, len(names))
		for _, f := range sk {
			if !f.label {
				b.WriteString(f.text)
				continue
			}

			i := used[f.text]
			used[f.text] = i + 1
			b.WriteString(assign[nameIndex[f.text]][i])
		}
		return b.String()
	})
}

// firstDistinct pulls the first k distinct sentences of the named rule's
// unlabelled expansion. A rule that runs out before k values yields a shorter
// alphabet; the labellings then use fewer blocks.
func (g *Generator) firstDistinct(name string, k int) []string {
	n := g.rules[name]
	if n == nil {
		panic("unknown label rule " + name)
	}

	it := n.gen(true)
	seen := make(map[string]bool, k)
	result := make([]string, 0, k)
	for len(result) < k {
		sk, ok := it.Next()
		if !ok {
			break
		}

		v := joinSkeleton(sk)
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}

	return result
}
