package generate

import (
	"github.com/ava12/exhaust"
	"github.com/ava12/exhaust/grammar"
)

// Validate checks a grammar for problems that would make enumeration unsafe
// and returns all of them: duplicate rule names, references to undeclared
// rules, and rules that recurse before anything can be produced.
// A nil result means the grammar can be compiled.
//
// The termination check walks only the productions a derivation is forced
// through: every element of a sequence, the sole alternative of a degenerate
// choice, and the inner production of "+". A choice with two or more
// alternatives is assumed productive, and "*" and "?" can match the empty
// string and end the walk. This is a sufficient condition for the fair
// interleaver to make progress; a grammar whose every choice alternative is
// non-productive can still diverge, and tighter checks are out of scope.
func Validate(g *grammar.Grammar) []*exhaust.Error {
	var errs []*exhaust.Error

	if len(g.Rules) == 0 {
		return []*exhaust.Error{noRulesError(g)}
	}

	rules := make(map[string]*grammar.Rule, len(g.Rules))
	for _, r := range g.Rules {
		if _, has := rules[r.Name]; has {
			errs = append(errs, duplicateRuleError(g, r))
		} else {
			rules[r.Name] = r
		}
	}

	for _, r := range g.Rules {
		errs = appendRefErrors(errs, g, rules, r.Prod)
	}

	c := &loopChecker{rules: rules, safe: make(map[string]bool)}
	for _, r := range g.Rules {
		if c.ruleLoops(r.Name, make(map[string]bool)) {
			errs = append(errs, infiniteLoopError(g, r))
		}
	}

	return errs
}

func appendRefErrors(errs []*exhaust.Error, g *grammar.Grammar, rules map[string]*grammar.Rule, p grammar.Production) []*exhaust.Error {
	switch v := p.(type) {
	case *grammar.RuleRef:
		if rules[v.Name] == nil {
			errs = append(errs, undeclaredRuleError(g, v))
		}

	case *grammar.Sequence:
		for _, item := range v.Items {
			errs = appendRefErrors(errs, g, rules, item)
		}

	case *grammar.Choice:
		for _, alt := range v.Alternatives {
			errs = appendRefErrors(errs, g, rules, alt)
		}

	case *grammar.Unary:
		errs = appendRefErrors(errs, g, rules, v.Inner)
	}

	return errs
}

type loopChecker struct {
	rules map[string]*grammar.Rule
	safe  map[string]bool
}

// ruleLoops reports whether the forced walk from the named rule revisits a
// rule already on the current path. Rules proven loop-free are memoized:
// if no loop is reachable from a rule on an empty path, none is on any path.
func (c *loopChecker) ruleLoops(name string, onPath map[string]bool) bool {
	r := c.rules[name]
	if r == nil {
		return false // undeclared, reported separately
	}
	if c.safe[name] {
		return false
	}
	if onPath[name] {
		return true
	}

	onPath[name] = true
	loops := c.prodLoops(r.Prod, onPath)
	delete(onPath, name)

	if !loops {
		c.safe[name] = true
	}
	return loops
}

func (c *loopChecker) prodLoops(p grammar.Production, onPath map[string]bool) bool {
	switch v := p.(type) {
	case *grammar.RuleRef:
		return c.ruleLoops(v.Name, onPath)

	case *grammar.Sequence:
		for _, item := range v.Items {
			if c.prodLoops(item, onPath) {
				return true
			}
		}

	case *grammar.Choice:
		if len(v.Alternatives) == 1 {
			return c.prodLoops(v.Alternatives[0], onPath)
		}
		// a real choice is assumed productive

	case *grammar.Unary:
		if v.Op == grammar.Plus {
			return c.prodLoops(v.Inner, onPath)
		}
		// "*" and "?" can match ℇ
	}

	return false
}
