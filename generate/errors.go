package generate

import (
	"github.com/ava12/exhaust"
	"github.com/ava12/exhaust/grammar"
)

// Error codes used by generate:
const (
	DuplicateRuleError = exhaust.ValidationErrors + iota
	UndeclaredRuleError
	InfiniteLoopError
	NoRulesError
)

func duplicateRuleError(g *grammar.Grammar, r *grammar.Rule) *exhaust.Error {
	return exhaust.NewError(DuplicateRuleError, "Duplicate rule", "", r.Start, r.End)
}

func undeclaredRuleError(g *grammar.Grammar, ref *grammar.RuleRef) *exhaust.Error {
	return exhaust.NewError(UndeclaredRuleError, "Rule not declared", "", ref.Start, ref.End)
}

func infiniteLoopError(g *grammar.Grammar, r *grammar.Rule) *exhaust.Error {
	return exhaust.NewError(InfiniteLoopError, "Infinite loop detected in leftmost choice", "", r.Start, r.End)
}

func noRulesError(g *grammar.Grammar) *exhaust.Error {
	return exhaust.FormatError(NoRulesError, "grammar %q has no rules", g.Name)
}
