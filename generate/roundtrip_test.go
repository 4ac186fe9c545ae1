package generate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava12/exhaust/langdef"
)

// The engine enumerating grammar-shaped strings is used to fuzz the grammar
// parser itself: a healthy share of the candidates must parse, and for every
// candidate that parses, the canonical form must be a stringify fix-point.
func TestGrammarRoundTrip(t *testing.T) {
	gen := mustGen(t, `Language "meta":
		grammar = 'Language "m": ' rules;
		rules = ℇ | ruledef rules;
		ruledef = name " = " prod "; ";
		name = "s" | "t";
		prod = term | prod " | " term;
		term = factor | term " " factor;
		factor = '"a"' | '"b"' | "s" | "t" | "(" prod ")" | factor "*" | "|" | "ℇ";`)

	const total = 500
	candidates := first(gen, total)
	require.Len(t, candidates, total)

	parsed := 0
	for _, candidate := range candidates {
		g, e := langdef.ParseString("", candidate)
		if e != nil {
			continue
		}
		parsed++

		once := g.String()
		g2, e := langdef.ParseString("", once)
		require.NoError(t, e, "canonical form of %q does not parse", candidate)
		require.Equal(t, once, g2.String(), "stringify is not a fix-point for %q", candidate)
	}

	require.GreaterOrEqual(t, parsed, total*3/100,
		"expected at least 3%% of %d candidates to parse, got %d", total, parsed)
}
