package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LeftFactor_SplitsSharedPrefix(t *testing.T) {
	assert := assert.New(t)

	g := buildGrammar(t,
		[]string{"S"},
		[]string{"a", "b", "c"},
		[][2]any{
			rl("S", "a", "b"),
			rl("S", "a", "c"),
		},
		"S",
	)

	g2 := LeftFactor(g)

	S := mustLookup(t, g2, "S")
	rules := g2.RulesOf(S)
	assert.Len(rules, 1, "the two alternatives should collapse into one a-prefixed rule")

	// S -> a N, so the RHS should be length 2: "a" then a minted non-terminal.
	assert.Len(rules[0].RHS, 2)
	assert.True(g2.Symbols.ByID(rules[0].RHS[0]).Name == "a")

	N := rules[0].RHS[1]
	nRules := g2.RulesOf(N)
	assert.Len(nRules, 2)
}

func Test_LeftFactor_NoCommonPrefixIsUntouched(t *testing.T) {
	assert := assert.New(t)

	g := buildGrammar(t,
		[]string{"S"},
		[]string{"a", "b"},
		[][2]any{
			rl("S", "a"),
			rl("S", "b"),
		},
		"S",
	)

	g2 := LeftFactor(g)
	S := mustLookup(t, g2, "S")
	assert.Len(g2.RulesOf(S), 2)
}

func Test_LeftFactor_MintedNonTerminalIsRevisitedWithinTheSameCall(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// A -> a b c | a b d | a e: factoring A yields A -> a N with
	// N -> b c | b d | e. The index-based outer loop grows as N is minted
	// right after A in non-terminal order, so it reaches N before
	// LeftFactor returns and factors it too, down to N -> b N2 | e with
	// N2 -> c | d. The cascade is a consequence of the growing-list
	// iteration, not a second call to LeftFactor.
	g := buildGrammar(t,
		[]string{"A"},
		[]string{"a", "b", "c", "d", "e"},
		[][2]any{
			rl("A", "a", "b", "c"),
			rl("A", "a", "b", "d"),
			rl("A", "a", "e"),
		},
		"A",
	)

	g2 := LeftFactor(g)
	A := mustLookup(t, g2, "A")
	rules := g2.RulesOf(A)
	require.Len(rules, 1)

	N := rules[0].RHS[len(rules[0].RHS)-1]
	nRules := g2.RulesOf(N)
	require.Len(nRules, 2, "N's b-prefixed alternatives should have been factored again into N2 within the same call")

	var sawBPrefixed, sawE bool
	var N2 int
	for _, r := range nRules {
		switch {
		case g2.Symbols.ByID(r.RHS[0]).Name == "b":
			sawBPrefixed = true
			N2 = r.RHS[len(r.RHS)-1]
		case len(r.RHS) == 1 && g2.Symbols.ByID(r.RHS[0]).Name == "e":
			sawE = true
		}
	}
	assert.True(sawBPrefixed, "N should still have a b-prefixed rule pointing at a second minted non-terminal")
	assert.True(sawE, "N should still have its unfactored e rule")

	n2Rules := g2.RulesOf(N2)
	assert.Len(n2Rules, 2, "N2 should hold the factored-apart c and d alternatives")
}
