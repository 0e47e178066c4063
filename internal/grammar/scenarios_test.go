package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These exercise a handful of worked end-to-end scenarios, running each
// grammar through the whole pipeline and checking the expected
// post-conditions.

func Test_Pipeline_ExpressionGrammar(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := buildGrammar(t,
		[]string{"E", "T", "F"},
		[]string{"+", "*", "(", ")", "id"},
		[][2]any{
			rl("E", "E", "+", "T"),
			rl("E", "T"),
			rl("T", "T", "*", "F"),
			rl("T", "F"),
			rl("F", "(", "E", ")"),
			rl("F", "id"),
		},
		"E",
	)

	g2 := EliminateLeftRecursion(g)
	g2 = LeftFactor(g2)
	first := ComputeFirst(g2)
	follow := ComputeFollow(g2, first)
	table, err := BuildTable(g2, first, follow)
	require.NoError(err)

	t_ := g2.Symbols
	firstNames := func(id int) []string {
		var names []string
		for f := range first[id] {
			names = append(names, t_.ByID(f).Name)
		}
		return names
	}
	assert.ElementsMatch([]string{"(", "id"}, firstNames(mustLookup(t, g2, "E")))
	assert.ElementsMatch([]string{"(", "id"}, firstNames(mustLookup(t, g2, "T")))
	assert.ElementsMatch([]string{"(", "id"}, firstNames(mustLookup(t, g2, "F")))

	followNames := func(id int) []string {
		var names []string
		for f := range follow[id] {
			names = append(names, t_.ByID(f).Name)
		}
		return names
	}
	assert.ElementsMatch([]string{"$", ")"}, followNames(mustLookup(t, g2, "E")))

	driver := newTestDriver(g2, table)
	assert.True(driver.parse([]string{"id", "+", "id", "*", "id"}))
	assert.False(driver.parse([]string{"id", "+"}))
}

func Test_Pipeline_EpsilonInFollow(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := buildGrammar(t,
		[]string{"S", "A"},
		[]string{"a", "b"},
		[][2]any{
			rl("S", "A", "b"),
			rl("A", "a"),
			rl("A", EpsilonName),
		},
		"S",
	)

	first := ComputeFirst(g)
	follow := ComputeFollow(g, first)
	table, err := BuildTable(g, first, follow)
	require.NoError(err)

	driver := newTestDriver(g, table)
	assert.True(driver.parse([]string{"a", "b"}))
	assert.True(driver.parse([]string{"b"}))
	assert.False(driver.parse([]string{"a"}))
}

func Test_Pipeline_LL1ConflictResolvedByFactoring(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

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
	first := ComputeFirst(g2)
	follow := ComputeFollow(g2, first)
	table, err := BuildTable(g2, first, follow)
	require.NoError(err)

	driver := newTestDriver(g2, table)
	assert.True(driver.parse([]string{"a", "b"}))
	assert.True(driver.parse([]string{"a", "c"}))
}

func Test_Pipeline_NestedFactoringLimitation(t *testing.T) {
	require := require.New(t)

	g := buildGrammar(t,
		[]string{"A", "B"},
		[]string{"a", "b", "c", "d"},
		[][2]any{
			rl("A", "B"),
			rl("A", "a", "b", "c", "d"),
			rl("B", "a", "b", "d"),
		},
		"A",
	)

	g2 := LeftFactor(g)
	first := ComputeFirst(g2)
	follow := ComputeFollow(g2, first)
	_, err := BuildTable(g2, first, follow)

	require.Error(err)
	var gerr *Error
	require.ErrorAs(err, &gerr)
	require.Equal(KindNotLL1, gerr.Kind)
}

func Test_Pipeline_ImmediateLeftRecursion(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := buildGrammar(t,
		[]string{"S"},
		[]string{"a", "b"},
		[][2]any{
			rl("S", "S", "a"),
			rl("S", "b"),
		},
		"S",
	)

	g2 := EliminateLeftRecursion(g)
	for _, r := range g2.RulesOf(mustLookup(t, g2, "S")) {
		assert.False(len(r.RHS) > 0 && r.RHS[0] == mustLookup(t, g2, "S"),
			"no S -> S beta rule should survive elimination")
	}

	first := ComputeFirst(g2)
	follow := ComputeFollow(g2, first)
	table, err := BuildTable(g2, first, follow)
	require.NoError(err)

	driver := newTestDriver(g2, table)
	assert.True(driver.parse([]string{"b", "a", "a"}))
	assert.False(driver.parse([]string{"a"}))
}

func Test_Pipeline_IndirectLeftRecursion(t *testing.T) {
	assert := assert.New(t)

	g := buildGrammar(t,
		[]string{"A", "B"},
		[]string{"c", "d", "e"},
		[][2]any{
			rl("A", "B", "c"),
			rl("B", "A", "d"),
			rl("B", "e"),
		},
		"A",
	)

	g2 := EliminateLeftRecursion(g)

	B := mustLookup(t, g2, "B")
	for _, r := range g2.RulesOf(B) {
		assert.False(len(r.RHS) > 0 && r.RHS[0] == B,
			"no B -> B ... rule should survive elimination")
	}
}

func mustLookup(t *testing.T, g *Grammar, name string) int {
	t.Helper()
	sym, ok := g.Symbols.Lookup(name)
	if !ok {
		t.Fatalf("symbol %q not found", name)
	}
	return sym.ID
}

// testDriver is a minimal stand-in for internal/parse.Driver so grammar
// package tests can exercise BuildTable's output without importing
// internal/parse (which itself imports internal/grammar).
type testDriver struct {
	g     *Grammar
	table *Table
}

func newTestDriver(g *Grammar, table *Table) testDriver {
	return testDriver{g: g, table: table}
}

func (d testDriver) parse(tokens []string) bool {
	t := d.g.Symbols
	ids := make([]int, 0, len(tokens)+1)
	for _, tok := range tokens {
		sym, ok := t.Lookup(tok)
		if !ok {
			return false
		}
		ids = append(ids, sym.ID)
	}
	ids = append(ids, t.DollarID())

	stack := []int{t.DollarID(), d.g.Start()}
	cursor := 0

	for {
		top := stack[len(stack)-1]
		cur := ids[cursor]

		if t.ByID(top).Terminal {
			if top != cur {
				return false
			}
			stack = stack[:len(stack)-1]
			cursor++
			if len(stack) == 0 {
				return cursor == len(ids)
			}
			if cursor == len(ids) {
				return false
			}
			continue
		}

		rule, ok := d.table.Lookup(top, cur)
		if !ok {
			return false
		}
		stack = stack[:len(stack)-1]
		for i := len(rule.RHS) - 1; i >= 0; i-- {
			if rule.RHS[i] == t.EpsilonID() {
				continue
			}
			stack = append(stack, rule.RHS[i])
		}
	}
}
