package grammar

import "testing"

// buildGrammar is a small test helper for constructing a Grammar from plain
// name-based declarations, rather than repeating the counted-list ingestion
// format in every test.
func buildGrammar(t *testing.T, nonTerminals, terminals []string, rules [][2]any, start string) *Grammar {
	t.Helper()
	g := New()

	for _, nt := range nonTerminals {
		if _, err := g.DeclareNonTerminal(nt); err != nil {
			t.Fatalf("DeclareNonTerminal(%q): %v", nt, err)
		}
	}
	for _, term := range terminals {
		if _, err := g.DeclareTerminal(term); err != nil {
			t.Fatalf("DeclareTerminal(%q): %v", term, err)
		}
	}
	for _, r := range rules {
		lhs := r[0].(string)
		rhs := r[1].([]string)
		if err := g.AddRule(lhs, rhs); err != nil {
			t.Fatalf("AddRule(%q, %v): %v", lhs, rhs, err)
		}
	}
	if err := g.SetStart(start); err != nil {
		t.Fatalf("SetStart(%q): %v", start, err)
	}
	return g
}

// rl is a shorthand for building the [2]any entries buildGrammar expects.
func rl(lhs string, rhs ...string) [2]any {
	return [2]any{lhs, rhs}
}
