package grammar

import "strconv"

// LeftFactor returns a new Grammar equivalent to g but with alternatives that
// share a common first symbol factored apart.
//
// Like EliminateLeftRecursion, this is a single index-based pass over the
// (possibly growing) non-terminal list; unlike it, a non-terminal minted by
// this same pass is visited exactly once, when the loop index reaches it, but
// there is no repeated fixed-point sweep over the whole grammar. Grammars
// whose common factor only becomes visible after substituting one
// non-terminal into another are not fully factored by this; that is a
// deliberate limitation, not a bug.
func LeftFactor(g *Grammar) *Grammar {
	g = g.Copy()
	t := g.Symbols

	for i := 0; i < len(g.NonTerminalOrder()); i++ {
		A := g.NonTerminalOrder()[i]
		factorOne(g, t, A)
	}

	return g
}

// factorOne groups A's alternatives by their first RHS symbol and factors
// every group of two or more members.
func factorOne(g *Grammar, t *SymbolTable, A int) {
	rules := g.RulesOf(A)

	var groupKeys []int
	groups := map[int][]Rule{}
	for _, r := range rules {
		if len(r.RHS) == 0 {
			continue
		}
		first := r.RHS[0]
		if _, seen := groups[first]; !seen {
			groupKeys = append(groupKeys, first)
		}
		groups[first] = append(groups[first], r)
	}

	var newRules []Rule
	for _, key := range groupKeys {
		members := groups[key]
		if len(members) < 2 {
			newRules = append(newRules, members...)
			continue
		}

		prefix := longestCommonPrefix(members)

		name := "NT_" + strconv.Itoa(len(t.byID))
		N := g.mintNonTerminal(name, A)

		var nRules []Rule
		for _, m := range members {
			suffix := m.RHS[len(prefix):]
			var rhs Production
			if len(suffix) == 0 {
				rhs = Production{t.EpsilonID()}
			} else {
				rhs = suffix.Copy()
			}
			nRules = append(nRules, Rule{LHS: N.ID, RHS: rhs})
		}
		g.setRulesOf(N.ID, dedupRules(nRules))

		piN := append(append(Production{}, prefix...), N.ID)
		newRules = append(newRules, Rule{LHS: A, RHS: piN})
	}

	g.setRulesOf(A, newRules)
}

// longestCommonPrefix finds the longest RHS prefix common to every member of
// rules, by pairwise truncation: start from the first member's RHS and
// shrink it to the length at which every other member still matches.
// Callers only invoke this for groups sharing the same first symbol, so the
// result is always at least length 1.
func longestCommonPrefix(rules []Rule) Production {
	prefix := rules[0].RHS.Copy()
	for _, r := range rules[1:] {
		prefix = commonPrefix(prefix, r.RHS)
	}
	return prefix
}

func commonPrefix(a, b Production) Production {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// dedupRules removes structurally-equal duplicate RHS entries while
// preserving order, so that a group where multiple members reduce to the
// same epsilon suffix contributes only one N -> ε alternative.
func dedupRules(rules []Rule) []Rule {
	var out []Rule
	for _, r := range rules {
		dup := false
		for _, seen := range out {
			if seen.RHS.Equal(r.RHS) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}
	return out
}
