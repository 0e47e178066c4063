package grammar

// EliminateLeftRecursion returns a new Grammar equivalent to g but with no
// left recursion, direct or indirect, implementing Paull's algorithm. This is
// a single pass over the non-terminals in declaration order, not iterated to
// a fixed point — a deliberate choice over the more conservative
// loop-until-no-change approach.
func EliminateLeftRecursion(g *Grammar) *Grammar {
	g = g.Copy()
	t := g.Symbols

	// index-based iteration: NonTerminalOrder() grows as A_i' symbols are
	// minted, each inserted directly after A_i at index i+1, so the length is
	// re-read on every loop step rather than snapshotted once, and the loop
	// steps past a freshly-minted A_i' so that it is not itself processed.
	for i := 0; i < len(g.NonTerminalOrder()); i++ {
		Ai := g.NonTerminalOrder()[i]

		for j := 0; j < i; j++ {
			Aj := g.NonTerminalOrder()[j]
			substituteIndirect(g, Ai, Aj)
		}

		n := len(g.NonTerminalOrder())
		eliminateImmediate(g, t, Ai)
		if len(g.NonTerminalOrder()) > n {
			i++
		}
	}

	return g
}

// substituteIndirect replaces every rule Ai -> Aj γ with {Ai -> δ γ : Aj -> δ},
// where Aj's rules are its *current* alternatives (already left-recursion-free
// with respect to earlier non-terminals, since j < i has already been
// processed). This is a non-iterative, single substitution per (i, j) pair.
func substituteIndirect(g *Grammar, Ai, Aj int) {
	rules := g.RulesOf(Ai)
	var kept []Rule
	var replaced bool

	for _, r := range rules {
		if len(r.RHS) > 0 && r.RHS[0] == Aj {
			replaced = true
			gamma := r.RHS[1:]
			for _, ajRule := range g.RulesOf(Aj) {
				newRHS := make(Production, 0, len(ajRule.RHS)+len(gamma))
				newRHS = append(newRHS, ajRule.RHS...)
				newRHS = append(newRHS, gamma...)
				kept = append(kept, Rule{LHS: Ai, RHS: newRHS})
			}
		} else {
			kept = append(kept, r)
		}
	}

	if replaced {
		g.setRulesOf(Ai, kept)
	}
}

// eliminateImmediate removes immediate left recursion from Ai's rules,
// minting Ai' when left-recursive alternatives exist.
func eliminateImmediate(g *Grammar, t *SymbolTable, Ai int) {
	rules := g.RulesOf(Ai)

	var alphas []Production // the "A_i alpha" tails, alpha may be empty
	var betas []Rule
	for _, r := range rules {
		if len(r.RHS) > 0 && r.RHS[0] == Ai {
			alphas = append(alphas, r.RHS[1:])
		} else {
			betas = append(betas, r)
		}
	}

	if len(alphas) == 0 {
		return
	}

	primeName := t.GenerateUniqueName(t.ByID(Ai).Name)
	prime := g.mintNonTerminal(primeName, Ai)

	var newAiRules []Rule
	for _, b := range betas {
		newRHS := append(append(Production{}, b.RHS...), prime.ID)
		newAiRules = append(newAiRules, Rule{LHS: Ai, RHS: newRHS})
	}
	g.setRulesOf(Ai, newAiRules)

	var primeRules []Rule
	for _, alpha := range alphas {
		// A_i -> A_i is a unit self-recursion: discarded, it derives no
		// terminal string.
		if len(alpha) == 0 {
			continue
		}
		newRHS := append(append(Production{}, alpha...), prime.ID)
		primeRules = append(primeRules, Rule{LHS: prime.ID, RHS: newRHS})
	}
	primeRules = append(primeRules, Rule{LHS: prime.ID, RHS: Production{t.EpsilonID()}})
	g.setRulesOf(prime.ID, primeRules)
}
