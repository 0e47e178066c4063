package grammar

import "github.com/RajShah-1/LL1-Parser/internal/util"

// Table is the LL(1) parse table: for each (non-terminal, terminal) pair it
// names the single Rule the predictive parser should use
// to expand that non-terminal when that terminal is the lookahead. Rows are
// non-terminal symbol IDs; columns are terminal symbol IDs, including the
// dollar sentinel for entries predicted by a FOLLOW set.
type Table struct {
	cells util.Matrix2[int, int, Rule]
}

// Lookup returns the rule to apply for (nonTerminal, lookahead), if any.
func (tbl *Table) Lookup(nonTerminal, lookahead int) (Rule, bool) {
	return tbl.cells.Get(nonTerminal, lookahead)
}

// NonTerminals returns the non-terminal IDs that have at least one table
// entry.
func (tbl *Table) NonTerminals() []int {
	return tbl.cells.Rows()
}

// BuildTable constructs the LL(1) parse table for g from its FIRST and
// FOLLOW sets. For every rule A -> α, the predict set is FIRST(α) if α
// cannot derive epsilon, or FIRST(α) union FOLLOW(A) if it can. Each
// terminal in the predict set becomes a cell (A, terminal) -> rule; a cell
// that already holds a different rule is a grammar that is not LL(1),
// reported as a *Error of KindNotLL1 carrying the Conflict.
func BuildTable(g *Grammar, first FirstSets, follow FollowSets) (*Table, error) {
	t := g.Symbols
	tbl := &Table{cells: util.NewMatrix2[int, int, Rule]()}

	for _, nt := range g.NonTerminalOrder() {
		for _, r := range g.RulesOf(nt) {
			predict := FirstOfSequence(g, first, r.RHS)
			derivesEpsilon := predict[t.EpsilonID()]

			terms := map[int]bool{}
			for f := range predict {
				if f != t.EpsilonID() {
					terms[f] = true
				}
			}
			if derivesEpsilon {
				for f := range follow[nt] {
					terms[f] = true
				}
			}

			for term := range terms {
				if existing, ok := tbl.cells.Get(nt, term); ok {
					if existing.RHS.Equal(r.RHS) {
						continue
					}
					return nil, newConflictError(g.Symbols, nt, term, existing, r)
				}
				tbl.cells.Set(nt, term, r)
			}
		}
	}

	return tbl, nil
}
