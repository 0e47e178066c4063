// Package render produces human-readable serializations of the core's
// state for external collaborators: the transformed grammar, FIRST/FOLLOW
// sets, and the parse table. None of this is read by the core itself.
package render

import (
	"sort"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/RajShah-1/LL1-Parser/internal/grammar"
	"github.com/RajShah-1/LL1-Parser/internal/util"
)

// Grammar renders every rule in g as a bordered table of LHS -> RHS
// alternatives, one row per rule, grouped by non-terminal declaration
// order. Typically called once after ingestion and once after
// transformation, to show a grammar's "before" and "after" shape.
func Grammar(g *grammar.Grammar) string {
	t := g.Symbols
	data := [][]string{{"LHS", "RHS"}}

	for _, nt := range g.NonTerminalOrder() {
		for _, r := range g.RulesOf(nt) {
			data = append(data, []string{t.ByID(nt).Name, r.RHS.String(t)})
		}
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{TableBorders: true}).
		String()
}

// FirstSets renders FIRST(X) as a bordered two-column table for every
// non-terminal, in declaration order, then for every user-visible terminal,
// in ID order; the epsilon and dollar sentinels get no row.
func FirstSets(g *grammar.Grammar, first grammar.FirstSets) string {
	t := g.Symbols
	data := [][]string{{"Symbol", "FIRST"}}

	for _, nt := range g.NonTerminalOrder() {
		data = append(data, []string{t.ByID(nt).Name, renderSymbolSet(t, first[nt])})
	}
	for _, term := range t.Terminals() {
		data = append(data, []string{term.Name, renderSymbolSet(t, first[term.ID])})
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{TableBorders: true}).
		String()
}

// FollowSets renders FOLLOW(A) for every non-terminal A as a bordered
// two-column table.
func FollowSets(g *grammar.Grammar, follow grammar.FollowSets) string {
	t := g.Symbols
	data := [][]string{{"Non-terminal", "FOLLOW"}}

	for _, nt := range g.NonTerminalOrder() {
		data = append(data, []string{t.ByID(nt).Name, renderSymbolSet(t, follow[nt])})
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{TableBorders: true}).
		String()
}

// Table renders the LL(1) parse table as a grid with non-terminals down the
// rows and terminals (plus the dollar sentinel) across the columns, each
// cell holding the applicable rule, rendered as "LHS -> RHS", or blank if
// unset.
func Table(g *grammar.Grammar, tbl *grammar.Table) string {
	t := g.Symbols

	nts := tbl.NonTerminals()
	sort.Ints(nts)

	termIDs := append([]int{}, terminalColumns(t)...)

	topRow := []string{""}
	for _, term := range termIDs {
		topRow = append(topRow, t.ByID(term).Name)
	}
	data := [][]string{topRow}

	for _, nt := range nts {
		row := []string{t.ByID(nt).Name}
		for _, term := range termIDs {
			rule, ok := tbl.Lookup(nt, term)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, rule.String(t))
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 120, rosed.Options{TableBorders: true}).
		String()
}

// terminalColumns returns every user-visible terminal ID plus the dollar
// sentinel, in a stable order, for use as parse-table columns.
func terminalColumns(t *grammar.SymbolTable) []int {
	var ids []int
	for _, term := range t.Terminals() {
		ids = append(ids, term.ID)
	}
	ids = append(ids, t.DollarID())
	return ids
}

// renderSymbolSet turns a set of symbol IDs into its sorted, comma-joined
// name listing, going through a util.StringSet so the alphabetical ordering
// and de-duplication live in one shared place rather than being
// reimplemented at each call site.
func renderSymbolSet(t *grammar.SymbolTable, set map[int]bool) string {
	names := util.StringSet{}
	for id := range set {
		names.Add(t.ByID(id).Name)
	}
	return strings.Join(names.Ordered(), ", ")
}
