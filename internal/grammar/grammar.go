// Package grammar implements predikt's core: the grammar-transformation and
// LL(1) parser-generation engine. It knows nothing about files,
// terminals-of-input, CLIs, or HTTP; every operation here is a synchronous,
// in-memory transformation of a Grammar value.
package grammar

// Grammar is the tuple (start symbol, terminal list, non-terminal list, rule
// set), backed by a SymbolTable arena and a ruleStore.
type Grammar struct {
	Symbols *SymbolTable
	rules   *ruleStore

	start int // symbol ID of the start non-terminal; -1 if unset

	// ntOrder is the declaration order of non-terminals: A_0, A_1, ...,
	// A_{n-1}. Transformation stages insert each newly-minted non-terminal
	// immediately after the non-terminal it was derived from; callers iterate
	// this by index and re-check its length each step rather than taking a
	// snapshot. LeftFactor visits the non-terminals it mints when the loop
	// index reaches them; EliminateLeftRecursion steps past the A_i' it mints.
	ntOrder []int
}

// New returns an empty Grammar with only the epsilon/dollar sentinels
// interned.
func New() *Grammar {
	return &Grammar{
		Symbols: NewSymbolTable(),
		rules:   newRuleStore(),
		start:   -1,
	}
}

// DeclareNonTerminal interns name as a non-terminal and appends it to the
// declaration order. It is an error to declare the same name twice or to
// declare one of the reserved sentinel names.
func (g *Grammar) DeclareNonTerminal(name string) (Symbol, error) {
	if err := ValidName(name); err != nil {
		return Symbol{}, err
	}
	if _, ok := g.Symbols.Lookup(name); ok {
		return Symbol{}, newErrorf(KindMalformedInput, "symbol %q already declared", name)
	}
	sym, err := g.Symbols.Intern(name, false)
	if err != nil {
		return Symbol{}, err
	}
	g.ntOrder = append(g.ntOrder, sym.ID)
	return sym, nil
}

// DeclareTerminal interns name as a terminal. It is an error to declare the
// same name twice or to declare one of the reserved sentinel names.
func (g *Grammar) DeclareTerminal(name string) (Symbol, error) {
	if err := ValidName(name); err != nil {
		return Symbol{}, err
	}
	if _, ok := g.Symbols.Lookup(name); ok {
		return Symbol{}, newErrorf(KindMalformedInput, "symbol %q already declared", name)
	}
	return g.Symbols.Intern(name, true)
}

// mintNonTerminal interns a fresh non-terminal under a name the SymbolTable
// guarantees is unused, inserting it into the declaration order immediately
// after afterID, so an index-based pass positioned at afterID reaches it
// next. It is used only by the transformation stages, never by ingestion.
func (g *Grammar) mintNonTerminal(name string, afterID int) Symbol {
	sym, err := g.Symbols.Intern(name, false)
	if err != nil {
		// Intern only errors on a terminal/non-terminal classification
		// clash, which cannot happen for a name GenerateUniqueName picked
		// specifically because it was absent.
		panic(err)
	}
	idx := indexOf(g.ntOrder, afterID)
	if idx < 0 {
		g.ntOrder = append(g.ntOrder, sym.ID)
	} else {
		g.ntOrder = insertAfter(g.ntOrder, idx, sym.ID)
	}
	return sym
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func insertAfter(s []int, idx, v int) []int {
	out := make([]int, 0, len(s)+1)
	out = append(out, s[:idx+1]...)
	out = append(out, v)
	out = append(out, s[idx+1:]...)
	return out
}

// SetStart sets the grammar's start symbol. name must already be declared as
// a non-terminal.
func (g *Grammar) SetStart(name string) error {
	sym, ok := g.Symbols.Lookup(name)
	if !ok {
		return newErrorf(KindMalformedInput, "start symbol %q is not a declared non-terminal", name)
	}
	if sym.Terminal {
		return newErrorf(KindMalformedInput, "start symbol %q must be a non-terminal", name)
	}
	g.start = sym.ID
	return nil
}

// Start returns the ID of the start symbol. Panics if unset; callers must
// set a start symbol during ingestion before running any transformation.
func (g *Grammar) Start() int {
	if g.start < 0 {
		panic("grammar: start symbol not set")
	}
	return g.start
}

// AddRule adds a rule with the given LHS name and RHS symbol names
// (epsilon spelled as the single name grammar.EpsilonName) to the grammar.
// Every name must already be declared; an unknown symbol is a
// malformed-input fault.
func (g *Grammar) AddRule(lhsName string, rhsNames []string) error {
	lhs, ok := g.Symbols.Lookup(lhsName)
	if !ok {
		return newErrorf(KindMalformedInput, "unknown non-terminal %q on LHS of rule", lhsName)
	}
	if lhs.Terminal {
		return newErrorf(KindMalformedInput, "terminal %q cannot be used as LHS of a rule", lhsName)
	}
	if len(rhsNames) == 0 {
		return newErrorf(KindMalformedInput, "rule RHS must not be empty; use %q for an empty derivation", EpsilonName)
	}
	if len(rhsNames) > 1 {
		for _, n := range rhsNames {
			if n == EpsilonName {
				return newErrorf(KindMalformedInput, "epsilon is only allowed as the sole symbol of a rule's RHS")
			}
		}
	}
	rhs := make(Production, len(rhsNames))
	for i, n := range rhsNames {
		sym, ok := g.Symbols.Lookup(n)
		if !ok {
			return newErrorf(KindMalformedInput, "unknown symbol %q in RHS of rule for %q", n, lhsName)
		}
		rhs[i] = sym.ID
	}
	g.rules.add(Rule{LHS: lhs.ID, RHS: rhs})
	return nil
}

// addRuleRaw adds a rule given already-resolved symbol IDs; used internally
// by the transformation stages, which work with IDs directly.
func (g *Grammar) addRuleRaw(lhs int, rhs Production) {
	g.rules.add(Rule{LHS: lhs, RHS: rhs})
}

// RulesOf returns the alternatives for the given non-terminal ID.
func (g *Grammar) RulesOf(nt int) []Rule {
	return g.rules.rulesOf(nt)
}

// setRulesOf replaces the rule set for nt wholesale.
func (g *Grammar) setRulesOf(nt int, rules []Rule) {
	g.rules.setRulesOf(nt, rules)
}

// NonTerminalOrder returns the non-terminal IDs in declaration order,
// including any minted by transformation stages, each placed directly after
// the non-terminal it was minted from.
func (g *Grammar) NonTerminalOrder() []int {
	return g.ntOrder
}

// AllRules returns every rule in the grammar, grouped by LHS in declaration
// order.
func (g *Grammar) AllRules() []Rule {
	return g.rules.allRules(g.ntOrder)
}

// Copy returns a deep copy of g. Transformation stages are written to
// operate by returning a new Grammar rather than mutating their receiver in
// place, so that a caller retaining the pre-transformation grammar (e.g. for
// rendering "before" artifacts) is unaffected.
func (g *Grammar) Copy() *Grammar {
	g2 := &Grammar{
		Symbols: &SymbolTable{},
		rules:   g.rules.copy(),
		start:   g.start,
		ntOrder: append([]int(nil), g.ntOrder...),
	}
	*g2.Symbols = *g.Symbols
	g2.Symbols.byName = make(map[string]int, len(g.Symbols.byName))
	for k, v := range g.Symbols.byName {
		g2.Symbols.byName[k] = v
	}
	g2.Symbols.byID = append([]Symbol(nil), g.Symbols.byID...)
	return g2
}

// Validate checks the invariants that must hold of a grammar independent of
// any particular transformation stage: a start symbol is set and has at
// least one rule, every declared non-terminal has at least one rule, and
// every symbol referenced in any RHS is declared.
func (g *Grammar) Validate() error {
	if g.start < 0 {
		return newErrorf(KindMalformedInput, "no start symbol declared")
	}
	if len(g.rules.rulesOf(g.start)) == 0 {
		return newErrorf(KindMalformedInput, "start symbol %q has no production rules", g.Symbols.ByID(g.start).Name)
	}

	for _, nt := range g.ntOrder {
		if len(g.rules.rulesOf(nt)) == 0 {
			return newErrorf(KindMalformedInput, "non-terminal %q has no production rules", g.Symbols.ByID(nt).Name)
		}
	}

	for _, r := range g.AllRules() {
		for _, symID := range r.RHS {
			if symID < 0 || symID >= len(g.Symbols.byID) {
				return newErrorf(KindInternalInvariant, "rule %s references unknown symbol id %d", r.String(g.Symbols), symID)
			}
		}
	}

	return nil
}
