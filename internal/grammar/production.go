package grammar

import "strings"

// Production is the ordered sequence of symbol IDs making up a rule's RHS.
// An epsilon production is the singleton []int{epsilonID}; no production is
// ever the empty slice.
type Production []int

// IsEpsilon returns whether p is the singleton epsilon production.
func (p Production) IsEpsilon(t *SymbolTable) bool {
	return len(p) == 1 && p[0] == t.EpsilonID()
}

// Equal returns whether p and o are structurally identical sequences of
// symbol IDs. Used by the rule store to dedup alternatives by structural
// equality rather than pointer identity.
func (p Production) Equal(o Production) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// HasSymbol returns whether id occurs anywhere in p.
func (p Production) HasSymbol(id int) bool {
	for _, s := range p {
		if s == id {
			return true
		}
	}
	return false
}

// String renders p using t to resolve symbol names.
func (p Production) String(t *SymbolTable) string {
	if len(p) == 1 && p[0] == t.EpsilonID() {
		return EpsilonName
	}
	names := make([]string, len(p))
	for i, id := range p {
		names[i] = t.ByID(id).Name
	}
	return strings.Join(names, " ")
}

// Copy returns a duplicate of p that shares no backing array with it.
func (p Production) Copy() Production {
	p2 := make(Production, len(p))
	copy(p2, p)
	return p2
}
