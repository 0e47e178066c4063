package grammar

import "strings"

// Symbol is a single interned grammar symbol: a dense, never-reused integer
// ID assigned in creation order, a display name, and a terminal/non-terminal
// classification.
//
// Symbols are the grammar's shared graph nodes; rather than pointers shared
// across many Rule values (as a C++ port of this algorithm would do with raw
// Symbol*), every reference to a symbol elsewhere in this package is by its
// dense integer ID into a SymbolTable, which is the arena that owns the
// Symbol values themselves.
type Symbol struct {
	ID       int
	Name     string
	Terminal bool
}

// Reserved symbol names. Epsilon is the sentinel for the empty derivation;
// Dollar is the end-of-input sentinel. Both are always present in a
// SymbolTable and are never user-declarable.
const (
	EpsilonName = "ε"
	DollarName  = "$"
)

// SymbolTable interns grammar symbols and assigns them stable, dense,
// non-negative integer identifiers. Epsilon and Dollar are interned first, at
// construction, so they always occupy IDs 0 and 1.
type SymbolTable struct {
	byName map[string]int
	byID   []Symbol

	epsilonID int
	dollarID  int
}

// NewSymbolTable returns a SymbolTable with the two reserved sentinels
// pre-interned.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{byName: map[string]int{}}
	eps := t.intern(EpsilonName, true)
	dol := t.intern(DollarName, true)
	t.epsilonID = eps.ID
	t.dollarID = dol.ID
	return t
}

// EpsilonID returns the ID of the epsilon sentinel.
func (t *SymbolTable) EpsilonID() int { return t.epsilonID }

// DollarID returns the ID of the end-of-input sentinel.
func (t *SymbolTable) DollarID() int { return t.dollarID }

// ValidName returns an error if name cannot be used as a user-declared symbol
// name: it must be non-empty and contain no whitespace, ']', or '_'. The
// underscore restriction is what keeps a user-supplied name from ever
// colliding with the "NT_<id>" form left factoring mints; "<name>'" forms are
// kept unique by GenerateUniqueName instead (grammar.go's mintNonTerminal
// bypasses ValidName entirely, since those names are never user input).
// Reserved sentinel names (ε, $) may not
// be redeclared by a user either, even though they pass the character
// checks.
func ValidName(name string) error {
	if name == "" {
		return newErrorf(KindMalformedInput, "symbol name must not be empty")
	}
	if strings.ContainsAny(name, " \t\r\n") {
		return newErrorf(KindMalformedInput, "symbol name %q must not contain whitespace", name)
	}
	if strings.Contains(name, "]") {
		return newErrorf(KindMalformedInput, "symbol name %q must not contain ']'", name)
	}
	if strings.Contains(name, "_") {
		return newErrorf(KindMalformedInput, "symbol name %q must not contain '_'", name)
	}
	if name == EpsilonName || name == DollarName {
		return newErrorf(KindMalformedInput, "symbol name %q is reserved and cannot be declared", name)
	}
	return nil
}

// Intern returns the Symbol for name, creating it with a fresh ID if it does
// not already exist. If it already exists with a different terminal
// classification, that is an internal consistency violation: a name must map
// to exactly one symbol for the grammar's lifetime.
func (t *SymbolTable) Intern(name string, isTerminal bool) (Symbol, error) {
	if existing, ok := t.Lookup(name); ok {
		if existing.Terminal != isTerminal {
			return Symbol{}, newErrorf(KindInternalInvariant,
				"symbol %q already interned as terminal=%v, cannot re-intern as terminal=%v",
				name, existing.Terminal, isTerminal)
		}
		return existing, nil
	}
	return t.intern(name, isTerminal), nil
}

func (t *SymbolTable) intern(name string, isTerminal bool) Symbol {
	id := len(t.byID)
	sym := Symbol{ID: id, Name: name, Terminal: isTerminal}
	t.byID = append(t.byID, sym)
	t.byName[name] = id
	return sym
}

// Lookup returns the Symbol with the given name, if interned.
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	id, ok := t.byName[name]
	if !ok {
		return Symbol{}, false
	}
	return t.byID[id], true
}

// ByID returns the Symbol with the given ID. Panics if id is out of range,
// which would itself be an internal consistency violation.
func (t *SymbolTable) ByID(id int) Symbol {
	return t.byID[id]
}

// Terminals returns all user-visible terminal symbols, in ID order,
// excluding the epsilon and dollar sentinels.
func (t *SymbolTable) Terminals() []Symbol {
	var out []Symbol
	for _, s := range t.byID {
		if s.Terminal && s.ID != t.epsilonID && s.ID != t.dollarID {
			out = append(out, s)
		}
	}
	return out
}

// NonTerminals returns all non-terminal symbols, in ID (creation) order.
func (t *SymbolTable) NonTerminals() []Symbol {
	var out []Symbol
	for _, s := range t.byID {
		if !s.Terminal {
			out = append(out, s)
		}
	}
	return out
}

// GenerateUniqueName returns a name derived from original that is guaranteed
// not to already be interned, following the convention of suffixing a prime
// for recursion-removal non-terminals. Callers that want the
// factoring convention's "NT_<id>" form construct that name themselves
// before calling Intern, using len(byID) as the next-assigned ID (see
// factorOne in leftfactor.go).
func (t *SymbolTable) GenerateUniqueName(original string) string {
	name := original + "'"
	for {
		if _, ok := t.Lookup(name); !ok {
			return name
		}
		name += "'"
	}
}
