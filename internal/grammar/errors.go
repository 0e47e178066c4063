package grammar

import (
	"errors"
	"fmt"
)

// Kind classifies a grammar-engine fault into a closed enumeration, in place
// of a C++ port's hoisted exception constants.
type Kind int

const (
	// KindMalformedInput covers ingestion faults raised by this package:
	// unknown symbol reference, terminal used as LHS, invalid or reserved
	// symbol name, empty RHS. Syntax errors found by internal/ingest's
	// readers (a missing '->' or '[') are plain errors, not of this Kind.
	KindMalformedInput Kind = iota

	// KindNotLL1 is raised when a parse-table cell would be assigned twice
	// during table construction.
	KindNotLL1

	// KindInternalInvariant marks an observed violation of a grammar
	// invariant that should be unreachable from any public API — a
	// programmer error, not a user-facing fault.
	KindInternalInvariant
)

func (k Kind) String() string {
	switch k {
	case KindMalformedInput:
		return "malformed input"
	case KindNotLL1:
		return "not LL(1)"
	case KindInternalInvariant:
		return "internal invariant violation"
	default:
		return "unknown error kind"
	}
}

// Sentinel errors usable with errors.Is: package-level errors.New values
// that an Error wraps as its cause.
var (
	ErrMalformedInput    = errors.New("malformed grammar input")
	ErrNotLL1            = errors.New("grammar is not LL(1)")
	ErrInternalInvariant = errors.New("internal grammar invariant violated")
)

func sentinelFor(k Kind) error {
	switch k {
	case KindMalformedInput:
		return ErrMalformedInput
	case KindNotLL1:
		return ErrNotLL1
	default:
		return ErrInternalInvariant
	}
}

// Conflict carries structured context about an LL(1) table-cell conflict:
// the non-terminal and terminal identifying the cell, and the two rules that
// both wanted it, in place of a bare NOT_LL1_EXCEPTION-style
// constant with no attached detail.
type Conflict struct {
	NonTerminal string
	Terminal    string
	Existing    Rule
	Incoming    Rule
}

// Error is predikt's error type for grammar-engine faults. It carries a Kind,
// a human message, and (for KindNotLL1) the offending Conflict. It supports
// errors.Is against the Kind's sentinel error via Unwrap, matching
// server/serr's cause-wrapping idiom.
type Error struct {
	Kind     Kind
	msg      string
	Conflict *Conflict
	cause    error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap makes Error compatible with errors.Is/errors.As against both the
// Kind's sentinel and any wrapped cause.
func (e *Error) Unwrap() []error {
	errs := []error{sentinelFor(e.Kind)}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

func newErrorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

func newConflictError(t *SymbolTable, nonTerminal, terminal int, existing, incoming Rule) *Error {
	c := Conflict{
		NonTerminal: t.ByID(nonTerminal).Name,
		Terminal:    t.ByID(terminal).Name,
		Existing:    existing,
		Incoming:    incoming,
	}
	return &Error{
		Kind: KindNotLL1,
		msg: fmt.Sprintf("conflicting productions for (%s, %s): %s and %s",
			c.NonTerminal, c.Terminal, c.Existing.String(t), c.Incoming.String(t)),
		Conflict: &c,
	}
}

func wrapErrorf(cause error, kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
}
