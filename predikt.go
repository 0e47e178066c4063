// Package predikt builds LL(1) predictive parsers from user-supplied
// context-free grammars and drives token streams through them.
//
// Build runs the core pipeline — left-recursion elimination, left factoring,
// FIRST/FOLLOW propagation, and parse-table synthesis — over an ingested
// *grammar.Grammar and returns a *Parser ready to drive token sequences.
// Everything in this file is a thin façade over internal/grammar and
// internal/parse; it owns no algorithmic logic of its own.
package predikt

import (
	"github.com/google/uuid"

	"github.com/RajShah-1/LL1-Parser/internal/grammar"
	"github.com/RajShah-1/LL1-Parser/internal/parse"
)

// Parser is a compiled LL(1) predictive parser: a transformed grammar, its
// FIRST/FOLLOW sets, and the parse table built from them, plus a driver
// that runs token streams against the table. BuildID uniquely tags one
// build, for correlating CLI/server log lines to one compiled grammar.
type Parser struct {
	BuildID uuid.UUID

	Grammar *grammar.Grammar
	First   grammar.FirstSets
	Follow  grammar.FollowSets
	Table   *grammar.Table

	driver *parse.Driver
}

// Build runs the full transformation pipeline over src (eliminator →
// factorer → FIRST → FOLLOW → table builder) and returns a Parser ready to
// drive token streams. src is left untouched; every stage returns a new
// Grammar rather than mutating its input, so a caller retaining src can
// still render "before" artifacts against it.
//
// Build fails only for two fault classes: a malformed src (should not
// happen for a src that already passed ingestion validation) or an LL(1)
// conflict discovered while synthesizing the parse table.
func Build(src *grammar.Grammar) (*Parser, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	g := grammar.EliminateLeftRecursion(src)
	g = grammar.LeftFactor(g)

	first := grammar.ComputeFirst(g)
	follow := grammar.ComputeFollow(g, first)

	table, err := grammar.BuildTable(g, first, follow)
	if err != nil {
		return nil, err
	}

	p := &Parser{
		BuildID: uuid.New(),
		Grammar: g,
		First:   first,
		Follow:  follow,
		Table:   table,
	}
	p.driver = parse.NewDriver(g, table)
	return p, nil
}

// Parse drives tokens (terminal names, without a trailing "$") through the
// compiled parser and returns the accept/reject verdict. Parse may be
// called any number of times against the same Parser; no state is mutated
// between calls.
func (p *Parser) Parse(tokens []string) parse.Verdict {
	return p.driver.Run(tokens)
}

// Trace sets an optional per-step callback invoked during Parse, for
// observing the driver's stack/lookahead/applied-rule without the core
// doing any I/O itself. Pass nil to disable tracing.
func (p *Parser) Trace(fn func(parse.Step)) {
	p.driver.Trace = fn
}
