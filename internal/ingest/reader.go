// Package ingest reads a grammar description from outside the core and
// builds a *grammar.Grammar from it. Neither format in this package is part
// of the core; both are external collaborators layered on top of
// internal/grammar's ingestion API.
package ingest

import (
	"bufio"
	"fmt"
	"io"

	"github.com/RajShah-1/LL1-Parser/internal/grammar"
)

// FromCountedList reads a grammar from r in the counted-list textual format:
// a whitespace-separated token stream consisting of, in order, the count and
// names of non-terminals, the count and names of terminals, the count and
// bracketed bodies of production rules (each formatted
// `LHS -> [ s1 s2 ... sk ]`), then the start symbol name.
//
// The format is whitespace-delimited rather than line-oriented, so a rule's
// `[`/`]` and symbols may be split across any number of lines; FromCountedList
// reads it with a whitespace-splitting bufio.Scanner rather than parsing
// line by line.
func FromCountedList(r io.Reader) (*grammar.Grammar, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return sc.Text(), nil
	}

	nextInt := func(label string) (int, error) {
		tok, err := next()
		if err != nil {
			return 0, err
		}
		var n int
		if _, err := fmt.Sscanf(tok, "%d", &n); err != nil {
			return 0, fmt.Errorf("ingest: expected integer count for %s, got %q", label, tok)
		}
		if n < 0 {
			return 0, fmt.Errorf("ingest: count for %s must not be negative, got %d", label, n)
		}
		return n, nil
	}

	g := grammar.New()

	numNonTerminals, err := nextInt("non-terminals")
	if err != nil {
		return nil, err
	}
	for i := 0; i < numNonTerminals; i++ {
		name, err := next()
		if err != nil {
			return nil, err
		}
		if _, err := g.DeclareNonTerminal(name); err != nil {
			return nil, err
		}
	}

	numTerminals, err := nextInt("terminals")
	if err != nil {
		return nil, err
	}
	for i := 0; i < numTerminals; i++ {
		name, err := next()
		if err != nil {
			return nil, err
		}
		if _, err := g.DeclareTerminal(name); err != nil {
			return nil, err
		}
	}

	numRules, err := nextInt("production rules")
	if err != nil {
		return nil, err
	}
	for i := 0; i < numRules; i++ {
		lhs, err := next()
		if err != nil {
			return nil, err
		}
		arrow, err := next()
		if err != nil {
			return nil, err
		}
		if arrow != "->" {
			return nil, fmt.Errorf("ingest: rule %d: expected '->' after %q, got %q", i, lhs, arrow)
		}
		open, err := next()
		if err != nil {
			return nil, err
		}
		if open != "[" {
			return nil, fmt.Errorf("ingest: rule %d: expected '[' to open RHS, got %q", i, open)
		}

		var rhs []string
		for {
			tok, err := next()
			if err != nil {
				return nil, err
			}
			if tok == "]" {
				break
			}
			rhs = append(rhs, tok)
		}

		if err := g.AddRule(lhs, rhs); err != nil {
			return nil, err
		}
	}

	start, err := next()
	if err != nil {
		return nil, err
	}
	if err := g.SetStart(start); err != nil {
		return nil, err
	}

	return g, nil
}
