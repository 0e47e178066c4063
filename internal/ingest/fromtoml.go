package ingest

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/RajShah-1/LL1-Parser/internal/grammar"
)

// tomlGrammar is a header-and-body shape: a `format`/`type` header pair that
// must be present and correctly valued, followed by the actual payload.
type tomlGrammar struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`

	Start        string     `toml:"start"`
	NonTerminals []string   `toml:"non_terminals"`
	Terminals    []string   `toml:"terminals"`
	Rules        []tomlRule `toml:"rules"`
}

type tomlRule struct {
	LHS string   `toml:"lhs"`
	RHS []string `toml:"rhs"`
}

// FromTOML reads a grammar from a TOML document, the friendlier structured
// alternative to FromCountedList's counted plain-text format. The header's
// format must be "PREDIKT" and its type must be "GRAMMAR".
func FromTOML(data []byte) (*grammar.Grammar, error) {
	var doc tomlGrammar
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ingest: parsing TOML: %w", err)
	}

	if strings.ToUpper(doc.Format) != "PREDIKT" {
		return nil, fmt.Errorf("ingest: header: 'format' key must exist and be set to 'PREDIKT'")
	}
	if strings.ToUpper(doc.Type) != "GRAMMAR" {
		return nil, fmt.Errorf("ingest: header: 'type' key must exist and be set to 'GRAMMAR'")
	}

	g := grammar.New()

	for _, nt := range doc.NonTerminals {
		if _, err := g.DeclareNonTerminal(nt); err != nil {
			return nil, err
		}
	}
	for _, t := range doc.Terminals {
		if _, err := g.DeclareTerminal(t); err != nil {
			return nil, err
		}
	}
	for i, r := range doc.Rules {
		if err := g.AddRule(r.LHS, r.RHS); err != nil {
			return nil, fmt.Errorf("ingest: rule %d: %w", i, err)
		}
	}

	if err := g.SetStart(doc.Start); err != nil {
		return nil, err
	}

	return g, nil
}
