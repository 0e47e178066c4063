package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Grammar_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		build     func(t *testing.T) *Grammar
		expectErr bool
	}{
		{
			name: "no start set",
			build: func(t *testing.T) *Grammar {
				g := New()
				_, err := g.DeclareNonTerminal("S")
				require.NoError(t, err)
				return g
			},
			expectErr: true,
		},
		{
			name: "non-terminal with no rules",
			build: func(t *testing.T) *Grammar {
				g := New()
				_, err := g.DeclareNonTerminal("S")
				require.NoError(t, err)
				_, err = g.DeclareNonTerminal("A")
				require.NoError(t, err)
				_, err = g.DeclareTerminal("a")
				require.NoError(t, err)
				require.NoError(t, g.AddRule("S", []string{"a"}))
				require.NoError(t, g.SetStart("S"))
				return g
			},
			expectErr: true,
		},
		{
			name: "well formed",
			build: func(t *testing.T) *Grammar {
				return buildGrammar(t,
					[]string{"S"},
					[]string{"a"},
					[][2]any{rl("S", "a")},
					"S",
				)
			},
			expectErr: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			g := tc.build(t)
			err := g.Validate()
			if tc.expectErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func Test_Grammar_AddRule_RejectsUnknownSymbol(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := New()
	_, err := g.DeclareNonTerminal("S")
	require.NoError(err)

	err = g.AddRule("S", []string{"a"})
	assert.Error(err)
}

func Test_Grammar_AddRule_EpsilonMustBeSole(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := New()
	_, err := g.DeclareNonTerminal("S")
	require.NoError(err)
	_, err = g.DeclareTerminal("a")
	require.NoError(err)

	err = g.AddRule("S", []string{"a", EpsilonName})
	assert.Error(err)

	err = g.AddRule("S", []string{EpsilonName})
	assert.NoError(err)
}

func Test_Grammar_AddRule_DeduplicatesStructurally(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := New()
	_, err := g.DeclareNonTerminal("S")
	require.NoError(err)
	_, err = g.DeclareTerminal("a")
	require.NoError(err)

	require.NoError(g.AddRule("S", []string{"a"}))
	require.NoError(g.AddRule("S", []string{"a"}))

	s, _ := g.Symbols.Lookup("S")
	assert.Len(g.RulesOf(s.ID), 1)
}

func Test_Grammar_Copy_IsIndependent(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := buildGrammar(t,
		[]string{"S"},
		[]string{"a"},
		[][2]any{rl("S", "a")},
		"S",
	)

	g2 := g.Copy()
	_, err := g2.DeclareTerminal("b")
	require.NoError(err)
	require.NoError(g2.AddRule("S", []string{"b"}))

	s, _ := g.Symbols.Lookup("S")
	assert.Len(g.RulesOf(s.ID), 1, "original grammar must be unaffected by mutation of the copy")
}
