package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SymbolTable_SentinelsPreinterned(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()
	eps, ok := st.Lookup(EpsilonName)
	assert.True(ok)
	assert.Equal(st.EpsilonID(), eps.ID)

	dol, ok := st.Lookup(DollarName)
	assert.True(ok)
	assert.Equal(st.DollarID(), dol.ID)

	assert.NotEqual(eps.ID, dol.ID)
}

func Test_SymbolTable_Intern_Idempotent(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	st := NewSymbolTable()
	a, err := st.Intern("A", false)
	require.NoError(err)
	b, err := st.Intern("A", false)
	require.NoError(err)
	assert.Equal(a.ID, b.ID)
}

func Test_SymbolTable_Intern_ClashingClassification(t *testing.T) {
	require := require.New(t)

	st := NewSymbolTable()
	_, err := st.Intern("x", true)
	require.NoError(err)
	_, err = st.Intern("x", false)
	require.Error(err)
}

func Test_ValidName(t *testing.T) {
	testCases := []struct {
		name    string
		symName string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace", "a b", true},
		{"bracket", "a]", true},
		{"underscore", "a_b", true},
		{"reserved epsilon", EpsilonName, true},
		{"reserved dollar", DollarName, true},
		{"ordinary", "expr", false},
		{"single char", "a", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			err := ValidName(tc.symName)
			if tc.wantErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func Test_SymbolTable_GenerateUniqueName(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()
	_, err := st.Intern("S", false)
	assert.NoError(err)

	name := st.GenerateUniqueName("S")
	assert.Equal("S'", name)

	_, err = st.Intern(name, false)
	assert.NoError(err)

	name2 := st.GenerateUniqueName("S")
	assert.Equal("S''", name2)
}
