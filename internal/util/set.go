// Package util holds small hand-rolled generic containers shared across
// predikt's packages: a map-backed string set, a slice-backed stack, and a
// nested-map sparse matrix, rather than a third-party collections library,
// since none of the grammar engine's data benefits from anything fancier.
package util

import (
	"sort"
	"strings"
)

// StringSet is a set of strings backed by a map. internal/render uses it to
// sort and de-duplicate symbol names when rendering FIRST and FOLLOW sets;
// internal/grammar itself keeps those sets as map[int]bool over symbol IDs.
type StringSet map[string]bool

// NewStringSet returns a StringSet optionally seeded from the given slices.
func NewStringSet(of ...[]string) StringSet {
	s := StringSet{}
	for _, sl := range of {
		for _, v := range sl {
			s.Add(v)
		}
	}
	return s
}

// Add adds value to the set. No effect if already present.
func (s StringSet) Add(value string) {
	s[value] = true
}

// AddAll adds every element of o to s.
func (s StringSet) AddAll(o StringSet) {
	for k := range o {
		s.Add(k)
	}
}

// Has returns whether value is in the set.
func (s StringSet) Has(value string) bool {
	return s[value]
}

// Remove deletes value from the set. No effect if not present.
func (s StringSet) Remove(value string) {
	delete(s, value)
}

// Len returns the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}

// Empty returns whether the set has no elements.
func (s StringSet) Empty() bool {
	return len(s) == 0
}

// Copy returns a shallow duplicate of s.
func (s StringSet) Copy() StringSet {
	s2 := make(StringSet, len(s))
	for k := range s {
		s2[k] = true
	}
	return s2
}

// DisjointWith returns whether s and o share no elements.
func (s StringSet) DisjointWith(o StringSet) bool {
	for k := range s {
		if o.Has(k) {
			return false
		}
	}
	return true
}

// Ordered returns the set's elements sorted alphabetically, for deterministic
// iteration in rendering and error messages.
func (s StringSet) Ordered() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String shows the set's contents in alphabetical order.
func (s StringSet) String() string {
	return "{" + strings.Join(s.Ordered(), ", ") + "}"
}
