package designator

import (
	"sort"

	"bom-matcher/core/tokenizer"
)

// Options controls how a table column becomes a TokenSet.
type Options struct {
	Mode    Mode
	Explode ExplodeMode
}

// Entry is one canonical designator and the rows that produced it.
type Entry struct {
	// Canonical is the comparison key.
	Canonical string `json:"canonical"`
	// Display is the first display form seen for this key.
	Display string `json:"display"`
	// Rows holds the source row indexes, one per occurrence.
	Rows []int `json:"rows"`
}

// Occurrences returns how many times the key appeared on its side.
func (e *Entry) Occurrences() int {
	return len(e.Rows)
}

// TokenSet maps canonical designators to their entries.
type TokenSet struct {
	entries map[string]*Entry

	// Fragments is the total number of exploded fragments.
	Fragments int
	// Dropped counts fragments whose canonical form was empty.
	Dropped int
}

// NewTokenSet returns an empty set.
func NewTokenSet() *TokenSet {
	return &TokenSet{entries: make(map[string]*Entry)}
}

// Add records one display-form token produced by row.
func (s *TokenSet) Add(display string, row int, mode Mode) {
	s.Fragments++
	key := Canonical(display, mode)
	if key == "" {
		s.Dropped++
		return
	}
	e, ok := s.entries[key]
	if !ok {
		e = &Entry{Canonical: key, Display: display}
		s.entries[key] = e
	}
	e.Rows = append(e.Rows, row)
}

// Get returns the entry for a canonical key.
func (s *TokenSet) Get(key string) (*Entry, bool) {
	e, ok := s.entries[key]
	return e, ok
}

// Has reports membership of a canonical key.
func (s *TokenSet) Has(key string) bool {
	_, ok := s.entries[key]
	return ok
}

// Len returns the number of distinct canonical keys.
func (s *TokenSet) Len() int {
	return len(s.entries)
}

// Keys returns the canonical keys in ascending order.
func (s *TokenSet) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Short returns the keys of one character or less, ascending. On a BOM these
// are usually the debris of a reference split on its embedded space.
func (s *TokenSet) Short() []string {
	var short []string
	for _, k := range s.Keys() {
		if len([]rune(k)) <= 1 {
			short = append(short, k)
		}
	}
	return short
}

// Duplicates returns the keys that occur more than once, ascending.
func (s *TokenSet) Duplicates() []string {
	var dups []string
	for _, k := range s.Keys() {
		if s.entries[k].Occurrences() > 1 {
			dups = append(dups, k)
		}
	}
	return dups
}

// Build explodes every row of column and collects the tokens. The column must
// exist in the table.
func Build(table *tokenizer.RawTable, column string, opts Options) (*TokenSet, error) {
	values, err := table.Column(column)
	if err != nil {
		return nil, err
	}

	set := NewTokenSet()
	for i, cell := range values {
		for _, fragment := range Explode(cell, opts.Explode) {
			set.Add(fragment, i, opts.Mode)
		}
	}
	return set, nil
}

// FromTokens builds a set from already-separated tokens, one row per token.
func FromTokens(tokens []string, mode Mode) *TokenSet {
	set := NewTokenSet()
	for i, t := range tokens {
		set.Add(t, i, mode)
	}
	return set
}
