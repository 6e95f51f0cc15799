// Package table holds the set of strings that spell, transliterate or
// otherwise stand in for thirteen. The set is built on first use and is
// read-only afterwards.
package table

import (
	"sync"

	"github.com/emirpasic/gods/sets/hashset"
)

var (
	once    sync.Once
	entries *hashset.Set
)

func load() *hashset.Set {
	once.Do(func() {
		set := hashset.New()
		for _, s := range literals {
			set.Add(s)
		}
		entries = set
	})
	return entries
}

// Contains returns true if candidate is one of the thirteen strings.
// Entries are stored lowercase, so callers should lowercase candidate
// first.
func Contains(candidate string) bool {
	if candidate == "" {
		return false
	}
	return load().Contains(candidate)
}

// Size returns the number of distinct entries.
func Size() int {
	return load().Size()
}

// Entries returns a copy of the literal list the set is built from.
func Entries() []string {
	cp := make([]string, len(literals))
	copy(cp, literals)
	return cp
}
