package thirteen

import (
	"github.com/emirpasic/gods/sets/hashset"
)

// The distinct letters of "thirteen"
var thirteenLetters = []interface{}{byte('t'), byte('h'), byte('i'), byte('r'), byte('e'), byte('n')}

func lowerBytes(s string) *hashset.Set {
	set := hashset.New()
	for i := 0; i < len(s); i++ {
		b := s[i]
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		set.Add(b)
	}
	return set
}

// CanSpell is thirteen if the letters of s, ignoring case, include every
// letter needed to spell "thirteen".
func CanSpell(s string) Predicate {
	return &canSpell{letters: lowerBytes(s)}
}

type canSpell struct {
	letters *hashset.Set
}

func (p *canSpell) Thirteen() bool {
	return p.letters.Contains(thirteenLetters...)
}

var _ = Predicate(&canSpell{})

// AnagramOf is thirteen if s, ignoring case, uses exactly the letters of
// "thirteen". Only the set of letters matters, not how often each
// appears.
func AnagramOf(s string) Predicate {
	return &anagramOf{letters: lowerBytes(s)}
}

type anagramOf struct {
	letters *hashset.Set
}

func (p *anagramOf) Thirteen() bool {
	return p.letters.Size() == len(thirteenLetters) && p.letters.Contains(thirteenLetters...)
}

var _ = Predicate(&anagramOf{})
