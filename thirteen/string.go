package thirteen

import (
	"strings"
	"unicode/utf8"

	"github.com/puppetlabs/thirteen/thirteen/internal/table"
)

// String is thirteen if s is:
//   - "13" or "B"
//   - 13 characters drawn from I, l and 1
//   - 13 repetitions of a single character
//   - one of the thirteen strings once lowercased (translations,
//     transliterations, leetspeak and so on)
func String(s string) Predicate {
	return &stringP{s: s}
}

type stringP struct {
	s string
}

func (p *stringP) Thirteen() bool {
	switch p.s {
	case "":
		return false
	case "13", "B":
		return true
	}
	return isPipes(p.s) || isRepeated(p.s) || table.Contains(strings.ToLower(p.s))
}

var _ = Predicate(&stringP{})

func isPipes(s string) bool {
	if len(s) != 13 {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'I', 'l', '1':
		default:
			return false
		}
	}
	return true
}

// isRepeated returns true if s is 13 copies of the same rune.
func isRepeated(s string) bool {
	if utf8.RuneCountInString(s) != 13 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	for _, r := range s {
		if r != first {
			return false
		}
	}
	return true
}

// Rune is thirteen if r is a glyph that reads as a B
func Rune(r rune) Predicate {
	return &runeP{r: r}
}

type runeP struct {
	r rune
}

func (p *runeP) Thirteen() bool {
	switch p.r {
	case 'B', 'ß', 'ẞ', 'Β', 'β', '阝':
		return true
	default:
		return false
	}
}

var _ = Predicate(&runeP{})
