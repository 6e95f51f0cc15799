package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/puppetlabs/thirteen/munge"
	"github.com/puppetlabs/thirteen/thirteen"
)

// A rule turns the (newline-stripped) input into the predicate that
// decides whether it is thirteen.
type rule func(input string) (thirteen.Predicate, error)

func numericRule(newPredicate func(float64) thirteen.Predicate) rule {
	return func(input string) (thirteen.Predicate, error) {
		d, err := munge.ToDecimal(input)
		if err != nil {
			return nil, err
		}
		f, _ := d.Float64()
		return newPredicate(f), nil
	}
}

func stringRule(newPredicate func(string) thirteen.Predicate) rule {
	return func(input string) (thirteen.Predicate, error) {
		return newPredicate(input), nil
	}
}

func rules(radius float64) map[string]rule {
	return map[string]rule{
		"string": stringRule(thirteen.String),
		"number": func(input string) (thirteen.Predicate, error) {
			d, err := munge.ToDecimal(input)
			if err != nil {
				return nil, err
			}
			return thirteen.Decimal(d), nil
		},
		"roughly": thirteen.ParseRoughly,
		"within": numericRule(func(f float64) thirteen.Predicate {
			return thirteen.Within(f, radius)
		}),
		"divisible-by":  numericRule(thirteen.DivisibleBy[float64]),
		"greater-than":  numericRule(thirteen.GreaterThan[float64]),
		"less-than":     numericRule(thirteen.LessThan[float64]),
		"can-spell":     stringRule(thirteen.CanSpell),
		"anagram":       stringRule(thirteen.AnagramOf),
		"backwards":     stringRule(thirteen.Backwards),
		"atomic-number": stringRule(thirteen.AtomicNumber),
	}
}

func lookupRule(name string, radius float64) (rule, error) {
	all := rules(radius)
	if r, ok := all[name]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("%v is not a valid rule. Valid rules are %v", name, joinRuleNames())
}

func ruleNames() []string {
	var names []string
	for name := range rules(0) {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func joinRuleNames() string {
	return strings.Join(ruleNames(), ", ")
}
