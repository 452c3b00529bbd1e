// Package binder assigns the words of a canonical command-line stream
// to a single argument, falling back to its default value and then to
// the environment when the command line gives it nothing.
package binder

import (
	"strconv"
	"strings"

	"github.com/reeflective/clargs/internal/arg"
	"github.com/reeflective/clargs/internal/env"
	"github.com/reeflective/clargs/internal/normalize"
)

// Bind scans the canonical words and binds all occurrences and values
// belonging to the argument. Positions holds the position of every argument
// in the schema, so that an infinite slot leaves other slots their words.
//
// Bind must be called once per argument: binding twice accumulates
// occurrences and values.
func Bind(a *arg.Arg, words []string, positions []arg.Position, lookup env.Lookuper) {
	slots := newSlots(positions)
	pos := 1
	optionsEnded := false

	for i, word := range words {
		if !optionsEnded && word == normalize.DoubleDash {
			optionsEnded = true

			continue
		}

		final := i == len(words)-1

		switch {
		case !optionsEnded && a.Matches(word):
			bindOccurrence(a, word)

		case optionsEnded || isPositional(word):
			if a.IsPositional() && claims(a, slots, pos, final) {
				a.Occurrences++
				a.Values = append(a.Values, word)
			}

			pos++
		}
	}

	if len(a.Values) > 0 {
		return
	}

	fallback(a, lookup)
}

// bindOccurrence records one occurrence of a flag or an option.
func bindOccurrence(a *arg.Arg, word string) {
	a.Occurrences++

	if _, value, hasValue := strings.Cut(word, "="); hasValue {
		a.Values = append(a.Values, value)

		return
	}

	switch {
	case a.IsCounter():
		a.Values = []string{strconv.Itoa(a.Occurrences)}
	case a.Kind == arg.NoValue && len(a.Values) == 0:
		a.Values = append(a.Values, "true")
	}
}

// fallback binds the default value, or the first matching environment variable.
func fallback(a *arg.Arg, lookup env.Lookuper) {
	value := a.Default

	if value == "" && lookup != nil {
		value, _ = lookup.Lookup(env.VarName(a))
	}

	if value == "" {
		return
	}

	if a.IsMultiple() || a.Position == arg.Infinite {
		a.Values = strings.Split(value, ",")
	} else {
		a.Values = []string{value}
	}
}

// isPositional returns true if the word can be bound to a positional slot.
func isPositional(word string) bool {
	return !strings.HasPrefix(word, "-") || word == "-" || arg.IsNumber(word)
}

// slots summarizes the positions declared by all arguments.
type slots struct {
	fixed map[arg.Position]bool
	last  bool
}

func newSlots(positions []arg.Position) slots {
	all := slots{fixed: make(map[arg.Position]bool)}

	for _, position := range positions {
		switch {
		case position.IsFixed():
			all.fixed[position] = true
		case position == arg.Last:
			all.last = true
		}
	}

	return all
}

// claims returns true if the argument takes the positional word at pos.
func claims(a *arg.Arg, all slots, pos int, final bool) bool {
	switch {
	case a.Position.IsFixed():
		return a.Position == arg.Fixed(pos)
	case a.Position == arg.Last:
		return final
	case a.Position == arg.Infinite:
		return !all.fixed[arg.Fixed(pos)] && !(all.last && final)
	default:
		return false
	}
}
