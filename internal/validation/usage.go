// Package validation cross-checks a bound argument list against usage rules,
// and runs the checks supplied by callers on the values bound to arguments.
package validation

import (
	"github.com/reeflective/clargs/internal/arg"
	"github.com/reeflective/clargs/internal/errors"
	"github.com/reeflective/clargs/internal/normalize"
)

// Usage validates the canonical words and the arguments bound from them.
// Checks run in order and the first failure is returned, as an *errors.UsageError:
//
//  1. no words while the schema does not allow it,
//  2. a flag matching no argument, or a positional word matching no slot,
//  3. a positional argument without value,
//  4. an option given without value,
//  5. a required-if argument without value while its trigger was given.
//
// Usage never mutates the arguments, and does not check value types.
func Usage(words []string, args []*arg.Arg, allowNoArgs bool) error {
	if len(words) == 0 && !allowNoArgs {
		return errors.NewNoArgs()
	}

	if err := checkWords(words, args); err != nil {
		return err
	}

	for _, a := range args {
		if a.IsPositional() && len(a.Values) == 0 {
			return errors.NewRequiresPositional(a)
		}
	}

	for _, a := range args {
		if a.Occurrences > 0 && len(a.Values) == 0 && a.Kind != arg.Optional {
			return errors.NewRequiresValue(a)
		}
	}

	for _, a := range args {
		if a.RequiredIf == "" {
			continue
		}

		trigger := find(args, a.RequiredIf)
		if trigger != nil && trigger.Occurrences > 0 && len(a.Values) == 0 {
			return errors.NewRequiresValueIf(trigger, a)
		}
	}

	return nil
}

// checkWords ensures every flag is known, and every positional
// word has a slot to go in.
func checkWords(words []string, args []*arg.Arg) error {
	fixed := make(map[arg.Position]bool)
	infinite, last := false, false

	for _, a := range args {
		switch {
		case a.Position.IsFixed():
			fixed[a.Position] = true
		case a.Position == arg.Infinite:
			infinite = true
		case a.Position == arg.Last:
			last = true
		}
	}

	pos := 0
	optionsEnded := false

	for _, word := range words {
		if !optionsEnded && word == normalize.DoubleDash {
			optionsEnded = true

			continue
		}

		if !optionsEnded && normalize.IsFlagLike(word) {
			if matching(args, word) == nil {
				return errors.NewInvalid(word)
			}

			continue
		}

		pos++

		if !fixed[arg.Fixed(pos)] && !infinite && !last {
			return errors.NewInvalid(word)
		}
	}

	return nil
}

func matching(args []*arg.Arg, word string) *arg.Arg {
	for _, a := range args {
		if a.Matches(word) {
			return a
		}
	}

	return nil
}

func find(args []*arg.Arg, name string) *arg.Arg {
	for _, a := range args {
		if a.Name == name {
			return a
		}
	}

	return nil
}
