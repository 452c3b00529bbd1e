// Package normalize rewrites raw command-line words into a canonical stream,
// where each flag or option occurrence is self-contained: either `-x`, `--name`,
// `-x=value` or `--name=value`. Any other word is a positional candidate.
package normalize

import (
	"strings"

	"github.com/reeflective/clargs/internal/arg"
)

// DoubleDash ends option parsing: every word following it is positional.
const DoubleDash = "--"

// normalizer holds the state of a single pass over the raw words.
type normalizer struct {
	args    []*arg.Arg
	shorts  map[string]bool
	out     []string
	pending string   // An option still expecting its value.
	current *arg.Arg // The argument matching the pending option.
}

// Normalize returns the canonical stream for the raw words, according
// to the argument list. The first standalone DoubleDash is kept in the
// stream as a delimiter, and words following it are left untouched.
// A command line made of a lone DoubleDash is therefore not empty.
//
// A multi-value option given as consecutive negative numbers without
// commas (`-m -4 -5`) only binds its first number: the second one is
// left as a positional word.
func Normalize(raw []string, args []*arg.Arg) []string {
	norm := &normalizer{
		args:   args,
		shorts: make(map[string]bool),
		out:    make([]string, 0, len(raw)),
	}

	for _, a := range args {
		for _, short := range a.Shorts() {
			norm.shorts[short] = true
		}
	}

	for i, word := range raw {
		if word == DoubleDash {
			norm.flush()
			norm.out = append(norm.out, raw[i:]...)

			return norm.out
		}

		for _, part := range norm.unstack(word) {
			norm.next(part)
		}
	}

	norm.flush()

	return norm.out
}

// IsFlagLike returns true if the word looks like a flag or an option,
// whether known or not. Negative numbers and a lone dash are not.
func IsFlagLike(word string) bool {
	return len(word) > 1 && strings.HasPrefix(word, "-") && !arg.IsNumber(word)
}

// isCluster returns true if the word might be stacked short flags,
// or a short option with an attached value (-iVALUE).
func isCluster(word string) bool {
	return len(word) > 2 &&
		strings.HasPrefix(word, "-") &&
		!strings.HasPrefix(word, "--") &&
		!strings.ContainsAny(word, "=,") &&
		!arg.IsNumber(word)
}

// unstack splits a short flag cluster into one word per known short flag.
// The first unknown character and everything after it form a single value
// word, even when no character is known (-xyz gives xyz).
func (n *normalizer) unstack(word string) []string {
	if !isCluster(word) {
		return []string{word}
	}

	var words []string

	chars := []rune(word[1:])

	for i, char := range chars {
		if n.shorts[string(char)] {
			words = append(words, "-"+string(char))

			continue
		}

		words = append(words, string(chars[i:]))

		break
	}

	return words
}

// next processes a single word, after short flags have been unstacked.
func (n *normalizer) next(word string) {
	found := n.find(word)

	if n.pending == "" && found == nil {
		n.out = append(n.out, word)

		return
	}

	if IsFlagLike(word) {
		n.flush()

		// Unknown flags, flags, and options with an inline value are complete.
		if found == nil || !found.TakesValue() || strings.Contains(word, "=") {
			n.out = append(n.out, split(word, found)...)

			return
		}

		n.pending = word
		n.current = found

		return
	}

	n.out = append(n.out, split(n.pending+"="+word, n.current)...)
	n.pending = ""
	n.current = nil
}

// flush emits the pending option alone, without value.
func (n *normalizer) flush() {
	if n.pending == "" {
		return
	}

	n.out = append(n.out, n.pending)
	n.pending = ""
	n.current = nil
}

func (n *normalizer) find(word string) *arg.Arg {
	for _, a := range n.args {
		if a.Matches(word) {
			return a
		}
	}

	return nil
}

// split turns `--name=a,b` into `--name=a --name=b` when
// the argument accepts multiple values.
func split(word string, found *arg.Arg) []string {
	name, value, hasValue := strings.Cut(word, "=")
	if found == nil || !found.IsMultiple() || !hasValue || !strings.Contains(value, ",") {
		return []string{word}
	}

	parts := strings.Split(value, ",")
	words := make([]string, len(parts))

	for i, part := range parts {
		words[i] = name + "=" + part
	}

	return words
}
