// Package arg holds the argument descriptor: one declared flag, option or
// positional argument, along with the state accumulated while binding it.
package arg

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind determines how an argument consumes values.
type Kind int

const (
	// NoValue arguments are flags: their presence binds "true".
	NoValue Kind = iota
	// Single arguments take exactly one value.
	Single
	// Multi arguments can be repeated and take comma-separated values.
	Multi
	// Optional arguments may be given with or without a value.
	Optional
)

func (k Kind) String() string {
	switch k {
	case NoValue:
		return "none"
	case Single:
		return "single"
	case Multi:
		return "multi"
	case Optional:
		return "optional"
	default:
		return "unknown"
	}
}

// ParseKind decodes the name of a kind, as returned by Kind.String.
func ParseKind(name string) (Kind, error) {
	for _, kind := range []Kind{NoValue, Single, Multi, Optional} {
		if kind.String() == name {
			return kind, nil
		}
	}

	return NoValue, fmt.Errorf("unknown kind %q", name)
}

// Position is the positional slot of an argument.
// Zero means the argument is a flag or an option.
type Position int

const (
	// None marks flags and options.
	None Position = 0
	// Infinite absorbs every positional word not claimed by another slot.
	Infinite Position = -1
	// Last only binds the final word of the command line.
	Last Position = -2
)

// Fixed returns the position of the nth positional word, starting at 1.
func Fixed(n int) Position { return Position(n) }

// IsFixed returns true if the position designates a single, numbered word.
func (p Position) IsFixed() bool { return p > 0 }

func (p Position) String() string {
	switch {
	case p == None:
		return ""
	case p == Infinite:
		return "inf"
	case p == Last:
		return "last"
	default:
		return strconv.Itoa(int(p))
	}
}

// ParsePosition decodes a position: the empty string for None, "inf" or "0"
// for Infinite, "last" or "-1" for Last, or a positive number.
func ParsePosition(str string) (Position, error) {
	switch str {
	case "":
		return None, nil
	case "inf", "0":
		return Infinite, nil
	case "last", "-1":
		return Last, nil
	}

	n, err := strconv.Atoi(str)
	if err != nil || n < 1 {
		return None, fmt.Errorf("invalid position %q", str)
	}

	return Fixed(n), nil
}

// Arg describes a single command-line argument.
type Arg struct {
	Name      string   // Unique identifier, used for env lookups and required-if links.
	Short     string   // Optional single-character form, without dash.
	Long      string   // Optional word form, without dashes.
	Aliases   []string // Single-character aliases act as shorts, longer ones as longs.
	Kind      Kind
	Counter   bool // Counts occurrences (-vvv); only effective with a short and no long form.
	Position  Position
	Default   string // Fallback value, empty meaning none.
	Env       string // Explicit environment variable name.
	EnvPrefix string // Prefix prepended to Name when Env is not set.

	// RequiredIf names another argument: once the latter occurs,
	// this argument must have a value.
	RequiredIf string

	Doc       string // Help description.
	ValueName string // Placeholder shown in usage, defaults to Name.
	Validate  string // go-playground/validator tag applied to each value.

	Occurrences int      // Number of times the argument was matched.
	Values      []string // Bound values, in command-line order.
}

// IsNumber returns true if the token parses as a signed integer.
// Such tokens are never considered as flags, even if they start with a dash.
func IsNumber(token string) bool {
	_, err := strconv.ParseInt(token, 10, 64)

	return err == nil
}

// Matches returns true if the token is one of the argument's short,
// long or alias forms, optionally followed by an =value.
func (a *Arg) Matches(token string) bool {
	if !strings.HasPrefix(token, "-") || IsNumber(token) {
		return false
	}

	name, _, _ := strings.Cut(token, "=")

	if long, isLong := strings.CutPrefix(name, "--"); isLong {
		if long == "" {
			return false
		}

		return long == a.Long || contains(a.longAliases(), long)
	}

	short := name[1:]
	if utf8.RuneCountInString(short) != 1 {
		return false
	}

	return short == a.Short || contains(a.shortAliases(), short)
}

// Shorts returns the short form and all single-character aliases.
func (a *Arg) Shorts() []string {
	shorts := a.shortAliases()
	if a.Short != "" {
		shorts = append([]string{a.Short}, shorts...)
	}

	return shorts
}

// IsPositional returns true if the argument binds positional words.
func (a *Arg) IsPositional() bool { return a.Position != None }

// IsCounter returns true for short-only flags counting their occurrences.
func (a *Arg) IsCounter() bool {
	return a.Counter && a.Long == "" && a.Short != ""
}

// IsFlag returns true if the argument is invoked by name and never takes a value.
func (a *Arg) IsFlag() bool {
	return a.hasNames() && !a.TakesValue()
}

// IsOption returns true if the argument is invoked by name and takes a value.
func (a *Arg) IsOption() bool {
	return a.hasNames() && a.TakesValue()
}

// TakesValue returns true if a word following the argument should be its value.
func (a *Arg) TakesValue() bool {
	return a.Kind != NoValue && !a.IsCounter()
}

// IsMultiple returns true if the argument accumulates several values.
func (a *Arg) IsMultiple() bool { return a.Kind == Multi }

// IsValueRequired returns true if the argument needs a value
// and has no default to fall back on.
func (a *Arg) IsValueRequired() bool {
	return a.Default == "" && a.TakesValue() && a.Kind != Optional
}

// Clone returns a deep copy of the argument, binding state included.
func (a *Arg) Clone() *Arg {
	clone := *a
	clone.Aliases = append([]string(nil), a.Aliases...)
	clone.Values = append([]string(nil), a.Values...)

	return &clone
}

// String renders the argument as it appears in usage listings,
// e.g. "-s, --source <SOURCE>...".
func (a *Arg) String() string {
	var names []string

	for _, short := range a.Shorts() {
		names = append(names, "-"+short)
	}

	if a.Long != "" {
		names = append(names, "--"+a.Long)
	}

	for _, alias := range a.longAliases() {
		names = append(names, "--"+alias)
	}

	var value string

	if a.TakesValue() || a.IsPositional() {
		vname := a.ValueName
		if vname == "" {
			vname = a.Name
		}

		value = "<" + strings.ToUpper(vname) + ">"
		if a.IsMultiple() || a.Position == Infinite {
			value += "..."
		}
	}

	switch {
	case len(names) == 0:
		return value
	case value == "":
		return strings.Join(names, ", ")
	default:
		return strings.Join(names, ", ") + " " + value
	}
}

func (a *Arg) hasNames() bool {
	return a.Short != "" || a.Long != ""
}

func (a *Arg) shortAliases() (shorts []string) {
	for _, alias := range a.Aliases {
		if utf8.RuneCountInString(alias) == 1 {
			shorts = append(shorts, alias)
		}
	}

	return shorts
}

func (a *Arg) longAliases() (longs []string) {
	for _, alias := range a.Aliases {
		if utf8.RuneCountInString(alias) > 1 {
			longs = append(longs, alias)
		}
	}

	return longs
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}
