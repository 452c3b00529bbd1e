package errors

import (
	"errors"
	"fmt"

	"github.com/reeflective/clargs/internal/arg"
)

// Usage errors: each UsageError unwraps to exactly one of these.
var (
	// ErrNoArgs indicates that no token was given and the schema forbids it.
	ErrNoArgs = errors.New("no arguments")

	// ErrInvalid indicates a token matching no argument and no positional slot.
	ErrInvalid = errors.New("invalid argument")

	// ErrRequiresPositional indicates a declared positional that never received a value.
	ErrRequiresPositional = errors.New("missing positional argument")

	// ErrRequiresValue indicates an option invoked without a value.
	ErrRequiresValue = errors.New("missing value")

	// ErrRequiresValueIf indicates a conditionally required option left empty
	// once its trigger option was given.
	ErrRequiresValueIf = errors.New("missing required value")

	// ErrCustom wraps errors produced by caller-supplied checks.
	ErrCustom = errors.New("invalid usage")
)

// Schema errors, returned when building a registry from an inconsistent argument list.
var (
	// ErrDuplicatedArg indicates that a name, short or long form is declared more than once.
	ErrDuplicatedArg = errors.New("duplicated argument")

	// ErrInvalidPosition indicates a bad positional declaration.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrShortNameTooLong indicates a short form longer than one character.
	ErrShortNameTooLong = errors.New("short name too long")

	// ErrNotPointerToStruct indicates that a provided data container is not
	// a pointer to a struct.
	ErrNotPointerToStruct = errors.New("object must be a pointer to struct")

	// ErrInvalidTag indicates an invalid tag or invalid use of an existing tag.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnsupportedType indicates a struct field whose type cannot hold argument values.
	ErrUnsupportedType = errors.New("unsupported field type")
)

// Kind identifies a usage error variant.
type Kind uint

// ORDER IN WHICH THE KIND CONSTANTS APPEAR MATTERS.
const (
	NoArgs Kind = iota
	Invalid
	RequiresPositional
	RequiresValue
	RequiresValueIf
	Custom
	CustomArg
)

func (k Kind) String() string {
	kinds := [...]string{
		"no args",             // NoArgs
		"invalid",             // Invalid
		"requires positional", // RequiresPositional
		"requires value",      // RequiresValue
		"requires value if",   // RequiresValueIf
		"custom",              // Custom
		"custom arg",          // CustomArg
	}
	if int(k) >= len(kinds) {
		return "unrecognized error kind"
	}

	return kinds[k]
}

// UsageError is the single error value produced by usage validation.
// It carries the offending token or a clone of the offending argument,
// so that renderers never need to re-derive the context.
type UsageError struct {
	Kind    Kind
	Token   string   // Invalid
	Arg     *arg.Arg // RequiresPositional, RequiresValue, RequiresValueIf (dependent), CustomArg
	Trigger *arg.Arg // RequiresValueIf
	Text    string   // Custom, CustomArg
}

// Error returns a short, lowercase message for the error.
func (e *UsageError) Error() string {
	switch e.Kind {
	case NoArgs:
		return ErrNoArgs.Error()
	case Invalid:
		return fmt.Sprintf("%s: %s", ErrInvalid, e.Token)
	case RequiresPositional:
		return fmt.Sprintf("%s: %s", ErrRequiresPositional, e.Arg.Name)
	case RequiresValue:
		return fmt.Sprintf("%s for %s", ErrRequiresValue, e.Arg.Name)
	case RequiresValueIf:
		return fmt.Sprintf("%s: %s is required when %s is given", ErrRequiresValueIf, e.Arg.Name, e.Trigger.Name)
	case CustomArg:
		return fmt.Sprintf("%s: %s", e.Arg.Name, e.Text)
	default:
		return e.Text
	}
}

// Unwrap returns the sentinel matching the error kind.
func (e *UsageError) Unwrap() error {
	switch e.Kind {
	case NoArgs:
		return ErrNoArgs
	case Invalid:
		return ErrInvalid
	case RequiresPositional:
		return ErrRequiresPositional
	case RequiresValue:
		return ErrRequiresValue
	case RequiresValueIf:
		return ErrRequiresValueIf
	default:
		return ErrCustom
	}
}

// NewNoArgs returns a NoArgs usage error.
func NewNoArgs() *UsageError {
	return &UsageError{Kind: NoArgs}
}

// NewInvalid returns an Invalid usage error for token.
func NewInvalid(token string) *UsageError {
	return &UsageError{Kind: Invalid, Token: token}
}

// NewRequiresPositional returns a RequiresPositional error holding a clone of a.
func NewRequiresPositional(a *arg.Arg) *UsageError {
	return &UsageError{Kind: RequiresPositional, Arg: a.Clone()}
}

// NewRequiresValue returns a RequiresValue error holding a clone of a.
func NewRequiresValue(a *arg.Arg) *UsageError {
	return &UsageError{Kind: RequiresValue, Arg: a.Clone()}
}

// NewRequiresValueIf returns a RequiresValueIf error for the trigger
// argument and the dependent one that was left without value.
func NewRequiresValueIf(trigger, dependent *arg.Arg) *UsageError {
	return &UsageError{Kind: RequiresValueIf, Trigger: trigger.Clone(), Arg: dependent.Clone()}
}

// NewCustom returns a Custom error with a caller-supplied message.
func NewCustom(text string) *UsageError {
	return &UsageError{Kind: Custom, Text: text}
}

// NewCustomArg returns a CustomArg error for an argument with a caller-supplied message.
func NewCustomArg(a *arg.Arg, text string) *UsageError {
	return &UsageError{Kind: CustomArg, Arg: a.Clone(), Text: text}
}
