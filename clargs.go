// Package clargs is a command-line argument engine. Given an ordered list of
// argument descriptors and the raw words of a command line, it normalizes
// the words into a canonical stream, binds values to every descriptor, and
// validates the usage of the command.
//
// The engine handles short flag stacking (-abc), attached values (-iVALUE),
// joined values (--name=value), comma-delimited values for multi-value
// options, negative numbers, fixed, infinite and last positional slots,
// counting flags (-vvv), and fallback on default values, then on environment
// variables.
//
// The typical workflow is either to declare a Schema and call Build, or to
// declare a tagged struct and call FromArgs, which also decodes the bound
// values into the struct fields:
//
//	type Config struct {
//		Verbose types.Counter `short:"v"`
//		Output  string        `short:"o" default:"out.txt" desc:"output file"`
//		Files   []string      `pos:"inf" desc:"input files"`
//	}
//
//	cfg := &Config{}
//	reg, err := clargs.FromArgs(cfg, os.Args[1:])
//
// For the counting flag type, see the subpackage "github.com/reeflective/clargs/types".
package clargs

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/clargs/internal/arg"
	"github.com/reeflective/clargs/internal/defaults"
	"github.com/reeflective/clargs/internal/env"
	"github.com/reeflective/clargs/internal/errors"
	"github.com/reeflective/clargs/internal/scan"
	"github.com/reeflective/clargs/internal/validation"
)

// === Primary Entry Points ===

// FromArgs scans a struct into a schema, builds a registry from the raw
// words, validates its usage and decodes the bound values into the struct.
// The provided data must be a pointer to a struct: see the package
// documentation for the supported field tags.
//
// The registry is returned along with usage errors, so that callers can
// render them with PrintUsageError.
func FromArgs(data any, raw []string, opts ...Option) (*Registry, error) {
	fields, err := scan.Scan(data)
	if err != nil {
		return nil, fmt.Errorf("failed to scan struct: %w", err)
	}

	schema := Schema{Args: make([]*Arg, len(fields))}
	for i, field := range fields {
		schema.Args[i] = field.Arg
	}

	reg, err := Build(raw, schema, opts...)
	if err != nil {
		return nil, err
	}

	if err := reg.Validate(); err != nil {
		return reg, err
	}

	if err := reg.decode(fields); err != nil {
		return reg, err
	}

	return reg, nil
}

// Scan returns the argument descriptors of a tagged struct, without binding
// anything. It is useful to inspect or complete a schema before Build.
func Scan(data any) ([]*Arg, error) {
	fields, err := scan.Scan(data)
	if err != nil {
		return nil, fmt.Errorf("failed to scan struct: %w", err)
	}

	args := make([]*Arg, len(fields))
	for i, field := range fields {
		args[i] = field.Arg
	}

	return args, nil
}

// === Configuration (Functional Options) ===

// Option is a functional option for configuring the engine.
type Option func(o *opts)

// WithEnvPrefix sets a prefix for the environment variables of all arguments
// not declaring an explicit variable or prefix of their own.
func WithEnvPrefix(prefix string) Option {
	return func(o *opts) { o.envPrefix = prefix }
}

// WithEnv sets the environment in which argument variables are looked up.
// Defaults to the process environment; a nil lookuper disables env fallback.
func WithEnv(lookup Lookuper) Option {
	return func(o *opts) { o.env = lookup }
}

// WithLogger sets the logger receiving debug records of the canonical
// stream and of argument bindings. By default, records are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *opts) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithoutBuiltins disables the -h/--help and -V/--version arguments.
func WithoutBuiltins() Option {
	return func(o *opts) { o.builtins = false }
}

// WithDefaults overrides the default values of arguments, by name.
// See LoadTOML and LoadYAML for reading them from a file.
func WithDefaults(values map[string]string) Option {
	return func(o *opts) {
		if o.defaults == nil {
			o.defaults = make(map[string]string, len(values))
		}

		for name, value := range values {
			o.defaults[name] = value
		}
	}
}

// === Validation ===

// Check validates the values bound to an argument, which it receives a copy of.
// A returned *UsageError is reported as is, any other error as a CustomArg one.
type Check = validation.Check

// Checks maps argument names to the check run on them after usage validation.
type Checks = validation.Checks

// WithChecks registers checks run on arguments after usage validation.
func WithChecks(checks Checks) Option {
	return func(o *opts) {
		if o.checks == nil {
			o.checks = make(Checks, len(checks))
		}

		for name, check := range checks {
			o.checks[name] = check
		}
	}
}

// WithValidation enables the validation of argument values against their
// validate tags. This makes use of go-playground/validator internally, refer
// to their docs for an exhaustive list of valid tag validations.
func WithValidation() Option {
	return func(o *opts) { o.validator = validator.New() }
}

// WithValidator is like WithValidation, with a validator customized by the caller.
func WithValidator(v *validator.Validate) Option {
	return func(o *opts) { o.validator = v }
}

// === Defaults Files ===

// LoadTOML reads argument default values from a TOML file, for WithDefaults.
// Nested tables are flattened with underscores and arrays joined with commas.
func LoadTOML(path string) (map[string]string, error) {
	return defaults.LoadTOML(path)
}

// LoadYAML reads argument default values from a YAML file, for WithDefaults.
// Nested maps are flattened with underscores and sequences joined with commas.
func LoadYAML(path string) (map[string]string, error) {
	return defaults.LoadYAML(path)
}

// === Core Types ===

// Arg describes a single command-line argument.
type Arg = arg.Arg

// Kind determines how an argument consumes values.
type Kind = arg.Kind

// Position is the positional slot of an argument.
type Position = arg.Position

// Lookuper finds the value of an environment variable.
type Lookuper = env.Lookuper

// EnvMap is a Lookuper over a fixed set of variables.
type EnvMap = env.Map

// UsageError is the error returned by usage validation.
type UsageError = errors.UsageError

// ErrorKind identifies a usage error variant.
type ErrorKind = errors.Kind

// Argument kinds and positions.
const (
	NoValue  = arg.NoValue
	Single   = arg.Single
	Multi    = arg.Multi
	Optional = arg.Optional

	None     = arg.None
	Infinite = arg.Infinite
	Last     = arg.Last
)

// Fixed returns the position of the nth positional word, starting at 1.
func Fixed(n int) Position { return arg.Fixed(n) }

// Usage error kinds, in the order validation checks them.
const (
	NoArgs             = errors.NoArgs
	Invalid            = errors.Invalid
	RequiresPositional = errors.RequiresPositional
	RequiresValue      = errors.RequiresValue
	RequiresValueIf    = errors.RequiresValueIf
	Custom             = errors.Custom
	CustomArg          = errors.CustomArg
)

// NewCustom returns a Custom usage error, for use in checks.
func NewCustom(text string) *UsageError { return errors.NewCustom(text) }

// === Public Errors ===

var (
	// ErrNoArgs indicates that no word was given and the schema forbids it.
	ErrNoArgs = errors.ErrNoArgs

	// ErrInvalid indicates a word matching no argument and no positional slot.
	ErrInvalid = errors.ErrInvalid

	// ErrRequiresPositional indicates a positional argument without value.
	ErrRequiresPositional = errors.ErrRequiresPositional

	// ErrRequiresValue indicates an option given without value.
	ErrRequiresValue = errors.ErrRequiresValue

	// ErrRequiresValueIf indicates a conditionally required option left empty.
	ErrRequiresValueIf = errors.ErrRequiresValueIf

	// ErrCustom wraps errors produced by checks and value decoding.
	ErrCustom = errors.ErrCustom

	// ErrDuplicatedArg indicates that a name, short or long form is declared more than once.
	ErrDuplicatedArg = errors.ErrDuplicatedArg

	// ErrInvalidPosition indicates a bad positional declaration.
	ErrInvalidPosition = errors.ErrInvalidPosition

	// ErrShortNameTooLong indicates a short form longer than one character.
	ErrShortNameTooLong = errors.ErrShortNameTooLong

	// ErrNotPointerToStruct indicates that a provided data container is not
	// a pointer to a struct.
	ErrNotPointerToStruct = errors.ErrNotPointerToStruct

	// ErrInvalidTag indicates an invalid tag or invalid use of an existing tag.
	ErrInvalidTag = errors.ErrInvalidTag

	// ErrUnsupportedType indicates a struct field whose type cannot hold argument values.
	ErrUnsupportedType = errors.ErrUnsupportedType
)
