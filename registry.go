package clargs

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/reeflective/clargs/internal/arg"
	"github.com/reeflective/clargs/internal/binder"
	"github.com/reeflective/clargs/internal/errors"
	"github.com/reeflective/clargs/internal/normalize"
	"github.com/reeflective/clargs/internal/scan"
	"github.com/reeflective/clargs/internal/validation"
	"github.com/reeflective/clargs/internal/values"
)

// Schema declares a command and its arguments.
type Schema struct {
	Name        string
	Version     string
	Description string
	Doc         string
	AllowNoArgs bool // Accept an empty command line.
	Args        []*Arg
}

// Registry holds the arguments of a schema, bound to a command line.
type Registry struct {
	Name        string
	Version     string
	Description string
	Doc         string
	AllowNoArgs bool
	Raw         []string // Words as given.
	Tokens      []string // Canonical stream the arguments were bound from.
	Args        []*Arg   // Bound copies of the schema arguments, builtins last.

	opts opts
}

// Build checks the schema, and binds a copy of each of its arguments
// to the raw words. The schema itself is never modified.
// Build fails only on schema errors: usage errors are reported by Validate.
func Build(raw []string, schema Schema, options ...Option) (*Registry, error) {
	o := defOpts().apply(options...)

	args := make([]*Arg, 0, len(schema.Args)+2)

	for _, a := range schema.Args {
		if a == nil {
			continue
		}

		clone := a.Clone()
		clone.Occurrences = 0
		clone.Values = nil

		if clone.Env == "" && clone.EnvPrefix == "" {
			clone.EnvPrefix = o.envPrefix
		}

		if value, found := o.defaults[clone.Name]; found {
			clone.Default = value
		}

		args = append(args, clone)
	}

	if err := checkSchema(args); err != nil {
		return nil, err
	}

	if o.builtins {
		args = appendBuiltins(args)
	}

	reg := &Registry{
		Name:        schema.Name,
		Version:     schema.Version,
		Description: schema.Description,
		Doc:         schema.Doc,
		AllowNoArgs: schema.AllowNoArgs,
		Raw:         slices.Clone(raw),
		Tokens:      normalize.Normalize(raw, args),
		Args:        args,
		opts:        o,
	}

	o.logger.Debug("normalized command line", "raw", reg.Raw, "tokens", reg.Tokens)

	positions := make([]arg.Position, len(args))
	for i, a := range args {
		positions[i] = a.Position
	}

	for _, a := range args {
		binder.Bind(a, reg.Tokens, positions, o.env)

		if len(a.Values) > 0 || a.Occurrences > 0 {
			o.logger.Debug("bound argument",
				slog.String("name", a.Name),
				slog.Int("occurrences", a.Occurrences),
				slog.Any("values", a.Values))
		}
	}

	return reg, nil
}

// Validate checks the usage of the command line, then runs the registered
// checks and validator tags. The returned error, if any, is a *UsageError.
func (r *Registry) Validate() error {
	if err := validation.Usage(r.Tokens, r.Args, r.AllowNoArgs); err != nil {
		r.opts.logger.Debug("invalid usage", "error", err)

		return err
	}

	return validation.Custom(r.Args, r.opts.checks, r.opts.validator)
}

// Arg returns the argument with the given name, or nil.
func (r *Registry) Arg(name string) *Arg {
	for _, a := range r.Args {
		if a.Name == name {
			return a
		}
	}

	return nil
}

// Positionals returns the arguments bound to positional words.
func (r *Registry) Positionals() []*Arg {
	return r.filter((*Arg).IsPositional)
}

// Flags returns the named arguments taking no value.
func (r *Registry) Flags() []*Arg {
	return r.filter((*Arg).IsFlag)
}

// Options returns the named arguments taking a value.
func (r *Registry) Options() []*Arg {
	return r.filter((*Arg).IsOption)
}

// Values returns the values bound to an argument, nil if it is unknown.
func (r *Registry) Values(name string) []string {
	if a := r.Arg(name); a != nil {
		return a.Values
	}

	return nil
}

// Value returns the values bound to an argument, joined with commas.
func (r *Registry) Value(name string) string {
	return strings.Join(r.Values(name), ",")
}

// Decode converts the bound values into the fields of a tagged struct,
// which must declare the same arguments as the registry. Conversion failures
// are reported as CustomArg usage errors.
func (r *Registry) Decode(data any) error {
	fields, err := scan.Scan(data)
	if err != nil {
		return fmt.Errorf("failed to scan struct: %w", err)
	}

	return r.decode(fields)
}

func (r *Registry) decode(fields []scan.Field) error {
	for _, field := range fields {
		a := r.Arg(field.Arg.Name)
		if a == nil {
			continue
		}

		if err := values.Set(field.Value, a.Values); err != nil {
			return errors.NewCustomArg(a, err.Error())
		}
	}

	return nil
}

func (r *Registry) filter(keep func(*Arg) bool) []*Arg {
	var args []*Arg

	for _, a := range r.Args {
		if keep(a) {
			args = append(args, a)
		}
	}

	return args
}

// checkSchema ensures arguments can be told apart on the command line.
func checkSchema(args []*Arg) error {
	names := make(map[string]bool)
	forms := make(map[string]string)
	infinite, last := false, false

	for _, a := range args {
		if a.Name == "" {
			return fmt.Errorf("%w: argument without name", errors.ErrInvalidTag)
		}

		if names[a.Name] {
			return fmt.Errorf("%w: name %s", errors.ErrDuplicatedArg, a.Name)
		}

		names[a.Name] = true

		if len([]rune(a.Short)) > 1 {
			return fmt.Errorf("%w: %s has short form %q", errors.ErrShortNameTooLong, a.Name, a.Short)
		}

		for _, form := range argForms(a) {
			if owner, found := forms[form]; found {
				return fmt.Errorf("%w: %s is declared by %s and %s", errors.ErrDuplicatedArg, form, owner, a.Name)
			}

			forms[form] = a.Name
		}

		switch a.Position {
		case arg.Infinite:
			if infinite {
				return fmt.Errorf("%w: more than one infinite positional", errors.ErrInvalidPosition)
			}

			infinite = true
		case arg.Last:
			if last {
				return fmt.Errorf("%w: more than one last positional", errors.ErrInvalidPosition)
			}

			last = true
		default:
			if a.Position < arg.Last {
				return fmt.Errorf("%w: %s has position %d", errors.ErrInvalidPosition, a.Name, a.Position)
			}
		}
	}

	return nil
}

// argForms returns the dashed forms matching an argument.
func argForms(a *Arg) []string {
	var forms []string

	for _, short := range a.Shorts() {
		forms = append(forms, "-"+short)
	}

	if a.Long != "" {
		forms = append(forms, "--"+a.Long)
	}

	for _, alias := range a.Aliases {
		if len([]rune(alias)) > 1 {
			forms = append(forms, "--"+alias)
		}
	}

	return forms
}

// appendBuiltins adds the usage and version flags, each unless one of its
// name or forms is already declared.
func appendBuiltins(args []*Arg) []*Arg {
	builtins := []*Arg{
		{Name: usageName, Short: "h", Long: "help", Doc: "Prints help information"},
		{Name: versionName, Short: "V", Long: "version", Doc: "Prints version information"},
	}

	for _, builtin := range builtins {
		if !conflicts(args, builtin) {
			args = append(args, builtin)
		}
	}

	return args
}

func conflicts(args []*Arg, builtin *Arg) bool {
	forms := argForms(builtin)

	for _, a := range args {
		if a.Name == builtin.Name {
			return true
		}

		for _, form := range argForms(a) {
			if slices.Contains(forms, form) {
				return true
			}
		}
	}

	return false
}
