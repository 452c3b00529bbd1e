package clargs

import (
	"github.com/spf13/cobra"
)

// RunFunc is the implementation of a command, run with its bound arguments
// once their usage has been validated.
type RunFunc func(cmd *cobra.Command, reg *Registry) error

// Command returns a cobra command whose arguments are bound by the engine
// instead of cobra's own flag parsing. On execution, the command:
//
//  1. builds a registry from its arguments and the schema,
//  2. runs the first exit argument found (help, version, hooks),
//  3. validates usage, printing usage errors to the command error output,
//  4. calls run with the registry.
//
// Errors returned by execution carry an exit code: see ExitCodeOf.
func Command(schema Schema, run RunFunc, opts ...Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:                schema.Name,
		Short:              schema.Description,
		Long:               schema.Doc,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		reg, err := Build(args, schema, opts...)
		if err != nil {
			return &ExitError{Code: ExitSoftware, Err: err}
		}

		if code, exited := reg.ExitArgs(cmd.OutOrStdout(), reg.opts.hooks); exited {
			if code == ExitOK {
				return nil
			}

			return &ExitError{Code: code}
		}

		if err := reg.Validate(); err != nil {
			code := PrintUsageError(cmd.ErrOrStderr(), reg, err)

			return &ExitError{Code: code, Err: err}
		}

		if run == nil {
			return nil
		}

		return run(cmd, reg)
	}

	return cmd
}

// WithHooks registers the exit hooks run by commands, see Registry.ExitArgs.
func WithHooks(hooks Hooks) Option {
	return func(o *opts) {
		if o.hooks == nil {
			o.hooks = make(Hooks, len(hooks))
		}

		for name, hook := range hooks {
			o.hooks[name] = hook
		}
	}
}
