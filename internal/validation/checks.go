package validation

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/clargs/internal/arg"
	"github.com/reeflective/clargs/internal/errors"
)

// Check validates the values bound to an argument. It receives a copy of
// the argument. A returned *errors.UsageError is passed through as is,
// any other error becomes a CustomArg usage error.
type Check func(a *arg.Arg) error

// Checks maps argument names to the check run on them.
type Checks map[string]Check

// Custom runs, for each argument in order, its check if any, and then
// the validator tag of the argument against each of its values.
// The validator may be nil, in which case tags are ignored.
func Custom(args []*arg.Arg, checks Checks, validate *validator.Validate) error {
	for _, a := range args {
		if check, found := checks[a.Name]; found && check != nil {
			if err := check(a.Clone()); err != nil {
				return toUsageError(a, err)
			}
		}

		if validate == nil || a.Validate == "" {
			continue
		}

		for _, value := range a.Values {
			if err := validate.Var(value, a.Validate); err != nil {
				invalid := &invalidVarError{
					argName:      a.Name,
					argValue:     value,
					validatorErr: err,
				}

				return errors.NewCustomArg(a, invalid.Error())
			}
		}
	}

	return nil
}

func toUsageError(a *arg.Arg, err error) error {
	var usage *errors.UsageError
	if stderrors.As(err, &usage) {
		return usage
	}

	return errors.NewCustomArg(a, err.Error())
}
