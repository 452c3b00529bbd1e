package clargs

import (
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/clargs/internal/env"
	"github.com/reeflective/clargs/internal/validation"
)

const (
	usageName   = "usage"
	versionName = "version"
)

type opts struct {
	envPrefix string
	env       env.Lookuper
	logger    *slog.Logger
	builtins  bool
	defaults  map[string]string
	checks    validation.Checks
	validator *validator.Validate
	hooks     Hooks
}

func (o opts) apply(optFuncs ...Option) opts {
	for _, optFunc := range optFuncs {
		optFunc(&o)
	}

	return o
}

func defOpts() opts {
	return opts{
		env:      env.OS,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		builtins: true,
	}
}
