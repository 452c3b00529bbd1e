package validation

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/clargs/internal/arg"
	"github.com/reeflective/clargs/internal/errors"
)

func TestCustom_Checks(t *testing.T) {
	t.Parallel()

	port := &arg.Arg{Name: "port", Long: "port", Kind: arg.Single, Values: []string{"80"}}
	host := &arg.Arg{Name: "host", Long: "host", Kind: arg.Single, Values: []string{"localhost"}}
	args := []*arg.Arg{host, port}

	tests := []struct {
		name   string
		checks Checks
		kind   errors.Kind
		text   string
	}{
		{
			name: "plain error",
			checks: Checks{
				"port": func(a *arg.Arg) error {
					return fmt.Errorf("privileged port %s", a.Values[0])
				},
			},
			kind: errors.CustomArg,
			text: "privileged port 80",
		},
		{
			name: "usage error",
			checks: Checks{
				"host": func(*arg.Arg) error {
					return errors.NewCustom("host and port conflict")
				},
			},
			kind: errors.Custom,
			text: "host and port conflict",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := Custom(args, test.checks, nil)

			var usage *errors.UsageError
			require.True(t, stderrors.As(err, &usage))
			require.Equal(t, test.kind, usage.Kind)
			require.Equal(t, test.text, usage.Text)
			require.ErrorIs(t, err, errors.ErrCustom)
		})
	}
}

func TestCustom_ChecksReceiveCopies(t *testing.T) {
	t.Parallel()

	tags := &arg.Arg{Name: "tags", Kind: arg.Multi, Values: []string{"a"}}

	err := Custom([]*arg.Arg{tags}, Checks{
		"tags": func(a *arg.Arg) error {
			a.Values[0] = "changed"

			return nil
		},
	}, nil)

	require.NoError(t, err)
	require.Equal(t, []string{"a"}, tags.Values)
}

func TestCustom_ValidatorTags(t *testing.T) {
	t.Parallel()

	validate := validator.New()

	tests := []struct {
		name   string
		arg    *arg.Arg
		errMsg string
	}{
		{
			name: "valid values",
			arg:  &arg.Arg{Name: "addr", Validate: "ip", Values: []string{"127.0.0.1", "::1"}},
		},
		{
			name:   "invalid value",
			arg:    &arg.Arg{Name: "addr", Validate: "ip", Values: []string{"127.0.0.1", "nowhere"}},
			errMsg: "addr: `nowhere` is not a valid ip",
		},
		{
			name:   "invalid range",
			arg:    &arg.Arg{Name: "level", Validate: "oneof=debug info", Values: []string{"trace"}},
			errMsg: "level: `trace` is not a valid oneof",
		},
		{
			name: "no tag",
			arg:  &arg.Arg{Name: "any", Values: []string{"nowhere"}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := Custom([]*arg.Arg{test.arg}, nil, validate)
			if test.errMsg == "" {
				require.NoError(t, err)

				return
			}

			var usage *errors.UsageError
			require.True(t, stderrors.As(err, &usage))
			assert.Equal(t, errors.CustomArg, usage.Kind)
			assert.Equal(t, test.errMsg, usage.Error())
		})
	}
}

func TestCustom_NoValidator(t *testing.T) {
	t.Parallel()

	a := &arg.Arg{Name: "addr", Validate: "ip", Values: []string{"nowhere"}}
	require.NoError(t, Custom([]*arg.Arg{a}, nil, nil))
}
