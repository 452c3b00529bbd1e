package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/clargs/internal/arg"
	"github.com/reeflective/clargs/internal/errors"
	"github.com/reeflective/clargs/types"
)

type Common struct {
	Debug bool `desc:"enable debug output"`
}

type copyConfig struct {
	Common

	Verbose   types.Counter `short:"v"`
	Force     bool          `short:""`
	Output    string        `short:"o" default:"out.txt" value-name:"file" env:"COPY_OUTPUT"`
	Tags      []string      `alias:"t,tag"`
	Color     *string       `nolong:"" short:"c"`
	Level     string        `validate:"oneof=debug info" env-prefix:"COPY_"`
	Password  string        `required-if:"user"`
	User      string        `name:"user"`
	Source    string        `pos:"1" desc:"file to copy"`
	Files     []string      `pos:"inf"`
	Target    string        `pos:"last" long:"target"`
	Ignored   string        `name:"-"`
	Handler   func()
	HTTPProxy string

	unexported string
}

func TestScan(t *testing.T) {
	t.Parallel()

	cfg := &copyConfig{}

	fields, err := Scan(cfg)
	require.NoError(t, err)

	want := []*arg.Arg{
		{Name: "debug", Long: "debug", Doc: "enable debug output"},
		{Name: "verbose", Short: "v", Counter: true},
		{Name: "force", Short: "f", Long: "force"},
		{
			Name: "output", Short: "o", Long: "output", Kind: arg.Single,
			Default: "out.txt", ValueName: "file", Env: "COPY_OUTPUT",
		},
		{Name: "tags", Long: "tags", Aliases: []string{"t", "tag"}, Kind: arg.Multi},
		{Name: "color", Short: "c", Kind: arg.Optional},
		{Name: "level", Long: "level", Kind: arg.Single, Validate: "oneof=debug info", EnvPrefix: "COPY_"},
		{Name: "password", Long: "password", Kind: arg.Single, RequiredIf: "user"},
		{Name: "user", Long: "user", Kind: arg.Single},
		{Name: "source", Kind: arg.Single, Position: arg.Fixed(1), Doc: "file to copy"},
		{Name: "files", Kind: arg.Multi, Position: arg.Infinite},
		{Name: "target", Long: "target", Kind: arg.Single, Position: arg.Last},
		{Name: "http_proxy", Long: "http-proxy", Kind: arg.Single},
	}

	got := make([]*arg.Arg, len(fields))
	for i, field := range fields {
		got[i] = field.Arg
	}

	require.Equal(t, want, got)

	fields[3].Value.SetString("set")
	assert.Equal(t, "set", cfg.Output)
}

func TestScan_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data any
		err  error
	}{
		{
			name: "not a pointer",
			data: copyConfig{},
			err:  errors.ErrNotPointerToStruct,
		},
		{
			name: "not a struct",
			data: new(string),
			err:  errors.ErrNotPointerToStruct,
		},
		{
			name: "tagged unexported field",
			data: &struct {
				name string `short:"n"`
			}{},
			err: errors.ErrInvalidTag,
		},
		{
			name: "tagged unsupported type",
			data: &struct {
				Lookup map[string]string `desc:"lookup table"`
			}{},
			err: errors.ErrUnsupportedType,
		},
		{
			name: "long short",
			data: &struct {
				Name string `short:"nm"`
			}{},
			err: errors.ErrShortNameTooLong,
		},
		{
			name: "bad position",
			data: &struct {
				Name string `pos:"first"`
			}{},
			err: errors.ErrInvalidPosition,
		},
		{
			name: "counter without short",
			data: &struct {
				Verbose types.Counter
			}{},
			err: errors.ErrInvalidTag,
		},
		{
			name: "malformed tag",
			data: &struct {
				Name string `short:n`
			}{},
			err: errors.ErrInvalidTag,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := Scan(test.data)
			require.ErrorIs(t, err, test.err)
		})
	}
}

func TestCamelToFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Name", "name"},
		{"MyFile", "my-file"},
		{"HTTPServer", "http-server"},
		{"IPv6Addr", "i-pv6-addr"},
		{"Level2", "level2"},
		{"snake_case", "snake-case"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, CamelToFlag(test.in, "-"), test.in)
	}
}
