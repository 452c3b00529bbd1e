package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/clargs/internal/arg"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []*arg.Arg
		raw  []string
		want []string
	}{
		{
			name: "flag next to positional",
			args: []*arg.Arg{
				{Name: "test1", Short: "a"},
				{Name: "test2", Long: "test", Kind: arg.Single},
				{Name: "test3", Short: "b", Kind: arg.Single},
				{Name: "test4", Short: "g", Kind: arg.Single},
				{Name: "test5", Long: "abc", Kind: arg.Single},
			},
			raw:  []string{"-a", "arg1", "--test", "test1", "-b=23", "-g", "test2", "--abc=test"},
			want: []string{"-a", "arg1", "--test=test1", "-b=23", "-g=test2", "--abc=test"},
		},
		{
			name: "short flag stacking",
			args: []*arg.Arg{
				{Name: "test1", Short: "a"},
				{Name: "test2", Short: "z", Kind: arg.Single},
				{Name: "test3", Short: "b"},
				{Name: "test4", Long: "test4", Kind: arg.Single},
				{Name: "test5", Short: "c"},
			},
			raw:  []string{"--test4", "test", "-abc", "arg1"},
			want: []string{"--test4=test", "-a", "-b", "-c", "arg1"},
		},
		{
			name: "optional value",
			args: []*arg.Arg{
				{Name: "test1", Short: "a", Kind: arg.Optional},
				{Name: "test2", Long: "long", Kind: arg.Optional},
			},
			raw:  []string{"-a", "arg1", "--long"},
			want: []string{"-a=arg1", "--long"},
		},
		{
			name: "ending flags with optional value",
			args: []*arg.Arg{
				{Name: "test1", Short: "a", Kind: arg.Optional},
				{Name: "test2", Short: "b"},
			},
			raw:  []string{"arg1", "-a", "-b"},
			want: []string{"arg1", "-a", "-b"},
		},
		{
			name: "long flags with dashes",
			args: []*arg.Arg{
				{Name: "test1", Long: "long", Kind: arg.Optional},
				{Name: "test2", Long: "very-long"},
				{Name: "test3", Long: "too-long-carnage"},
			},
			raw:  []string{"--too-long-carnage", "arg1", "--very-long", "--long", "lval"},
			want: []string{"--too-long-carnage", "arg1", "--very-long", "--long=lval"},
		},
		{
			name: "multiple values",
			args: []*arg.Arg{
				{Name: "test1", Long: "mul", Kind: arg.Multi},
				{Name: "test2", Short: "m", Kind: arg.Multi},
			},
			raw:  []string{"-m=test1", "-m", "test2", "--mul", "test3", "--mul=test4", "-m", "test5"},
			want: []string{"-m=test1", "-m=test2", "--mul=test3", "--mul=test4", "-m=test5"},
		},
		{
			name: "required value without value",
			args: []*arg.Arg{{Name: "test1", Short: "a", Kind: arg.Single}},
			raw:  []string{"-a=test1", "-a", "test2", "-a", "-a", "test3"},
			want: []string{"-a=test1", "-a=test2", "-a", "-a=test3"},
		},
		{
			name: "comma values",
			args: []*arg.Arg{
				{Name: "tags", Short: "t", Long: "tags", Kind: arg.Multi},
				{Name: "name", Long: "name", Kind: arg.Single},
			},
			raw:  []string{"--tags=a,b", "-t", "c,d", "--name", "x,y"},
			want: []string{"--tags=a", "--tags=b", "-t=c", "-t=d", "--name=x,y"},
		},
		{
			name: "attached value",
			args: []*arg.Arg{
				{Name: "input", Short: "i", Kind: arg.Single},
				{Name: "verbose", Short: "v"},
			},
			raw:  []string{"-viVALUE"},
			want: []string{"-v", "-i=VALUE"},
		},
		{
			name: "negative numbers",
			args: []*arg.Arg{
				{Name: "num", Short: "n", Kind: arg.Single},
				{Name: "one", Short: "1"},
			},
			raw:  []string{"-n", "-5", "-1", "-42"},
			want: []string{"-n=-5", "-1", "-42"},
		},
		{
			name: "unknown cluster",
			args: []*arg.Arg{{Name: "all", Short: "a"}},
			raw:  []string{"-xa", "-ax", "-xyz"},
			want: []string{"xa", "-a", "x", "xyz"},
		},
		{
			name: "unknown cluster as option value",
			args: []*arg.Arg{{Name: "short", Short: "s", Kind: arg.Single}},
			raw:  []string{"-s", "-xyz"},
			want: []string{"-s=xyz"},
		},
		{
			name: "lone double dash",
			args: []*arg.Arg{{Name: "all", Short: "a"}},
			raw:  []string{"--"},
			want: []string{"--"},
		},
		{
			name: "unknown flag between option and value",
			args: []*arg.Arg{{Name: "output", Short: "o", Kind: arg.Single}},
			raw:  []string{"-o", "--unknown", "file"},
			want: []string{"-o", "--unknown", "file"},
		},
		{
			name: "double dash",
			args: []*arg.Arg{
				{Name: "output", Short: "o", Kind: arg.Single},
				{Name: "all", Short: "a"},
			},
			raw:  []string{"-o", "--", "-a", "--", "-o", "x"},
			want: []string{"-o", "--", "-a", "--", "-o", "x"},
		},
		{
			name: "empty",
			args: []*arg.Arg{{Name: "all", Short: "a"}},
			raw:  nil,
			want: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := Normalize(test.raw, test.args)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	args := []*arg.Arg{
		{Name: "all", Short: "a"},
		{Name: "input", Short: "i", Kind: arg.Single},
		{Name: "tags", Long: "tags", Kind: arg.Multi},
		{Name: "color", Long: "color", Kind: arg.Optional},
	}

	raws := [][]string{
		{"-ai", "file", "--tags", "a,b", "pos"},
		{"--color", "-iVALUE", "--", "-a", "--tags", "x,y"},
		{"-a", "-5", "--tags=c", "--color=auto"},
		{"-i", "-a", "-x", "--"},
	}

	for _, raw := range raws {
		once := Normalize(raw, args)
		twice := Normalize(once, args)
		require.Equal(t, once, twice, "raw %q", raw)
	}
}

func TestIsFlagLike(t *testing.T) {
	t.Parallel()

	require.True(t, IsFlagLike("-a"))
	require.True(t, IsFlagLike("--all"))
	require.True(t, IsFlagLike("--"))
	require.False(t, IsFlagLike("-"))
	require.False(t, IsFlagLike("-12"))
	require.False(t, IsFlagLike("file"))
}
