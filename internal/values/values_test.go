package values

import (
	"net"
	"net/netip"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/clargs/types"
)

type decodeTarget struct {
	Name     string
	Count    int
	Port     uint16
	Ratio    float64
	Enabled  bool
	Timeout  time.Duration
	IP       net.IP
	Tags     []string
	Ports    []int
	Addr     netip.Addr
	Level    types.Counter
	Optional *string
	Missing  *int
}

func field(target *decodeTarget, name string) reflect.Value {
	return reflect.ValueOf(target).Elem().FieldByName(name)
}

func TestSet(t *testing.T) {
	t.Parallel()

	target := &decodeTarget{}

	sets := []struct {
		field string
		bound []string
	}{
		{"Name", []string{"clargs"}},
		{"Count", []string{"-3"}},
		{"Port", []string{"8080"}},
		{"Ratio", []string{"0.5"}},
		{"Enabled", []string{"true"}},
		{"Timeout", []string{"1m30s"}},
		{"IP", []string{"10.0.0.1"}},
		{"Tags", []string{"a", "b,c", ""}},
		{"Ports", []string{"80", "443"}},
		{"Addr", []string{"::1"}},
		{"Level", []string{"3"}},
		{"Optional", []string{"set"}},
		{"Missing", nil},
	}

	for _, set := range sets {
		require.NoError(t, Set(field(target, set.field), set.bound), set.field)
	}

	assert.Equal(t, "clargs", target.Name)
	assert.Equal(t, -3, target.Count)
	assert.Equal(t, uint16(8080), target.Port)
	assert.InDelta(t, 0.5, target.Ratio, 0)
	assert.True(t, target.Enabled)
	assert.Equal(t, 90*time.Second, target.Timeout)
	assert.Equal(t, "10.0.0.1", target.IP.String())
	assert.Equal(t, []string{"a", "b,c", ""}, target.Tags)
	assert.Equal(t, []int{80, 443}, target.Ports)
	assert.Equal(t, netip.MustParseAddr("::1"), target.Addr)
	assert.Equal(t, types.Counter(3), target.Level)
	require.NotNil(t, target.Optional)
	assert.Equal(t, "set", *target.Optional)
	assert.Nil(t, target.Missing)
}

func TestSet_EmptyScalar(t *testing.T) {
	t.Parallel()

	target := &decodeTarget{Count: 7}

	require.NoError(t, Set(field(target, "Count"), []string{""}))
	require.Equal(t, 7, target.Count)
}

func TestSet_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field string
		bound []string
	}{
		{"Count", []string{"ten"}},
		{"Port", []string{"-1"}},
		{"Port", []string{"70000"}},
		{"Enabled", []string{"maybe"}},
		{"Timeout", []string{"soon"}},
		{"Ports", []string{"80", "http"}},
		{"Addr", []string{"999.0.0.1"}},
	}

	for _, test := range tests {
		target := &decodeTarget{}
		err := Set(field(target, test.field), test.bound)
		require.Error(t, err, "%s %v", test.field, test.bound)
		require.Contains(t, err.Error(), "invalid value")
	}
}

func TestSupported(t *testing.T) {
	t.Parallel()

	supported := []any{"", 0, int64(0), uint8(0), 0.0, false, time.Duration(0), net.IP{},
		[]string{}, []int{}, netip.Addr{}, types.Counter(0), new(string)}

	for _, value := range supported {
		assert.True(t, Supported(reflect.TypeOf(value)), "%T", value)
	}

	unsupported := []any{map[string]int{}, struct{}{}, make(chan int), []byte{}, complex64(0)}

	for _, value := range unsupported {
		assert.False(t, Supported(reflect.TypeOf(value)), "%T", value)
	}
}

func TestNew_Value(t *testing.T) {
	t.Parallel()

	var count types.Counter

	value, err := New(&count)
	require.NoError(t, err)
	require.Equal(t, "count", value.Type())

	require.NoError(t, value.Set(""))
	require.NoError(t, value.Set("true"))
	require.Equal(t, "2", value.String())
}
