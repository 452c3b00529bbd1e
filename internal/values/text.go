package values

import (
	"encoding"
	"fmt"
	"reflect"
)

// textValue adapts a type implementing encoding.TextUnmarshaler
// to the pflag.Value interface.
type textValue struct {
	target encoding.TextUnmarshaler
}

func (v *textValue) Set(s string) error {
	return v.target.UnmarshalText([]byte(s))
}

func (v *textValue) String() string {
	if marshaler, ok := v.target.(encoding.TextMarshaler); ok {
		if text, err := marshaler.MarshalText(); err == nil {
			return string(text)
		}
	}

	if stringer, ok := v.target.(fmt.Stringer); ok {
		return stringer.String()
	}

	return ""
}

func (v *textValue) Type() string {
	return reflect.TypeOf(v.target).Elem().Name()
}
