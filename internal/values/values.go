// Package values converts the strings bound to an argument into typed Go
// values, through the pflag.Value implementations of spf13/pflag.
package values

import (
	"encoding"
	"fmt"
	"net"
	"reflect"
	"time"

	"github.com/spf13/pflag"
)

// valueName is the name of the single flag registered in throwaway flag sets.
const valueName = "value"

// New returns a pflag.Value writing into ptr, which must be a pointer to
// a supported type: booleans, strings, integers, floats, durations, IPs,
// slices of those, types implementing pflag.Value or encoding.TextUnmarshaler.
func New(ptr any) (pflag.Value, error) {
	switch target := ptr.(type) {
	case pflag.Value:
		return target, nil
	case encoding.TextUnmarshaler:
		return &textValue{target: target}, nil
	}

	flags := pflag.NewFlagSet(valueName, pflag.ContinueOnError)

	switch target := ptr.(type) {
	case *string:
		flags.StringVar(target, valueName, *target, "")
	case *bool:
		flags.BoolVar(target, valueName, *target, "")
	case *int:
		flags.IntVar(target, valueName, *target, "")
	case *int8:
		flags.Int8Var(target, valueName, *target, "")
	case *int16:
		flags.Int16Var(target, valueName, *target, "")
	case *int32:
		flags.Int32Var(target, valueName, *target, "")
	case *int64:
		flags.Int64Var(target, valueName, *target, "")
	case *uint:
		flags.UintVar(target, valueName, *target, "")
	case *uint8:
		flags.Uint8Var(target, valueName, *target, "")
	case *uint16:
		flags.Uint16Var(target, valueName, *target, "")
	case *uint32:
		flags.Uint32Var(target, valueName, *target, "")
	case *uint64:
		flags.Uint64Var(target, valueName, *target, "")
	case *float32:
		flags.Float32Var(target, valueName, *target, "")
	case *float64:
		flags.Float64Var(target, valueName, *target, "")
	case *time.Duration:
		flags.DurationVar(target, valueName, *target, "")
	case *net.IP:
		flags.IPVar(target, valueName, *target, "")
	case *[]string:
		flags.StringArrayVar(target, valueName, *target, "")
	case *[]bool:
		flags.BoolSliceVar(target, valueName, *target, "")
	case *[]int:
		flags.IntSliceVar(target, valueName, *target, "")
	case *[]int32:
		flags.Int32SliceVar(target, valueName, *target, "")
	case *[]int64:
		flags.Int64SliceVar(target, valueName, *target, "")
	case *[]uint:
		flags.UintSliceVar(target, valueName, *target, "")
	case *[]float32:
		flags.Float32SliceVar(target, valueName, *target, "")
	case *[]float64:
		flags.Float64SliceVar(target, valueName, *target, "")
	case *[]time.Duration:
		flags.DurationSliceVar(target, valueName, *target, "")
	case *[]net.IP:
		flags.IPSliceVar(target, valueName, *target, "")
	default:
		return nil, fmt.Errorf("%T", ptr)
	}

	return flags.Lookup(valueName).Value, nil
}

// Supported returns true if values can be decoded into the type.
// Pointer types are supported when their element type is.
func Supported(typ reflect.Type) bool {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	_, err := New(reflect.New(typ).Interface())

	return err == nil
}

// Set decodes the bound strings into the field. A nil pointer field is
// only allocated when there is at least one string to decode into it.
// Empty strings leave scalar fields to their zero value.
func Set(field reflect.Value, bound []string) error {
	if len(bound) == 0 {
		return nil
	}

	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}

		field = field.Elem()
	}

	value, err := New(field.Addr().Interface())
	if err != nil {
		return fmt.Errorf("unsupported type %w", err)
	}

	isList := field.Kind() == reflect.Slice

	for _, str := range bound {
		if str == "" && !isList {
			continue
		}

		if err := value.Set(str); err != nil {
			return fmt.Errorf("invalid value `%s` for %s: %w", str, value.Type(), err)
		}
	}

	return nil
}
