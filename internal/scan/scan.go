// Package scan builds argument descriptors from the fields of a tagged struct.
package scan

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/reeflective/clargs/internal/arg"
	"github.com/reeflective/clargs/internal/errors"
	"github.com/reeflective/clargs/internal/values"
	"github.com/reeflective/clargs/types"
)

// Field binds an argument descriptor to the struct field it was scanned from.
type Field struct {
	Arg   *arg.Arg
	Value reflect.Value
}

var counterType = reflect.TypeOf(types.Counter(0))

// argTags are the tags an unexported field is not allowed to carry.
var argTags = []string{
	"name", "short", "long", "nolong", "alias", "pos", "env", "env-prefix",
	"default", "desc", "value-name", "required-if", "validate", "count",
}

// Scan returns one field per exported struct field of data, which must be
// a pointer to a struct. Anonymous struct fields are scanned recursively.
// Fields whose name tag is "-" are ignored, as are untagged fields of a
// type that cannot hold argument values.
func Scan(data any) ([]Field, error) {
	ptrval := reflect.ValueOf(data)

	if ptrval.Kind() != reflect.Ptr || ptrval.IsNil() || ptrval.Elem().Kind() != reflect.Struct {
		return nil, errors.ErrNotPointerToStruct
	}

	return scan(ptrval.Elem())
}

func scan(val reflect.Value) ([]Field, error) {
	var fields []Field

	stype := val.Type()

	for i := range stype.NumField() {
		field := stype.Field(i)
		value := val.Field(i)

		tag, untagged, err := GetFieldTag(field)
		if err != nil {
			return nil, err
		}

		if !field.IsExported() {
			if err := checkUnexported(field, tag); err != nil {
				return nil, err
			}

			continue
		}

		if name, _ := tag.Get("name"); name == "-" {
			continue
		}

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, err := scan(value)
			if err != nil {
				return nil, err
			}

			fields = append(fields, embedded...)

			continue
		}

		if !values.Supported(field.Type) && field.Type != counterType {
			if untagged {
				continue
			}

			return nil, fmt.Errorf("%w: field %s has type %s", errors.ErrUnsupportedType, field.Name, field.Type)
		}

		a, err := newArg(field, tag)
		if err != nil {
			return nil, err
		}

		fields = append(fields, Field{Arg: a, Value: value})
	}

	return fields, nil
}

// newArg builds the descriptor of a single field.
func newArg(field reflect.StructField, tag Tag) (*arg.Arg, error) {
	a := &arg.Arg{Name: CamelToFlag(field.Name, "_")}

	if name, found := tag.Get("name"); found && name != "" {
		a.Name = name
	}

	pos, _ := tag.Get("pos")

	position, err := arg.ParsePosition(pos)
	if err != nil {
		return nil, fmt.Errorf("%w: field %s: %w", errors.ErrInvalidPosition, field.Name, err)
	}

	a.Position = position
	a.Kind = kindOf(field.Type, position)
	a.Counter = field.Type == counterType || tag.Has("count")

	if err := setNames(a, field, tag); err != nil {
		return nil, err
	}

	a.Default, _ = tag.Get("default")
	a.Env, _ = tag.Get("env")
	a.EnvPrefix, _ = tag.Get("env-prefix")
	a.Doc, _ = tag.Get("desc")
	a.ValueName, _ = tag.Get("value-name")
	a.RequiredIf, _ = tag.Get("required-if")
	a.Validate, _ = tag.Get("validate")

	return a, nil
}

// setNames sets the short, long and alias forms of a named argument.
// Positionals have none unless explicitly given.
func setNames(a *arg.Arg, field reflect.StructField, tag Tag) error {
	short, hasShort := tag.Get("short")
	if hasShort && short == "" {
		first, _ := utf8.DecodeRuneInString(a.Name)
		short = string(first)
	}

	if utf8.RuneCountInString(short) > 1 {
		return fmt.Errorf("%w: field %s: short %q", errors.ErrShortNameTooLong, field.Name, short)
	}

	a.Short = short

	long, hasLong := tag.Get("long")
	switch {
	case tag.Has("nolong"), a.Counter:
		long = ""
	case !hasLong && !a.IsPositional():
		long = CamelToFlag(field.Name, "-")
	}

	a.Long = long

	for _, aliases := range tag.GetMany("alias") {
		for _, alias := range strings.Split(aliases, ",") {
			if alias = strings.TrimSpace(alias); alias != "" {
				a.Aliases = append(a.Aliases, alias)
			}
		}
	}

	if a.Counter && a.Short == "" {
		return fmt.Errorf("%w: field %s: counting flags need a short form", errors.ErrInvalidTag, field.Name)
	}

	return nil
}

// kindOf infers how an argument consumes values from the type of its field.
func kindOf(typ reflect.Type, position arg.Position) arg.Kind {
	elem := typ
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}

	switch {
	case typ == counterType, elem.Kind() == reflect.Bool:
		return arg.NoValue
	case typ.Kind() == reflect.Slice && typ.Elem().Kind() != reflect.Uint8:
		return arg.Multi
	case typ.Kind() == reflect.Ptr && position == arg.None:
		return arg.Optional
	default:
		return arg.Single
	}
}

func checkUnexported(field reflect.StructField, tag Tag) error {
	var found []string

	for _, name := range argTags {
		if tag.Has(name) {
			found = append(found, name)
		}
	}

	if len(found) > 0 {
		return fmt.Errorf("%w: field '%s' is not exported but has tags: %s",
			errors.ErrInvalidTag, field.Name, strings.Join(found, ", "))
	}

	return nil
}
