package scan

import (
	stderrors "errors"
	"fmt"
	"reflect"

	"github.com/reeflective/clargs/internal/errors"
)

var errSyntax = stderrors.New("bad syntax for struct tag")

// Tag holds all values of a struct field tag, by key.
type Tag map[string][]string

// GetFieldTag returns the parsed tag of a struct field, and
// whether the field has no tag at all.
func GetFieldTag(field reflect.StructField) (Tag, bool, error) {
	tag := Tag{}
	if err := tag.parse(string(field.Tag)); err != nil {
		return nil, true, fmt.Errorf("%w: field %s: %w", errors.ErrInvalidTag, field.Name, err)
	}

	return tag, len(tag) == 0, nil
}

// Get returns the first value of a tag key.
func (t Tag) Get(key string) (string, bool) {
	if val, ok := t[key]; ok {
		return val[0], true
	}

	return "", false
}

// GetMany returns all values of a tag key.
func (t Tag) GetMany(key string) []string {
	return t[key]
}

// Has returns true if the key is present, whatever its value.
func (t Tag) Has(key string) bool {
	_, ok := t[key]

	return ok
}

// parse is reflect.StructTag.Lookup, except that it collects every
// key instead of looking one up, and keeps repeated keys.
func (t Tag) parse(tag string) error {
	for tag != "" {
		pos := 0
		for pos < len(tag) && tag[pos] == ' ' {
			pos++
		}

		tag = tag[pos:]
		if tag == "" {
			break
		}

		// Scan to colon. A space, a quote or a control character is a syntax error.
		pos = 0
		for pos < len(tag) && tag[pos] > ' ' && tag[pos] != ':' && tag[pos] != '"' && tag[pos] != 0x7f {
			pos++
		}

		if pos == 0 || pos+1 >= len(tag) || tag[pos] != ':' || tag[pos+1] != '"' {
			return errSyntax
		}

		name := tag[:pos]
		tag = tag[pos+1:]

		// Scan quoted string to find value.
		pos = 1
		for pos < len(tag) && tag[pos] != '"' {
			if tag[pos] == '\\' {
				pos++
			}
			pos++
		}

		if pos >= len(tag) {
			return errSyntax
		}

		quoted := tag[:pos+1]
		tag = tag[pos+1:]

		value, ok := reflect.StructTag(name + ":" + quoted).Lookup(name)
		if !ok {
			return errSyntax
		}

		t[name] = append(t[name], value)
	}

	return nil
}
