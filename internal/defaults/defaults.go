// Package defaults loads argument default values from configuration files.
//
// A file maps argument names to values. Nested tables are flattened with
// underscores ([server] port = 80 gives "server_port"), and arrays are
// joined with commas, the way multi-value arguments expect them.
package defaults

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadTOML reads default values from a TOML file.
func LoadTOML(path string) (map[string]string, error) {
	var doc map[string]any

	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return Flatten(doc), nil
}

// LoadYAML reads default values from a YAML file.
func LoadYAML(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return Flatten(doc), nil
}

// Flatten turns a decoded document into a map of default values.
func Flatten(doc map[string]any) map[string]string {
	out := make(map[string]string)
	flatten(out, "", doc)

	return out
}

func flatten(out map[string]string, prefix string, doc map[string]any) {
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		name := key
		if prefix != "" {
			name = prefix + "_" + key
		}

		switch value := doc[key].(type) {
		case map[string]any:
			flatten(out, name, value)
		case []any:
			items := make([]string, len(value))
			for i, item := range value {
				items[i] = fmt.Sprint(item)
			}

			out[name] = strings.Join(items, ",")
		case nil:
			continue
		default:
			out[name] = fmt.Sprint(value)
		}
	}
}
